package handlers

import (
	"net/http"
	"strconv"

	"flotte/models"
	"flotte/services"
	"flotte/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Register crée un compte. Le rôle ne peut être fourni que par un admin déjà
// authentifié (l'inscription publique donne toujours le rôle user).
func Register(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}

	u := &models.Utilisateur{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Actif:    true,
	}
	if err := services.EnregistrerUtilisateur(u, models.RoleUser); err != nil {
		log.WithError(err).WithField("username", input.Username).Warn("Echec d'inscription")
		ErrorResponse(c, http.StatusBadRequest, "Inscription impossible", err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Compte créé", u.ToResponse(services.ResolveRole(u)))
}

// Login authentifie et émet un token portant le rôle résolu.
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}

	u, err := services.AuthentifierUtilisateur(input.Username, input.Password)
	if err != nil {
		ErrorResponse(c, http.StatusUnauthorized, "Échec de connexion", err.Error())
		return
	}

	role := services.ResolveRole(u)
	token, err := utils.GenerateToken(u.ID, role)
	if err != nil {
		log.WithError(err).Error("Echec d'emission de token")
		ErrorResponse(c, http.StatusInternalServerError, "Erreur interne", err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Connexion réussie", gin.H{
		"token": token,
		"user":  u.ToResponse(role),
	})
}

// UpdateRole modifie le rôle d'un compte (admin uniquement).
func UpdateRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Identifiant invalide", err.Error())
		return
	}
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.ChangerRole(Principal(c), uint(id), input.Role); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Rôle mis à jour", nil)
}

// ListUsers — liste des comptes (admin uniquement).
func ListUsers(c *gin.Context) {
	utilisateurs, err := services.ListerUtilisateurs(Principal(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	resp := make([]models.UtilisateurResponse, len(utilisateurs))
	for i := range utilisateurs {
		resp[i] = utilisateurs[i].ToResponse(services.ResolveRole(&utilisateurs[i]))
	}
	SuccessResponse(c, http.StatusOK, "Utilisateurs", resp)
}
