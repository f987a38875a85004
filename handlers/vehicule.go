package handlers

import (
	"net/http"
	"strconv"

	"flotte/models"
	"flotte/services"

	"github.com/gin-gonic/gin"
)

// ListVehicules — GET /vehicules?statut=&q=&limit=
func ListVehicules(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	vehicules, err := services.ListerVehicules(Principal(c), services.FiltreVehicules{
		Statut: c.Query("statut"),
		Q:      c.Query("q"),
		Limit:  limit,
	})
	if err != nil {
		ServiceError(c, err)
		return
	}
	resp := make([]models.VehiculeResponse, len(vehicules))
	for i := range vehicules {
		resp[i] = vehicules[i].ToResponse()
	}
	SuccessResponse(c, http.StatusOK, "Parc", gin.H{"vehicules": resp, "count": len(resp)})
}

// GetVehicule — GET /vehicules/:id, fiche complète avec coûts.
func GetVehicule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Identifiant invalide", err.Error())
		return
	}
	p := Principal(c)
	vehicule, err := services.DetailVehicule(p, uint(id))
	if err != nil {
		ServiceError(c, err)
		return
	}
	cout, err := services.TCOVehicule(p, uint(id))
	if err != nil {
		ServiceError(c, err)
		return
	}
	// Les réparations restent hors TCO : total informatif uniquement.
	var totalReparations int64
	for i := range vehicule.Reparations {
		if vehicule.Reparations[i].Cout != nil {
			totalReparations += *vehicule.Reparations[i].Cout
		}
	}
	SuccessResponse(c, http.StatusOK, "Fiche véhicule", gin.H{
		"vehicule":          vehicule,
		"cout":              cout,
		"total_reparations": totalReparations,
	})
}

// GetVehiculeTCO — GET /vehicules/:id/tco
func GetVehiculeTCO(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Identifiant invalide", err.Error())
		return
	}
	cout, err := services.TCOVehicule(Principal(c), uint(id))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Coût de possession", cout)
}

// CreateVehicule — POST /vehicules (manager/admin).
func CreateVehicule(c *gin.Context) {
	var vehicule models.Vehicule
	if err := c.ShouldBindJSON(&vehicule); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerVehicule(Principal(c), &vehicule); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Véhicule enregistré", vehicule.ToResponse())
}

// UpdateVehicule — PUT /vehicules/:id (manager/admin).
func UpdateVehicule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Identifiant invalide", err.Error())
		return
	}
	p := Principal(c)
	vehicule, err := services.DetailVehicule(p, uint(id))
	if err != nil {
		ServiceError(c, err)
		return
	}
	if err := c.ShouldBindJSON(vehicule); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	vehicule.ID = uint(id)
	if err := services.MettreAJourVehicule(p, vehicule); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Véhicule mis à jour", vehicule.ToResponse())
}
