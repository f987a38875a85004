package routes

import (
	"errors"
	"net/http"
	"strings"

	"flotte/handlers"
	"flotte/models"
	"flotte/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware vérifie le JWT et place user_id et role dans le contexte.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "En-tête Authorization manquant",
				"error":   "Authorization header is required",
				"code":    "ERR_NO_AUTH_HEADER",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Format Authorization invalide",
				"error":   "Authorization header must be in the format 'Bearer <token>'",
				"code":    "ERR_INVALID_AUTH_FORMAT",
			})
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return utils.JWTSecret, nil
		}, jwt.WithExpirationRequired())

		if err != nil {
			logrus.WithError(err).Debug("token parsing failed")
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"status":  false,
					"message": "Token expiré",
					"error":   "Token has expired",
					"code":    "ERR_TOKEN_EXPIRED",
				})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{
					"status":  false,
					"message": "Token invalide",
					"error":   err.Error(),
					"code":    "ERR_INVALID_TOKEN",
				})
			}
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Contenu du token invalide",
				"error":   "Invalid token claims or token is not valid",
				"code":    "ERR_INVALID_CLAIMS",
			})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Identifiant utilisateur invalide",
				"error":   "Invalid user_id in token",
				"code":    "ERR_INVALID_USER_ID",
			})
			c.Abort()
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (role != models.RoleUser && role != models.RoleManager && role != models.RoleAdmin) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Rôle invalide",
				"error":   "Invalid role in token",
				"code":    "ERR_INVALID_ROLE",
			})
			c.Abort()
			return
		}

		c.Set("user_id", int(userID))
		c.Set("role", role)
		c.Next()
	}
}

// RoleMiddleware restreint la route aux rôles listés ; admin passe toujours.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  false,
				"message": "Rôle introuvable",
				"error":   "Role not found in context",
				"code":    "ERR_ROLE_NOT_FOUND",
			})
			c.Abort()
			return
		}

		if role == models.RoleAdmin {
			c.Next()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"status":  false,
			"message": "Permissions insuffisantes",
			"error":   "Insufficient role permissions",
			"code":    "ERR_INSUFFICIENT_PERMISSIONS",
		})
		c.Abort()
	}
}

func Path(router *gin.RouterGroup) {
	v1 := router.Group("/v1")
	{
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "pong"})
		})

		// Authentification et gestion des comptes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)

			authWithAuth := auth.Group("")
			authWithAuth.Use(AuthMiddleware())
			{
				authWithAuth.GET("/users", RoleMiddleware(models.RoleAdmin), handlers.ListUsers)
				authWithAuth.PUT("/users/:id/role", RoleMiddleware(models.RoleAdmin), handlers.UpdateRole)
			}
		}

		// Flotte : consultation pour tous les rôles (la visibilité est
		// restreinte côté service), écriture manager/admin.
		vehicules := v1.Group("/vehicules")
		vehicules.Use(AuthMiddleware())
		{
			vehicules.GET("", handlers.ListVehicules)
			vehicules.GET("/:id", handlers.GetVehicule)
			vehicules.GET("/:id/tco", handlers.GetVehiculeTCO)
			vehicules.POST("", RoleMiddleware(models.RoleManager), handlers.CreateVehicule)
			vehicules.PUT("/:id", RoleMiddleware(models.RoleManager), handlers.UpdateVehicule)
		}

		// Locations et ventes : manager/admin uniquement
		locations := v1.Group("/locations")
		locations.Use(AuthMiddleware(), RoleMiddleware(models.RoleManager))
		{
			locations.GET("", handlers.ListLocations)
			locations.GET("/:id", handlers.GetLocation)
			locations.POST("", handlers.CreateLocation)
			locations.POST("/:id/amendes", handlers.CreateAmende)
		}

		ventes := v1.Group("/ventes")
		ventes.Use(AuthMiddleware(), RoleMiddleware(models.RoleManager))
		{
			ventes.GET("", handlers.ListVentes)
			ventes.POST("", handlers.CreateVente)
		}

		// Chiffre d'affaires : manager/admin uniquement
		ca := v1.Group("/ca")
		ca.Use(AuthMiddleware(), RoleMiddleware(models.RoleManager))
		{
			ca.GET("/evolution", handlers.GetEvolutionCA)
			ca.GET("/synthese", handlers.GetSyntheseCA)
		}

		// Alertes de conformité et tableau de bord
		alertes := v1.Group("/alertes")
		alertes.Use(AuthMiddleware())
		{
			alertes.GET("", handlers.GetAlertes)
			alertes.GET("/completes", RoleMiddleware(models.RoleManager), handlers.GetAlertesCompletes)
		}

		dashboard := v1.Group("/dashboard")
		dashboard.Use(AuthMiddleware())
		{
			dashboard.GET("", handlers.GetDashboard)
		}

		// Suivi d'exploitation : lecture pour tous (visibilité côté
		// service), écriture manager/admin.
		suivi := v1.Group("/suivi")
		suivi.Use(AuthMiddleware())
		{
			suivi.GET("/maintenances", handlers.ListMaintenances)
			suivi.POST("/maintenances", RoleMiddleware(models.RoleManager), handlers.CreateMaintenance)
			suivi.GET("/carburant", handlers.ListRelevesCarburant)
			suivi.POST("/carburant", RoleMiddleware(models.RoleManager), handlers.CreateReleveCarburant)
			suivi.GET("/reparations", handlers.ListReparations)
			suivi.POST("/reparations", RoleMiddleware(models.RoleManager), handlers.CreateReparation)
			suivi.GET("/documents", handlers.ListDocuments)
			suivi.POST("/documents", RoleMiddleware(models.RoleManager), handlers.CreateDocument)
			suivi.GET("/conducteurs", handlers.ListConducteurs)
			suivi.POST("/conducteurs", RoleMiddleware(models.RoleManager), handlers.CreateConducteur)
			suivi.GET("/depenses", handlers.ListDepenses)
			suivi.POST("/depenses", RoleMiddleware(models.RoleManager), handlers.CreateDepense)
			suivi.POST("/frais-import", RoleMiddleware(models.RoleManager), handlers.CreateFraisImport)
			suivi.GET("/factures", RoleMiddleware(models.RoleManager), handlers.ListFactures)
			suivi.POST("/factures", RoleMiddleware(models.RoleManager), handlers.CreateFacture)
			suivi.POST("/factures/:id/penalites", RoleMiddleware(models.RoleManager), handlers.CreatePenalite)
		}
	}
}
