package handlers

import (
	"net/http"
	"strconv"
	"time"

	"flotte/services"

	"github.com/gin-gonic/gin"
)

func horizonFromQuery(c *gin.Context) int {
	horizon, err := strconv.Atoi(c.DefaultQuery("horizon", strconv.Itoa(services.HorizonAlertesDefaut)))
	if err != nil || horizon <= 0 {
		horizon = services.HorizonAlertesDefaut
	}
	return horizon
}

// GetAlertes — GET /alertes?horizon=30 — balayage complet, listes plafonnées
// comme sur le tableau de bord.
func GetAlertes(c *gin.Context) {
	rapport, err := services.AlertesConformite(Principal(c), time.Now(), horizonFromQuery(c), services.LimiteAlertesTableauDeBord)
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Alertes de conformité", rapport)
}

// GetAlertesCompletes — GET /alertes/completes — page conformité / export,
// sans plafond, réservé aux gestionnaires et administrateurs.
func GetAlertesCompletes(c *gin.Context) {
	p := Principal(c)
	if !p.IsManagerOrAdmin() {
		ServiceError(c, services.ErrForbidden)
		return
	}
	rapport, err := services.AlertesConformite(p, time.Now(), horizonFromQuery(c), 0)
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Alertes de conformité (complet)", rapport)
}

// GetDashboard — GET /dashboard — KPIs du parc et alertes plafonnées.
func GetDashboard(c *gin.Context) {
	tableau, err := services.ConstruireTableauDeBord(Principal(c), time.Now(), horizonFromQuery(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Tableau de bord", tableau)
}
