package handlers

import (
	"net/http"
	"strconv"
	"time"

	"flotte/services"

	"github.com/gin-gonic/gin"
)

// GetEvolutionCA — GET /ca/evolution?granularite=mois&annee=2025&mois=3
// Les paramètres invalides retombent sur des valeurs sûres, jamais d'erreur.
func GetEvolutionCA(c *gin.Context) {
	granularite := c.DefaultQuery("granularite", services.GranulariteMois)
	annee, err := strconv.Atoi(c.Query("annee"))
	if err != nil {
		annee = 0
	}
	mois, err := strconv.Atoi(c.Query("mois"))
	if err != nil {
		mois = 0
	}

	evolution, err := services.CalculerEvolutionCA(Principal(c), time.Now(), granularite, annee, mois)
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Évolution du CA", evolution)
}

// GetSyntheseCA — GET /ca/synthese
func GetSyntheseCA(c *gin.Context) {
	synthese, err := services.CalculerSyntheseCA(Principal(c), time.Now())
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Synthèse du CA", synthese)
}
