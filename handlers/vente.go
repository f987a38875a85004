package handlers

import (
	"net/http"
	"strconv"

	"flotte/models"
	"flotte/services"

	"github.com/gin-gonic/gin"
)

// ListVentes — GET /ventes?limit=
func ListVentes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	ventes, err := services.ListerVentes(Principal(c), limit)
	if err != nil {
		ServiceError(c, err)
		return
	}
	resp := make([]models.VenteResponse, len(ventes))
	for i := range ventes {
		resp[i] = ventes[i].ToResponse()
	}
	SuccessResponse(c, http.StatusOK, "Ventes", gin.H{"ventes": resp, "count": len(resp)})
}

// CreateVente — POST /ventes — enregistre la vente et passe le véhicule au
// statut vendu.
func CreateVente(c *gin.Context) {
	var vente models.Vente
	if err := c.ShouldBindJSON(&vente); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerVente(Principal(c), &vente); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Vente enregistrée", vente.ToResponse())
}
