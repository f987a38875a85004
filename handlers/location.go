package handlers

import (
	"net/http"
	"strconv"

	"flotte/models"
	"flotte/services"

	"github.com/gin-gonic/gin"
)

// ListLocations — GET /locations?statut=&limit=
func ListLocations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	locations, err := services.ListerLocations(Principal(c), c.Query("statut"), limit)
	if err != nil {
		ServiceError(c, err)
		return
	}
	resp := make([]models.LocationResponse, len(locations))
	for i := range locations {
		resp[i] = locations[i].ToResponse()
	}
	SuccessResponse(c, http.StatusOK, "Locations", gin.H{"locations": resp, "count": len(resp)})
}

// GetLocation — GET /locations/:id
func GetLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Identifiant invalide", err.Error())
		return
	}
	location, err := services.DetailLocation(Principal(c), uint(id))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Location", location.ToResponse())
}

// CreateLocation — POST /locations
func CreateLocation(c *gin.Context) {
	var location models.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerLocation(Principal(c), &location); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Location enregistrée", location.ToResponse())
}

// CreateAmende — POST /locations/:id/amendes
func CreateAmende(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Identifiant invalide", err.Error())
		return
	}
	var amende models.Amende
	if err := c.ShouldBindJSON(&amende); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	amende.LocationID = uint(id)
	if err := services.AjouterAmende(Principal(c), &amende); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Amende enregistrée", amende)
}
