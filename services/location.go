package services

import (
	"errors"
	"fmt"

	"flotte/database"
	"flotte/models"

	"gorm.io/gorm"
)

// ListerLocations — liste des contrats (manager/admin, comme la liste
// d'origine), filtrable par statut.
func ListerLocations(p Principal, statut string, limit int) ([]models.Location, error) {
	if !p.IsManagerOrAdmin() {
		return nil, ErrForbidden
	}
	q := database.DB.
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Preload("Amendes").
		Order("date_debut DESC")
	if statut == models.LocationEnCours || statut == models.LocationAVenir || statut == models.LocationTermine {
		q = q.Where("statut = ?", statut)
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var locations []models.Location
	if err := q.Limit(limit).Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// DetailLocation — contrat avec amendes, coût total dérivé à la lecture.
func DetailLocation(p Principal, id uint) (*models.Location, error) {
	if !p.IsManagerOrAdmin() {
		return nil, ErrForbidden
	}
	var location models.Location
	err := database.DB.
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Preload("Conducteur").Preload("Amendes").
		First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load location %d: %w", id, err)
	}
	return &location, nil
}

// CreerLocation — nouveau contrat (manager/admin).
func CreerLocation(p Principal, location *models.Location) error {
	if !p.IsManagerOrAdmin() {
		return ErrForbidden
	}
	if location.DateFin.Before(location.DateDebut) {
		return fmt.Errorf("date de fin %s anterieure a la date de debut %s",
			location.DateFin.Format("2006-01-02"), location.DateDebut.Format("2006-01-02"))
	}
	if location.Statut == "" {
		location.Statut = models.LocationEnCours
	}
	if err := database.DB.Create(location).Error; err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// AjouterAmende rattache une amende à une location existante.
func AjouterAmende(p Principal, amende *models.Amende) error {
	if !p.IsManagerOrAdmin() {
		return ErrForbidden
	}
	var location models.Location
	if err := database.DB.First(&location, amende.LocationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load location %d: %w", amende.LocationID, err)
	}
	if err := database.DB.Create(amende).Error; err != nil {
		return fmt.Errorf("failed to create amende: %w", err)
	}
	return nil
}
