package services

import (
	"errors"
	"fmt"

	"flotte/database"
	"flotte/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListerVentes — liste des ventes (manager/admin).
func ListerVentes(p Principal, limit int) ([]models.Vente, error) {
	if !p.IsManagerOrAdmin() {
		return nil, ErrForbidden
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var ventes []models.Vente
	err := database.DB.
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Order("date_vente DESC").
		Limit(limit).
		Find(&ventes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ventes: %w", err)
	}
	return ventes, nil
}

// CreerVente enregistre une vente et passe le véhicule au statut vendu.
func CreerVente(p Principal, vente *models.Vente) error {
	if !p.IsManagerOrAdmin() {
		return ErrForbidden
	}
	var vehicule models.Vehicule
	if err := database.DB.First(&vehicule, vente.VehiculeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load vehicule %d: %w", vente.VehiculeID, err)
	}
	if err := database.DB.Create(vente).Error; err != nil {
		return fmt.Errorf("failed to create vente: %w", err)
	}
	if vehicule.Statut != models.StatutVendu {
		if err := database.DB.Model(&vehicule).Update("statut", models.StatutVendu).Error; err != nil {
			return fmt.Errorf("failed to mark vehicule %d vendu: %w", vehicule.ID, err)
		}
	}
	log.WithFields(log.Fields{"vente_id": vente.ID, "vehicule_id": vente.VehiculeID}).
		Info("Vente enregistree")
	return nil
}
