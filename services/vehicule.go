package services

import (
	"errors"
	"fmt"

	"flotte/database"
	"flotte/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FiltreVehicules — critères de liste / recherche du parc.
type FiltreVehicules struct {
	Statut string
	Q      string
	Limit  int
}

// ListerVehicules — liste du parc, filtrée par statut et recherche libre
// (châssis, immatriculation, marque, modèle, pays d'origine), dans la limite
// de visibilité de l'appelant.
func ListerVehicules(p Principal, filtre FiltreVehicules) ([]models.Vehicule, error) {
	q := database.DB.Scopes(ScopeVehicules(p)).
		Preload("Marque").Preload("Modele").
		Order("date_entree_parc DESC, id DESC")

	if filtre.Statut == models.StatutParc || filtre.Statut == models.StatutImport || filtre.Statut == models.StatutVendu {
		q = q.Where("statut = ?", filtre.Statut)
	}
	if filtre.Q != "" {
		motif := "%" + filtre.Q + "%"
		sousMarques := database.DB.Model(&models.Marque{}).Select("id").Where("nom LIKE ?", motif)
		sousModeles := database.DB.Model(&models.Modele{}).Select("id").Where("nom LIKE ?", motif)
		q = q.Where(
			"numero_chassis LIKE ? OR numero_immatriculation LIKE ? OR origine_pays LIKE ? OR marque_id IN (?) OR modele_id IN (?)",
			motif, motif, motif, sousMarques, sousModeles,
		)
	}

	limit := filtre.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	var vehicules []models.Vehicule
	if err := q.Limit(limit).Find(&vehicules).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicules: %w", err)
	}
	return vehicules, nil
}

// DetailVehicule — fiche véhicule avec ses rattachements, visibilité comprise.
func DetailVehicule(p Principal, id uint) (*models.Vehicule, error) {
	var vehicule models.Vehicule
	err := database.DB.Scopes(ScopeVehicules(p)).
		Preload("Marque").Preload("Modele").
		Preload("TypeVehicule").Preload("TypeCarburant").Preload("TypeTransmission").
		Preload("FraisImports").Preload("Depenses").Preload("Reparations").
		Preload("Maintenances").Preload("RelevesCarburant").
		Preload("Locations").Preload("Locations.Amendes").
		Preload("Ventes").Preload("Factures").Preload("Factures.Penalites").
		Preload("Documents").
		First(&vehicule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load vehicule %d: %w", id, err)
	}
	return &vehicule, nil
}

// CreerVehicule — intake d'un véhicule, châssis unique obligatoire.
// Réservé aux gestionnaires et administrateurs.
func CreerVehicule(p Principal, vehicule *models.Vehicule) error {
	if !p.IsManagerOrAdmin() {
		return ErrForbidden
	}
	var existant models.Vehicule
	if err := database.DB.Where("numero_chassis = ?", vehicule.NumeroChassis).First(&existant).Error; err == nil {
		return fmt.Errorf("numero de chassis %s deja enregistre", vehicule.NumeroChassis)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check chassis uniqueness: %w", err)
	}
	if vehicule.Statut == "" {
		vehicule.Statut = models.StatutParc
	}
	if err := database.DB.Create(vehicule).Error; err != nil {
		return fmt.Errorf("failed to create vehicule: %w", err)
	}
	log.WithFields(log.Fields{"vehicule_id": vehicule.ID, "chassis": vehicule.NumeroChassis}).
		Info("Vehicule enregistre")
	return nil
}

// MettreAJourVehicule — mise à jour d'une fiche (manager/admin).
func MettreAJourVehicule(p Principal, vehicule *models.Vehicule) error {
	if !p.IsManagerOrAdmin() {
		return ErrForbidden
	}
	if err := database.DB.Save(vehicule).Error; err != nil {
		return fmt.Errorf("failed to update vehicule %d: %w", vehicule.ID, err)
	}
	return nil
}
