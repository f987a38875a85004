package services

// Listes de suivi consultables par tous les rôles (maintenances, carburant,
// réparations, documents, conducteurs, dépenses, factures), toujours dans la
// visibilité de l'appelant. Les créations restent manager/admin.

import (
	"errors"
	"fmt"

	"flotte/database"
	"flotte/models"

	"gorm.io/gorm"
)

func clampLimit(limit, defaut, max int) int {
	if limit <= 0 {
		return defaut
	}
	if limit > max {
		return max
	}
	return limit
}

func ListerMaintenances(p Principal, limit int) ([]models.Maintenance, error) {
	var maintenances []models.Maintenance
	err := database.DB.Scopes(ScopeVehiculeRattache(p)).
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Order("date_prevue DESC, id DESC").
		Limit(clampLimit(limit, 200, 500)).
		Find(&maintenances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenances: %w", err)
	}
	return maintenances, nil
}

func ListerRelevesCarburant(p Principal, limit int) ([]models.ReleveCarburant, error) {
	var releves []models.ReleveCarburant
	err := database.DB.Scopes(ScopeVehiculeRattache(p)).
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Order("date_releve DESC, id DESC").
		Limit(clampLimit(limit, 200, 500)).
		Find(&releves).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list releves carburant: %w", err)
	}
	return releves, nil
}

func ListerReparations(p Principal, limit int) ([]models.Reparation, error) {
	var reparations []models.Reparation
	err := database.DB.Scopes(ScopeVehiculeRattache(p)).
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Order("date_reparation DESC, id DESC").
		Limit(clampLimit(limit, 200, 500)).
		Find(&reparations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reparations: %w", err)
	}
	return reparations, nil
}

func ListerDocuments(p Principal, limit int) ([]models.DocumentVehicule, error) {
	var documents []models.DocumentVehicule
	err := database.DB.Scopes(ScopeVehiculeRattache(p)).
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Order("vehicule_id ASC, type_document ASC").
		Limit(clampLimit(limit, 200, 500)).
		Find(&documents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}

func ListerConducteurs(p Principal) ([]models.Conducteur, error) {
	var conducteurs []models.Conducteur
	err := database.DB.Scopes(ScopeConducteurs(p)).
		Order("nom ASC, prenom ASC").
		Find(&conducteurs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list conducteurs: %w", err)
	}
	return conducteurs, nil
}

func ListerDepenses(p Principal, limit int) ([]models.Depense, error) {
	var depenses []models.Depense
	err := database.DB.Scopes(ScopeVehiculeRattache(p)).
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Order("date_depense DESC, id DESC").
		Limit(clampLimit(limit, 200, 500)).
		Find(&depenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list depenses: %w", err)
	}
	return depenses, nil
}

func ListerFactures(p Principal, limit int) ([]models.Facture, error) {
	if !p.IsManagerOrAdmin() {
		return nil, ErrForbidden
	}
	var factures []models.Facture
	err := database.DB.
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Preload("Penalites").
		Order("date_facture DESC, id DESC").
		Limit(clampLimit(limit, 200, 500)).
		Find(&factures).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list factures: %w", err)
	}
	return factures, nil
}

// CreerEnregistrementSuivi factorise les créations simples (maintenance,
// relevé, réparation, document, dépense, frais d'import, facture, pénalité) :
// contrôle de rôle, existence du véhicule porté par le modèle si applicable,
// insertion. Les hooks BeforeSave des modèles font le reste.
func CreerEnregistrementSuivi(p Principal, enregistrement interface{}, vehiculeID uint) error {
	if !p.IsManagerOrAdmin() {
		return ErrForbidden
	}
	if vehiculeID != 0 {
		var vehicule models.Vehicule
		if err := database.DB.First(&vehicule, vehiculeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load vehicule %d: %w", vehiculeID, err)
		}
	}
	if err := database.DB.Create(enregistrement).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// AjouterPenalite rattache une pénalité à une facture existante.
func AjouterPenalite(p Principal, penalite *models.PenaliteFacture) error {
	if !p.IsManagerOrAdmin() {
		return ErrForbidden
	}
	var facture models.Facture
	if err := database.DB.First(&facture, penalite.FactureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load facture %d: %w", penalite.FactureID, err)
	}
	if err := database.DB.Create(penalite).Error; err != nil {
		return fmt.Errorf("failed to create penalite: %w", err)
	}
	return nil
}
