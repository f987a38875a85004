package services

import (
	"errors"
	"fmt"

	"flotte/database"
	"flotte/models"

	"gorm.io/gorm"
)

// CoutVehicule — décomposition du coût de possession (TCO) d'un véhicule.
// Tous les montants en FCFA, absent = 0.
type CoutVehicule struct {
	VehiculeID  uint  `json:"vehicule_id"`
	Acquisition int64 `json:"acquisition"`
	Depenses    int64 `json:"depenses"`
	Maintenance int64 `json:"maintenance"`
	Carburant   int64 `json:"carburant"`
	PrixVente   int64 `json:"prix_vente"`
	TCO         int64 `json:"tco"`
}

func sommeMontants(model interface{}, colonne string, vehiculeID uint) (int64, error) {
	var total int64
	err := database.DB.Model(model).
		Where("vehicule_id = ?", vehiculeID).
		Select("COALESCE(SUM(" + colonne + "), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum %s: %w", colonne, err)
	}
	return total, nil
}

// TCOVehicule calcule le coût total de possession : prix d'achat + frais
// d'import + dépenses + maintenances + carburant, moins le prix de la dernière
// vente. Lecture pure, calculable quel que soit le statut du véhicule.
// Le véhicule est résolu à travers le filtre de visibilité : un utilisateur
// simple n'atteint que ses propres véhicules.
func TCOVehicule(p Principal, vehiculeID uint) (*CoutVehicule, error) {
	var vehicule models.Vehicule
	if err := database.DB.Scopes(ScopeVehicules(p)).First(&vehicule, vehiculeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load vehicule %d: %w", vehiculeID, err)
	}

	fraisImport, err := sommeMontants(&models.FraisImport{}, "total", vehiculeID)
	if err != nil {
		return nil, err
	}
	depenses, err := sommeMontants(&models.Depense{}, "montant", vehiculeID)
	if err != nil {
		return nil, err
	}
	maintenance, err := sommeMontants(&models.Maintenance{}, "cout", vehiculeID)
	if err != nil {
		return nil, err
	}
	carburant, err := sommeMontants(&models.ReleveCarburant{}, "montant", vehiculeID)
	if err != nil {
		return nil, err
	}

	// Dernière vente : date la plus récente, identifiant le plus haut en cas
	// d'égalité. Prix absent = 0.
	var prixVente int64
	var derniere models.Vente
	err = database.DB.Where("vehicule_id = ?", vehiculeID).
		Order("date_vente DESC, id DESC").
		First(&derniere).Error
	switch {
	case err == nil:
		if derniere.PrixVente != nil {
			prixVente = *derniere.PrixVente
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// pas de vente
	default:
		return nil, fmt.Errorf("failed to load derniere vente for vehicule %d: %w", vehiculeID, err)
	}

	var prixAchat int64
	if vehicule.PrixAchat != nil {
		prixAchat = *vehicule.PrixAchat
	}
	acquisition := prixAchat + fraisImport

	return &CoutVehicule{
		VehiculeID:  vehiculeID,
		Acquisition: acquisition,
		Depenses:    depenses,
		Maintenance: maintenance,
		Carburant:   carburant,
		PrixVente:   prixVente,
		TCO:         acquisition + depenses + maintenance + carburant - prixVente,
	}, nil
}
