package services

import (
	"fmt"
	"time"

	"flotte/database"
	"flotte/models"
)

// RepartitionMarque — nombre de véhicules visibles par marque.
type RepartitionMarque struct {
	Marque string `json:"marque"`
	N      int64  `json:"n"`
}

// TableauDeBord — KPIs du parc, répartition par marque, alertes plafonnées et
// derniers véhicules en import, tout dans la visibilité de l'appelant.
type TableauDeBord struct {
	Parc            int64                     `json:"parc"`
	Import          int64                     `json:"import"`
	Vendus          int64                     `json:"vendus"`
	Total           int64                     `json:"total"`
	ParMarque       []RepartitionMarque       `json:"par_marque"`
	Alertes         *RapportAlertes           `json:"alertes"`
	VehiculesImport []models.VehiculeResponse `json:"vehicules_import"`
}

func compterVehicules(p Principal, statut string) (int64, error) {
	q := database.DB.Model(&models.Vehicule{}).Scopes(ScopeVehicules(p))
	if statut != "" {
		q = q.Where("statut = ?", statut)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count vehicules (statut=%q): %w", statut, err)
	}
	return n, nil
}

// ConstruireTableauDeBord assemble les KPIs du tableau de bord.
func ConstruireTableauDeBord(p Principal, now time.Time, horizonJours int) (*TableauDeBord, error) {
	parc, err := compterVehicules(p, models.StatutParc)
	if err != nil {
		return nil, err
	}
	imports, err := compterVehicules(p, models.StatutImport)
	if err != nil {
		return nil, err
	}
	vendus, err := compterVehicules(p, models.StatutVendu)
	if err != nil {
		return nil, err
	}
	total, err := compterVehicules(p, "")
	if err != nil {
		return nil, err
	}

	var parMarque []RepartitionMarque
	err = database.DB.Model(&models.Vehicule{}).
		Scopes(ScopeVehicules(p)).
		Joins("LEFT JOIN marques ON marques.id = vehicules.marque_id").
		Select("marques.nom AS marque, COUNT(vehicules.id) AS n").
		Group("marques.nom").
		Order("n DESC").
		Scan(&parMarque).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group vehicules by marque: %w", err)
	}

	alertes, err := AlertesConformite(p, now, horizonJours, LimiteAlertesTableauDeBord)
	if err != nil {
		return nil, err
	}

	var enImport []models.Vehicule
	err = database.DB.Scopes(ScopeVehicules(p)).
		Preload("Marque").Preload("Modele").
		Where("statut = ?", models.StatutImport).
		Order("date_entree_parc DESC, id DESC").
		Limit(5).
		Find(&enImport).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicules en import: %w", err)
	}
	vehiculesImport := make([]models.VehiculeResponse, len(enImport))
	for i := range enImport {
		vehiculesImport[i] = enImport[i].ToResponse()
	}

	return &TableauDeBord{
		Parc:            parc,
		Import:          imports,
		Vendus:          vendus,
		Total:           total,
		ParMarque:       parMarque,
		Alertes:         alertes,
		VehiculesImport: vehiculesImport,
	}, nil
}
