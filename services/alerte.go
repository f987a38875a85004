package services

import (
	"fmt"
	"sort"
	"time"

	"flotte/database"
	"flotte/models"
)

// HorizonAlertesDefaut — fenêtre d'alerte par défaut, en jours.
const HorizonAlertesDefaut = 30

// LimiteAlertesTableauDeBord — nombre d'alertes par liste sur le tableau de
// bord. La page conformité et l'export passent 0 (aucune limite).
const LimiteAlertesTableauDeBord = 10

// AlerteEcheance — échéance CT ou assurance qui tombe dans la fenêtre.
// LocationID est renseigné quand l'échéance vient d'une location en cours ;
// sinon elle vient du véhicule lui-même (hors location en cours, jamais les
// deux pour une même obligation).
type AlerteEcheance struct {
	VehiculeID uint      `json:"vehicule_id"`
	Vehicule   string    `json:"vehicule"`
	LocationID *uint     `json:"location_id,omitempty"`
	Locataire  string    `json:"locataire,omitempty"`
	Echeance   time.Time `json:"echeance"`
}

type AlerteDocument struct {
	DocumentID   uint      `json:"document_id"`
	VehiculeID   uint      `json:"vehicule_id"`
	Vehicule     string    `json:"vehicule"`
	TypeDocument string    `json:"type_document"`
	Echeance     time.Time `json:"echeance"`
}

type AlertePermis struct {
	ConducteurID uint      `json:"conducteur_id"`
	Conducteur   string    `json:"conducteur"`
	Echeance     time.Time `json:"echeance"`
}

type AlerteMaintenance struct {
	MaintenanceID    uint       `json:"maintenance_id"`
	VehiculeID       uint       `json:"vehicule_id"`
	Vehicule         string     `json:"vehicule"`
	TypeMaintenance  string     `json:"type_maintenance"`
	DatePrevue       *time.Time `json:"date_prevue"`
	KilometragePrevu *int       `json:"kilometrage_prevu"`
}

// AlerteVidange — seuil kilométrique de vidange atteint. Les sources véhicule
// et location sont balayées indépendamment : un même véhicule peut apparaître
// deux fois (pas d'exclusion croisée, contrairement au CT / à l'assurance).
type AlerteVidange struct {
	VehiculeID        uint   `json:"vehicule_id"`
	Vehicule          string `json:"vehicule"`
	LocationID        *uint  `json:"location_id,omitempty"`
	Locataire         string `json:"locataire,omitempty"`
	KilometrageActuel int    `json:"kilometrage_actuel"`
	Seuil             int    `json:"seuil"`
}

// RapportAlertes — résultat complet d'un balayage de conformité.
type RapportAlertes struct {
	CT           []AlerteEcheance    `json:"ct"`
	Assurance    []AlerteEcheance    `json:"assurance"`
	Documents    []AlerteDocument    `json:"documents"`
	Permis       []AlertePermis      `json:"permis"`
	Maintenances []AlerteMaintenance `json:"maintenances"`
	Vidanges     []AlerteVidange     `json:"vidanges"`
}

func limiter[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}

func tronquerJour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AlertesConformite balaye locations, véhicules, documents, permis et
// maintenances pour les échéances comprises entre today et today+horizon
// (bornes incluses), plus les seuils de vidange kilométriques. limite borne
// chaque liste (0 = illimité). Les résultats respectent la visibilité de
// l'appelant.
func AlertesConformite(p Principal, today time.Time, horizonJours int, limite int) (*RapportAlertes, error) {
	if horizonJours <= 0 {
		horizonJours = HorizonAlertesDefaut
	}
	debut := tronquerJour(today)
	fin := debut.AddDate(0, 0, horizonJours)

	ct, err := alertesEcheance(p, "date_expiration_ct", debut, fin)
	if err != nil {
		return nil, err
	}
	assurance, err := alertesEcheance(p, "date_expiration_assurance", debut, fin)
	if err != nil {
		return nil, err
	}
	documents, err := alertesDocuments(p, debut, fin)
	if err != nil {
		return nil, err
	}
	permis, err := alertesPermis(p, debut, fin)
	if err != nil {
		return nil, err
	}
	maintenances, err := alertesMaintenances(p, debut, fin)
	if err != nil {
		return nil, err
	}
	vidanges, err := alertesVidanges(p)
	if err != nil {
		return nil, err
	}

	return &RapportAlertes{
		CT:           limiter(ct, limite),
		Assurance:    limiter(assurance, limite),
		Documents:    limiter(documents, limite),
		Permis:       limiter(permis, limite),
		Maintenances: limiter(maintenances, limite),
		Vidanges:     limiter(vidanges, limite),
	}, nil
}

// locationsActives — sous-requête des véhicules sous location en cours.
func vehiculesSousLocationActive() interface{} {
	return database.DB.Model(&models.Location{}).
		Select("vehicule_id").
		Where("statut = ?", models.LocationEnCours)
}

// alertesEcheance fusionne les deux sources CT / assurance : les locations en
// cours d'une part, les véhicules au parc sans location en cours d'autre part.
// Un véhicule sous location en cours est exclu de la source véhicule, la même
// obligation n'est donc jamais signalée deux fois.
func alertesEcheance(p Principal, colonne string, debut, fin time.Time) ([]AlerteEcheance, error) {
	var locations []models.Location
	err := database.DB.Scopes(ScopeVehiculeRattache(p)).
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Where("statut = ?", models.LocationEnCours).
		Where(colonne+" IS NOT NULL AND "+colonne+" >= ? AND "+colonne+" <= ?", debut, fin).
		Order(colonne + " ASC").
		Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query locations for %s alerts: %w", colonne, err)
	}

	var vehicules []models.Vehicule
	err = database.DB.Scopes(ScopeVehicules(p)).
		Preload("Marque").Preload("Modele").
		Where("statut = ?", models.StatutParc).
		Where("id NOT IN (?)", vehiculesSousLocationActive()).
		Where(colonne+" IS NOT NULL AND "+colonne+" >= ? AND "+colonne+" <= ?", debut, fin).
		Order(colonne + " ASC").
		Find(&vehicules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicules for %s alerts: %w", colonne, err)
	}

	alertes := make([]AlerteEcheance, 0, len(locations)+len(vehicules))
	for i := range locations {
		l := &locations[i]
		echeance := l.DateExpirationCT
		if colonne == "date_expiration_assurance" {
			echeance = l.DateExpirationAssurance
		}
		alertes = append(alertes, AlerteEcheance{
			VehiculeID: l.VehiculeID,
			Vehicule:   l.Vehicule.LibelleCourt(),
			LocationID: &l.ID,
			Locataire:  l.Locataire,
			Echeance:   *echeance,
		})
	}
	for i := range vehicules {
		v := &vehicules[i]
		echeance := v.DateExpirationCT
		if colonne == "date_expiration_assurance" {
			echeance = v.DateExpirationAssurance
		}
		alertes = append(alertes, AlerteEcheance{
			VehiculeID: v.ID,
			Vehicule:   v.LibelleCourt(),
			Echeance:   *echeance,
		})
	}
	sort.SliceStable(alertes, func(i, j int) bool {
		return alertes[i].Echeance.Before(alertes[j].Echeance)
	})
	return alertes, nil
}

// alertesDocuments — tout document à échéance dans la fenêtre, quel que soit
// le statut du véhicule.
func alertesDocuments(p Principal, debut, fin time.Time) ([]AlerteDocument, error) {
	var documents []models.DocumentVehicule
	err := database.DB.Scopes(ScopeVehiculeRattache(p)).
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Where("date_echeance IS NOT NULL AND date_echeance >= ? AND date_echeance <= ?", debut, fin).
		Order("date_echeance ASC").
		Find(&documents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query document alerts: %w", err)
	}
	alertes := make([]AlerteDocument, len(documents))
	for i := range documents {
		d := &documents[i]
		alertes[i] = AlerteDocument{
			DocumentID:   d.ID,
			VehiculeID:   d.VehiculeID,
			Vehicule:     d.Vehicule.LibelleCourt(),
			TypeDocument: d.TypeDocument,
			Echeance:     *d.DateEcheance,
		}
	}
	return alertes, nil
}

// alertesPermis — conducteurs actifs dont le permis expire dans la fenêtre.
func alertesPermis(p Principal, debut, fin time.Time) ([]AlertePermis, error) {
	var conducteurs []models.Conducteur
	err := database.DB.Scopes(ScopeConducteurs(p)).
		Where("actif = ?", true).
		Where("permis_date_expiration IS NOT NULL AND permis_date_expiration >= ? AND permis_date_expiration <= ?", debut, fin).
		Order("permis_date_expiration ASC").
		Find(&conducteurs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query permis alerts: %w", err)
	}
	alertes := make([]AlertePermis, len(conducteurs))
	for i := range conducteurs {
		c := &conducteurs[i]
		alertes[i] = AlertePermis{
			ConducteurID: c.ID,
			Conducteur:   c.NomComplet(),
			Echeance:     *c.PermisDateExpiration,
		}
	}
	return alertes, nil
}

// alertesMaintenances — maintenances à faire, prévues dans la fenêtre ou sans
// date prévue du tout.
func alertesMaintenances(p Principal, debut, fin time.Time) ([]AlerteMaintenance, error) {
	var maintenances []models.Maintenance
	err := database.DB.Scopes(ScopeVehiculeRattache(p)).
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Where("statut = ?", models.MaintenanceAFaire).
		Where("date_prevue IS NULL OR (date_prevue >= ? AND date_prevue <= ?)", debut, fin).
		Order("date_prevue ASC").
		Find(&maintenances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance alerts: %w", err)
	}
	alertes := make([]AlerteMaintenance, len(maintenances))
	for i := range maintenances {
		m := &maintenances[i]
		alertes[i] = AlerteMaintenance{
			MaintenanceID:    m.ID,
			VehiculeID:       m.VehiculeID,
			Vehicule:         m.Vehicule.LibelleCourt(),
			TypeMaintenance:  m.TypeMaintenance,
			DatePrevue:       m.DatePrevue,
			KilometragePrevu: m.KilometragePrevu,
		}
	}
	return alertes, nil
}

// alertesVidanges — seuils kilométriques atteints. Source véhicule (parc et
// import) puis source location en cours, balayées indépendamment.
func alertesVidanges(p Principal) ([]AlerteVidange, error) {
	var vehicules []models.Vehicule
	err := database.DB.Scopes(ScopeVehicules(p)).
		Preload("Marque").Preload("Modele").
		Where("statut IN ?", []string{models.StatutParc, models.StatutImport}).
		Where("km_prochaine_vidange IS NOT NULL AND kilometrage_actuel >= km_prochaine_vidange").
		Find(&vehicules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query vidange alerts (vehicules): %w", err)
	}

	alertes := make([]AlerteVidange, 0, len(vehicules))
	for i := range vehicules {
		v := &vehicules[i]
		alertes = append(alertes, AlerteVidange{
			VehiculeID:        v.ID,
			Vehicule:          v.LibelleCourt(),
			KilometrageActuel: v.KilometrageActuel,
			Seuil:             *v.KmProchaineVidange,
		})
	}

	var locations []models.Location
	err = database.DB.Scopes(ScopeVehiculeRattache(p)).
		Preload("Vehicule").Preload("Vehicule.Marque").Preload("Vehicule.Modele").
		Where("statut = ?", models.LocationEnCours).
		Where("km_prochaine_vidange IS NOT NULL").
		Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query vidange alerts (locations): %w", err)
	}
	for i := range locations {
		l := &locations[i]
		if l.Vehicule.KilometrageActuel < *l.KmProchaineVidange {
			continue
		}
		alertes = append(alertes, AlerteVidange{
			VehiculeID:        l.VehiculeID,
			Vehicule:          l.Vehicule.LibelleCourt(),
			LocationID:        &l.ID,
			Locataire:         l.Locataire,
			KilometrageActuel: l.Vehicule.KilometrageActuel,
			Seuil:             *l.KmProchaineVidange,
		})
	}
	return alertes, nil
}
