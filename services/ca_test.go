package services

import (
	"testing"
	"time"

	"flotte/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculerEvolutionCAAcces(t *testing.T) {
	setupTestDB(t)

	_, err := CalculerEvolutionCA(userPrincipal(7), jour(2025, time.June, 1), GranulariteMois, 2025, 0)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = CalculerSyntheseCA(userPrincipal(7), jour(2025, time.June, 1))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCalculerEvolutionCAParMois(t *testing.T) {
	db := setupTestDB(t)
	vehicule := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-CA"})

	creerVente(t, db, vehicule.ID, jour(2025, time.February, 3), int64Ptr(5_000_000))
	creerVente(t, db, vehicule.ID, jour(2025, time.February, 20), int64Ptr(7_000_000))
	creerVente(t, db, vehicule.ID, jour(2025, time.August, 12), int64Ptr(8_000_000))
	// Hors CA : prix absent ou nul.
	creerVente(t, db, vehicule.ID, jour(2025, time.March, 1), nil)
	creerVente(t, db, vehicule.ID, jour(2025, time.April, 1), int64Ptr(0))
	// Hors année.
	creerVente(t, db, vehicule.ID, jour(2024, time.December, 31), int64Ptr(1_000_000))

	evolution, err := CalculerEvolutionCA(managerPrincipal(), jour(2025, time.September, 1), GranulariteMois, 2025, 0)
	require.NoError(t, err)

	// Seules les périodes non vides apparaissent, étiquetées en français.
	assert.Equal(t, []string{"Fév 2025", "Août 2025"}, evolution.Labels)
	assert.Equal(t, []int64{12_000_000, 8_000_000}, evolution.Data)
	assert.Equal(t, []int{2, 1}, evolution.NbVentes)
}

func TestCalculerEvolutionCAParJour(t *testing.T) {
	db := setupTestDB(t)
	vehicule := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-CA"})

	creerVente(t, db, vehicule.ID, jour(2025, time.February, 3), int64Ptr(4_000_000))
	creerVente(t, db, vehicule.ID, jour(2025, time.February, 3), int64Ptr(2_000_000))
	creerVente(t, db, vehicule.ID, jour(2025, time.February, 15), int64Ptr(6_000_000))
	creerVente(t, db, vehicule.ID, jour(2025, time.March, 1), int64Ptr(9_000_000))

	evolution, err := CalculerEvolutionCA(managerPrincipal(), jour(2025, time.April, 1), GranulariteJour, 2025, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"03/02", "15/02"}, evolution.Labels)
	assert.Equal(t, []int64{6_000_000, 6_000_000}, evolution.Data)
}

func TestCalculerEvolutionCAParAnnee(t *testing.T) {
	db := setupTestDB(t)
	vehicule := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-CA"})

	creerVente(t, db, vehicule.ID, jour(2025, time.January, 10), int64Ptr(12_000_000))
	creerVente(t, db, vehicule.ID, jour(2025, time.November, 2), int64Ptr(8_000_000))

	evolution, err := CalculerEvolutionCA(managerPrincipal(), jour(2025, time.December, 1), GranulariteAnnee, 2025, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"2025"}, evolution.Labels)
	assert.Equal(t, []int64{20_000_000}, evolution.Data)
	assert.Equal(t, []int{2}, evolution.NbVentes)
}

func TestCalculerEvolutionCAEntreesInvalides(t *testing.T) {
	db := setupTestDB(t)
	vehicule := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-CA"})
	creerVente(t, db, vehicule.ID, jour(2025, time.May, 5), int64Ptr(3_000_000))

	// Granularité inconnue : retombe sur le mois. Année invalide : année
	// courante. Mois hors bornes : ignoré.
	evolution, err := CalculerEvolutionCA(managerPrincipal(), jour(2025, time.June, 1), "trimestre", -3, 13)
	require.NoError(t, err)
	assert.Equal(t, GranulariteMois, evolution.Granularite)
	assert.Equal(t, 2025, evolution.Annee)
	assert.Equal(t, []string{"Mai 2025"}, evolution.Labels)
}

func TestCalculerSyntheseCA(t *testing.T) {
	db := setupTestDB(t)
	v1 := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-1"})
	v2 := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-2"})

	creerVente(t, db, v1.ID, jour(2024, time.July, 1), int64Ptr(10_000_000))
	creerVente(t, db, v1.ID, jour(2025, time.March, 1), int64Ptr(9_000_000))
	creerVente(t, db, v2.ID, jour(2025, time.May, 1), int64Ptr(6_000_000))
	creerVente(t, db, v2.ID, jour(2025, time.June, 1), nil)

	synthese, err := CalculerSyntheseCA(managerPrincipal(), jour(2026, time.January, 15))
	require.NoError(t, err)

	assert.Equal(t, int64(25_000_000), synthese.TotalCA)
	assert.Equal(t, int64(3), synthese.NbVentes)

	// Année de référence : celle de la dernière vente éligible, pas
	// l'année courante.
	assert.Equal(t, 2025, synthese.AnneeReference)
	assert.Equal(t, int64(15_000_000), synthese.CAAnneeReference)
	assert.Equal(t, int64(10_000_000), synthese.CAAnneePrecedente)
	assert.Equal(t, int64(5_000_000), synthese.Variation)
	assert.InDelta(t, 50.0, synthese.VariationPct, 0.001)

	// Le classement cumule toutes les ventes éligibles du véhicule.
	require.Len(t, synthese.TopVehicules, 2)
	assert.Equal(t, v1.ID, synthese.TopVehicules[0].VehiculeID)
	assert.Equal(t, int64(19_000_000), synthese.TopVehicules[0].TotalCA)
	assert.Equal(t, 2, synthese.TopVehicules[0].NbVentes)
}

func TestCalculerSyntheseCASansAnneePrecedente(t *testing.T) {
	db := setupTestDB(t)
	vehicule := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-PREMIERE"})
	creerVente(t, db, vehicule.ID, jour(2025, time.April, 1), int64Ptr(5_000_000))

	synthese, err := CalculerSyntheseCA(adminPrincipal(), jour(2025, time.December, 1))
	require.NoError(t, err)

	// Pas de division par zéro : variation en pourcentage nulle quand le
	// CA de l'année précédente est nul.
	assert.Equal(t, int64(5_000_000), synthese.Variation)
	assert.Equal(t, 0.0, synthese.VariationPct)
}

func TestTopVehiculesCAEgalite(t *testing.T) {
	db := setupTestDB(t)
	v1 := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-1"})
	v2 := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-2"})
	v3 := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-3"})

	// v2 et v3 à égalité : l'ordre d'insertion des ventes départage.
	creerVente(t, db, v2.ID, jour(2025, time.January, 1), int64Ptr(4_000_000))
	creerVente(t, db, v3.ID, jour(2025, time.January, 2), int64Ptr(4_000_000))
	creerVente(t, db, v1.ID, jour(2025, time.January, 3), int64Ptr(7_000_000))

	synthese, err := CalculerSyntheseCA(managerPrincipal(), jour(2025, time.June, 1))
	require.NoError(t, err)
	require.Len(t, synthese.TopVehicules, 3)
	assert.Equal(t, v1.ID, synthese.TopVehicules[0].VehiculeID)
	assert.Equal(t, v2.ID, synthese.TopVehicules[1].VehiculeID)
	assert.Equal(t, v3.ID, synthese.TopVehicules[2].VehiculeID)
}
