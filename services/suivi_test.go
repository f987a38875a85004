package services

import (
	"testing"

	"flotte/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreerEnregistrementSuivi(t *testing.T) {
	db := setupTestDB(t)
	vehicule := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-SUIVI"})

	frais := &models.FraisImport{
		VehiculeID: vehicule.ID,
		Fret:       int64Ptr(300_000),
		Douane:     int64Ptr(150_000),
	}
	assert.ErrorIs(t, CreerEnregistrementSuivi(userPrincipal(4), frais, frais.VehiculeID), ErrForbidden)
	require.NoError(t, CreerEnregistrementSuivi(managerPrincipal(), frais, frais.VehiculeID))
	assert.Equal(t, int64(450_000), frais.Total)

	orphelin := &models.Depense{VehiculeID: 9999, Libelle: "x", Montant: 1000}
	assert.ErrorIs(t, CreerEnregistrementSuivi(managerPrincipal(), orphelin, orphelin.VehiculeID), ErrNotFound)

	releve := &models.ReleveCarburant{VehiculeID: vehicule.ID, Litres: 40, PrixLitre: 750}
	require.NoError(t, CreerEnregistrementSuivi(managerPrincipal(), releve, releve.VehiculeID))
	assert.Equal(t, int64(30_000), releve.Montant)
}

func TestAjouterPenalite(t *testing.T) {
	db := setupTestDB(t)
	vehicule := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-FACT"})

	facture := &models.Facture{VehiculeID: vehicule.ID, Numero: "F-2025-001", Montant: int64Ptr(300_000)}
	require.NoError(t, CreerEnregistrementSuivi(managerPrincipal(), facture, facture.VehiculeID))

	penalite := &models.PenaliteFacture{FactureID: facture.ID, Montant: 30_000}
	assert.ErrorIs(t, AjouterPenalite(userPrincipal(4), penalite), ErrForbidden)
	require.NoError(t, AjouterPenalite(managerPrincipal(), penalite))

	absente := &models.PenaliteFacture{FactureID: 9999, Montant: 1_000}
	assert.ErrorIs(t, AjouterPenalite(managerPrincipal(), absente), ErrNotFound)

	var rechargee models.Facture
	require.NoError(t, db.Preload("Penalites").First(&rechargee, facture.ID).Error)
	assert.Equal(t, int64(330_000), rechargee.TotalAvecPenalites())
}

func TestListerFacturesAcces(t *testing.T) {
	setupTestDB(t)

	_, err := ListerFactures(userPrincipal(4), 0)
	assert.ErrorIs(t, err, ErrForbidden)

	factures, err := ListerFactures(managerPrincipal(), 0)
	require.NoError(t, err)
	assert.Empty(t, factures)
}
