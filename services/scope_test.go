package services

import (
	"testing"

	"flotte/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeVehicules(t *testing.T) {
	db := setupTestDB(t)

	proprio := &models.Utilisateur{Username: "proprio", Password: "x"}
	require.NoError(t, db.Create(proprio).Error)
	autre := &models.Utilisateur{Username: "autre", Password: "x"}
	require.NoError(t, db.Create(autre).Error)

	possede := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-A", ProprietaireID: &proprio.ID})
	creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-B", ProprietaireID: &autre.ID})
	creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-C"})

	t.Run("un utilisateur ne voit que ses véhicules", func(t *testing.T) {
		vehicules, err := ListerVehicules(userPrincipal(proprio.ID), FiltreVehicules{})
		require.NoError(t, err)
		require.Len(t, vehicules, 1)
		assert.Equal(t, possede.ID, vehicules[0].ID)
	})

	t.Run("le manager voit tout", func(t *testing.T) {
		vehicules, err := ListerVehicules(managerPrincipal(), FiltreVehicules{})
		require.NoError(t, err)
		assert.Len(t, vehicules, 3)
	})

	t.Run("le détail d'un véhicule non possédé est introuvable", func(t *testing.T) {
		_, err := DetailVehicule(userPrincipal(autre.ID), possede.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		vehicule, err := DetailVehicule(userPrincipal(proprio.ID), possede.ID)
		require.NoError(t, err)
		assert.Equal(t, "VIN-A", vehicule.NumeroChassis)
	})
}

func TestScopeVehiculeRattache(t *testing.T) {
	db := setupTestDB(t)

	proprio := &models.Utilisateur{Username: "proprio", Password: "x"}
	require.NoError(t, db.Create(proprio).Error)

	mien := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-A", ProprietaireID: &proprio.ID})
	autre := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-B"})

	require.NoError(t, db.Create(&models.Depense{VehiculeID: mien.ID, Libelle: "pneus", Montant: 80000}).Error)
	require.NoError(t, db.Create(&models.Depense{VehiculeID: autre.ID, Libelle: "vitres", Montant: 40000}).Error)

	depenses, err := ListerDepenses(userPrincipal(proprio.ID), 0)
	require.NoError(t, err)
	require.Len(t, depenses, 1)
	assert.Equal(t, "pneus", depenses[0].Libelle)

	depenses, err = ListerDepenses(adminPrincipal(), 0)
	require.NoError(t, err)
	assert.Len(t, depenses, 2)
}

func TestScopeConducteurs(t *testing.T) {
	db := setupTestDB(t)

	compte := &models.Utilisateur{Username: "chauffeur", Password: "x"}
	require.NoError(t, db.Create(compte).Error)

	require.NoError(t, db.Create(&models.Conducteur{Nom: "Diallo", UserID: &compte.ID, Actif: true}).Error)
	require.NoError(t, db.Create(&models.Conducteur{Nom: "Ndiaye", Actif: true}).Error)

	conducteurs, err := ListerConducteurs(userPrincipal(compte.ID))
	require.NoError(t, err)
	require.Len(t, conducteurs, 1)
	assert.Equal(t, "Diallo", conducteurs[0].Nom)

	conducteurs, err = ListerConducteurs(managerPrincipal())
	require.NoError(t, err)
	assert.Len(t, conducteurs, 2)
}
