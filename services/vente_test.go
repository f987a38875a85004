package services

import (
	"testing"
	"time"

	"flotte/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreerVente(t *testing.T) {
	db := setupTestDB(t)
	vehicule := creerVehicule(t, db, &models.Vehicule{NumeroChassis: "VIN-VENDU"})

	vente := &models.Vente{
		VehiculeID: vehicule.ID,
		DateVente:  jour(2025, time.April, 10),
		PrixVente:  int64Ptr(6_500_000),
	}
	assert.ErrorIs(t, CreerVente(userPrincipal(4), vente), ErrForbidden)
	require.NoError(t, CreerVente(managerPrincipal(), vente))

	// La vente archive le véhicule.
	var rechargee models.Vehicule
	require.NoError(t, db.First(&rechargee, vehicule.ID).Error)
	assert.Equal(t, models.StatutVendu, rechargee.Statut)

	inexistant := &models.Vente{VehiculeID: 9999, DateVente: jour(2025, time.April, 10)}
	assert.ErrorIs(t, CreerVente(managerPrincipal(), inexistant), ErrNotFound)

	ventes, err := ListerVentes(managerPrincipal(), 0)
	require.NoError(t, err)
	require.Len(t, ventes, 1)
	assert.Equal(t, "VIN-VENDU", ventes[0].Vehicule.NumeroChassis)

	_, err = ListerVentes(userPrincipal(4), 0)
	assert.ErrorIs(t, err, ErrForbidden)
}
