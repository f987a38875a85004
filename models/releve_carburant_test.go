package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleveCarburantCompletion(t *testing.T) {
	db := setupDB(t)
	v := creerVehicule(t, db, "CH-CARB-1")
	jour := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("montant depuis litres et prix", func(t *testing.T) {
		r := &ReleveCarburant{VehiculeID: v.ID, DateReleve: jour, Litres: 40, PrixLitre: 750}
		require.NoError(t, db.Create(r).Error)
		assert.Equal(t, int64(30_000), r.Montant)
	})

	t.Run("prix depuis montant et litres", func(t *testing.T) {
		r := &ReleveCarburant{VehiculeID: v.ID, DateReleve: jour, Litres: 40, Montant: 30_000}
		require.NoError(t, db.Create(r).Error)
		assert.Equal(t, int64(750), r.PrixLitre)
	})

	t.Run("litres depuis montant et prix, arrondi 2 decimales", func(t *testing.T) {
		r := &ReleveCarburant{VehiculeID: v.ID, DateReleve: jour, Montant: 10_000, PrixLitre: 727}
		require.NoError(t, db.Create(r).Error)
		// 10000 / 727 = 13.7551... -> 13.76
		assert.Equal(t, 13.76, r.Litres)
	})

	t.Run("arrondi montant demi superieur", func(t *testing.T) {
		r := &ReleveCarburant{VehiculeID: v.ID, DateReleve: jour, Litres: 10.5, PrixLitre: 715}
		require.NoError(t, db.Create(r).Error)
		// 10.5 * 715 = 7507.5 -> 7508
		assert.Equal(t, int64(7508), r.Montant)
	})

	t.Run("valeur existante jamais ecrasee", func(t *testing.T) {
		r := &ReleveCarburant{VehiculeID: v.ID, DateReleve: jour, Litres: 40, PrixLitre: 750, Montant: 31_000}
		require.NoError(t, db.Create(r).Error)
		assert.Equal(t, int64(31_000), r.Montant)
		assert.Equal(t, int64(750), r.PrixLitre)
		assert.Equal(t, 40.0, r.Litres)
	})

	t.Run("un seul champ renseigne, rien a completer", func(t *testing.T) {
		r := &ReleveCarburant{VehiculeID: v.ID, DateReleve: jour, Litres: 35}
		require.NoError(t, db.Create(r).Error)
		assert.Zero(t, r.Montant)
		assert.Zero(t, r.PrixLitre)
	})
}
