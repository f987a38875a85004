package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFraisImportTotalRecalcule(t *testing.T) {
	db := setupDB(t)
	v := creerVehicule(t, db, "CH-FRAIS-1")

	t.Run("toutes composantes", func(t *testing.T) {
		f := &FraisImport{
			VehiculeID:  v.ID,
			Fret:        int64Ptr(1_000_000),
			Douane:      int64Ptr(200_000),
			Transitaire: int64Ptr(150_000),
		}
		require.NoError(t, db.Create(f).Error)
		assert.Equal(t, int64(1_350_000), f.Total)
	})

	t.Run("composante partielle, nil vaut zero", func(t *testing.T) {
		f := &FraisImport{VehiculeID: v.ID, Fret: int64Ptr(500_000)}
		require.NoError(t, db.Create(f).Error)
		assert.Equal(t, int64(500_000), f.Total)
	})

	t.Run("total manuel ecrase des qu'une composante est presente", func(t *testing.T) {
		f := &FraisImport{
			VehiculeID: v.ID,
			Douane:     int64Ptr(200_000),
			Total:      999_999,
		}
		require.NoError(t, db.Create(f).Error)
		assert.Equal(t, int64(200_000), f.Total)
	})

	t.Run("total manuel conserve sans composantes", func(t *testing.T) {
		f := &FraisImport{VehiculeID: v.ID, Total: 777_000}
		require.NoError(t, db.Create(f).Error)
		assert.Equal(t, int64(777_000), f.Total)

		var relu FraisImport
		require.NoError(t, db.First(&relu, f.ID).Error)
		assert.Equal(t, int64(777_000), relu.Total)
	})

	t.Run("recalcul a la mise a jour", func(t *testing.T) {
		f := &FraisImport{VehiculeID: v.ID, Fret: int64Ptr(100_000)}
		require.NoError(t, db.Create(f).Error)

		f.Douane = int64Ptr(50_000)
		require.NoError(t, db.Save(f).Error)
		assert.Equal(t, int64(150_000), f.Total)
	})
}
