package services

import (
	"testing"
	"time"

	"flotte/database"
	"flotte/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB branche la base globale sur un sqlite en mémoire, le temps du
// test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.AllModels()...))

	precedente := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = precedente })
	return db
}

func adminPrincipal() Principal   { return Principal{UserID: 1, Role: models.RoleAdmin} }
func managerPrincipal() Principal { return Principal{UserID: 2, Role: models.RoleManager} }
func userPrincipal(id uint) Principal {
	return Principal{UserID: id, Role: models.RoleUser}
}

func int64Ptr(v int64) *int64        { return &v }
func intPtr(v int) *int              { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func jour(annee int, mois time.Month, j int) time.Time {
	return time.Date(annee, mois, j, 0, 0, 0, 0, time.UTC)
}

func creerVehicule(t *testing.T, db *gorm.DB, v *models.Vehicule) *models.Vehicule {
	t.Helper()
	if v.Statut == "" {
		v.Statut = models.StatutParc
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func creerVente(t *testing.T, db *gorm.DB, vehiculeID uint, date time.Time, prix *int64) *models.Vente {
	t.Helper()
	v := &models.Vente{VehiculeID: vehiculeID, DateVente: date, PrixVente: prix}
	require.NoError(t, db.Create(v).Error)
	return v
}
