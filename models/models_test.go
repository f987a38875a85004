package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Marque{}, &Modele{}, &TypeCarburant{}, &TypeTransmission{}, &TypeVehicule{},
		&Utilisateur{}, &ProfilUtilisateur{},
		&Vehicule{}, &FraisImport{}, &Depense{}, &Reparation{}, &Maintenance{},
		&ReleveCarburant{}, &Location{}, &Amende{}, &Vente{},
		&Facture{}, &PenaliteFacture{}, &DocumentVehicule{}, &ImportDemarche{},
		&Conducteur{},
	))
	return db
}

func creerVehicule(t *testing.T, db *gorm.DB, chassis string) *Vehicule {
	t.Helper()
	v := &Vehicule{NumeroChassis: chassis}
	require.NoError(t, db.Create(v).Error)
	return v
}

func int64Ptr(v int64) *int64 { return &v }
