package database

import (
	"os"
	"time"

	"flotte/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB ouvre la connexion MySQL avec retries et configure le pool.
func InitDB() {
	logLevel := logger.Info
	if os.Getenv("GIN_MODE") == "release" {
		logLevel = logger.Warn
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "flotte:flotte@tcp(127.0.0.1:3306)/flotte?charset=utf8mb4&parseTime=True&loc=Local"
	}

	var err error
	maxRetries := 5
	retryInterval := 5 * time.Second
	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logLevel),
		})
		if err == nil {
			break
		}
		log.WithError(err).Warnf("Failed to connect to database (attempt %d/%d)", i+1, maxRetries)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		log.WithError(err).Fatalf("Failed to open database after %d attempts", maxRetries)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.WithError(err).Fatal("Failed to get sql.DB")
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err = sqlDB.Ping(); err != nil {
		log.WithError(err).Fatal("Failed to ping database")
	}

	log.Info("Database initialized successfully with GORM")
}

// AllModels — liste des entités pour AutoMigrate (main et tests).
func AllModels() []interface{} {
	return []interface{}{
		&models.Marque{}, &models.Modele{},
		&models.TypeCarburant{}, &models.TypeTransmission{}, &models.TypeVehicule{},
		&models.Utilisateur{}, &models.ProfilUtilisateur{},
		&models.Vehicule{}, &models.FraisImport{}, &models.ImportDemarche{},
		&models.Depense{}, &models.Reparation{}, &models.Maintenance{},
		&models.ReleveCarburant{}, &models.Location{}, &models.Amende{},
		&models.Vente{}, &models.Facture{}, &models.PenaliteFacture{},
		&models.DocumentVehicule{}, &models.Conducteur{},
	}
}
