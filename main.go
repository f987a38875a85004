package main

import (
	"os"
	"time"

	"flotte/database"
	"flotte/models"
	"flotte/routes"
	"flotte/services"
	"flotte/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Info("no .env file found, using environment variables")
	}

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	utils.InitJWTSecret()

	database.InitDB()

	if err := database.DB.AutoMigrate(database.AllModels()...); err != nil {
		logrus.WithError(err).Fatal("database migration failed")
	}
	logrus.Info("database migration completed")

	ensureAdminExists()

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)

	r := gin.Default()

	api := r.Group("/api")
	{
		routes.Path(api)
	}

	// Balayage quotidien des alertes de conformité (CT, assurances,
	// documents, permis, maintenances, vidanges).
	c := cron.New()
	_, err := c.AddFunc("0 7 * * *", func() {
		admin := services.Principal{Role: models.RoleAdmin}
		rapport, err := services.AlertesConformite(admin, time.Now(), services.HorizonAlertesDefaut, 0)
		if err != nil {
			logrus.WithError(err).Error("daily compliance scan failed")
			return
		}
		logrus.WithFields(logrus.Fields{
			"ct":           len(rapport.CT),
			"assurance":    len(rapport.Assurance),
			"documents":    len(rapport.Documents),
			"permis":       len(rapport.Permis),
			"maintenances": len(rapport.Maintenances),
			"vidanges":     len(rapport.Vidanges),
		}).Info("daily compliance scan completed")
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to schedule compliance scan cron job")
	}
	c.Start()
	logrus.Info("cron jobs started")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}

// ensureAdminExists crée un compte administrateur par défaut si aucun
// superutilisateur n'existe. Le mot de passe vient de ADMIN_PASSWORD.
func ensureAdminExists() {
	var admin models.Utilisateur
	if err := database.DB.Where("is_superuser = ?", true).First(&admin).Error; err == nil {
		logrus.WithField("username", admin.Username).Info("admin already exists")
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logrus.Warn("ADMIN_PASSWORD not set, skipping default admin creation")
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Fatal("failed to hash admin password")
	}

	admin = models.Utilisateur{
		Username:    "admin",
		Email:       os.Getenv("ADMIN_EMAIL"),
		Password:    hashed,
		IsSuperuser: true,
		Actif:       true,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		logrus.WithError(err).Fatal("failed to create default admin")
	}
	logrus.WithField("username", admin.Username).Info("default admin created")
}
