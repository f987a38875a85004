package services

import (
	"flotte/database"
	"flotte/models"

	"gorm.io/gorm"
)

// Filtres de visibilité. Manager et admin voient tout ; un utilisateur simple
// ne voit que les véhicules dont il est propriétaire (et ce qui s'y rattache).
// Appliqués sur chaque surface de lecture : listes, détail, recherche,
// tableau de bord, TCO et alertes.

// ScopeVehicules restreint une requête sur la table vehicules.
func ScopeVehicules(p Principal) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.IsManagerOrAdmin() {
			return db
		}
		return db.Where("proprietaire_id = ?", p.UserID)
	}
}

// ScopeVehiculeRattache restreint toute entité portant un vehicule_id
// (locations, ventes, dépenses, maintenances, documents, relevés...).
func ScopeVehiculeRattache(p Principal) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.IsManagerOrAdmin() {
			return db
		}
		sous := database.DB.Model(&models.Vehicule{}).
			Select("id").
			Where("proprietaire_id = ?", p.UserID)
		return db.Where("vehicule_id IN (?)", sous)
	}
}

// ScopeConducteurs — un utilisateur simple ne voit que le conducteur lié à son
// propre compte.
func ScopeConducteurs(p Principal) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.IsManagerOrAdmin() {
			return db
		}
		return db.Where("user_id = ?", p.UserID)
	}
}
