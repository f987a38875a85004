package services

import (
	"errors"
	"fmt"

	"flotte/database"
	"flotte/models"
	"flotte/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EnregistrerUtilisateur crée un compte. Rôle par défaut : user ; un compte
// créé superuser est admin d'office (le profil reste facultatif).
func EnregistrerUtilisateur(u *models.Utilisateur, role string) error {
	var existant models.Utilisateur
	if err := database.DB.Where("username = ?", u.Username).First(&existant).Error; err == nil {
		return fmt.Errorf("username %s deja utilise", u.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for duplicate username: %w", err)
	}

	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.Password = hash

	if err := database.DB.Create(u).Error; err != nil {
		return fmt.Errorf("failed to create utilisateur: %w", err)
	}
	if role == models.RoleAdmin || role == models.RoleManager || role == models.RoleUser {
		profil := &models.ProfilUtilisateur{UserID: u.ID, Role: role}
		if err := database.DB.Create(profil).Error; err != nil {
			return fmt.Errorf("failed to create profil: %w", err)
		}
		u.Profil = profil
	}
	log.WithFields(log.Fields{"user_id": u.ID, "username": u.Username}).Info("Utilisateur enregistre")
	return nil
}

// AuthentifierUtilisateur vérifie username + mot de passe et renvoie le compte
// avec son profil chargé.
func AuthentifierUtilisateur(username, password string) (*models.Utilisateur, error) {
	var u models.Utilisateur
	if err := database.DB.Preload("Profil").Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("identifiants invalides")
		}
		return nil, fmt.Errorf("failed to load utilisateur: %w", err)
	}
	if !u.Actif {
		return nil, fmt.Errorf("compte desactive")
	}
	if !utils.CheckPasswordHash(password, u.Password) {
		return nil, fmt.Errorf("identifiants invalides")
	}
	return &u, nil
}

// ChangerRole — modification du rôle d'un compte, opération admin uniquement.
func ChangerRole(p Principal, userID uint, role string) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	if role != models.RoleAdmin && role != models.RoleManager && role != models.RoleUser {
		return fmt.Errorf("role invalide: %s", role)
	}
	var u models.Utilisateur
	if err := database.DB.Preload("Profil").First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load utilisateur %d: %w", userID, err)
	}
	if u.Profil == nil {
		profil := &models.ProfilUtilisateur{UserID: u.ID, Role: role}
		if err := database.DB.Create(profil).Error; err != nil {
			return fmt.Errorf("failed to create profil: %w", err)
		}
		return nil
	}
	if err := database.DB.Model(u.Profil).Update("role", role).Error; err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	log.WithFields(log.Fields{"user_id": userID, "role": role}).Info("Role modifie")
	return nil
}

// ListerUtilisateurs — comptes avec profils (admin uniquement).
func ListerUtilisateurs(p Principal) ([]models.Utilisateur, error) {
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}
	var utilisateurs []models.Utilisateur
	if err := database.DB.Preload("Profil").Order("username ASC").Find(&utilisateurs).Error; err != nil {
		return nil, fmt.Errorf("failed to list utilisateurs: %w", err)
	}
	return utilisateurs, nil
}
