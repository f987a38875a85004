package services

import (
	"errors"
	"fmt"

	"flotte/database"
	"flotte/models"

	"gorm.io/gorm"
)

// Principal — identité résolue de l'appelant, passée explicitement à chaque
// appel de service (jamais d'état global).
type Principal struct {
	UserID uint
	Role   string
}

func (p Principal) IsAuthenticated() bool {
	return p.Role != ""
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

func (p Principal) IsManagerOrAdmin() bool {
	return p.Role == models.RoleAdmin || p.Role == models.RoleManager
}

// ResolveRole — rôle effectif d'un utilisateur. Dans l'ordre : non authentifié
// → aucun rôle ; superuser → admin ; profil présent → son rôle ; sinon "user".
// L'absence de profil donne donc un accès minimal, pas un rejet.
// Le profil doit être préchargé : aucun aller-retour supplémentaire.
func ResolveRole(u *models.Utilisateur) string {
	if u == nil {
		return ""
	}
	if u.IsSuperuser {
		return models.RoleAdmin
	}
	if u.Profil != nil && u.Profil.Role != "" {
		return u.Profil.Role
	}
	return models.RoleUser
}

// ResolvePrincipal charge l'utilisateur avec son profil (une seule requête) et
// résout son rôle.
func ResolvePrincipal(userID uint) (Principal, error) {
	var u models.Utilisateur
	if err := database.DB.Preload("Profil").First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Principal{}, ErrNotFound
		}
		return Principal{}, fmt.Errorf("failed to resolve principal %d: %w", userID, err)
	}
	return Principal{UserID: u.ID, Role: ResolveRole(&u)}, nil
}
