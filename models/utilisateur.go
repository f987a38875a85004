package models

import "time"

// Rôles applicatifs. Un utilisateur sans profil est traité comme "user"
// (comportement volontairement permissif, voir ResolvePrincipal).
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// Utilisateur — compte de connexion.
type Utilisateur struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email       string    `json:"email" gorm:"size:254"`
	Password    string    `json:"-" gorm:"size:128;not null"`
	IsSuperuser bool      `json:"is_superuser" gorm:"default:false"`
	Actif       bool      `json:"actif"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Profil *ProfilUtilisateur `json:"profil,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// ProfilUtilisateur — rôle étendu attaché à un utilisateur (0 ou 1 par compte).
type ProfilUtilisateur struct {
	ID     uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Role   string `json:"role" gorm:"size:20;not null;default:user"`
}

type UtilisateurResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Actif    bool   `json:"actif"`
}

func (u *Utilisateur) ToResponse(role string) UtilisateurResponse {
	return UtilisateurResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     role,
		Actif:    u.Actif,
	}
}
