package models

import "time"

// Conducteur (chauffeur) — lié ou non à un compte de connexion.
type Conducteur struct {
	ID                   uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID               *uint      `json:"user_id" gorm:"uniqueIndex"`
	Nom                  string     `json:"nom" gorm:"size:120;not null" binding:"required"`
	Prenom               string     `json:"prenom" gorm:"size:120"`
	Email                string     `json:"email" gorm:"size:254"`
	Telephone            string     `json:"telephone" gorm:"size:30"`
	PermisNumero         string     `json:"permis_numero" gorm:"size:60"`
	PermisDateExpiration *time.Time `json:"permis_date_expiration"`
	Actif                bool       `json:"actif"`
	Remarque             string     `json:"remarque"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	User *Utilisateur `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

// NomComplet pour affichage.
func (c *Conducteur) NomComplet() string {
	if c.Prenom != "" {
		return c.Nom + " " + c.Prenom
	}
	return c.Nom
}
