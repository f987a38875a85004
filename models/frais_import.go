package models

import (
	"time"

	"gorm.io/gorm"
)

// FraisImport — frais d'importation d'un véhicule (fret, douane, transitaire).
type FraisImport struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID  uint       `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	Fret        *int64     `json:"fret"`
	Douane      *int64     `json:"douane"`
	Transitaire *int64     `json:"transitaire"`
	Total       int64      `json:"total"`
	DateFrais   *time.Time `json:"date_frais"`
	Remarque    string     `json:"remarque"`
	CreatedAt   time.Time  `json:"created_at"`

	Vehicule Vehicule `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
}

// BeforeSave recalcule le total dès qu'une composante est renseignée (nil = 0),
// y compris par-dessus un total saisi à la main. Un total manuel n'est conservé
// que si les trois composantes sont absentes.
func (f *FraisImport) BeforeSave(tx *gorm.DB) error {
	if f.Fret != nil || f.Douane != nil || f.Transitaire != nil {
		f.Total = montantOuZero(f.Fret) + montantOuZero(f.Douane) + montantOuZero(f.Transitaire)
	}
	return nil
}
