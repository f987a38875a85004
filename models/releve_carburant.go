package models

import (
	"time"

	"gorm.io/gorm"
)

// ReleveCarburant — plein de carburant par véhicule. Zéro vaut "non renseigné"
// pour litres, montant et prix au litre.
type ReleveCarburant struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID  uint      `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	DateReleve  time.Time `json:"date_releve"`
	Kilometrage int       `json:"kilometrage"`
	Litres      float64   `json:"litres"`
	Montant     int64     `json:"montant"`
	PrixLitre   int64     `json:"prix_litre"`
	Lieu        string    `json:"lieu" gorm:"size:120"`
	Remarque    string    `json:"remarque"`
	CreatedAt   time.Time `json:"created_at"`

	Vehicule Vehicule `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
}

// BeforeSave complète au plus un champ manquant à partir des deux autres.
// Priorité : montant, puis prix au litre, puis litres. Une valeur non nulle
// n'est jamais écrasée. Montants arrondis au FCFA, litres au centilitre.
func (r *ReleveCarburant) BeforeSave(tx *gorm.DB) error {
	switch {
	case r.Litres != 0 && r.PrixLitre != 0 && r.Montant == 0:
		r.Montant = arrondiMontant(r.Litres * float64(r.PrixLitre))
	case r.Litres != 0 && r.Montant != 0 && r.PrixLitre == 0:
		r.PrixLitre = arrondiMontant(float64(r.Montant) / r.Litres)
	case r.PrixLitre != 0 && r.Montant != 0 && r.Litres == 0:
		r.Litres = arrondiLitres(float64(r.Montant) / float64(r.PrixLitre))
	}
	return nil
}
