package models

import "time"

// Facture liée à un véhicule (achat, réparation, assurance...).
type Facture struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID  uint       `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	Numero      string     `json:"numero" gorm:"size:80" binding:"required"`
	Fournisseur string     `json:"fournisseur" gorm:"size:200"`
	DateFacture *time.Time `json:"date_facture"`
	Montant     *int64     `json:"montant"`
	TypeFacture string     `json:"type_facture" gorm:"size:60"`
	Remarque    string     `json:"remarque"`
	CreatedAt   time.Time  `json:"created_at"`

	Vehicule  Vehicule          `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
	Penalites []PenaliteFacture `json:"penalites,omitempty" gorm:"foreignKey:FactureID"`
}

// PenaliteFacture — pénalité (retard, majoration) rattachée à une facture.
type PenaliteFacture struct {
	ID        uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	FactureID uint       `json:"facture_id" gorm:"index;not null"`
	DateAjout *time.Time `json:"date_ajout"`
	Motif     string     `json:"motif" gorm:"size:200"`
	Montant   int64      `json:"montant"`
	CreatedAt time.Time  `json:"created_at"`
}

// TotalAvecPenalites — montant + pénalités chargées (nil = 0), calcul de lecture.
func (f *Facture) TotalAvecPenalites() int64 {
	total := montantOuZero(f.Montant)
	for _, p := range f.Penalites {
		total += p.Montant
	}
	return total
}
