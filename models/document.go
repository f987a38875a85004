package models

import "time"

// DocumentVehicule — document attaché à un véhicule (carte grise, assurance,
// vignette...), disponible ou à produire, avec échéance éventuelle.
type DocumentVehicule struct {
	ID           uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID   uint       `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	TypeDocument string     `json:"type_document" gorm:"size:80" binding:"required"`
	Numero       string     `json:"numero" gorm:"size:60"`
	DateEmission *time.Time `json:"date_emission"`
	DateEcheance *time.Time `json:"date_echeance"`
	Disponible   bool       `json:"disponible" gorm:"default:false"`
	Remarque     string     `json:"remarque"`
	CreatedAt    time.Time  `json:"created_at"`

	Vehicule Vehicule `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
}

// ImportDemarche — étape de démarche d'importation d'un véhicule.
type ImportDemarche struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID  uint       `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	Etape       string     `json:"etape" gorm:"size:80" binding:"required"`
	DateEtape   *time.Time `json:"date_etape"`
	StatutEtape string     `json:"statut_etape" gorm:"size:40"`
	Remarque    string     `json:"remarque"`
	CreatedAt   time.Time  `json:"created_at"`

	Vehicule Vehicule `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
}
