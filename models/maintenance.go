package models

import "time"

// Statuts maintenance.
const (
	MaintenanceAFaire   = "a_faire"
	MaintenanceEnCours  = "en_cours"
	MaintenanceEffectue = "effectue"
)

// Maintenance préventive planifiée ou effectuée sur un véhicule.
type Maintenance struct {
	ID                  uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID          uint       `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	TypeMaintenance     string     `json:"type_maintenance" gorm:"size:20;default:vidange"`
	DatePrevue          *time.Time `json:"date_prevue"`
	KilometragePrevu    *int       `json:"kilometrage_prevu"`
	DateEffectuee       *time.Time `json:"date_effectuee"`
	KilometrageEffectue *int       `json:"kilometrage_effectue"`
	Cout                *int64     `json:"cout"`
	Prestataire         string     `json:"prestataire" gorm:"size:120"`
	Statut              string     `json:"statut" gorm:"size:20;default:a_faire;index"`
	Remarque            string     `json:"remarque"`
	CreatedAt           time.Time  `json:"created_at"`

	Vehicule Vehicule `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
}
