package models

import "time"

// Types de dépense.
const (
	DepenseEntretien  = "entretien"
	DepenseReparation = "reparation"
	DepenseCarburant  = "carburant"
	DepenseAssurance  = "assurance"
	DepenseAutre      = "autre"
)

// Depense liée à un véhicule.
type Depense struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID  uint       `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	TypeDepense string     `json:"type_depense" gorm:"size:20;default:autre"`
	Libelle     string     `json:"libelle" gorm:"size:200" binding:"required"`
	Phase       string     `json:"phase" gorm:"size:80"`
	Montant     int64      `json:"montant"`
	DateDepense *time.Time `json:"date_depense"`
	Remarque    string     `json:"remarque"`
	CreatedAt   time.Time  `json:"created_at"`

	Vehicule Vehicule `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
}

// Reparation effectuée ou à faire sur un véhicule. Hors du calcul TCO :
// le coût de possession ne retient que dépenses, maintenances et carburant.
type Reparation struct {
	ID             uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID     uint       `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	DateReparation *time.Time `json:"date_reparation"`
	Kilometrage    *int       `json:"kilometrage"`
	TypeRep        string     `json:"type_rep" gorm:"size:60"`
	Description    string     `json:"description" binding:"required"`
	Cout           *int64     `json:"cout"`
	Prestataire    string     `json:"prestataire" gorm:"size:120"`
	AFaire         bool       `json:"a_faire" gorm:"default:false"`
	CreatedAt      time.Time  `json:"created_at"`

	Vehicule Vehicule `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
}
