package models

import "time"

// Marque automobile (archivable, jamais supprimée).
type Marque struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Nom       string    `json:"nom" gorm:"size:120;uniqueIndex;not null"`
	Archive   bool      `json:"archive" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// Modele lié à une marque (unicité marque + nom).
type Modele struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	MarqueID  uint      `json:"marque_id" gorm:"index;not null;uniqueIndex:idx_marque_nom"`
	Nom       string    `json:"nom" gorm:"size:120;not null;uniqueIndex:idx_marque_nom"`
	Version   string    `json:"version" gorm:"size:80"`
	AnneeMin  int       `json:"annee_min" gorm:"default:2000"`
	AnneeMax  *int      `json:"annee_max"`
	Archive   bool      `json:"archive" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`

	Marque Marque `json:"-" gorm:"foreignKey:MarqueID;references:ID"`
}

type TypeCarburant struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Libelle   string    `json:"libelle" gorm:"size:60;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

type TypeTransmission struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Libelle   string    `json:"libelle" gorm:"size:60;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

type TypeVehicule struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Libelle   string    `json:"libelle" gorm:"size:60;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}
