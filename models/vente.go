package models

import "time"

// Vente / cession d'un véhicule. Un prix nul ou absent exclut la vente du
// chiffre d'affaires.
type Vente struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID    uint      `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	DateVente     time.Time `json:"date_vente" binding:"required"`
	Acquereur     string    `json:"acquereur" gorm:"size:200"`
	AcquereurID   *uint     `json:"acquereur_id"`
	PrixVente     *int64    `json:"prix_vente"`
	KmVente       *int      `json:"km_vente"`
	GarantieDuree string    `json:"garantie_duree" gorm:"size:80"`
	EtatLivraison string    `json:"etat_livraison" gorm:"size:40"`
	CreatedAt     time.Time `json:"created_at"`

	Vehicule        Vehicule     `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
	CompteAcquereur *Utilisateur `json:"-" gorm:"foreignKey:AcquereurID;references:ID"`
}

type VenteResponse struct {
	ID         uint      `json:"id"`
	VehiculeID uint      `json:"vehicule_id"`
	Vehicule   string    `json:"vehicule"`
	DateVente  time.Time `json:"date_vente"`
	Acquereur  string    `json:"acquereur"`
	PrixVente  *int64    `json:"prix_vente"`
	KmVente    *int      `json:"km_vente"`
}

func (v *Vente) ToResponse() VenteResponse {
	return VenteResponse{
		ID:         v.ID,
		VehiculeID: v.VehiculeID,
		Vehicule:   v.Vehicule.LibelleCourt(),
		DateVente:  v.DateVente,
		Acquereur:  v.Acquereur,
		PrixVente:  v.PrixVente,
		KmVente:    v.KmVente,
	}
}
