package models

import "time"

// Statuts location.
const (
	LocationEnCours = "en_cours"
	LocationAVenir  = "a_venir"
	LocationTermine = "termine"
)

// Location — contrat de location (LLD, LOA, courte durée) avec ses propres
// échéances CT / assurance et son seuil de vidange pour la période louée.
type Location struct {
	ID                   uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	VehiculeID           uint      `json:"vehicule_id" gorm:"index;not null" binding:"required"`
	ConducteurID         *uint     `json:"conducteur_id" gorm:"index"`
	Locataire            string    `json:"locataire" gorm:"size:200" binding:"required"`
	TypeLocation         string    `json:"type_location" gorm:"size:60"`
	DateDebut            time.Time `json:"date_debut" binding:"required"`
	DateFin              time.Time `json:"date_fin" binding:"required"`
	LoyerMensuel         *int64    `json:"loyer_mensuel"`
	FraisAnnexes         *int64    `json:"frais_annexes"`
	KmInclusMois         *int      `json:"km_inclus_mois"`
	PrixKmSupplementaire *int64    `json:"prix_km_supplementaire"`

	DateExpirationCT        *time.Time `json:"date_expiration_ct"`
	DateExpirationAssurance *time.Time `json:"date_expiration_assurance"`
	KmProchaineVidange      *int       `json:"km_prochaine_vidange"`

	Remarques string    `json:"remarques"`
	Statut    string    `json:"statut" gorm:"size:20;default:en_cours;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vehicule   Vehicule    `json:"-" gorm:"foreignKey:VehiculeID;references:ID"`
	Conducteur *Conducteur `json:"-" gorm:"foreignKey:ConducteurID;references:ID"`
	Amendes    []Amende    `json:"amendes,omitempty" gorm:"foreignKey:LocationID"`
}

// Amende rattachée à une location.
type Amende struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	LocationID uint       `json:"location_id" gorm:"index;not null"`
	DateAmende *time.Time `json:"date_amende"`
	Reference  string     `json:"reference" gorm:"size:80"`
	Montant    int64      `json:"montant"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CoutTotalLocation — loyer + frais annexes + amendes (nil = 0). Propriété de
// lecture : calculée sur les amendes chargées, rien n'est stocké.
func (l *Location) CoutTotalLocation() int64 {
	total := montantOuZero(l.LoyerMensuel) + montantOuZero(l.FraisAnnexes)
	for _, a := range l.Amendes {
		total += a.Montant
	}
	return total
}

type LocationResponse struct {
	ID           uint      `json:"id"`
	VehiculeID   uint      `json:"vehicule_id"`
	Vehicule     string    `json:"vehicule"`
	Locataire    string    `json:"locataire"`
	TypeLocation string    `json:"type_location"`
	DateDebut    time.Time `json:"date_debut"`
	DateFin      time.Time `json:"date_fin"`
	LoyerMensuel *int64    `json:"loyer_mensuel"`
	Statut       string    `json:"statut"`
	CoutTotal    int64     `json:"cout_total_location"`
}

func (l *Location) ToResponse() LocationResponse {
	return LocationResponse{
		ID:           l.ID,
		VehiculeID:   l.VehiculeID,
		Vehicule:     l.Vehicule.LibelleCourt(),
		Locataire:    l.Locataire,
		TypeLocation: l.TypeLocation,
		DateDebut:    l.DateDebut,
		DateFin:      l.DateFin,
		LoyerMensuel: l.LoyerMensuel,
		Statut:       l.Statut,
		CoutTotal:    l.CoutTotalLocation(),
	}
}
