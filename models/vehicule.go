package models

import "time"

// Statuts véhicule.
const (
	StatutParc   = "parc"
	StatutImport = "import"
	StatutVendu  = "vendu"
)

// Vehicule — le numéro de châssis est l'identité métier (surtout en import,
// avant immatriculation). Jamais supprimé : archivage par statut.
type Vehicule struct {
	ID                 uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	NumeroChassis      string `json:"numero_chassis" gorm:"size:80;uniqueIndex;not null" binding:"required"`
	MarqueID           *uint  `json:"marque_id" gorm:"index"`
	ModeleID           *uint  `json:"modele_id" gorm:"index"`
	Annee              *int   `json:"annee"`
	TypeVehiculeID     *uint  `json:"type_vehicule_id"`
	TypeCarburantID    *uint  `json:"type_carburant_id"`
	TypeTransmissionID *uint  `json:"type_transmission_id"`
	CouleurExterieure  string `json:"couleur_exterieure" gorm:"size:60"`
	CouleurInterieure  string `json:"couleur_interieure" gorm:"size:60"`

	DateEntreeParc        *time.Time `json:"date_entree_parc"`
	KmEntree              int        `json:"km_entree" gorm:"default:0"`
	KilometrageActuel     int        `json:"kilometrage_actuel" gorm:"default:0"`
	PrixAchat             *int64     `json:"prix_achat"`
	OriginePays           string     `json:"origine_pays" gorm:"size:80"`
	EtatEntree            string     `json:"etat_entree" gorm:"size:40"`
	Statut                string     `json:"statut" gorm:"size:20;default:parc;index"`
	NumeroImmatriculation string     `json:"numero_immatriculation" gorm:"size:20"`
	DatePremiereImmat     *time.Time `json:"date_premiere_immat"`
	ConsommationMoyenne   *float64   `json:"consommation_moyenne"`

	// Échéances propres au véhicule, utilisées quand il n'est pas sous
	// location en cours (sinon les échéances de la location font foi).
	DateExpirationCT        *time.Time `json:"date_expiration_ct"`
	DateExpirationAssurance *time.Time `json:"date_expiration_assurance"`
	KmProchaineVidange      *int       `json:"km_prochaine_vidange"`

	ProprietaireID *uint `json:"proprietaire_id" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Marque           *Marque           `json:"marque,omitempty" gorm:"foreignKey:MarqueID;references:ID"`
	Modele           *Modele           `json:"modele,omitempty" gorm:"foreignKey:ModeleID;references:ID"`
	TypeVehicule     *TypeVehicule     `json:"type_vehicule,omitempty" gorm:"foreignKey:TypeVehiculeID;references:ID"`
	TypeCarburant    *TypeCarburant    `json:"type_carburant,omitempty" gorm:"foreignKey:TypeCarburantID;references:ID"`
	TypeTransmission *TypeTransmission `json:"type_transmission,omitempty" gorm:"foreignKey:TypeTransmissionID;references:ID"`
	Proprietaire     *Utilisateur      `json:"-" gorm:"foreignKey:ProprietaireID;references:ID"`

	FraisImports     []FraisImport      `json:"-" gorm:"foreignKey:VehiculeID"`
	Depenses         []Depense          `json:"-" gorm:"foreignKey:VehiculeID"`
	Reparations      []Reparation       `json:"-" gorm:"foreignKey:VehiculeID"`
	Maintenances     []Maintenance      `json:"-" gorm:"foreignKey:VehiculeID"`
	RelevesCarburant []ReleveCarburant  `json:"-" gorm:"foreignKey:VehiculeID"`
	Locations        []Location         `json:"-" gorm:"foreignKey:VehiculeID"`
	Ventes           []Vente            `json:"-" gorm:"foreignKey:VehiculeID"`
	Factures         []Facture          `json:"-" gorm:"foreignKey:VehiculeID"`
	Documents        []DocumentVehicule `json:"-" gorm:"foreignKey:VehiculeID"`
}

// LibelleCourt — "Marque Modèle" pour affichage, châssis à défaut.
func (v *Vehicule) LibelleCourt() string {
	if v.Marque != nil && v.Modele != nil {
		return v.Marque.Nom + " " + v.Modele.Nom
	}
	if v.Marque != nil {
		return v.Marque.Nom
	}
	return v.NumeroChassis
}

type VehiculeResponse struct {
	ID                    uint       `json:"id"`
	NumeroChassis         string     `json:"numero_chassis"`
	LibelleCourt          string     `json:"libelle_court"`
	Marque                string     `json:"marque,omitempty"`
	Modele                string     `json:"modele,omitempty"`
	Annee                 *int       `json:"annee"`
	Statut                string     `json:"statut"`
	NumeroImmatriculation string     `json:"numero_immatriculation"`
	DateEntreeParc        *time.Time `json:"date_entree_parc"`
	KilometrageActuel     int        `json:"kilometrage_actuel"`
	PrixAchat             *int64     `json:"prix_achat"`
}

func (v *Vehicule) ToResponse() VehiculeResponse {
	resp := VehiculeResponse{
		ID:                    v.ID,
		NumeroChassis:         v.NumeroChassis,
		LibelleCourt:          v.LibelleCourt(),
		Annee:                 v.Annee,
		Statut:                v.Statut,
		NumeroImmatriculation: v.NumeroImmatriculation,
		DateEntreeParc:        v.DateEntreeParc,
		KilometrageActuel:     v.KilometrageActuel,
		PrixAchat:             v.PrixAchat,
	}
	if v.Marque != nil {
		resp.Marque = v.Marque.Nom
	}
	if v.Modele != nil {
		resp.Modele = v.Modele.Nom
	}
	return resp
}
