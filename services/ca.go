package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"flotte/database"
	"flotte/models"

	"gorm.io/gorm"
)

// Granularités d'agrégation du chiffre d'affaires.
const (
	GranulariteJour  = "jour"
	GranulariteMois  = "mois"
	GranulariteAnnee = "annee"
)

// Abréviations françaises des mois, index 1..12, pour les étiquettes de
// graphique ("Fév 2025").
var moisNoms = [...]string{"", "Jan", "Fév", "Mar", "Avr", "Mai", "Juin", "Juil", "Août", "Sep", "Oct", "Nov", "Déc"}

// EvolutionCA — séries ordonnées label/valeur/nombre pour les graphiques.
// Seules les périodes non vides apparaissent.
type EvolutionCA struct {
	Granularite string   `json:"granularite"`
	Annee       int      `json:"annee"`
	Labels      []string `json:"labels"`
	Data        []int64  `json:"data"`
	NbVentes    []int    `json:"nb_ventes"`
}

// TopVehiculeCA — cumul des ventes éligibles par véhicule.
type TopVehiculeCA struct {
	VehiculeID uint   `json:"vehicule_id"`
	Vehicule   string `json:"vehicule"`
	TotalCA    int64  `json:"total_ca"`
	NbVentes   int    `json:"nb_ventes"`
}

// SyntheseCA — KPIs chiffre d'affaires : totaux globaux, comparaison de
// l'année de référence avec la précédente, top véhicules.
type SyntheseCA struct {
	TotalCA           int64           `json:"total_ca"`
	NbVentes          int64           `json:"nb_ventes"`
	MoyenneVente      float64         `json:"moyenne_vente"`
	AnneeReference    int             `json:"annee_reference"`
	CAAnneeReference  int64           `json:"ca_annee_reference"`
	CAAnneePrecedente int64           `json:"ca_annee_precedente"`
	Variation         int64           `json:"variation"`
	VariationPct      float64         `json:"variation_pct"`
	TopVehicules      []TopVehiculeCA `json:"top_vehicules"`
}

// ventesEligibles — ventes comptant dans le CA : prix renseigné et non nul.
func ventesEligibles() *gorm.DB {
	return database.DB.Model(&models.Vente{}).
		Where("prix_vente IS NOT NULL AND prix_vente <> 0")
}

func bornesAnnee(annee int) (time.Time, time.Time) {
	debut := time.Date(annee, 1, 1, 0, 0, 0, 0, time.UTC)
	return debut, debut.AddDate(1, 0, 0)
}

// EvolutionCA agrège les ventes éligibles par jour, mois ou année.
// Une granularité inconnue retombe sur le mois, une année invalide sur l'année
// courante, un mois invalide est ignoré : jamais d'erreur sur l'entrée.
// Réservé aux gestionnaires et administrateurs.
func CalculerEvolutionCA(p Principal, now time.Time, granularite string, annee int, mois int) (*EvolutionCA, error) {
	if !p.IsManagerOrAdmin() {
		return nil, ErrForbidden
	}
	if granularite != GranulariteJour && granularite != GranulariteMois && granularite != GranulariteAnnee {
		granularite = GranulariteMois
	}
	if annee <= 0 {
		annee = now.Year()
	}

	debut, fin := bornesAnnee(annee)
	if mois >= 1 && mois <= 12 {
		debut = time.Date(annee, time.Month(mois), 1, 0, 0, 0, 0, time.UTC)
		fin = debut.AddDate(0, 1, 0)
	}

	var ventes []models.Vente
	err := ventesEligibles().
		Where("date_vente >= ? AND date_vente < ?", debut, fin).
		Order("date_vente ASC, id ASC").
		Find(&ventes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query ventes for evolution CA: %w", err)
	}

	evolution := &EvolutionCA{
		Granularite: granularite,
		Annee:       annee,
		Labels:      []string{},
		Data:        []int64{},
		NbVentes:    []int{},
	}

	// Les ventes arrivent triées par date : la troncature est monotone, un
	// simple parcours suffit pour fermer les périodes.
	var periode time.Time
	for _, v := range ventes {
		cle := tronquer(v.DateVente, granularite)
		if len(evolution.Labels) == 0 || !cle.Equal(periode) {
			periode = cle
			evolution.Labels = append(evolution.Labels, labelPeriode(cle, granularite))
			evolution.Data = append(evolution.Data, 0)
			evolution.NbVentes = append(evolution.NbVentes, 0)
		}
		dernier := len(evolution.Data) - 1
		evolution.Data[dernier] += *v.PrixVente
		evolution.NbVentes[dernier]++
	}
	return evolution, nil
}

func tronquer(d time.Time, granularite string) time.Time {
	switch granularite {
	case GranulariteJour:
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	case GranulariteMois:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(d.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	}
}

func labelPeriode(periode time.Time, granularite string) string {
	switch granularite {
	case GranulariteJour:
		return fmt.Sprintf("%02d/%02d", periode.Day(), int(periode.Month()))
	case GranulariteMois:
		return moisNoms[int(periode.Month())] + " " + strconv.Itoa(periode.Year())
	default:
		return strconv.Itoa(periode.Year())
	}
}

func sommeCAAnnee(annee int) (int64, error) {
	debut, fin := bornesAnnee(annee)
	var total int64
	err := ventesEligibles().
		Where("date_vente >= ? AND date_vente < ?", debut, fin).
		Select("COALESCE(SUM(prix_vente), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum CA for %d: %w", annee, err)
	}
	return total, nil
}

// CalculerSyntheseCA calcule les KPIs CA. L'année de référence est la plus
// récente comptant au moins une vente éligible, à défaut l'année courante ;
// elle est comparée à l'année qui la précède (variation nulle si le CA
// précédent est nul, pour éviter la division par zéro).
// Réservé aux gestionnaires et administrateurs.
func CalculerSyntheseCA(p Principal, now time.Time) (*SyntheseCA, error) {
	if !p.IsManagerOrAdmin() {
		return nil, ErrForbidden
	}

	var agg struct {
		Total   int64
		Nb      int64
		Moyenne float64
	}
	err := ventesEligibles().
		Select("COALESCE(SUM(prix_vente), 0) AS total, COUNT(id) AS nb, COALESCE(AVG(prix_vente), 0) AS moyenne").
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate CA: %w", err)
	}

	// Année de référence : dernière vente éligible.
	anneeReference := now.Year()
	var derniere models.Vente
	err = ventesEligibles().Order("date_vente DESC, id DESC").First(&derniere).Error
	switch {
	case err == nil:
		anneeReference = derniere.DateVente.Year()
	case errors.Is(err, gorm.ErrRecordNotFound):
		// aucune vente : année courante
	default:
		return nil, fmt.Errorf("failed to find derniere vente: %w", err)
	}

	caReference, err := sommeCAAnnee(anneeReference)
	if err != nil {
		return nil, err
	}
	caPrecedent, err := sommeCAAnnee(anneeReference - 1)
	if err != nil {
		return nil, err
	}
	variation := caReference - caPrecedent
	var variationPct float64
	if caPrecedent != 0 {
		variationPct = float64(variation) / float64(caPrecedent) * 100
	}

	top, err := topVehiculesCA(5)
	if err != nil {
		return nil, err
	}

	return &SyntheseCA{
		TotalCA:           agg.Total,
		NbVentes:          agg.Nb,
		MoyenneVente:      agg.Moyenne,
		AnneeReference:    anneeReference,
		CAAnneeReference:  caReference,
		CAAnneePrecedente: caPrecedent,
		Variation:         variation,
		VariationPct:      variationPct,
		TopVehicules:      top,
	}, nil
}

// topVehiculesCA — classement des véhicules par CA cumulé, décroissant,
// égalités départagées par ordre d'insertion des ventes.
func topVehiculesCA(n int) ([]TopVehiculeCA, error) {
	var ventes []models.Vente
	if err := ventesEligibles().Order("id ASC").Find(&ventes).Error; err != nil {
		return nil, fmt.Errorf("failed to query ventes for top vehicules: %w", err)
	}

	cumuls := make(map[uint]*TopVehiculeCA)
	ordre := make([]*TopVehiculeCA, 0)
	for _, v := range ventes {
		entree, ok := cumuls[v.VehiculeID]
		if !ok {
			entree = &TopVehiculeCA{VehiculeID: v.VehiculeID}
			cumuls[v.VehiculeID] = entree
			ordre = append(ordre, entree)
		}
		entree.TotalCA += *v.PrixVente
		entree.NbVentes++
	}

	sort.SliceStable(ordre, func(i, j int) bool {
		return ordre[i].TotalCA > ordre[j].TotalCA
	})
	if len(ordre) > n {
		ordre = ordre[:n]
	}

	top := make([]TopVehiculeCA, len(ordre))
	ids := make([]uint, len(ordre))
	for i, e := range ordre {
		top[i] = *e
		ids[i] = e.VehiculeID
	}
	if len(ids) > 0 {
		var vehicules []models.Vehicule
		if err := database.DB.Preload("Marque").Preload("Modele").Find(&vehicules, ids).Error; err != nil {
			return nil, fmt.Errorf("failed to load top vehicules: %w", err)
		}
		libelles := make(map[uint]string, len(vehicules))
		for i := range vehicules {
			libelles[vehicules[i].ID] = vehicules[i].LibelleCourt()
		}
		for i := range top {
			top[i].Vehicule = libelles[top[i].VehiculeID]
		}
	}
	return top, nil
}
