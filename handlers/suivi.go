package handlers

import (
	"net/http"
	"strconv"

	"flotte/models"
	"flotte/services"

	"github.com/gin-gonic/gin"
)

func limitFromQuery(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return limit
}

// ListMaintenances — GET /maintenances?limit=
func ListMaintenances(c *gin.Context) {
	maintenances, err := services.ListerMaintenances(Principal(c), limitFromQuery(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Maintenances", gin.H{"maintenances": maintenances, "count": len(maintenances)})
}

// ListRelevesCarburant — GET /carburant?limit=
func ListRelevesCarburant(c *gin.Context) {
	releves, err := services.ListerRelevesCarburant(Principal(c), limitFromQuery(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Relevés carburant", gin.H{"releves": releves, "count": len(releves)})
}

// ListReparations — GET /reparations?limit=
func ListReparations(c *gin.Context) {
	reparations, err := services.ListerReparations(Principal(c), limitFromQuery(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Réparations", gin.H{"reparations": reparations, "count": len(reparations)})
}

// ListDocuments — GET /documents?limit=
func ListDocuments(c *gin.Context) {
	documents, err := services.ListerDocuments(Principal(c), limitFromQuery(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Documents", gin.H{"documents": documents, "count": len(documents)})
}

// ListConducteurs — GET /conducteurs
func ListConducteurs(c *gin.Context) {
	conducteurs, err := services.ListerConducteurs(Principal(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Conducteurs", gin.H{"conducteurs": conducteurs, "count": len(conducteurs)})
}

// ListDepenses — GET /depenses?limit=
func ListDepenses(c *gin.Context) {
	depenses, err := services.ListerDepenses(Principal(c), limitFromQuery(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Dépenses", gin.H{"depenses": depenses, "count": len(depenses)})
}

// ListFactures — GET /factures?limit= (manager/admin)
func ListFactures(c *gin.Context) {
	factures, err := services.ListerFactures(Principal(c), limitFromQuery(c))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Factures", gin.H{"factures": factures, "count": len(factures)})
}

// CreateMaintenance — POST /maintenances
func CreateMaintenance(c *gin.Context) {
	var maintenance models.Maintenance
	if err := c.ShouldBindJSON(&maintenance); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerEnregistrementSuivi(Principal(c), &maintenance, maintenance.VehiculeID); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Maintenance enregistrée", maintenance)
}

// CreateReleveCarburant — POST /carburant
func CreateReleveCarburant(c *gin.Context) {
	var releve models.ReleveCarburant
	if err := c.ShouldBindJSON(&releve); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerEnregistrementSuivi(Principal(c), &releve, releve.VehiculeID); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Relevé enregistré", releve)
}

// CreateReparation — POST /reparations
func CreateReparation(c *gin.Context) {
	var reparation models.Reparation
	if err := c.ShouldBindJSON(&reparation); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerEnregistrementSuivi(Principal(c), &reparation, reparation.VehiculeID); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Réparation enregistrée", reparation)
}

// CreateDocument — POST /documents
func CreateDocument(c *gin.Context) {
	var document models.DocumentVehicule
	if err := c.ShouldBindJSON(&document); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerEnregistrementSuivi(Principal(c), &document, document.VehiculeID); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Document enregistré", document)
}

// CreateConducteur — POST /conducteurs — actif par défaut quand le champ
// est omis.
func CreateConducteur(c *gin.Context) {
	conducteur := models.Conducteur{Actif: true}
	if err := c.ShouldBindJSON(&conducteur); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerEnregistrementSuivi(Principal(c), &conducteur, 0); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Conducteur enregistré", conducteur)
}

// CreateDepense — POST /depenses
func CreateDepense(c *gin.Context) {
	var depense models.Depense
	if err := c.ShouldBindJSON(&depense); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerEnregistrementSuivi(Principal(c), &depense, depense.VehiculeID); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Dépense enregistrée", depense)
}

// CreateFraisImport — POST /frais-import — le total est recalculé par le
// hook BeforeSave du modèle.
func CreateFraisImport(c *gin.Context) {
	var frais models.FraisImport
	if err := c.ShouldBindJSON(&frais); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerEnregistrementSuivi(Principal(c), &frais, frais.VehiculeID); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Frais d'import enregistrés", frais)
}

// CreateFacture — POST /factures
func CreateFacture(c *gin.Context) {
	var facture models.Facture
	if err := c.ShouldBindJSON(&facture); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	if err := services.CreerEnregistrementSuivi(Principal(c), &facture, facture.VehiculeID); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Facture enregistrée", facture)
}

// CreatePenalite — POST /factures/:id/penalites
func CreatePenalite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Identifiant invalide", err.Error())
		return
	}
	var penalite models.PenaliteFacture
	if err := c.ShouldBindJSON(&penalite); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Entrée invalide", err.Error())
		return
	}
	penalite.FactureID = uint(id)
	if err := services.AjouterPenalite(Principal(c), &penalite); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Pénalité enregistrée", penalite)
}
