package handlers

import (
	"errors"
	"net/http"

	"flotte/services"

	"github.com/gin-gonic/gin"
)

// APIResponse — enveloppe JSON commune à tous les endpoints.
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse renvoie une réponse de succès.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse renvoie une réponse d'échec.
func ErrorResponse(c *gin.Context, statusCode int, message string, err string) {
	c.JSON(statusCode, APIResponse{
		Status:  false,
		Message: message,
		Error:   err,
	})
}

// ServiceError traduit les erreurs sentinelles des services en statut HTTP :
// accès refusé, introuvable, sinon erreur interne (échec du store).
func ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		ErrorResponse(c, http.StatusForbidden, "Accès refusé", err.Error())
	case errors.Is(err, services.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, "Enregistrement introuvable", err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, "Erreur interne", err.Error())
	}
}

// Principal reconstitue l'identité posée dans le contexte par AuthMiddleware.
func Principal(c *gin.Context) services.Principal {
	return services.Principal{
		UserID: uint(c.GetInt("user_id")),
		Role:   c.GetString("role"),
	}
}
