package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parishbooks/parish_registry_app/internal/apperrors"
	"github.com/parishbooks/parish_registry_app/internal/dto"
)

// respondError translates service errors to HTTP responses. Aggregated
// validation failures keep their per-field detail; everything else maps to a
// status through its sentinel.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var verrs *apperrors.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: verrs.Sorted(),
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyAnnulled),
		errors.Is(err, apperrors.ErrDuplicateKey),
		errors.Is(err, apperrors.ErrReferencedEntity):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
