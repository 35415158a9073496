package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/dto"
	"github.com/parishbooks/parish_registry_app/internal/middleware"
)

// conceptHandler handles HTTP requests related to the annulment concept
// catalog.
type conceptHandler struct {
	conceptService portssvc.ConceptSvcFacade
}

func newConceptHandler(cs portssvc.ConceptSvcFacade) *conceptHandler {
	return &conceptHandler{conceptService: cs}
}

// registerConceptRoutes registers routes related to annulment concepts.
func registerConceptRoutes(rg *gin.RouterGroup, conceptService portssvc.ConceptSvcFacade) {
	h := newConceptHandler(conceptService)

	concepts := rg.Group("/parishes/:parishID/concepts")
	{
		concepts.POST("", h.createConcept)
		concepts.GET("", h.listConcepts)
		concepts.GET("/:conceptID", h.getConcept)
		concepts.PUT("/:conceptID", h.updateConcept)
		concepts.DELETE("/:conceptID", h.deleteConcept)
	}
}

func (h *conceptHandler) createConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("parishID")

	var req dto.CreateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateConcept", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	concept, err := h.conceptService.CreateConcept(c.Request.Context(), tenantID, req, creatorUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToConceptResponse(concept))
}

func (h *conceptHandler) listConcepts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("parishID")

	var category *domain.DecreeCategory
	if raw := c.Query("category"); raw != "" {
		cat := domain.DecreeCategory(raw)
		if cat != domain.DecreeCorrection && cat != domain.DecreeReplacement {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown decree category: " + raw})
			return
		}
		category = &cat
	}

	concepts, err := h.conceptService.ListConcepts(c.Request.Context(), tenantID, category)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	resp := dto.ListConceptsResponse{Concepts: make([]dto.ConceptResponse, len(concepts))}
	for i := range concepts {
		resp.Concepts[i] = dto.ToConceptResponse(&concepts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *conceptHandler) getConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("parishID")
	conceptID := c.Param("conceptID")

	concept, err := h.conceptService.GetConceptByID(c.Request.Context(), tenantID, conceptID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToConceptResponse(concept))
}

func (h *conceptHandler) updateConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("parishID")
	conceptID := c.Param("conceptID")

	var req dto.UpdateConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateConcept", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	concept, err := h.conceptService.UpdateConcept(c.Request.Context(), tenantID, conceptID, req, updaterUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToConceptResponse(concept))
}

func (h *conceptHandler) deleteConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("parishID")
	conceptID := c.Param("conceptID")

	if err := h.conceptService.DeleteConcept(c.Request.Context(), tenantID, conceptID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
