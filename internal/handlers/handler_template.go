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

// templateHandler handles HTTP requests related to marginal-note templates.
type templateHandler struct {
	templateService portssvc.TemplateSvcFacade
}

func newTemplateHandler(ts portssvc.TemplateSvcFacade) *templateHandler {
	return &templateHandler{templateService: ts}
}

// registerTemplateRoutes registers routes related to note templates.
func registerTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.TemplateSvcFacade) {
	h := newTemplateHandler(templateService)

	templates := rg.Group("/parishes/:parishID/note-templates")
	{
		templates.GET("", h.getTemplateSet)
		templates.PUT("", h.putTemplateSet)
	}
}

func (h *templateHandler) getTemplateSet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parishID := c.Param("parishID")

	templates, err := h.templateService.GetTemplateSet(c.Request.Context(), parishID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, toTemplateSetResponse(templates))
}

func (h *templateHandler) putTemplateSet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parishID := c.Param("parishID")

	var req dto.PutTemplateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PutTemplateSet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	templates, err := h.templateService.PutTemplateSet(c.Request.Context(), parishID, req, updaterUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, toTemplateSetResponse(templates))
}

func toTemplateSetResponse(t *domain.MarginalNoteTemplateSet) dto.TemplateSetResponse {
	return dto.TemplateSetResponse{
		ParishID:               t.ParishID,
		AnnulledRecordTemplate: t.AnnulledRecordTemplate,
		NewRecordTemplate:      t.NewRecordTemplate,
		ReplacementTemplate:    t.ReplacementTemplate,
		StandardTemplate:       t.StandardTemplate,
	}
}
