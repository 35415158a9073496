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

// importHandler handles HTTP requests for the bulk-import pipeline.
type importHandler struct {
	importService portssvc.ImportSvcFacade
}

func newImportHandler(is portssvc.ImportSvcFacade) *importHandler {
	return &importHandler{importService: is}
}

// registerImportRoutes registers routes related to bulk imports.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade) {
	h := newImportHandler(importService)

	imports := rg.Group("/parishes/:parishID/imports")
	{
		imports.POST("/reconcile", h.reconcile)
		imports.POST("/confirm", h.confirm)
	}
}

// reconcile previews the classification of an uploaded dataset. Nothing is
// written.
func (h *importHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parishID := c.Param("parishID")

	var req dto.ImportUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	batch, err := h.importService.Reconcile(c.Request.Context(), parishID, domain.SacramentType(req.SacramentType), req.Rows)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	resp := dto.ReconcileResponse{
		Total:      batch.Total(),
		ValidNew:   make([]dto.RecordResponse, len(batch.ValidNew)),
		Duplicates: batch.Duplicates,
		Invalid:    batch.Invalid,
	}
	for i := range batch.ValidNew {
		resp.ValidNew[i] = dto.ToRecordResponse(&batch.ValidNew[i], "")
	}
	c.JSON(http.StatusOK, resp)
}

func (h *importHandler) confirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parishID := c.Param("parishID")

	var req dto.ConfirmImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConfirmImport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received import confirmation",
		slog.String("parish_id", parishID),
		slog.Int("row_count", len(req.Rows)))

	resp, err := h.importService.ConfirmImport(c.Request.Context(), parishID, domain.SacramentType(req.SacramentType), req.Rows, creatorUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
