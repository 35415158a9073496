package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/dto"
	"github.com/parishbooks/parish_registry_app/internal/middleware"
)

// decreeHandler handles HTTP requests related to decrees.
type decreeHandler struct {
	decreeService portssvc.DecreeSvcFacade
}

func newDecreeHandler(ds portssvc.DecreeSvcFacade) *decreeHandler {
	return &decreeHandler{decreeService: ds}
}

// registerDecreeRoutes registers routes related to decrees. The path tenant
// is a parish for issuing; reads also work against the chancery partition,
// which holds the tagged decree copies.
func registerDecreeRoutes(rg *gin.RouterGroup, decreeService portssvc.DecreeSvcFacade) {
	h := newDecreeHandler(decreeService)

	decrees := rg.Group("/parishes/:parishID/decrees")
	{
		decrees.POST("/corrections", h.issueCorrection)
		decrees.POST("/replacements", h.issueReplacement)
		decrees.GET("", h.listDecrees)
		decrees.GET("/:decreeID", h.getDecree)
	}
}

func (h *decreeHandler) issueCorrection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parishID := c.Param("parishID")

	var req dto.CorrectionDecreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssueCorrection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received correction decree request",
		slog.String("parish_id", parishID),
		slog.String("decree_number", req.DecreeNumber))

	resp, err := h.decreeService.IssueCorrection(c.Request.Context(), parishID, req, creatorUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *decreeHandler) issueReplacement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parishID := c.Param("parishID")

	var req dto.ReplacementDecreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssueReplacement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received replacement decree request",
		slog.String("parish_id", parishID),
		slog.String("decree_number", req.DecreeNumber))

	resp, err := h.decreeService.IssueReplacement(c.Request.Context(), parishID, req, creatorUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *decreeHandler) listDecrees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("parishID")

	resp, err := h.decreeService.ListDecrees(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *decreeHandler) getDecree(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("parishID")
	decreeID := c.Param("decreeID")

	resp, err := h.decreeService.GetDecree(c.Request.Context(), tenantID, decreeID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
