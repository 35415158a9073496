package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
	portssvc "github.com/parishbooks/parish_registry_app/internal/core/ports/services"
	"github.com/parishbooks/parish_registry_app/internal/middleware"
)

// recordHandler handles HTTP requests related to sacramental records.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

func newRecordHandler(rs portssvc.RecordSvcFacade) *recordHandler {
	return &recordHandler{recordService: rs}
}

// registerRecordRoutes registers routes related to records.
func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade) {
	h := newRecordHandler(recordService)

	records := rg.Group("/parishes/:parishID/records")
	{
		records.GET("", h.listRecords)
		records.GET("/:recordID", h.getRecord)
	}
}

func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parishID := c.Param("parishID")

	var sacramentType *domain.SacramentType
	if raw := c.Query("sacramentType"); raw != "" {
		st := domain.SacramentType(raw)
		switch st {
		case domain.Baptism, domain.Confirmation, domain.Marriage:
			sacramentType = &st
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sacrament type: " + raw})
			return
		}
	}

	resp, err := h.recordService.ListRecords(c.Request.Context(), parishID, sacramentType, noteContextFromQuery(c))
	if err != nil {
		logger.Warn("Failed to list records", slog.String("parish_id", parishID), slog.String("error", err.Error()))
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *recordHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parishID := c.Param("parishID")
	recordID := c.Param("recordID")

	resp, err := h.recordService.GetRecord(c.Request.Context(), parishID, recordID, noteContextFromQuery(c))
	if err != nil {
		logger.Warn("Failed to get record", slog.String("record_id", recordID), slog.String("error", err.Error()))
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// noteContextFromQuery collects the display-time inputs the note engine
// cannot know itself. Clergy rosters and parish locations live with the
// caller.
func noteContextFromQuery(c *gin.Context) portssvc.NoteContext {
	return portssvc.NoteContext{
		PriestName:       c.Query("priestName"),
		ParishCity:       c.Query("parishCity"),
		ParishDepartment: c.Query("parishDepartment"),
	}
}
