package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader audit.Reader
	logger *slog.Logger
}

func NewAuditLogsHandler(reader audit.Reader, logger *slog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageLimit)))

	// --------------------------------------------------
	// Optional date range, "to" inclusive
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			badRequest(c, "from must be YYYY-MM-DD")
			return
		}
		f.From = from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			badRequest(c, "to must be YYYY-MM-DD")
			return
		}
		f.To = to.AddDate(0, 0, 1)
	}

	page, err := h.reader.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.AuditPage(page))
}
