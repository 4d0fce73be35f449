package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	ucappt "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	ucbarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
	uccatalog "github.com/BruksfildServices01/barbershop-booking/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	barbers  *ucbarber.ListActiveBarbers
	services *uccatalog.ListActiveServices
	slots    *ucappt.ListAvailableSlots
	logger   *slog.Logger
}

func NewPublicHandler(
	barbers *ucbarber.ListActiveBarbers,
	services *uccatalog.ListActiveServices,
	slots *ucappt.ListAvailableSlots,
	logger *slog.Logger,
) *PublicHandler {
	return &PublicHandler{barbers: barbers, services: services, slots: slots, logger: logger}
}

// ======================================================
// CATALOG
// ======================================================

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.barbers.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.List(c, dto.Barbers(barbers))
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.services.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.List(c, dto.Services(services))
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID := c.Query("barber_id")
	serviceID := c.Query("service_id")
	dateStr := c.Query("date")

	if barberID == "" || serviceID == "" || dateStr == "" {
		badRequest(c, "barber_id, service_id and date are required")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		badRequest(c, "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), barberID, serviceID, date, nil)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"slots": dto.Slots(slots),
	})
}
