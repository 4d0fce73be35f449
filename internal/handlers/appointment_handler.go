package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucappt "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler serves the barber side of the schedule.
type AppointmentHandler struct {
	create   *ucappt.CreateAppointment
	agenda   *ucappt.ListDayAgenda
	cancel   *ucappt.CancelByBarber
	conclude *ucappt.MarkConcluded
	noShow   *ucappt.MarkNoShow
	purge    *ucappt.PurgeAppointment

	noShowLimit int
	logger      *slog.Logger
}

type AppointmentUseCases struct {
	Create   *ucappt.CreateAppointment
	Agenda   *ucappt.ListDayAgenda
	Cancel   *ucappt.CancelByBarber
	Conclude *ucappt.MarkConcluded
	NoShow   *ucappt.MarkNoShow
	Purge    *ucappt.PurgeAppointment
}

func NewAppointmentHandler(uc AppointmentUseCases, noShowLimit int, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		create:      uc.Create,
		agenda:      uc.Agenda,
		cancel:      uc.Cancel,
		conclude:    uc.Conclude,
		noShow:      uc.NoShow,
		purge:       uc.Purge,
		noShowLimit: noShowLimit,
		logger:      logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BarberBookingRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	BarberID  string `json:"barber_id"`
	ServiceID string `json:"service_id" binding:"required"`
	Start     string `json:"start" binding:"required"`
	Note      string `json:"note"`

	MinLeadTimeMinutes *int `json:"min_lead_time_minutes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req BarberBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "client_id, service_id and start are required")
		return
	}

	start, err := parseDateTime(req.Start)
	if err != nil {
		badRequest(c, "start must be an ISO-8601 date-time")
		return
	}

	barberID := req.BarberID
	if barberID == "" {
		barberID = actor.ID
	}

	created, err := h.create.Execute(c.Request.Context(), actor, ucappt.CreateAppointmentInput{
		ClientID:           req.ClientID,
		BarberID:           barberID,
		ServiceID:          req.ServiceID,
		Start:              start,
		Origin:             appointment.OriginBarber,
		Note:               req.Note,
		MinLeadTimeMinutes: req.MinLeadTimeMinutes,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.Created(c, dto.Appointment(created))
}

// ======================================================
// AGENDA
// ======================================================

func (h *AppointmentHandler) Agenda(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	dateStr := c.Query("date")
	if dateStr == "" {
		badRequest(c, "date is required")
		return
	}
	date, err := parseDate(dateStr)
	if err != nil {
		badRequest(c, "date must be YYYY-MM-DD")
		return
	}

	entries, err := h.agenda.Execute(c.Request.Context(), actor.ID, date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.List(c, dto.Agenda(entries))
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	updated, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Appointment(updated))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	updated, err := h.conclude.Execute(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Appointment(updated))
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	updated, err := h.noShow.Execute(c.Request.Context(), c.Param("id"), actor.ID, h.noShowLimit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Appointment(updated))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	if err := h.purge.Execute(c.Request.Context(), c.Param("id"), actor.ID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.NoContent(c)
}
