package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucappt "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	ucclient "github.com/BruksfildServices01/barbershop-booking/internal/usecase/client"
)

// MeHandler serves the routes a client calls with their own token.
type MeHandler struct {
	create *ucappt.CreateAppointment
	list   *ucappt.ListClientAppointments
	cancel *ucappt.CancelByClient
	update *ucclient.UpdateClient
	logger *slog.Logger
}

func NewMeHandler(
	create *ucappt.CreateAppointment,
	list *ucappt.ListClientAppointments,
	cancel *ucappt.CancelByClient,
	update *ucclient.UpdateClient,
	logger *slog.Logger,
) *MeHandler {
	return &MeHandler{create: create, list: list, cancel: cancel, update: update, logger: logger}
}

type ClientBookingRequest struct {
	BarberID  string `json:"barber_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Start     string `json:"start" binding:"required"`
	Note      string `json:"note"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *MeHandler) CreateAppointment(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req ClientBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "barber_id, service_id and start are required")
		return
	}

	start, err := parseDateTime(req.Start)
	if err != nil {
		badRequest(c, "start must be an ISO-8601 date-time")
		return
	}

	created, err := h.create.Execute(c.Request.Context(), actor, ucappt.CreateAppointmentInput{
		ClientID:  actor.ID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Start:     start,
		Origin:    appointment.OriginClient,
		Note:      req.Note,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.Created(c, dto.Appointment(created))
}

func (h *MeHandler) ListAppointments(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	aps, err := h.list.Execute(c.Request.Context(), actor.ID, queryBool(c, "only_future"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.List(c, dto.Appointments(aps))
}

func (h *MeHandler) CancelAppointment(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	updated, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.Appointment(updated))
}

// ======================================================
// PROFILE
// ======================================================

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), ucclient.UpdateClientInput{
		ID:    actor.ID,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.Client(updated))
}
