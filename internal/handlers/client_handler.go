package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucappt "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	ucclient "github.com/BruksfildServices01/barbershop-booking/internal/usecase/client"
)

// ClientHandler serves staff-side client management.
type ClientHandler struct {
	list         *ucclient.ListClients
	register     *ucclient.RegisterClient
	update       *ucclient.UpdateClient
	unblock      *ucclient.UnblockClient
	appointments *ucappt.ListClientAppointments
	logger       *slog.Logger
}

type ClientUseCases struct {
	List         *ucclient.ListClients
	Register     *ucclient.RegisterClient
	Update       *ucclient.UpdateClient
	Unblock      *ucclient.UnblockClient
	Appointments *ucappt.ListClientAppointments
}

func NewClientHandler(uc ClientUseCases, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		list:         uc.List,
		register:     uc.Register,
		update:       uc.Update,
		unblock:      uc.Unblock,
		appointments: uc.Appointments,
		logger:       logger,
	}
}

type RegisterClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.List(c, dto.Clients(clients))
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and phone are required")
		return
	}

	created, err := h.register.Execute(c.Request.Context(), req.Name, req.Phone)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.Created(c, dto.Client(created))
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), ucclient.UpdateClientInput{
		ID:    c.Param("id"),
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Client(updated))
}

func (h *ClientHandler) Unblock(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	updated, err := h.unblock.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Client(updated))
}

func (h *ClientHandler) Appointments(c *gin.Context) {
	aps, err := h.appointments.Execute(c.Request.Context(), c.Param("id"), queryBool(c, "only_future"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.List(c, dto.Appointments(aps))
}
