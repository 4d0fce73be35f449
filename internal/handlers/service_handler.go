package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	uccatalog "github.com/BruksfildServices01/barbershop-booking/internal/usecase/catalog"
)

type ServiceHandler struct {
	create    *uccatalog.CreateService
	update    *uccatalog.UpdateService
	setActive *uccatalog.SetServiceActive
	logger    *slog.Logger
}

func NewServiceHandler(
	create *uccatalog.CreateService,
	update *uccatalog.UpdateService,
	setActive *uccatalog.SetServiceActive,
	logger *slog.Logger,
) *ServiceHandler {
	return &ServiceHandler{create: create, update: update, setActive: setActive, logger: logger}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Price           float64 `json:"price"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	DurationMinutes *int     `json:"duration_minutes"`
	Price           *float64 `json:"price"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and duration_minutes are required")
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), req.Name, req.DurationMinutes, req.Price)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.Created(c, dto.Service(svc))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), uccatalog.UpdateServiceInput{
		ID:              c.Param("id"),
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Service(svc))
}

func (h *ServiceHandler) SetActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "active is required")
		return
	}

	svc, err := h.setActive.Execute(c.Request.Context(), c.Param("id"), *req.Active)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Service(svc))
}
