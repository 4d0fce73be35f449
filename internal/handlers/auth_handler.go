package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	ucbarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
	ucclient "github.com/BruksfildServices01/barbershop-booking/internal/usecase/client"
)

type AuthHandler struct {
	registerBarber *ucbarber.RegisterBarber
	loginBarber    *ucbarber.LoginBarber
	loginClient    *ucclient.LoginClient
	logger         *slog.Logger
}

func NewAuthHandler(
	registerBarber *ucbarber.RegisterBarber,
	loginBarber *ucbarber.LoginBarber,
	loginClient *ucclient.LoginClient,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		registerBarber: registerBarber,
		loginBarber:    loginBarber,
		loginClient:    loginClient,
		logger:         logger,
	}
}

// --------- Requests ---------

type RegisterBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type BarberLoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ClientLoginRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterBarber(c *gin.Context) {
	var req RegisterBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name, phone and password are required")
		return
	}

	b, err := h.registerBarber.Execute(c.Request.Context(), req.Name, req.Phone, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.Created(c, dto.Barber(b))
}

func (h *AuthHandler) LoginBarber(c *gin.Context) {
	var req BarberLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "phone and password are required")
		return
	}

	res, err := h.loginBarber.Execute(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.BarberAuthDTO{Token: res.Token, Barber: dto.Barber(res.Barber)})
}

func (h *AuthHandler) LoginClient(c *gin.Context) {
	var req ClientLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "phone is required")
		return
	}

	res, err := h.loginClient.Execute(c.Request.Context(), req.Name, req.Phone)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.ClientAuthDTO{Token: res.Token, Client: dto.Client(res.Client)})
}
