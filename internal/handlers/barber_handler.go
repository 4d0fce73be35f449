package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucbarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
)

const MaxPhotoBytes = 8 << 20

type BarberHandler struct {
	update    *ucbarber.UpdateBarber
	setActive *ucbarber.SetBarberActive
	photo     *ucbarber.UploadBarberPhoto
	logger    *slog.Logger
}

func NewBarberHandler(
	update *ucbarber.UpdateBarber,
	setActive *ucbarber.SetBarberActive,
	photo *ucbarber.UploadBarberPhoto,
	logger *slog.Logger,
) *BarberHandler {
	return &BarberHandler{update: update, setActive: setActive, photo: photo, logger: logger}
}

type UpdateBarberRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *BarberHandler) Update(c *gin.Context) {
	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), ucbarber.UpdateBarberInput{
		ID:    c.Param("id"),
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Barber(updated))
}

func (h *BarberHandler) SetActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "active is required")
		return
	}

	updated, err := h.setActive.Execute(c.Request.Context(), c.Param("id"), *req.Active)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Barber(updated))
}

// UploadPhoto accepts a multipart "photo" field or a raw image body.
func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	data, err := readPhoto(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	updated, err := h.photo.Execute(c.Request.Context(), actor.ID, data)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.Barber(updated))
}

func readPhoto(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxPhotoBytes)

	var r io.Reader = c.Request.Body
	if fh, err := c.FormFile("photo"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.New("could not read photo")
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("photo too large or unreadable")
	}
	if len(data) == 0 {
		return nil, errors.New("photo is required")
	}
	return data, nil
}
