package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
	ucbarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
)

type WorkingHoursHandler struct {
	configure *ucbarber.ConfigureWorkingWindow
	list      *ucbarber.ListWorkingWindows
	logger    *slog.Logger
}

func NewWorkingHoursHandler(
	configure *ucbarber.ConfigureWorkingWindow,
	list *ucbarber.ListWorkingWindows,
	logger *slog.Logger,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{configure: configure, list: list, logger: logger}
}

type WorkingDayConfig struct {
	Weekday *int   `json:"weekday" binding:"required"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	weekday, err := queryInt(c, "weekday")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	windows, err := h.list.Execute(c.Request.Context(), actor.ID, weekday)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.List(c, dto.WorkingWindows(windows))
}

// Update replaces the window of one weekday.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	actor, _ := middleware.ActorFrom(c)

	var req WorkingDayConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "weekday, start and end are required")
		return
	}

	start, err := timeutil.ParseTimeOfDay(req.Start)
	if err != nil {
		badRequest(c, "start must be HH:MM")
		return
	}
	end, err := timeutil.ParseTimeOfDay(req.End)
	if err != nil {
		badRequest(c, "end must be HH:MM")
		return
	}

	w, err := h.configure.Execute(c.Request.Context(), actor.ID, *req.Weekday, start, end)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	httpresp.OK(c, dto.WorkingWindow(w))
}
