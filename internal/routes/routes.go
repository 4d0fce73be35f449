package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
	ucappt "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	ucbarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
	uccatalog "github.com/BruksfildServices01/barbershop-booking/internal/usecase/catalog"
	ucclient "github.com/BruksfildServices01/barbershop-booking/internal/usecase/client"
)

type Stores struct {
	Appointments   domainappt.Store
	Clients        client.Store
	Barbers        barber.Store
	WorkingWindows barber.WorkingWindowStore
	Services       catalog.Store
}

// Dependencies are built in cmd/api and shared by every route.
type Dependencies struct {
	Config  *config.Config
	Logger  *slog.Logger
	Stores  Stores
	Locker  lock.Locker
	Clock   timeutil.Clock
	Tokens  *identity.TokenIssuer
	Audit   *audit.Dispatcher
	AuditDB audit.Reader
	Photos  ucbarber.PhotoProcessor
	Blobs   ucbarber.BlobStore
	Metrics *metrics.Metrics
}

func RegisterRoutes(r *gin.Engine, d Dependencies) {
	cfg := d.Config
	s := d.Stores

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RequestLogger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil && cfg.MetricsEnabled {
		r.GET(cfg.MetricsPath, gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	registerNoShowUC := ucclient.NewRegisterNoShow(s.Clients, d.Audit)

	createAppointmentUC := ucappt.NewCreateAppointment(
		s.Appointments,
		s.Clients,
		s.Barbers,
		s.Services,
		d.Locker,
		d.Clock,
		d.Audit,
		cfg.MinLeadTimeMinutes,
	)

	listSlotsUC := ucappt.NewListAvailableSlots(
		s.Appointments,
		s.Services,
		s.WorkingWindows,
		d.Clock,
		cfg.MinLeadTimeMinutes,
	)

	listClientAppointmentsUC := ucappt.NewListClientAppointments(s.Appointments, d.Clock)

	appointmentUCs := handlers.AppointmentUseCases{
		Create:   createAppointmentUC,
		Agenda:   ucappt.NewListDayAgenda(s.Appointments, s.Clients, s.Services),
		Cancel:   ucappt.NewCancelByBarber(s.Appointments, d.Audit),
		Conclude: ucappt.NewMarkConcluded(s.Appointments, d.Audit),
		NoShow:   ucappt.NewMarkNoShow(s.Appointments, registerNoShowUC, d.Audit),
		Purge:    ucappt.NewPurgeAppointment(s.Appointments, d.Audit),
	}

	// ======================================================
	// USE CASES — PEOPLE & CATALOG
	// ======================================================
	clientUCs := handlers.ClientUseCases{
		List:         ucclient.NewListClients(s.Clients),
		Register:     ucclient.NewRegisterClient(s.Clients),
		Update:       ucclient.NewUpdateClient(s.Clients),
		Unblock:      ucclient.NewUnblockClient(s.Clients, d.Audit),
		Appointments: listClientAppointmentsUC,
	}

	listBarbersUC := ucbarber.NewListActiveBarbers(s.Barbers)
	listServicesUC := uccatalog.NewListActiveServices(s.Services)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucbarber.NewRegisterBarber(s.Barbers),
		ucbarber.NewLoginBarber(s.Barbers, d.Tokens),
		ucclient.NewLoginClient(s.Clients, d.Tokens),
		d.Logger,
	)

	publicHandler := handlers.NewPublicHandler(listBarbersUC, listServicesUC, listSlotsUC, d.Logger)

	meHandler := handlers.NewMeHandler(
		createAppointmentUC,
		listClientAppointmentsUC,
		ucappt.NewCancelByClient(s.Appointments, d.Audit),
		clientUCs.Update,
		d.Logger,
	)

	appointmentHandler := handlers.NewAppointmentHandler(appointmentUCs, cfg.NoShowLimit, d.Logger)
	clientHandler := handlers.NewClientHandler(clientUCs, d.Logger)

	barberHandler := handlers.NewBarberHandler(
		ucbarber.NewUpdateBarber(s.Barbers),
		ucbarber.NewSetBarberActive(s.Barbers),
		ucbarber.NewUploadBarberPhoto(s.Barbers, d.Photos, d.Blobs),
		d.Logger,
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(
		ucbarber.NewConfigureWorkingWindow(s.Barbers, s.WorkingWindows),
		ucbarber.NewListWorkingWindows(s.WorkingWindows),
		d.Logger,
	)

	serviceHandler := handlers.NewServiceHandler(
		uccatalog.NewCreateService(s.Services),
		uccatalog.NewUpdateService(s.Services),
		uccatalog.NewSetServiceActive(s.Services),
		d.Logger,
	)

	auth := middleware.AuthMiddleware(d.Tokens)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/barbers/register", authHandler.RegisterBarber)
		api.POST("/auth/barbers/login", authHandler.LoginBarber)
		api.POST("/auth/clients/login", authHandler.LoginClient)

		api.GET("/barbers", publicHandler.ListBarbers)
		api.GET("/services", publicHandler.ListServices)
		api.GET("/availability", publicHandler.Availability)

		// ------------------------------
		// CLIENT TOKEN
		// ------------------------------
		me := api.Group("/me")
		me.Use(auth, middleware.RequireRole(identity.RoleClient))
		{
			me.PATCH("", meHandler.UpdateProfile)
			me.POST("/appointments", meHandler.CreateAppointment)
			me.GET("/appointments", meHandler.ListAppointments)
			me.PATCH("/appointments/:id/cancel", meHandler.CancelAppointment)
		}

		// ------------------------------
		// BARBER TOKEN
		// ------------------------------
		staff := api.Group("/barber")
		staff.Use(auth, middleware.RequireRole(identity.RoleBarber))
		{
			staff.POST("/appointments", appointmentHandler.Create)
			staff.GET("/agenda", appointmentHandler.Agenda)
			staff.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			staff.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			staff.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)
			staff.DELETE("/appointments/:id", appointmentHandler.Delete)

			staff.GET("/working-hours", workingHoursHandler.Get)
			staff.PUT("/working-hours", workingHoursHandler.Update)

			staff.PUT("/photo", barberHandler.UploadPhoto)
			staff.PATCH("/barbers/:id", barberHandler.Update)
			staff.PATCH("/barbers/:id/active", barberHandler.SetActive)

			staff.POST("/services", serviceHandler.Create)
			staff.PATCH("/services/:id", serviceHandler.Update)
			staff.PATCH("/services/:id/active", serviceHandler.SetActive)

			staff.GET("/clients", clientHandler.List)
			staff.POST("/clients", clientHandler.Create)
			staff.PATCH("/clients/:id", clientHandler.Update)
			staff.PATCH("/clients/:id/unblock", clientHandler.Unblock)
			staff.GET("/clients/:id/appointments", clientHandler.Appointments)

			if d.AuditDB != nil {
				staff.GET("/audit-logs", handlers.NewAuditLogsHandler(d.AuditDB, d.Logger).List)
			}
		}
	}
}
