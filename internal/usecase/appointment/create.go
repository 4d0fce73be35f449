package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  string
	BarberID  string
	ServiceID string
	Start     time.Time
	Origin    domainappt.Origin
	Note      string

	// MinLeadTimeMinutes overrides the configured lead time when set.
	MinLeadTimeMinutes *int
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	appointments domainappt.Store
	clients      client.Store
	barbers      barber.Store
	services     catalog.Store
	locker       lock.Locker
	clock        timeutil.Clock
	audit        *audit.Dispatcher

	defaultLead int
}

func NewCreateAppointment(
	appointments domainappt.Store,
	clients client.Store,
	barbers barber.Store,
	services catalog.Store,
	locker lock.Locker,
	clock timeutil.Clock,
	audit *audit.Dispatcher,
	defaultLeadMinutes int,
) *CreateAppointment {
	if locker == nil {
		locker = lock.Noop{}
	}
	if clock == nil {
		clock = timeutil.WallClock{}
	}
	return &CreateAppointment{
		appointments: appointments,
		clients:      clients,
		barbers:      barbers,
		services:     services,
		locker:       locker,
		clock:        clock,
		audit:        audit,
		defaultLead:  defaultLeadMinutes,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor identity.Actor,
	in CreateAppointmentInput,
) (domainappt.Appointment, error) {

	if in.ClientID == "" || in.BarberID == "" || in.ServiceID == "" || in.Start.IsZero() {
		return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "client, barber, service and start are required")
	}
	if !in.Origin.Valid() {
		return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "origin must be client or barber")
	}

	// --------------------------------------------------
	// Client
	// --------------------------------------------------
	c, err := uc.clients.FindByID(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeClientNotFound, "client not found")
		}
		return domainappt.Appointment{}, err
	}
	if c.Blocked {
		return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeClientBlocked, "client is blocked")
	}

	// --------------------------------------------------
	// Barber
	// --------------------------------------------------
	b, err := uc.barbers.FindByID(ctx, in.BarberID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domainappt.Appointment{}, err
	}
	if err != nil || !b.Active {
		return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeBarberNotFound, "barber not found or inactive")
	}

	// --------------------------------------------------
	// Service
	// --------------------------------------------------
	svc, err := uc.services.FindByID(ctx, in.ServiceID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domainappt.Appointment{}, err
	}
	if err != nil || !svc.Active {
		return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeServiceNotFound, "service not found or inactive")
	}

	// --------------------------------------------------
	// Lead time
	// --------------------------------------------------
	lead := uc.defaultLead
	if in.MinLeadTimeMinutes != nil {
		lead = *in.MinLeadTimeMinutes
	}
	now := uc.clock.Now()
	if !timeutil.IsAtLeastMinutesFromNow(in.Start, lead, now) {
		return domainappt.Appointment{}, httperr.ErrBusiness(
			httperr.CodeInvalidLeadTime,
			fmt.Sprintf("appointments need at least %d minutes notice", lead),
		)
	}

	ap := domainappt.New(uuid.NewString(), b.ID, c.ID, svc.ID, in.Start, svc.DurationMinutes, in.Origin, in.Note)

	// --------------------------------------------------
	// One booking per client per day, under the client lock
	// --------------------------------------------------
	releaseClient, err := uc.locker.Lock(ctx, lock.ClientKey(c.ID))
	if err != nil {
		return domainappt.Appointment{}, fmt.Errorf("lock client %s: %w", c.ID, err)
	}
	defer releaseClient()

	existing, err := uc.appointments.FindForClient(ctx, c.ID)
	if err != nil {
		return domainappt.Appointment{}, err
	}
	for _, other := range existing {
		if other.Status.CountsForDailyLimit() && timeutil.SameDay(other.Start, ap.Start) {
			return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeClientAlreadyBookedThatDay, "client already has a booking that day")
		}
	}

	// --------------------------------------------------
	// Conflict check + insert under the barber lock
	// --------------------------------------------------
	release, err := uc.locker.Lock(ctx, lock.BarberKey(b.ID))
	if err != nil {
		return domainappt.Appointment{}, fmt.Errorf("lock barber %s: %w", b.ID, err)
	}
	defer release()

	conflicts, err := uc.appointments.FindOverlapping(ctx, b.ID, ap.Start, ap.End)
	if err != nil {
		return domainappt.Appointment{}, err
	}
	if len(conflicts) > 0 {
		return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeConflict, "time slot is no longer available")
	}

	created, err := uc.appointments.Create(ctx, ap)
	if err != nil {
		if errors.Is(err, domain.ErrOverlap) {
			return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeConflict, "time slot is no longer available")
		}
		return domainappt.Appointment{}, err
	}

	dispatch(uc.audit, actor.Role, actor.ID, audit.ActionAppointmentCreated, created)
	return created, nil
}
