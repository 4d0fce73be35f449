package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	domaincatalog "github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeServiceNotFound, "service not found")
	}
	return err
}

func validate(name string, duration int, price float64) error {
	switch {
	case strings.TrimSpace(name) == "":
		return httperr.ErrBusiness(httperr.CodeInvalidInput, "name is required")
	case duration <= 0:
		return httperr.ErrBusiness(httperr.CodeInvalidInput, "duration must be greater than zero")
	case price < 0:
		return httperr.ErrBusiness(httperr.CodeInvalidInput, "price cannot be negative")
	}
	return nil
}

// ======================================================
// Create
// ======================================================

type CreateService struct {
	services domaincatalog.Store
}

func NewCreateService(services domaincatalog.Store) *CreateService {
	return &CreateService{services: services}
}

func (uc *CreateService) Execute(ctx context.Context, name string, durationMinutes int, price float64) (domaincatalog.Service, error) {
	if err := validate(name, durationMinutes, price); err != nil {
		return domaincatalog.Service{}, err
	}

	return uc.services.Create(ctx, domaincatalog.Service{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(name),
		DurationMinutes: durationMinutes,
		Price:           price,
		Active:          true,
	})
}

// ======================================================
// Update
// ======================================================

// UpdateServiceInput leaves a field untouched when its pointer is nil.
type UpdateServiceInput struct {
	ID              string
	Name            *string
	DurationMinutes *int
	Price           *float64
}

type UpdateService struct {
	services domaincatalog.Store
}

func NewUpdateService(services domaincatalog.Store) *UpdateService {
	return &UpdateService{services: services}
}

func (uc *UpdateService) Execute(ctx context.Context, in UpdateServiceInput) (domaincatalog.Service, error) {
	if strings.TrimSpace(in.ID) == "" {
		return domaincatalog.Service{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "service id is required")
	}

	svc, err := uc.services.FindByID(ctx, in.ID)
	if err != nil {
		return domaincatalog.Service{}, notFound(err)
	}

	if in.Name != nil {
		svc.Name = strings.TrimSpace(*in.Name)
	}
	if in.DurationMinutes != nil {
		svc.DurationMinutes = *in.DurationMinutes
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if err := validate(svc.Name, svc.DurationMinutes, svc.Price); err != nil {
		return domaincatalog.Service{}, err
	}

	return uc.services.Update(ctx, svc)
}

// ======================================================
// Activate / deactivate, list
// ======================================================

type SetServiceActive struct {
	services domaincatalog.Store
}

func NewSetServiceActive(services domaincatalog.Store) *SetServiceActive {
	return &SetServiceActive{services: services}
}

func (uc *SetServiceActive) Execute(ctx context.Context, id string, active bool) (domaincatalog.Service, error) {
	svc, err := uc.services.FindByID(ctx, id)
	if err != nil {
		return domaincatalog.Service{}, notFound(err)
	}
	svc.Active = active
	return uc.services.Update(ctx, svc)
}

type ListActiveServices struct {
	services domaincatalog.Store
}

func NewListActiveServices(services domaincatalog.Store) *ListActiveServices {
	return &ListActiveServices{services: services}
}

func (uc *ListActiveServices) Execute(ctx context.Context) ([]domaincatalog.Service, error) {
	return uc.services.ListActive(ctx)
}
