package barber

import (
	"context"

	domainbarber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

type UpdateBarberInput struct {
	ID    string
	Name  *string
	Phone *string
}

type UpdateBarber struct {
	barbers domainbarber.Store
}

func NewUpdateBarber(barbers domainbarber.Store) *UpdateBarber {
	return &UpdateBarber{barbers: barbers}
}

func (uc *UpdateBarber) Execute(ctx context.Context, in UpdateBarberInput) (domainbarber.Barber, error) {
	if clean(in.ID) == "" {
		return domainbarber.Barber{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "barber id is required")
	}

	b, err := uc.barbers.FindByID(ctx, in.ID)
	if err != nil {
		return domainbarber.Barber{}, notFound(err)
	}

	if in.Name != nil {
		if clean(*in.Name) == "" {
			return domainbarber.Barber{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "name cannot be empty")
		}
		b.Name = clean(*in.Name)
	}
	if in.Phone != nil {
		if clean(*in.Phone) == "" {
			return domainbarber.Barber{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "phone cannot be empty")
		}
		b.Phone = clean(*in.Phone)
	}

	updated, err := uc.barbers.Update(ctx, b)
	if err != nil {
		return domainbarber.Barber{}, duplicatePhone(err)
	}
	return updated, nil
}

type SetBarberActive struct {
	barbers domainbarber.Store
}

func NewSetBarberActive(barbers domainbarber.Store) *SetBarberActive {
	return &SetBarberActive{barbers: barbers}
}

func (uc *SetBarberActive) Execute(ctx context.Context, id string, active bool) (domainbarber.Barber, error) {
	b, err := uc.barbers.FindByID(ctx, id)
	if err != nil {
		return domainbarber.Barber{}, notFound(err)
	}
	b.Active = active
	return uc.barbers.Update(ctx, b)
}

type ListActiveBarbers struct {
	barbers domainbarber.Store
}

func NewListActiveBarbers(barbers domainbarber.Store) *ListActiveBarbers {
	return &ListActiveBarbers{barbers: barbers}
}

func (uc *ListActiveBarbers) Execute(ctx context.Context) ([]domainbarber.Barber, error) {
	return uc.barbers.ListActive(ctx)
}
