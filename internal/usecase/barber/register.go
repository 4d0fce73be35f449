package barber

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainbarber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

type RegisterBarber struct {
	barbers domainbarber.Store
}

func NewRegisterBarber(barbers domainbarber.Store) *RegisterBarber {
	return &RegisterBarber{barbers: barbers}
}

func (uc *RegisterBarber) Execute(ctx context.Context, name, phone, password string) (domainbarber.Barber, error) {
	name, phone = clean(name), clean(phone)
	if name == "" || phone == "" {
		return domainbarber.Barber{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "name and phone are required")
	}
	if len(password) < MinPasswordLength {
		return domainbarber.Barber{}, httperr.ErrBusiness(
			httperr.CodeInvalidInput,
			fmt.Sprintf("password must have at least %d characters", MinPasswordLength),
		)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domainbarber.Barber{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := uc.barbers.Create(ctx, domainbarber.Barber{
		ID:           uuid.NewString(),
		Name:         name,
		Phone:        phone,
		Active:       true,
		PasswordHash: string(hashed),
	})
	if err != nil {
		return domainbarber.Barber{}, duplicatePhone(err)
	}
	return created, nil
}
