package barber

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	domainbarber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

type LoginResult struct {
	Barber domainbarber.Barber
	Token  string
}

type LoginBarber struct {
	barbers domainbarber.Store
	tokens  TokenIssuer
}

func NewLoginBarber(barbers domainbarber.Store, tokens TokenIssuer) *LoginBarber {
	return &LoginBarber{barbers: barbers, tokens: tokens}
}

func (uc *LoginBarber) Execute(ctx context.Context, phone, password string) (LoginResult, error) {
	invalid := httperr.ErrBusiness(httperr.CodeInvalidCredentials, "invalid phone or password")

	b, err := uc.barbers.FindByPhone(ctx, clean(phone))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LoginResult{}, invalid
		}
		return LoginResult{}, err
	}

	if b.PasswordHash == "" || !b.Active {
		return LoginResult{}, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, invalid
	}

	token, err := uc.tokens.Issue(identity.Actor{Role: identity.RoleBarber, ID: b.ID})
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Barber: b, Token: token}, nil
}
