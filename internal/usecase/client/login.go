package client

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	domainclient "github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

type LoginResult struct {
	Client domainclient.Client
	Token  string
}

// LoginClient identifies a client by phone, creating the record on first
// contact. A different non-empty name replaces the stored one.
type LoginClient struct {
	clients domainclient.Store
	tokens  TokenIssuer
}

func NewLoginClient(clients domainclient.Store, tokens TokenIssuer) *LoginClient {
	return &LoginClient{clients: clients, tokens: tokens}
}

func (uc *LoginClient) Execute(ctx context.Context, name, phone string) (LoginResult, error) {
	name, phone = clean(name), clean(phone)
	if phone == "" {
		return LoginResult{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "phone is required")
	}

	c, err := uc.clients.FindByPhone(ctx, phone)
	switch {
	case err == nil:
		if name != "" && name != c.Name {
			c.Name = name
			if c, err = uc.clients.Update(ctx, c); err != nil {
				return LoginResult{}, err
			}
		}
	case errors.Is(err, domain.ErrNotFound):
		if name == "" {
			name = DefaultName
		}
		c, err = uc.clients.Create(ctx, domainclient.Client{
			ID:    uuid.NewString(),
			Name:  name,
			Phone: phone,
		})
		if err != nil {
			return LoginResult{}, duplicate(err)
		}
	default:
		return LoginResult{}, err
	}

	token, err := uc.tokens.Issue(identity.Actor{Role: identity.RoleClient, ID: c.ID})
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Client: c, Token: token}, nil
}
