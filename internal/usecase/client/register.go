package client

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	domainclient "github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

type RegisterClient struct {
	clients domainclient.Store
}

func NewRegisterClient(clients domainclient.Store) *RegisterClient {
	return &RegisterClient{clients: clients}
}

func (uc *RegisterClient) Execute(ctx context.Context, name, phone string) (domainclient.Client, error) {
	name, phone = clean(name), clean(phone)
	if name == "" || phone == "" {
		return domainclient.Client{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "name and phone are required")
	}

	if _, err := uc.clients.FindByPhone(ctx, phone); err == nil {
		return domainclient.Client{}, httperr.ErrBusiness(httperr.CodeClientAlreadyExists, "phone already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domainclient.Client{}, err
	}

	created, err := uc.clients.Create(ctx, domainclient.Client{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
	})
	if err != nil {
		return domainclient.Client{}, duplicate(err)
	}
	return created, nil
}
