package client

import (
	"context"

	domainclient "github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// UpdateClientInput leaves a field untouched when its pointer is nil.
type UpdateClientInput struct {
	ID    string
	Name  *string
	Phone *string
}

type UpdateClient struct {
	clients domainclient.Store
}

func NewUpdateClient(clients domainclient.Store) *UpdateClient {
	return &UpdateClient{clients: clients}
}

func (uc *UpdateClient) Execute(ctx context.Context, in UpdateClientInput) (domainclient.Client, error) {
	if clean(in.ID) == "" {
		return domainclient.Client{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "client id is required")
	}

	c, err := uc.clients.FindByID(ctx, in.ID)
	if err != nil {
		return domainclient.Client{}, notFound(err)
	}

	if in.Name != nil {
		if clean(*in.Name) == "" {
			return domainclient.Client{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "name cannot be empty")
		}
		c.Name = clean(*in.Name)
	}
	if in.Phone != nil {
		if clean(*in.Phone) == "" {
			return domainclient.Client{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "phone cannot be empty")
		}
		c.Phone = clean(*in.Phone)
	}

	updated, err := uc.clients.Update(ctx, c)
	if err != nil {
		return domainclient.Client{}, duplicate(err)
	}
	return updated, nil
}
