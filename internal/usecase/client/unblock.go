package client

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domainclient "github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

// UnblockClient clears the blocked flag. The no-show counter is kept.
type UnblockClient struct {
	clients domainclient.Store
	audit   *audit.Dispatcher
}

func NewUnblockClient(clients domainclient.Store, audit *audit.Dispatcher) *UnblockClient {
	return &UnblockClient{clients: clients, audit: audit}
}

func (uc *UnblockClient) Execute(ctx context.Context, actor identity.Actor, id string) (domainclient.Client, error) {
	c, err := uc.clients.FindByID(ctx, id)
	if err != nil {
		return domainclient.Client{}, notFound(err)
	}

	updated, err := uc.clients.Update(ctx, c.Unblocked())
	if err != nil {
		return domainclient.Client{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorRole: string(actor.Role),
		ActorID:   actor.ID,
		Action:    audit.ActionClientUnblocked,
		Entity:    "client",
		EntityID:  updated.ID,
	})
	return updated, nil
}
