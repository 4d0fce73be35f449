package client

import (
	"context"

	domainclient "github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
)

type ListClients struct {
	clients domainclient.Store
}

func NewListClients(clients domainclient.Store) *ListClients {
	return &ListClients{clients: clients}
}

func (uc *ListClients) Execute(ctx context.Context) ([]domainclient.Client, error) {
	return uc.clients.List(ctx)
}
