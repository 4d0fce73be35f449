package client

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domainclient "github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
)

// RegisterNoShow increments the client's no-show counter and blocks the
// client once the counter reaches limit.
type RegisterNoShow struct {
	clients domainclient.Store
	audit   *audit.Dispatcher
}

func NewRegisterNoShow(clients domainclient.Store, audit *audit.Dispatcher) *RegisterNoShow {
	return &RegisterNoShow{clients: clients, audit: audit}
}

func (uc *RegisterNoShow) Execute(ctx context.Context, clientID string, limit int) (domainclient.Client, error) {
	if limit <= 0 {
		limit = domainclient.DefaultNoShowLimit
	}

	before, updated, err := uc.clients.RecordNoShow(ctx, clientID, limit)
	if err != nil {
		return domainclient.Client{}, notFound(err)
	}

	if !before.Blocked && updated.Blocked {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionClientBlocked,
			Entity:   "client",
			EntityID: updated.ID,
			Metadata: map[string]int{"no_shows": updated.NoShows, "limit": limit},
		})
	}
	return updated, nil
}
