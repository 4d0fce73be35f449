package client

import (
	"errors"
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

// DefaultName is used when a client logs in by phone without a name.
const DefaultName = "Cliente"

// TokenIssuer signs access tokens for a logged-in actor.
type TokenIssuer interface {
	Issue(actor identity.Actor) (string, error)
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeClientNotFound, "client not found")
	}
	return err
}

func duplicate(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return httperr.ErrBusiness(httperr.CodeClientAlreadyExists, "phone already registered")
	}
	return err
}

func clean(s string) string {
	return strings.TrimSpace(s)
}
