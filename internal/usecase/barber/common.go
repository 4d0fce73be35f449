package barber

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

const MinPasswordLength = 6

type TokenIssuer interface {
	Issue(actor identity.Actor) (string, error)
}

// PhotoProcessor turns an uploaded image into the stored format.
type PhotoProcessor interface {
	Process(data []byte) ([]byte, error)
}

type BlobStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeBarberNotFound, "barber not found")
	}
	return err
}

func duplicatePhone(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return httperr.ErrBusiness(httperr.CodeInvalidInput, "phone already registered")
	}
	return err
}

func clean(s string) string {
	return strings.TrimSpace(s)
}
