package barber

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainbarber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/media"
)

type UploadBarberPhoto struct {
	barbers   domainbarber.Store
	processor PhotoProcessor
	blobs     BlobStore
}

func NewUploadBarberPhoto(barbers domainbarber.Store, processor PhotoProcessor, blobs BlobStore) *UploadBarberPhoto {
	return &UploadBarberPhoto{barbers: barbers, processor: processor, blobs: blobs}
}

func (uc *UploadBarberPhoto) Execute(ctx context.Context, barberID string, data []byte) (domainbarber.Barber, error) {
	if len(data) == 0 {
		return domainbarber.Barber{}, httperr.ErrBusiness(httperr.CodeInvalidImage, "empty image")
	}

	b, err := uc.barbers.FindByID(ctx, barberID)
	if err != nil {
		return domainbarber.Barber{}, notFound(err)
	}

	encoded, err := uc.processor.Process(data)
	if err != nil {
		if errors.Is(err, media.ErrInvalidImage) {
			return domainbarber.Barber{}, httperr.ErrBusiness(httperr.CodeInvalidImage, "unsupported or corrupt image")
		}
		return domainbarber.Barber{}, err
	}

	key := fmt.Sprintf("barbers/%s/%s.webp", b.ID, uuid.NewString())
	url, err := uc.blobs.Put(ctx, key, encoded, media.WebPContentType)
	if err != nil {
		return domainbarber.Barber{}, err
	}

	b.PhotoURL = url
	return uc.barbers.Update(ctx, b)
}
