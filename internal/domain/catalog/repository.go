package catalog

import "context"

type Store interface {
	FindByID(ctx context.Context, id string) (Service, error)
	ListActive(ctx context.Context) ([]Service, error)
	Create(ctx context.Context, s Service) (Service, error)
	Update(ctx context.Context, s Service) (Service, error)
}
