package client

import "context"

type Store interface {
	FindByID(ctx context.Context, id string) (Client, error)
	FindByPhone(ctx context.Context, phone string) (Client, error)
	Create(ctx context.Context, c Client) (Client, error)
	Update(ctx context.Context, c Client) (Client, error)
	// RecordNoShow atomically applies WithNoShow(limit) to the stored row
	// and returns the row before and after.
	RecordNoShow(ctx context.Context, id string, limit int) (before, after Client, err error)
	List(ctx context.Context) ([]Client, error)
}
