package barber

import "context"

type Store interface {
	FindByID(ctx context.Context, id string) (Barber, error)
	FindByPhone(ctx context.Context, phone string) (Barber, error)
	ListActive(ctx context.Context) ([]Barber, error)
	Create(ctx context.Context, b Barber) (Barber, error)
	Update(ctx context.Context, b Barber) (Barber, error)
}

type WorkingWindowStore interface {
	ListByBarberAndWeekday(ctx context.Context, barberID string, weekday int) ([]WorkingWindow, error)
	ListByBarber(ctx context.Context, barberID string) ([]WorkingWindow, error)
	Create(ctx context.Context, w WorkingWindow) (WorkingWindow, error)
	Update(ctx context.Context, w WorkingWindow) (WorkingWindow, error)
}
