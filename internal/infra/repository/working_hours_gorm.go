package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var _ barber.WorkingWindowStore = (*WorkingHoursGormRepository)(nil)

type WorkingHoursGormRepository struct {
	db *gorm.DB
}

func NewWorkingHoursGormRepository(db *gorm.DB) *WorkingHoursGormRepository {
	return &WorkingHoursGormRepository{db: db}
}

func (r *WorkingHoursGormRepository) ListByBarberAndWeekday(
	ctx context.Context,
	barberID string,
	weekday int,
) ([]barber.WorkingWindow, error) {
	return r.list(r.db.WithContext(ctx).Where("barber_id = ? AND weekday = ?", barberID, weekday))
}

func (r *WorkingHoursGormRepository) ListByBarber(ctx context.Context, barberID string) ([]barber.WorkingWindow, error) {
	return r.list(r.db.WithContext(ctx).Where("barber_id = ?", barberID))
}

func (r *WorkingHoursGormRepository) list(q *gorm.DB) ([]barber.WorkingWindow, error) {
	var rows []models.WorkingHours
	if err := q.Order("weekday ASC, start_time ASC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]barber.WorkingWindow, 0, len(rows))
	for _, m := range rows {
		w, err := windowFromModel(m)
		if err != nil {
			return nil, fmt.Errorf("working hours %s: %w", m.ID, err)
		}
		out = append(out, w)
	}
	return out, nil
}

func (r *WorkingHoursGormRepository) Create(ctx context.Context, w barber.WorkingWindow) (barber.WorkingWindow, error) {
	row := windowToModel(w)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return barber.WorkingWindow{}, translate(err)
	}
	return w, nil
}

func (r *WorkingHoursGormRepository) Update(ctx context.Context, w barber.WorkingWindow) (barber.WorkingWindow, error) {
	res := r.db.WithContext(ctx).
		Model(&models.WorkingHours{}).
		Where("id = ?", w.ID).
		Updates(map[string]any{
			"start_time": w.Start.String(),
			"end_time":   w.End.String(),
		})
	if err := mustAffect(res); err != nil {
		return barber.WorkingWindow{}, err
	}
	return w, nil
}
