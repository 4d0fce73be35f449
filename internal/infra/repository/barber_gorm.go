package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var _ barber.Store = (*BarberGormRepository)(nil)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) FindByID(ctx context.Context, id string) (barber.Barber, error) {
	var row models.Barber
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return barber.Barber{}, translate(err)
	}
	return barberFromModel(row), nil
}

func (r *BarberGormRepository) FindByPhone(ctx context.Context, phone string) (barber.Barber, error) {
	var row models.Barber
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&row).Error; err != nil {
		return barber.Barber{}, translate(err)
	}
	return barberFromModel(row), nil
}

func (r *BarberGormRepository) ListActive(ctx context.Context) ([]barber.Barber, error) {
	var rows []models.Barber
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	out := make([]barber.Barber, 0, len(rows))
	for _, m := range rows {
		out = append(out, barberFromModel(m))
	}
	return out, nil
}

func (r *BarberGormRepository) Create(ctx context.Context, b barber.Barber) (barber.Barber, error) {
	row := barberToModel(b)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return barber.Barber{}, translate(err)
	}
	return barberFromModel(row), nil
}

func (r *BarberGormRepository) Update(ctx context.Context, b barber.Barber) (barber.Barber, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"name":          b.Name,
			"phone":         b.Phone,
			"password_hash": b.PasswordHash,
			"photo_url":     b.PhotoURL,
			"active":        b.Active,
		})
	if err := mustAffect(res); err != nil {
		return barber.Barber{}, err
	}
	return r.FindByID(ctx, b.ID)
}
