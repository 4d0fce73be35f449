package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var _ catalog.Store = (*ServiceGormRepository)(nil)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) FindByID(ctx context.Context, id string) (catalog.Service, error) {
	var row models.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return catalog.Service{}, translate(err)
	}
	return serviceFromModel(row), nil
}

func (r *ServiceGormRepository) ListActive(ctx context.Context) ([]catalog.Service, error) {
	var rows []models.Service
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	out := make([]catalog.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, serviceFromModel(m))
	}
	return out, nil
}

func (r *ServiceGormRepository) Create(ctx context.Context, s catalog.Service) (catalog.Service, error) {
	row := serviceToModel(s)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return catalog.Service{}, translate(err)
	}
	return serviceFromModel(row), nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, s catalog.Service) (catalog.Service, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":         s.Name,
			"duration_min": s.DurationMinutes,
			"price":        s.Price,
			"active":       s.Active,
		})
	if err := mustAffect(res); err != nil {
		return catalog.Service{}, err
	}
	return r.FindByID(ctx, s.ID)
}
