package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

var _ client.Store = (*ClientGormRepository)(nil)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) FindByID(ctx context.Context, id string) (client.Client, error) {
	var row models.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return client.Client{}, translate(err)
	}
	return clientFromModel(row), nil
}

func (r *ClientGormRepository) FindByPhone(ctx context.Context, phone string) (client.Client, error) {
	var row models.Client
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&row).Error; err != nil {
		return client.Client{}, translate(err)
	}
	return clientFromModel(row), nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	row := clientToModel(c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return client.Client{}, translate(err)
	}
	return clientFromModel(row), nil
}

func (r *ClientGormRepository) Update(ctx context.Context, c client.Client) (client.Client, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":     c.Name,
			"phone":    c.Phone,
			"no_shows": c.NoShows,
			"blocked":  c.Blocked,
		})
	if err := mustAffect(res); err != nil {
		return client.Client{}, err
	}
	return r.FindByID(ctx, c.ID)
}

func (r *ClientGormRepository) RecordNoShow(ctx context.Context, id string, limit int) (client.Client, client.Client, error) {
	var before, after client.Client

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.Client
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&row).Error; err != nil {
			return err
		}
		before = clientFromModel(row)
		after = before.WithNoShow(limit)

		res := tx.Model(&models.Client{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"no_shows": gorm.Expr("no_shows + 1"),
				"blocked":  after.Blocked,
			})
		return mustAffect(res)
	})
	if err != nil {
		return client.Client{}, client.Client{}, translate(err)
	}
	return before, after, nil
}

func (r *ClientGormRepository) List(ctx context.Context) ([]client.Client, error) {
	var rows []models.Client
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	out := make([]client.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, clientFromModel(m))
	}
	return out, nil
}
