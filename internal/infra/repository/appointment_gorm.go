package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

var _ appointment.Store = (*AppointmentGormRepository)(nil)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

// Create re-checks for overlap inside the insert transaction, locking the
// rows it finds. The exclusion constraint catches concurrent inserts the
// row lock cannot see.
func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap appointment.Appointment,
) (appointment.Appointment, error) {

	row := appointmentToModel(ap)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ap.Status == appointment.StatusConfirmed {
			var count int64
			if err := tx.
				Model(&models.Appointment{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(
					"barber_id = ? AND status = ? AND start_time < ? AND end_time > ?",
					ap.BarberID,
					string(appointment.StatusConfirmed),
					ap.End,
					ap.Start,
				).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ErrOverlap
			}
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		return appointment.Appointment{}, translate(err)
	}

	return appointmentFromModel(row), nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap appointment.Appointment,
) (appointment.Appointment, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status":     string(ap.Status),
			"notes":      ap.Note,
			"start_time": ap.Start,
			"end_time":   ap.End,
		})
	if err := mustAffect(res); err != nil {
		return appointment.Appointment{}, err
	}
	return r.FindByID(ctx, ap.ID)
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id string) error {
	return mustAffect(r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Appointment{}))
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) FindByID(ctx context.Context, id string) (appointment.Appointment, error) {
	var row models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return appointment.Appointment{}, translate(err)
	}
	return appointmentFromModel(row), nil
}

func (r *AppointmentGormRepository) FindForBarberOnDate(
	ctx context.Context,
	barberID string,
	date time.Time,
) ([]appointment.Appointment, error) {

	start := timeutil.StartOfDay(date)
	end := start.AddDate(0, 0, 1)

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND start_time >= ? AND start_time < ?", barberID, start, end).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return appointmentsFromModels(rows), nil
}

func (r *AppointmentGormRepository) FindOverlapping(
	ctx context.Context,
	barberID string,
	start time.Time,
	end time.Time,
) ([]appointment.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			barberID,
			string(appointment.StatusConfirmed),
			end,
			start,
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return appointmentsFromModels(rows), nil
}

func (r *AppointmentGormRepository) FindForClient(
	ctx context.Context,
	clientID string,
) ([]appointment.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return appointmentsFromModels(rows), nil
}
