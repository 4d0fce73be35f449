package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// translate maps driver errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case httperr.IsUniqueViolation(err):
		return domain.ErrDuplicate
	case httperr.IsExclusionConflict(err):
		return domain.ErrOverlap
	}
	return err
}

// mustAffect turns a zero-row update into ErrNotFound.
func mustAffect(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
