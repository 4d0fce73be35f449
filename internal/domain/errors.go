package domain

import "errors"

var (
	// ErrNotFound is returned by every store when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique key (phone, barber weekday) is already taken.
	ErrDuplicate = errors.New("duplicate record")

	// ErrOverlap is returned when storage rejects an overlapping confirmed appointment.
	ErrOverlap = errors.New("overlapping appointment")
)
