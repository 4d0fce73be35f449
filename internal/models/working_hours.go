package models

import "time"

// WorkingHours holds one recurring window per barber and weekday.
type WorkingHours struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	BarberID string `gorm:"type:uuid;uniqueIndex:idx_working_hours_barber_weekday;not null" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:idx_working_hours_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
