package models

import "time"

type Service struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	DurationMin int     `gorm:"not null" json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
