package models

import "time"

type Barber struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Phone        string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	PhotoURL     string `gorm:"size:255" json:"photo_url"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
