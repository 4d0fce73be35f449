package models

import "time"

type Client struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	NoShows int    `gorm:"not null;default:0" json:"no_shows"`
	Blocked bool   `gorm:"not null;default:false" json:"blocked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
