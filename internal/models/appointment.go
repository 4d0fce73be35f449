package models

import "time"

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID string `gorm:"type:uuid;index:idx_appointments_barber_start;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ClientID string `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceID string  `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StartTime time.Time `gorm:"type:timestamp;index:idx_appointments_barber_start;not null" json:"start_time"`
	EndTime   time.Time `gorm:"type:timestamp;not null" json:"end_time"`

	Status string `gorm:"size:30;default:'CONFIRMED';not null" json:"status"`
	Origin string `gorm:"size:10;not null" json:"origin"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
