package repository

import "gorm.io/gorm"

// Stores groups the gorm-backed implementation of every store.
type Stores struct {
	Appointments   *AppointmentGormRepository
	Clients        *ClientGormRepository
	Barbers        *BarberGormRepository
	WorkingWindows *WorkingHoursGormRepository
	Services       *ServiceGormRepository
}

func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Appointments:   NewAppointmentGormRepository(db),
		Clients:        NewClientGormRepository(db),
		Barbers:        NewBarberGormRepository(db),
		WorkingWindows: NewWorkingHoursGormRepository(db),
		Services:       NewServiceGormRepository(db),
	}
}
