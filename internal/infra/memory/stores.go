// Package memory holds map-backed stores used by tests and by
// STORAGE_DRIVER=memory. Data does not survive a restart.
package memory

type Stores struct {
	Appointments   *AppointmentStore
	Clients        *ClientStore
	Barbers        *BarberStore
	WorkingWindows *WorkingWindowStore
	Services       *ServiceStore
}

func NewStores() *Stores {
	return &Stores{
		Appointments:   NewAppointmentStore(),
		Clients:        NewClientStore(),
		Barbers:        NewBarberStore(),
		WorkingWindows: NewWorkingWindowStore(),
		Services:       NewServiceStore(),
	}
}
