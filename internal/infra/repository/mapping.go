package repository

import (
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

func appointmentToModel(ap appointment.Appointment) models.Appointment {
	return models.Appointment{
		ID:        ap.ID,
		BarberID:  ap.BarberID,
		ClientID:  ap.ClientID,
		ServiceID: ap.ServiceID,
		StartTime: ap.Start,
		EndTime:   ap.End,
		Status:    string(ap.Status),
		Origin:    string(ap.Origin),
		Notes:     ap.Note,
	}
}

func appointmentFromModel(m models.Appointment) appointment.Appointment {
	return appointment.Appointment{
		ID:        m.ID,
		BarberID:  m.BarberID,
		ClientID:  m.ClientID,
		ServiceID: m.ServiceID,
		Start:     m.StartTime,
		End:       m.EndTime,
		Status:    appointment.Status(m.Status),
		Origin:    appointment.Origin(m.Origin),
		Note:      m.Notes,
	}
}

func appointmentsFromModels(rows []models.Appointment) []appointment.Appointment {
	out := make([]appointment.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, appointmentFromModel(m))
	}
	return out
}

func clientToModel(c client.Client) models.Client {
	return models.Client{ID: c.ID, Name: c.Name, Phone: c.Phone, NoShows: c.NoShows, Blocked: c.Blocked}
}

func clientFromModel(m models.Client) client.Client {
	return client.Client{ID: m.ID, Name: m.Name, Phone: m.Phone, NoShows: m.NoShows, Blocked: m.Blocked}
}

func barberToModel(b barber.Barber) models.Barber {
	return models.Barber{
		ID:           b.ID,
		Name:         b.Name,
		Phone:        b.Phone,
		PasswordHash: b.PasswordHash,
		PhotoURL:     b.PhotoURL,
		Active:       b.Active,
	}
}

func barberFromModel(m models.Barber) barber.Barber {
	return barber.Barber{
		ID:           m.ID,
		Name:         m.Name,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		PhotoURL:     m.PhotoURL,
		Active:       m.Active,
	}
}

func serviceToModel(s catalog.Service) models.Service {
	return models.Service{ID: s.ID, Name: s.Name, DurationMin: s.DurationMinutes, Price: s.Price, Active: s.Active}
}

func serviceFromModel(m models.Service) catalog.Service {
	return catalog.Service{ID: m.ID, Name: m.Name, DurationMinutes: m.DurationMin, Price: m.Price, Active: m.Active}
}

func windowToModel(w barber.WorkingWindow) models.WorkingHours {
	return models.WorkingHours{
		ID:        w.ID,
		BarberID:  w.BarberID,
		Weekday:   w.Weekday,
		StartTime: w.Start.String(),
		EndTime:   w.End.String(),
	}
}

func windowFromModel(m models.WorkingHours) (barber.WorkingWindow, error) {
	start, err := timeutil.ParseTimeOfDay(m.StartTime)
	if err != nil {
		return barber.WorkingWindow{}, err
	}
	end, err := timeutil.ParseTimeOfDay(m.EndTime)
	if err != nil {
		return barber.WorkingWindow{}, err
	}
	return barber.WorkingWindow{
		ID:       m.ID,
		BarberID: m.BarberID,
		Weekday:  m.Weekday,
		Start:    start,
		End:      end,
	}, nil
}
