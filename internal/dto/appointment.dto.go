package dto

import (
	"time"

	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	ucappt "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

type AppointmentDTO struct {
	ID        string `json:"id"`
	BarberID  string `json:"barber_id"`
	ClientID  string `json:"client_id"`
	ServiceID string `json:"service_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
	Origin    string `json:"origin"`
	Note      string `json:"note,omitempty"`
}

type AgendaEntryDTO struct {
	AppointmentDTO
	ClientName             string `json:"client_name"`
	ClientPhone            string `json:"client_phone"`
	ServiceName            string `json:"service_name"`
	ServiceDurationMinutes int    `json:"service_duration_minutes"`
}

type SlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func Appointment(ap domainappt.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:        ap.ID,
		BarberID:  ap.BarberID,
		ClientID:  ap.ClientID,
		ServiceID: ap.ServiceID,
		Start:     FormatTime(ap.Start),
		End:       FormatTime(ap.End),
		Status:    string(ap.Status),
		Origin:    string(ap.Origin),
		Note:      ap.Note,
	}
}

func Appointments(aps []domainappt.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, Appointment(ap))
	}
	return out
}

func Agenda(entries []ucappt.AgendaEntry) []AgendaEntryDTO {
	out := make([]AgendaEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, AgendaEntryDTO{
			AppointmentDTO:         Appointment(e.Appointment),
			ClientName:             e.ClientName,
			ClientPhone:            e.ClientPhone,
			ServiceName:            e.ServiceName,
			ServiceDurationMinutes: e.ServiceDurationMinutes,
		})
	}
	return out
}

func Slots(slots []domainappt.Slot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotDTO{Start: FormatTime(s.Start), End: FormatTime(s.End)})
	}
	return out
}
