package dto

import (
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
)

type ClientDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	NoShows int    `json:"no_shows"`
	Blocked bool   `json:"blocked"`
}

type BarberDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Active   bool   `json:"active"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type WorkingWindowDTO struct {
	ID       string `json:"id"`
	BarberID string `json:"barber_id"`
	Weekday  int    `json:"weekday"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type ClientAuthDTO struct {
	Token  string    `json:"token"`
	Client ClientDTO `json:"client"`
}

type BarberAuthDTO struct {
	Token  string    `json:"token"`
	Barber BarberDTO `json:"barber"`
}

func Client(c client.Client) ClientDTO {
	return ClientDTO{ID: c.ID, Name: c.Name, Phone: c.Phone, NoShows: c.NoShows, Blocked: c.Blocked}
}

func Clients(cs []client.Client) []ClientDTO {
	out := make([]ClientDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, Client(c))
	}
	return out
}

func Barber(b barber.Barber) BarberDTO {
	return BarberDTO{ID: b.ID, Name: b.Name, Phone: b.Phone, Active: b.Active, PhotoURL: b.PhotoURL}
}

func Barbers(bs []barber.Barber) []BarberDTO {
	out := make([]BarberDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, Barber(b))
	}
	return out
}

func WorkingWindow(w barber.WorkingWindow) WorkingWindowDTO {
	return WorkingWindowDTO{
		ID:       w.ID,
		BarberID: w.BarberID,
		Weekday:  w.Weekday,
		Start:    w.Start.String(),
		End:      w.End.String(),
	}
}

func WorkingWindows(ws []barber.WorkingWindow) []WorkingWindowDTO {
	out := make([]WorkingWindowDTO, 0, len(ws))
	for _, w := range ws {
		out = append(out, WorkingWindow(w))
	}
	return out
}
