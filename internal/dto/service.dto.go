package dto

import (
	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
)

type ServiceDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
}

func Service(s catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Active:          s.Active,
	}
}

func Services(ss []catalog.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(ss))
	for _, s := range ss {
		out = append(out, Service(s))
	}
	return out
}

type AuditLogDTO struct {
	ID        uint   `json:"id"`
	ActorRole string `json:"actor_role"`
	ActorID   string `json:"actor_id"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id"`
	Metadata  string `json:"metadata,omitempty"`
	CreatedAt string `json:"created_at"`
}

type AuditPageDTO struct {
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int64         `json:"total"`
	Logs  []AuditLogDTO `json:"logs"`
}

func AuditPage(p audit.Page) AuditPageDTO {
	logs := make([]AuditLogDTO, 0, len(p.Logs))
	for _, l := range p.Logs {
		logs = append(logs, AuditLogDTO{
			ID:        l.ID,
			ActorRole: l.ActorRole,
			ActorID:   l.ActorID,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			Metadata:  l.Metadata,
			CreatedAt: FormatTime(l.CreatedAt),
		})
	}
	return AuditPageDTO{Page: p.Page, Limit: p.Limit, Total: p.Total, Logs: logs}
}
