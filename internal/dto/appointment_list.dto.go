package dto

import (
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
)

type AppointmentListDTO struct {
	ID              string     `json:"id"`
	Date            string     `json:"date"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	ClientID        string     `json:"client_id"`
	ServiceID       string     `json:"service_id"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// FromAppointment renders ap with its times in loc.
func FromAppointment(ap domain.Appointment, loc *time.Location) AppointmentListDTO {
	if loc == nil {
		loc = time.UTC
	}
	return AppointmentListDTO{
		ID:              ap.ID,
		Date:            ap.Date.String(),
		StartTime:       ap.Start.In(loc),
		EndTime:         ap.End().In(loc),
		DurationMinutes: ap.DurationMinutes,
		Status:          string(ap.Status),
		ClientID:        ap.ClientID,
		ServiceID:       ap.ServiceID,
		CancelledAt:     ap.CancelledAt,
		CompletedAt:     ap.CompletedAt,
	}
}
