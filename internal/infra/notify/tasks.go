package notify

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
)

const (
	TypeAppointmentConfirmed = "booking:appointment_confirmed"
	TypeAppointmentCancelled = "booking:appointment_cancelled"
	TypeAppointmentReminder  = "booking:appointment_reminder"
)

// ReminderLead is how long before the start the reminder fires.
const ReminderLead = time.Hour

type AppointmentPayload struct {
	AppointmentID   string    `json:"appointment_id"`
	ProviderID      string    `json:"provider_id"`
	ClientID        string    `json:"client_id"`
	ServiceID       string    `json:"service_id"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
}

func payloadOf(ap domain.Appointment) AppointmentPayload {
	return AppointmentPayload{
		AppointmentID:   ap.ID,
		ProviderID:      ap.ProviderID,
		ClientID:        ap.ClientID,
		ServiceID:       ap.ServiceID,
		Start:           ap.Start,
		DurationMinutes: ap.DurationMinutes,
		Status:          string(ap.Status),
	}
}

func newTask(typ string, ap domain.Appointment) (*asynq.Task, error) {
	b, err := json.Marshal(payloadOf(ap))
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(typ, b), nil
}

// NewReminderTask schedules a reminder ReminderLead before the start, or
// right away when that moment has already passed.
func NewReminderTask(ap domain.Appointment, now time.Time) (*asynq.Task, []asynq.Option, error) {
	task, err := newTask(TypeAppointmentReminder, ap)
	if err != nil {
		return nil, nil, err
	}

	fireAt := ap.Start.Add(-ReminderLead)
	if fireAt.Before(now) {
		fireAt = now
	}

	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(TypeAppointmentReminder + ":" + ap.ID),
	}
	return task, opts, nil
}
