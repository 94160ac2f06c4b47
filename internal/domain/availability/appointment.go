package availability

import (
	"time"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether the status holds its time slot.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// InitialStatus is the status of a freshly committed booking. Bookings are
// auto-confirmed; there is no approval step.
func InitialStatus() Status {
	return StatusConfirmed
}

// ===============================
// Appointment
// ===============================

type Appointment struct {
	ID              string
	ProviderID      string
	ClientID        string
	ServiceID       string
	Date            Date
	Start           time.Time
	DurationMinutes int
	Status          Status
	CreatedAt       time.Time
	CancelledAt     *time.Time
	CompletedAt     *time.Time
}

// Duration falls back to DefaultAppointmentMinutes when the record carries
// no positive duration, and is capped at MaxDurationMinutes.
func (a Appointment) Duration() time.Duration {
	m := a.DurationMinutes
	switch {
	case m <= 0:
		m = DefaultAppointmentMinutes
	case m > MaxDurationMinutes:
		m = MaxDurationMinutes
	}
	return time.Duration(m) * time.Minute
}

func (a Appointment) End() time.Time {
	return a.Start.Add(a.Duration())
}

// NewAppointment is the write request handed to the ledger.
type NewAppointment struct {
	ProviderID      string
	ClientID        string
	ServiceID       string
	Date            Date
	Start           time.Time
	DurationMinutes int
}

func (n NewAppointment) End() time.Time {
	return n.Start.Add(time.Duration(n.DurationMinutes) * time.Minute)
}

// ===============================
// Domain Actions
// ===============================

func CanCancel(current Status) error {
	if !current.Active() {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanComplete(current Status) error {
	if !current.Active() {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// Cancel refuses appointments that are no longer active or that start
// within minNotice of now.
func Cancel(ap *Appointment, now time.Time, minNotice time.Duration) error {
	if err := CanCancel(ap.Status); err != nil {
		return err
	}
	if ap.Start.Sub(now) < minNotice {
		return httperr.ErrBusiness(httperr.CodeTooLateToCancel)
	}

	ap.Status = StatusCancelled
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *Appointment, now time.Time) error {
	if err := CanComplete(ap.Status); err != nil {
		return err
	}

	ap.Status = StatusCompleted
	ap.CompletedAt = &now
	return nil
}
