package availability

import "context"

type Provider struct {
	ID       string
	Name     string
	Timezone string
}

// -------- Provider --------

type ProviderDirectory interface {
	// GetProvider returns httperr provider_not_found for unknown ids.
	GetProvider(ctx context.Context, providerID string) (*Provider, error)
}

// -------- Availability (read) --------

type AvailabilityStore interface {
	GetWeeklyAvailability(ctx context.Context, providerID string) (WeeklyAvailability, error)

	// GetDateOverride returns (nil, nil) when no override exists.
	GetDateOverride(ctx context.Context, providerID string, date Date) (*DateOverride, error)

	// ListDateOverrides returns the overrides in [from, to], keyed by date.
	ListDateOverrides(ctx context.Context, providerID string, from, to Date) (map[Date]DateOverride, error)
}

// -------- Availability (admin) --------

type AvailabilityAdmin interface {
	ReplaceWeeklyAvailability(ctx context.Context, providerID string, weekly WeeklyAvailability) error
	UpsertDateOverride(ctx context.Context, providerID string, override DateOverride) error
	DeleteDateOverride(ctx context.Context, providerID string, date Date) error
}

// -------- Appointments --------

type AppointmentLedger interface {
	// GetAppointmentsForDate returns every appointment on date, cancelled
	// and completed ones included.
	GetAppointmentsForDate(ctx context.Context, providerID string, date Date) ([]Appointment, error)

	// CreateAppointment writes a confirmed appointment atomically.
	CreateAppointment(ctx context.Context, in NewAppointment) (string, error)
}

// ConditionalLedger is a ledger that can insert only when guard finds no
// conflict, atomically with respect to other writers.
type ConditionalLedger interface {
	AppointmentLedger
	// CreateAppointmentIfFree returns httperr slot_taken on conflict.
	CreateAppointmentIfFree(ctx context.Context, in NewAppointment, guard OverlapGuard) (string, error)
}

type AppointmentRepository interface {
	AppointmentLedger
	GetAppointment(ctx context.Context, providerID, appointmentID string) (*Appointment, error)
	UpdateAppointment(ctx context.Context, ap *Appointment) error
}

// -------- Waitlist --------

type WaitlistStore interface {
	CreateWaitlistEntry(ctx context.Context, entry WaitlistEntry) (string, error)
	GetWaitlistEntry(ctx context.Context, entryID string) (*WaitlistEntry, error)
	// ListWaitlist returns entries with status on date, by ascending priority.
	ListWaitlist(ctx context.Context, providerID string, date Date, status WaitlistStatus) ([]WaitlistEntry, error)
	UpdateWaitlistEntry(ctx context.Context, entry *WaitlistEntry) error
	// WaitingProviders lists providers with at least one waiting entry.
	WaitingProviders(ctx context.Context) ([]string, error)
	// RemoveExpiredWaiting marks the provider's waiting entries requested
	// before date as removed and returns how many changed.
	RemoveExpiredWaiting(ctx context.Context, providerID string, before Date) (int, error)
}

// -------- Notifications --------

// Notifier triggers downstream reminders and messages. Delivery is not
// part of the engine.
type Notifier interface {
	AppointmentConfirmed(ctx context.Context, ap Appointment) error
	AppointmentCancelled(ctx context.Context, ap Appointment) error
}
