package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type CommitBookingInput struct {
	ProviderID      string
	Date            string
	Time            string
	DurationMinutes int
	ClientID        string
	ServiceID       string
}

// ======================================================
// USE CASE
// ======================================================

type CommitBooking struct {
	cal      *Calendar
	ledger   domain.AppointmentLedger
	guard    domain.OverlapGuard
	locker   Locker
	notifier domain.Notifier
	audit    *audit.Dispatcher
	log      *zap.Logger
}

type CommitOption func(*CommitBooking)

// WithLocker makes commits for the same provider run one at a time.
func WithLocker(l Locker) CommitOption {
	return func(uc *CommitBooking) { uc.locker = l }
}

func WithNotifier(n domain.Notifier) CommitOption {
	return func(uc *CommitBooking) { uc.notifier = n }
}

func WithAudit(d *audit.Dispatcher) CommitOption {
	return func(uc *CommitBooking) { uc.audit = d }
}

func NewCommitBooking(
	cal *Calendar,
	ledger domain.AppointmentLedger,
	log *zap.Logger,
	opts ...CommitOption,
) *CommitBooking {
	if log == nil {
		log = zap.NewNop()
	}
	uc := &CommitBooking{
		cal:    cal,
		ledger: ledger,
		log:    log,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CommitBooking) Execute(
	ctx context.Context,
	in CommitBookingInput,
) (*domain.Appointment, error) {

	// --------------------------------------------------
	// 1. Input, before any read
	// --------------------------------------------------
	date, clock, err := validateCommit(in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Day and working hours
	// --------------------------------------------------
	day, err := uc.cal.Day(ctx, in.ProviderID, date)
	if err != nil {
		return nil, err
	}

	start := date.At(clock, day.Location)
	end := start.Add(time.Duration(in.DurationMinutes) * time.Minute)

	if err := checkWithinDay(day, start, end); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Single writer per provider
	// --------------------------------------------------
	if uc.locker != nil {
		unlock, err := uc.locker.Lock(ctx, lockKey(in.ProviderID))
		if err != nil {
			return nil, httperr.Unavailable(err)
		}
		defer unlock()
	}

	// --------------------------------------------------
	// 4. Fresh read + overlap re-check
	// --------------------------------------------------
	existing, err := uc.ledger.GetAppointmentsForDate(ctx, in.ProviderID, date)
	if err != nil {
		return nil, httperr.Unavailable(err)
	}

	if other, ok := uc.guard.FirstConflict(start, end, existing); ok {
		uc.log.Warn("slot taken at commit",
			zap.String("provider_id", in.ProviderID),
			zap.Time("start", start),
			zap.String("conflicting_id", other.ID),
		)
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	// --------------------------------------------------
	// 5. Write; past this point the caller cannot cancel
	// --------------------------------------------------
	req := domain.NewAppointment{
		ProviderID:      in.ProviderID,
		ClientID:        in.ClientID,
		ServiceID:       in.ServiceID,
		Date:            date,
		Start:           start,
		DurationMinutes: in.DurationMinutes,
	}

	writeCtx := context.WithoutCancel(ctx)

	var id string
	if cond, ok := uc.ledger.(domain.ConditionalLedger); ok {
		id, err = cond.CreateAppointmentIfFree(writeCtx, req, uc.guard)
	} else {
		id, err = uc.ledger.CreateAppointment(writeCtx, req)
	}
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			uc.log.Warn("slot taken at write",
				zap.String("provider_id", in.ProviderID),
				zap.Time("start", start),
			)
		}
		return nil, httperr.Unavailable(err)
	}

	ap := &domain.Appointment{
		ID:              id,
		ProviderID:      in.ProviderID,
		ClientID:        in.ClientID,
		ServiceID:       in.ServiceID,
		Date:            date,
		Start:           start,
		DurationMinutes: in.DurationMinutes,
		Status:          domain.InitialStatus(),
		CreatedAt:       uc.cal.Clock().Now(),
	}

	uc.log.Info("appointment committed",
		zap.String("provider_id", ap.ProviderID),
		zap.String("appointment_id", ap.ID),
		zap.Time("start", ap.Start),
		zap.Int("duration_minutes", ap.DurationMinutes),
	)

	// --------------------------------------------------
	// 6. Side effects
	// --------------------------------------------------
	if uc.notifier != nil {
		if err := uc.notifier.AppointmentConfirmed(writeCtx, *ap); err != nil {
			uc.log.Warn("notify appointment confirmed",
				zap.String("appointment_id", ap.ID),
				zap.Error(err),
			)
		}
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: ap.ProviderID,
		ActorID:    ap.ClientID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   ap.ID,
		Metadata: map[string]any{
			"start":            ap.Start.Format(time.RFC3339),
			"duration_minutes": ap.DurationMinutes,
			"service_id":       ap.ServiceID,
		},
	})

	return ap, nil
}

func validateCommit(in CommitBookingInput) (domain.Date, domain.ClockTime, error) {
	if in.ProviderID == "" {
		return domain.Date{}, 0, httperr.Invalid("provider id is required")
	}
	if in.ClientID == "" {
		return domain.Date{}, 0, httperr.Invalid("client id is required")
	}
	if !domain.ValidDuration(in.DurationMinutes) {
		return domain.Date{}, 0, httperr.Invalid("duration must be between 1 and %d minutes", domain.MaxDurationMinutes)
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return domain.Date{}, 0, httperr.Invalid("%v", err)
	}

	clock, err := domain.ParseClock(in.Time)
	if err != nil {
		return domain.Date{}, 0, httperr.Invalid("%v", err)
	}

	return date, clock, nil
}

// checkWithinDay rejects slots the provider never offers: non-OK days,
// outside working hours, inside the break, or already started.
func checkWithinDay(day Day, start, end time.Time) error {
	if day.State.Reason != domain.ReasonOK {
		return httperr.Invalid("date %s is not bookable: %s", day.Date, day.State.Reason)
	}
	if day.Hours == nil {
		return httperr.Invalid("no working hours for %s", day.Date)
	}

	workStart := day.Date.At(day.Hours.Start, day.Location)
	workEnd := day.Date.At(day.Hours.End, day.Location)
	if start.Before(workStart) || end.After(workEnd) {
		return httperr.Invalid("slot is outside working hours")
	}

	if br := day.Hours.Break; br != nil {
		if domain.Overlaps(start, end, day.Date.At(br.Start, day.Location), day.Date.At(br.End, day.Location)) {
			return httperr.Invalid("slot overlaps the break")
		}
	}

	if !start.After(day.Now) {
		return httperr.Invalid("slot is in the past")
	}
	return nil
}
