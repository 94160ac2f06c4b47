package waitlist

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/usecase/booking"
)

type JoinWaitlistInput struct {
	ProviderID string
	Date       string
	// TimeStart and TimeEnd default to 09:00 and 18:00 when empty.
	TimeStart string
	TimeEnd   string
	ClientID  string
	ServiceID string
	Notes     string
}

type JoinWaitlist struct {
	cal   *booking.Calendar
	store domain.WaitlistStore
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewJoinWaitlist(
	cal *booking.Calendar,
	store domain.WaitlistStore,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *JoinWaitlist {
	if log == nil {
		log = zap.NewNop()
	}
	return &JoinWaitlist{
		cal:   cal,
		store: store,
		audit: audit,
		log:   log,
	}
}

func (uc *JoinWaitlist) Execute(
	ctx context.Context,
	in JoinWaitlistInput,
) (string, error) {

	if in.ProviderID == "" {
		return "", httperr.Invalid("provider id is required")
	}
	if in.ClientID == "" {
		return "", httperr.Invalid("client id is required")
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return "", httperr.Invalid("%v", err)
	}

	start, err := clockOr(in.TimeStart, domain.DefaultWaitlistStart)
	if err != nil {
		return "", err
	}
	end, err := clockOr(in.TimeEnd, domain.DefaultWaitlistEnd)
	if err != nil {
		return "", err
	}
	if start >= end {
		return "", httperr.Invalid("time_start must be before time_end")
	}

	day, err := uc.cal.Day(ctx, in.ProviderID, date)
	if err != nil {
		return "", err
	}
	if day.State.Reason != domain.ReasonOK {
		return "", httperr.Invalid("date %s is not bookable: %s", date, day.State.Reason)
	}

	now := uc.cal.Clock().Now()
	entry := domain.WaitlistEntry{
		ProviderID:    in.ProviderID,
		ClientID:      in.ClientID,
		ServiceID:     in.ServiceID,
		RequestedDate: date,
		TimeStart:     start,
		TimeEnd:       end,
		Status:        domain.WaitlistWaiting,
		Priority:      now.Unix(),
		Notes:         in.Notes,
		CreatedAt:     now,
	}

	id, err := uc.store.CreateWaitlistEntry(ctx, entry)
	if err != nil {
		return "", httperr.Unavailable(err)
	}

	uc.log.Info("waitlist joined",
		zap.String("provider_id", in.ProviderID),
		zap.String("waitlist_id", id),
		zap.String("date", date.String()),
	)

	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		ActorID:    in.ClientID,
		Action:     "waitlist_joined",
		Entity:     "waitlist_entry",
		EntityID:   id,
	})

	return id, nil
}

func clockOr(s string, def domain.ClockTime) (domain.ClockTime, error) {
	if s == "" {
		return def, nil
	}
	c, err := domain.ParseClock(s)
	if err != nil {
		return 0, httperr.Invalid("%v", err)
	}
	return c, nil
}
