package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

type ListAvailableSlots struct {
	cal    *Calendar
	ledger domain.AppointmentLedger
	gen    domain.SlotGenerator
}

func NewListAvailableSlots(
	cal *Calendar,
	ledger domain.AppointmentLedger,
) *ListAvailableSlots {
	return &ListAvailableSlots{
		cal:    cal,
		ledger: ledger,
	}
}

// Execute returns bookable start times (HH:MM) for isoDate. A day that is
// not OK yields an empty list, not an error.
func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	providerID string,
	isoDate string,
	durationMinutes int,
) ([]string, error) {

	if providerID == "" {
		return nil, httperr.Invalid("provider id is required")
	}
	if !domain.ValidDuration(durationMinutes) {
		return nil, httperr.Invalid("duration must be between 1 and %d minutes", domain.MaxDurationMinutes)
	}

	date, err := domain.ParseDate(isoDate)
	if err != nil {
		return nil, httperr.Invalid("%v", err)
	}

	day, err := uc.cal.Day(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	if day.State.Reason != domain.ReasonOK || day.Hours == nil {
		return []string{}, nil
	}

	existing, err := uc.ledger.GetAppointmentsForDate(ctx, providerID, date)
	if err != nil {
		return nil, httperr.Unavailable(err)
	}

	return domain.StartTimes(uc.gen.Slots(domain.SlotRequest{
		Date:            date,
		Location:        day.Location,
		DurationMinutes: durationMinutes,
		State:           day.State,
		Hours:           day.Hours,
		Existing:        existing,
		Now:             day.Now,
	})), nil
}
