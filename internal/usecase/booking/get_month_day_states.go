package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

type GetMonthDayStates struct {
	cal *Calendar
}

func NewGetMonthDayStates(cal *Calendar) *GetMonthDayStates {
	return &GetMonthDayStates{cal: cal}
}

// Execute classifies every day of the month containing monthStart, keyed
// by ISO date.
func (uc *GetMonthDayStates) Execute(
	ctx context.Context,
	providerID string,
	monthStart domain.Date,
) (map[string]domain.DayState, error) {

	if providerID == "" {
		return nil, httperr.Invalid("provider id is required")
	}
	if monthStart.IsZero() {
		return nil, httperr.Invalid("month is required")
	}

	pt, err := uc.cal.Provider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	days := monthStart.DaysInMonth()

	weekly, err := uc.cal.Store().GetWeeklyAvailability(ctx, providerID)
	if err != nil {
		return nil, httperr.Unavailable(err)
	}

	overrides, err := uc.cal.Store().ListDateOverrides(ctx, providerID, days[0], days[len(days)-1])
	if err != nil {
		return nil, httperr.Unavailable(err)
	}

	resolver := uc.cal.Resolver()
	out := make(map[string]domain.DayState, len(days))

	for _, d := range days {
		var override *domain.DateOverride
		if o, ok := overrides[d]; ok {
			override = &o
		}
		out[d.String()] = resolver.Resolve(d, pt.Today, weekly, override)
	}

	return out, nil
}
