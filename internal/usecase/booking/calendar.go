package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

// Calendar is the read side shared by the engine operations: provider
// lookup, timezone, "today" and the classification of one day.
type Calendar struct {
	providers       domain.ProviderDirectory
	store           domain.AvailabilityStore
	clock           timezone.Clock
	resolver        domain.DayStateResolver
	defaultTimezone string
}

func NewCalendar(
	providers domain.ProviderDirectory,
	store domain.AvailabilityStore,
	clock timezone.Clock,
	windowDays int,
	defaultTimezone string,
) *Calendar {
	if clock == nil {
		clock = timezone.SystemClock{}
	}
	return &Calendar{
		providers:       providers,
		store:           store,
		clock:           clock,
		resolver:        domain.NewDayStateResolver(windowDays),
		defaultTimezone: defaultTimezone,
	}
}

// ProviderTime is a provider with its location and the current instant in it.
type ProviderTime struct {
	Provider *domain.Provider
	Location *time.Location
	Now      time.Time
	Today    domain.Date
}

// Day is one resolved calendar day.
type Day struct {
	ProviderTime
	Date  domain.Date
	State domain.DayState
	Hours *domain.Hours
}

func (c *Calendar) Clock() timezone.Clock {
	return c.clock
}

func (c *Calendar) Resolver() domain.DayStateResolver {
	return c.resolver
}

func (c *Calendar) Provider(ctx context.Context, providerID string) (ProviderTime, error) {
	p, err := c.providers.GetProvider(ctx, providerID)
	if err != nil {
		return ProviderTime{}, httperr.Unavailable(err)
	}

	loc := timezone.Location(p.Timezone, c.defaultTimezone)
	now := c.clock.Now().In(loc)

	return ProviderTime{
		Provider: p,
		Location: loc,
		Now:      now,
		Today:    domain.DateOf(now),
	}, nil
}

// Day reads availability for date and classifies it.
func (c *Calendar) Day(ctx context.Context, providerID string, date domain.Date) (Day, error) {
	pt, err := c.Provider(ctx, providerID)
	if err != nil {
		return Day{}, err
	}

	weekly, err := c.store.GetWeeklyAvailability(ctx, providerID)
	if err != nil {
		return Day{}, httperr.Unavailable(err)
	}

	override, err := c.store.GetDateOverride(ctx, providerID, date)
	if err != nil {
		return Day{}, httperr.Unavailable(err)
	}

	_, hours := domain.ResolveDay(date, weekly, override)

	return Day{
		ProviderTime: pt,
		Date:         date,
		State:        c.resolver.Resolve(date, pt.Today, weekly, override),
		Hours:        hours,
	}, nil
}

func (c *Calendar) Store() domain.AvailabilityStore {
	return c.store
}
