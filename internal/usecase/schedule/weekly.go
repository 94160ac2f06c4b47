package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

// Store is what availability administration reads and writes.
type Store interface {
	domain.AvailabilityStore
	domain.AvailabilityAdmin
}

type GetWeeklyAvailability struct {
	providers domain.ProviderDirectory
	store     Store
}

func NewGetWeeklyAvailability(providers domain.ProviderDirectory, store Store) *GetWeeklyAvailability {
	return &GetWeeklyAvailability{providers: providers, store: store}
}

func (uc *GetWeeklyAvailability) Execute(ctx context.Context, providerID string) (domain.WeeklyAvailability, error) {
	if _, err := uc.providers.GetProvider(ctx, providerID); err != nil {
		return domain.WeeklyAvailability{}, httperr.Unavailable(err)
	}

	w, err := uc.store.GetWeeklyAvailability(ctx, providerID)
	if err != nil {
		return w, httperr.Unavailable(err)
	}
	return w, nil
}

type ReplaceWeeklyAvailability struct {
	providers domain.ProviderDirectory
	store     Store
	audit     *audit.Dispatcher
}

func NewReplaceWeeklyAvailability(
	providers domain.ProviderDirectory,
	store Store,
	audit *audit.Dispatcher,
) *ReplaceWeeklyAvailability {
	return &ReplaceWeeklyAvailability{providers: providers, store: store, audit: audit}
}

func (uc *ReplaceWeeklyAvailability) Execute(
	ctx context.Context,
	providerID string,
	weekly domain.WeeklyAvailability,
) error {

	if err := weekly.Validate(); err != nil {
		return httperr.Invalid("%v", err)
	}

	if _, err := uc.providers.GetProvider(ctx, providerID); err != nil {
		return httperr.Unavailable(err)
	}

	if err := uc.store.ReplaceWeeklyAvailability(ctx, providerID, weekly); err != nil {
		return httperr.Unavailable(err)
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "weekly_availability_replaced",
		Entity:     "working_hours",
		EntityID:   providerID,
	})
	return nil
}
