package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

type UpsertDateOverride struct {
	providers domain.ProviderDirectory
	store     Store
	audit     *audit.Dispatcher
}

func NewUpsertDateOverride(
	providers domain.ProviderDirectory,
	store Store,
	audit *audit.Dispatcher,
) *UpsertDateOverride {
	return &UpsertDateOverride{providers: providers, store: store, audit: audit}
}

func (uc *UpsertDateOverride) Execute(
	ctx context.Context,
	providerID string,
	override domain.DateOverride,
) error {

	if err := override.Validate(); err != nil {
		return httperr.Invalid("%v", err)
	}

	if _, err := uc.providers.GetProvider(ctx, providerID); err != nil {
		return httperr.Unavailable(err)
	}

	if err := uc.store.UpsertDateOverride(ctx, providerID, override); err != nil {
		return httperr.Unavailable(err)
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "date_override_set",
		Entity:     "date_override",
		EntityID:   override.Date.String(),
		Metadata:   map[string]any{"is_available": override.IsAvailable},
	})
	return nil
}

type DeleteDateOverride struct {
	providers domain.ProviderDirectory
	store     Store
	audit     *audit.Dispatcher
}

func NewDeleteDateOverride(
	providers domain.ProviderDirectory,
	store Store,
	audit *audit.Dispatcher,
) *DeleteDateOverride {
	return &DeleteDateOverride{providers: providers, store: store, audit: audit}
}

// Execute removes the override so the date follows the weekly pattern
// again. Deleting a missing override is not an error.
func (uc *DeleteDateOverride) Execute(
	ctx context.Context,
	providerID string,
	date domain.Date,
) error {

	if date.IsZero() {
		return httperr.Invalid("date is required")
	}

	if _, err := uc.providers.GetProvider(ctx, providerID); err != nil {
		return httperr.Unavailable(err)
	}

	if err := uc.store.DeleteDateOverride(ctx, providerID, date); err != nil {
		return httperr.Unavailable(err)
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "date_override_deleted",
		Entity:     "date_override",
		EntityID:   date.String(),
	})
	return nil
}
