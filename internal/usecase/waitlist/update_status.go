package waitlist

import (
	"context"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

type UpdateWaitlistStatus struct {
	store domain.WaitlistStore
	audit *audit.Dispatcher
}

func NewUpdateWaitlistStatus(
	store domain.WaitlistStore,
	audit *audit.Dispatcher,
) *UpdateWaitlistStatus {
	return &UpdateWaitlistStatus{
		store: store,
		audit: audit,
	}
}

func (uc *UpdateWaitlistStatus) Execute(
	ctx context.Context,
	entryID string,
	status domain.WaitlistStatus,
) (*domain.WaitlistEntry, error) {

	if entryID == "" {
		return nil, httperr.Invalid("waitlist id is required")
	}

	entry, err := uc.store.GetWaitlistEntry(ctx, entryID)
	if err != nil {
		return nil, httperr.Unavailable(err)
	}

	if err := entry.Transition(status); err != nil {
		return nil, err
	}

	if err := uc.store.UpdateWaitlistEntry(ctx, entry); err != nil {
		return nil, httperr.Unavailable(err)
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: entry.ProviderID,
		Action:     "waitlist_" + string(status),
		Entity:     "waitlist_entry",
		EntityID:   entry.ID,
	})

	return entry, nil
}
