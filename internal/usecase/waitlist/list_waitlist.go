package waitlist

import (
	"context"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

type ListWaitlist struct {
	store domain.WaitlistStore
}

func NewListWaitlist(store domain.WaitlistStore) *ListWaitlist {
	return &ListWaitlist{store: store}
}

// Execute returns the waiting entries for a provider and date, first come
// first served.
func (uc *ListWaitlist) Execute(
	ctx context.Context,
	providerID string,
	isoDate string,
) ([]domain.WaitlistEntry, error) {

	date, err := domain.ParseDate(isoDate)
	if err != nil {
		return nil, httperr.Invalid("%v", err)
	}

	entries, err := uc.store.ListWaitlist(ctx, providerID, date, domain.WaitlistWaiting)
	if err != nil {
		return nil, httperr.Unavailable(err)
	}
	return entries, nil
}
