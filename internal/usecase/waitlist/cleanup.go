package waitlist

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

// CleanupExpired removes waiting entries whose requested date has passed in
// their provider's timezone.
type CleanupExpired struct {
	providers       domain.ProviderDirectory
	store           domain.WaitlistStore
	clock           timezone.Clock
	defaultTimezone string
}

func NewCleanupExpired(
	providers domain.ProviderDirectory,
	store domain.WaitlistStore,
	clock timezone.Clock,
	defaultTimezone string,
) *CleanupExpired {
	return &CleanupExpired{
		providers:       providers,
		store:           store,
		clock:           clock,
		defaultTimezone: defaultTimezone,
	}
}

func (uc *CleanupExpired) Execute(ctx context.Context) (int, error) {
	ids, err := uc.store.WaitingProviders(ctx)
	if err != nil {
		return 0, httperr.Unavailable(err)
	}

	now := uc.clock.Now()
	total := 0
	for _, id := range ids {
		loc, err := uc.location(ctx, id)
		if err != nil {
			return total, err
		}

		n, err := uc.store.RemoveExpiredWaiting(ctx, id, domain.DateOf(now.In(loc)))
		if err != nil {
			return total, httperr.Unavailable(err)
		}
		total += n
	}
	return total, nil
}

// location falls back to the default zone for entries whose provider is gone.
func (uc *CleanupExpired) location(ctx context.Context, providerID string) (*time.Location, error) {
	p, err := uc.providers.GetProvider(ctx, providerID)
	switch {
	case httperr.IsBusiness(err, httperr.CodeProviderNotFound):
		return timezone.Location(uc.defaultTimezone), nil
	case err != nil:
		return nil, httperr.Unavailable(err)
	}
	return timezone.Location(p.Timezone, uc.defaultTimezone), nil
}

// Sweeper runs CleanupExpired on a fixed interval until its context ends.
type Sweeper struct {
	cleanup  *CleanupExpired
	interval time.Duration
	log      *zap.Logger
}

func NewSweeper(cleanup *CleanupExpired, interval time.Duration, log *zap.Logger) *Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sweeper{
		cleanup:  cleanup,
		interval: interval,
		log:      log,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.cleanup.Execute(ctx)
	if err != nil {
		s.log.Warn("waitlist sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.log.Info("waitlist entries expired", zap.Int("count", n))
	}
}
