package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

type CancelAppointment struct {
	repo      domain.AppointmentRepository
	clock     timezone.Clock
	minNotice time.Duration
	notifier  domain.Notifier
	audit     *audit.Dispatcher
	log       *zap.Logger
}

func NewCancelAppointment(
	repo domain.AppointmentRepository,
	clock timezone.Clock,
	minNotice time.Duration,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CancelAppointment {
	if log == nil {
		log = zap.NewNop()
	}
	return &CancelAppointment{
		repo:      repo,
		clock:     clock,
		minNotice: minNotice,
		notifier:  notifier,
		audit:     audit,
		log:       log,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	providerID string,
	appointmentID string,
) (*domain.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, providerID, appointmentID)
	if err != nil {
		return nil, httperr.Unavailable(err)
	}

	if err := domain.Cancel(ap, uc.clock.Now(), uc.minNotice); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.Unavailable(err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.AppointmentCancelled(context.WithoutCancel(ctx), *ap); err != nil {
			uc.log.Warn("notify appointment cancelled",
				zap.String("appointment_id", ap.ID),
				zap.Error(err),
			)
		}
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "appointment_cancelled",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})

	return ap, nil
}
