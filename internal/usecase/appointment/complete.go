package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.AppointmentRepository
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.AppointmentRepository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	providerID string,
	appointmentID string,
) (*domain.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, providerID, appointmentID)
	if err != nil {
		return nil, httperr.Unavailable(err)
	}

	if err := domain.Complete(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.Unavailable(err)
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "appointment_completed",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})

	return ap, nil
}
