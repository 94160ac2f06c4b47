package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/dto"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

type ListAppointmentsByDate struct {
	providers       domain.ProviderDirectory
	ledger          domain.AppointmentLedger
	defaultTimezone string
}

func NewListAppointmentsByDate(
	providers domain.ProviderDirectory,
	ledger domain.AppointmentLedger,
	defaultTimezone string,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		providers:       providers,
		ledger:          ledger,
		defaultTimezone: defaultTimezone,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	providerID string,
	isoDate string,
) ([]dto.AppointmentListDTO, error) {

	date, err := domain.ParseDate(isoDate)
	if err != nil {
		return nil, httperr.Invalid("%v", err)
	}

	p, err := uc.providers.GetProvider(ctx, providerID)
	if err != nil {
		return nil, httperr.Unavailable(err)
	}
	loc := timezone.Location(p.Timezone, uc.defaultTimezone)

	appointments, err := uc.ledger.GetAppointmentsForDate(ctx, providerID, date)
	if err != nil {
		return nil, httperr.Unavailable(err)
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.FromAppointment(ap, loc))
	}

	return out, nil
}
