package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/infra/memory"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
)

var day = domain.Date{Year: 2025, Month: time.June, Day: 2}

type cancelRecorder struct {
	cancelled []string
}

func (r *cancelRecorder) AppointmentConfirmed(context.Context, domain.Appointment) error {
	return nil
}

func (r *cancelRecorder) AppointmentCancelled(_ context.Context, ap domain.Appointment) error {
	r.cancelled = append(r.cancelled, ap.ID)
	return errors.New("ignored")
}

func seed(t *testing.T, at string) (*memory.Store, string) {
	t.Helper()

	store := memory.NewStore()
	store.PutProvider(domain.Provider{ID: "p1", Timezone: "America/Sao_Paulo"})

	id, err := store.CreateAppointment(context.Background(), domain.NewAppointment{
		ProviderID:      "p1",
		ClientID:        "c1",
		Date:            day,
		Start:           day.At(domain.MustClock(at), time.UTC),
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store, id
}

func TestCancelAppointment(t *testing.T) {
	store, id := seed(t, "14:00")
	clock := timezone.NewFixedClock(day.At(domain.MustClock("09:00"), time.UTC))
	notifier := &cancelRecorder{}

	uc := NewCancelAppointment(store, clock, 2*time.Hour, notifier, nil, zap.NewNop())

	ap, err := uc.Execute(context.Background(), "p1", id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != domain.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", ap.Status)
	}
	if len(notifier.cancelled) != 1 {
		t.Fatalf("expected cancellation notice")
	}

	stored, _ := store.GetAppointment(context.Background(), "p1", id)
	if stored.Status != domain.StatusCancelled || stored.CancelledAt == nil {
		t.Fatalf("cancellation not persisted: %+v", stored)
	}

	if _, err := uc.Execute(context.Background(), "p1", id); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestCancelAppointmentTooLate(t *testing.T) {
	store, id := seed(t, "10:00")
	clock := timezone.NewFixedClock(day.At(domain.MustClock("09:00"), time.UTC))

	uc := NewCancelAppointment(store, clock, 2*time.Hour, nil, nil, zap.NewNop())
	if _, err := uc.Execute(context.Background(), "p1", id); !httperr.IsBusiness(err, httperr.CodeTooLateToCancel) {
		t.Fatalf("expected too_late_to_cancel, got %v", err)
	}
}

func TestCancelAppointmentWrongProvider(t *testing.T) {
	store, id := seed(t, "14:00")
	clock := timezone.NewFixedClock(day.At(domain.MustClock("09:00"), time.UTC))

	uc := NewCancelAppointment(store, clock, 2*time.Hour, nil, nil, zap.NewNop())
	if _, err := uc.Execute(context.Background(), "p2", id); !httperr.IsBusiness(err, httperr.CodeAppointmentMissing) {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCompleteAppointment(t *testing.T) {
	store, id := seed(t, "10:00")
	clock := timezone.NewFixedClock(day.At(domain.MustClock("11:00"), time.UTC))
	uc := NewCompleteAppointment(store, clock, nil)

	ap, err := uc.Execute(context.Background(), "p1", id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != domain.StatusCompleted || ap.CompletedAt == nil {
		t.Fatalf("unexpected appointment %+v", ap)
	}

	if _, err := uc.Execute(context.Background(), "p1", id); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestListAppointmentsByDate(t *testing.T) {
	store, id := seed(t, "13:00")
	uc := NewListAppointmentsByDate(store, store, "UTC")

	got, err := uc.Execute(context.Background(), "p1", "2025-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != id {
		t.Fatalf("unexpected list %+v", got)
	}
	// 13:00 UTC rendered in Sao Paulo
	if got[0].StartTime.Hour() != 10 {
		t.Fatalf("expected provider-local start, got %v", got[0].StartTime)
	}

	if _, err := uc.Execute(context.Background(), "p1", "bad"); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}
