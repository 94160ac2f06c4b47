package schedule

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/infra/memory"
)

func newStore() *memory.Store {
	s := memory.NewStore()
	s.PutProvider(domain.Provider{ID: "p1", Timezone: "UTC"})
	return s
}

func TestReplaceWeeklyAvailability(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	var w domain.WeeklyAvailability
	w[time.Friday] = &domain.DaySchedule{
		Hours:       domain.Hours{Start: domain.MustClock("10:00"), End: domain.MustClock("16:00")},
		IsAvailable: true,
	}

	if err := NewReplaceWeeklyAvailability(s, s, nil).Execute(ctx, "p1", w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := NewGetWeeklyAvailability(s, s).Execute(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[time.Friday] == nil || got[time.Friday].Start != domain.MustClock("10:00") {
		t.Fatalf("unexpected weekly %+v", got)
	}
}

func TestReplaceWeeklyAvailabilityRejectsBrokenRows(t *testing.T) {
	s := newStore()

	var w domain.WeeklyAvailability
	w[time.Friday] = &domain.DaySchedule{
		Hours: domain.Hours{
			Start: domain.MustClock("10:00"),
			End:   domain.MustClock("16:00"),
			Break: &domain.Window{Start: domain.MustClock("15:00"), End: domain.MustClock("17:00")},
		},
		IsAvailable: true,
	}

	err := NewReplaceWeeklyAvailability(s, s, nil).Execute(context.Background(), "p1", w)
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestOverrideLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	d := domain.Date{Year: 2025, Month: time.June, Day: 3}

	upsert := NewUpsertDateOverride(s, s, nil)
	if err := upsert.Execute(ctx, "p1", domain.DateOverride{Date: d, IsAvailable: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o, _ := s.GetDateOverride(ctx, "p1", d); o == nil || o.IsAvailable {
		t.Fatalf("expected closed override, got %+v", o)
	}

	bad := domain.DateOverride{
		Date:        d,
		IsAvailable: true,
		Hours:       &domain.Hours{Start: domain.MustClock("12:00"), End: domain.MustClock("11:00")},
	}
	if err := upsert.Execute(ctx, "p1", bad); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}

	if err := NewDeleteDateOverride(s, s, nil).Execute(ctx, "p1", d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o, _ := s.GetDateOverride(ctx, "p1", d); o != nil {
		t.Fatalf("expected override gone, got %+v", o)
	}
}

func TestUnknownProvider(t *testing.T) {
	s := newStore()
	d := domain.Date{Year: 2025, Month: time.June, Day: 3}

	err := NewUpsertDateOverride(s, s, nil).Execute(context.Background(), "ghost", domain.DateOverride{Date: d})
	if !httperr.IsBusiness(err, httperr.CodeProviderNotFound) {
		t.Fatalf("expected provider_not_found, got %v", err)
	}
}
