package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

func TestOverrideAbsentVersusClosed(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	d := domain.Date{Year: 2025, Month: time.June, Day: 3}

	o, err := s.GetDateOverride(ctx, "p1", d)
	if err != nil || o != nil {
		t.Fatalf("expected absent override, got %+v %v", o, err)
	}

	if err := s.UpsertDateOverride(ctx, "p1", domain.DateOverride{Date: d, IsAvailable: false}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	o, _ = s.GetDateOverride(ctx, "p1", d)
	if o == nil || o.IsAvailable {
		t.Fatalf("expected explicit closed override, got %+v", o)
	}

	_ = s.DeleteDateOverride(ctx, "p1", d)
	if o, _ := s.GetDateOverride(ctx, "p1", d); o != nil {
		t.Fatalf("expected override removed, got %+v", o)
	}
}

func TestListDateOverridesRange(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	base := domain.Date{Year: 2025, Month: time.June, Day: 1}

	for i := 0; i < 40; i += 10 {
		_ = s.UpsertDateOverride(ctx, "p1", domain.DateOverride{Date: base.AddDays(i), IsAvailable: true})
	}

	got, _ := s.ListDateOverrides(ctx, "p1", base, base.AddDays(29))
	if len(got) != 3 {
		t.Fatalf("expected 3 overrides in range, got %d", len(got))
	}
}

func TestWeeklyIsCopied(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var w domain.WeeklyAvailability
	w[time.Monday] = &domain.DaySchedule{
		Hours:       domain.Hours{Start: 540, End: 1080, Break: &domain.Window{Start: 720, End: 780}},
		IsAvailable: true,
	}
	_ = s.ReplaceWeeklyAvailability(ctx, "p1", w)

	w[time.Monday].Break.Start = 0

	got, _ := s.GetWeeklyAvailability(ctx, "p1")
	if got[time.Monday].Break.Start != 720 {
		t.Fatalf("stored weekly row aliased caller memory")
	}
}

func TestConditionalInsertAllowsExactlyOne(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	d := domain.Date{Year: 2025, Month: time.June, Day: 3}
	req := domain.NewAppointment{
		ProviderID:      "p1",
		ClientID:        "c",
		Date:            d,
		Start:           d.At(600, time.UTC),
		DurationMinutes: 30,
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		ok    int
		taken int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateAppointmentIfFree(ctx, req, domain.OverlapGuard{})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case httperr.IsBusiness(err, httperr.CodeSlotTaken):
				taken++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || taken != 19 {
		t.Fatalf("expected 1 success and 19 slot_taken, got %d/%d", ok, taken)
	}
}

func TestWaitlistFIFOAndExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	d := domain.Date{Year: 2025, Month: time.June, Day: 3}

	for i, prio := range []int64{30, 10, 20} {
		_, _ = s.CreateWaitlistEntry(ctx, domain.WaitlistEntry{
			ProviderID:    "p1",
			ClientID:      string(rune('a' + i)),
			RequestedDate: d,
			Status:        domain.WaitlistWaiting,
			Priority:      prio,
		})
	}

	got, _ := s.ListWaitlist(ctx, "p1", d, domain.WaitlistWaiting)
	if len(got) != 3 || got[0].Priority != 10 || got[2].Priority != 30 {
		t.Fatalf("expected FIFO by priority, got %+v", got)
	}

	if ids, _ := s.WaitingProviders(ctx); len(ids) != 1 || ids[0] != "p1" {
		t.Fatalf("expected p1 to have waiting entries, got %v", ids)
	}

	n, _ := s.RemoveExpiredWaiting(ctx, "p1", d)
	if n != 0 {
		t.Fatalf("entries on the cutoff date are not expired, removed %d", n)
	}
	if n, _ = s.RemoveExpiredWaiting(ctx, "p2", d.AddDays(1)); n != 0 {
		t.Fatalf("expiry leaked across providers, removed %d", n)
	}
	n, _ = s.RemoveExpiredWaiting(ctx, "p1", d.AddDays(1))
	if n != 3 {
		t.Fatalf("expected 3 expired, got %d", n)
	}
	if got, _ := s.ListWaitlist(ctx, "p1", d, domain.WaitlistWaiting); len(got) != 0 {
		t.Fatalf("expected no waiting entries left, got %d", len(got))
	}
	if ids, _ := s.WaitingProviders(ctx); len(ids) != 0 {
		t.Fatalf("expected no providers with waiting entries, got %v", ids)
	}
}

func TestUnknownIDs(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if _, err := s.GetProvider(ctx, "nope"); !httperr.IsBusiness(err, httperr.CodeProviderNotFound) {
		t.Fatalf("expected provider_not_found, got %v", err)
	}
	if _, err := s.GetAppointment(ctx, "p", "nope"); !httperr.IsBusiness(err, httperr.CodeAppointmentMissing) {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
	if _, err := s.GetWaitlistEntry(ctx, "nope"); !httperr.IsBusiness(err, httperr.CodeWaitlistMissing) {
		t.Fatalf("expected waitlist_entry_not_found, got %v", err)
	}
}
