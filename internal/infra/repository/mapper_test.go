package repository

import (
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

func TestWeeklyRowsRoundTrip(t *testing.T) {
	var w domain.WeeklyAvailability
	w[time.Monday] = &domain.DaySchedule{
		Hours: domain.Hours{
			Start: domain.MustClock("09:00"),
			End:   domain.MustClock("18:00"),
			Break: &domain.Window{Start: domain.MustClock("13:00"), End: domain.MustClock("14:00")},
		},
		IsAvailable: true,
	}
	w[time.Saturday] = &domain.DaySchedule{
		Hours: domain.Hours{Start: domain.MustClock("08:00"), End: domain.MustClock("12:00")},
	}

	rows := weeklyToRows("p1", w)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	got, err := weeklyFromRows(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[time.Sunday] != nil {
		t.Fatalf("missing rows must stay nil")
	}
	if got[time.Monday].Break == nil || got[time.Monday].Break.Start != domain.MustClock("13:00") {
		t.Fatalf("break lost: %+v", got[time.Monday])
	}
	if got[time.Saturday].IsAvailable || got[time.Saturday].Break != nil {
		t.Fatalf("unexpected saturday %+v", got[time.Saturday])
	}
}

func TestWeeklyFromRowsRejectsCorruptRows(t *testing.T) {
	bad := [][]models.WorkingHours{
		{{Weekday: 9, StartTime: "09:00", EndTime: "10:00"}},
		{{Weekday: 1, StartTime: "9am", EndTime: "10:00"}},
		{{Weekday: 1, StartTime: "09:00", EndTime: "10:00", HasBreak: true}},
	}
	for i, rows := range bad {
		if _, err := weeklyFromRows(rows); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestOverrideRowKeepsAbsentHours(t *testing.T) {
	d := domain.Date{Year: 2025, Month: time.June, Day: 3}

	row := overrideToRow("p1", domain.DateOverride{Date: d, IsAvailable: true})
	got, err := overrideFromRow(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hours != nil || !got.IsAvailable || got.Date != d {
		t.Fatalf("unexpected override %+v", got)
	}

	row = overrideToRow("p1", domain.DateOverride{
		Date:  d,
		Hours: &domain.Hours{Start: domain.MustClock("10:00"), End: domain.MustClock("12:00")},
	})
	got, _ = overrideFromRow(row)
	if got.Hours == nil || got.Hours.End != domain.MustClock("12:00") || got.IsAvailable {
		t.Fatalf("unexpected override %+v", got)
	}
}

func TestNewAppointmentRow(t *testing.T) {
	d := domain.Date{Year: 2025, Month: time.June, Day: 3}
	start := d.At(domain.MustClock("10:00"), time.UTC)

	row := newAppointmentRow(domain.NewAppointment{
		ProviderID:      "p1",
		ClientID:        "c1",
		Date:            d,
		Start:           start,
		DurationMinutes: 45,
	})

	if row.ID == "" || row.Status != string(domain.StatusConfirmed) {
		t.Fatalf("unexpected row %+v", row)
	}
	if !row.EndTime.Equal(start.Add(45 * time.Minute)) {
		t.Fatalf("unexpected end %v", row.EndTime)
	}

	ap := appointmentFromRow(row)
	if ap.Date != d || ap.Duration() != 45*time.Minute {
		t.Fatalf("unexpected appointment %+v", ap)
	}
}
