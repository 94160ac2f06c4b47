package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/infra/memory"
)

// unreachable points at a port nothing listens on, so every redis call
// fails fast and the cache must fall through to the store.
func unreachable() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCacheFallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	var w domain.WeeklyAvailability
	w[time.Monday] = &domain.DaySchedule{
		Hours:       domain.Hours{Start: domain.MustClock("09:00"), End: domain.MustClock("18:00")},
		IsAvailable: true,
	}

	rdb := unreachable()
	defer rdb.Close()

	c := NewAvailabilityCache(rdb, store, time.Minute, zap.NewNop())

	if err := c.ReplaceWeeklyAvailability(ctx, "p1", w); err != nil {
		t.Fatalf("write should succeed without redis: %v", err)
	}

	got, err := c.GetWeeklyAvailability(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[time.Monday] == nil || !got[time.Monday].IsAvailable {
		t.Fatalf("expected weekly row from store, got %+v", got)
	}

	d := domain.Date{Year: 2025, Month: time.June, Day: 2}
	if o, err := c.GetDateOverride(ctx, "p1", d); err != nil || o != nil {
		t.Fatalf("expected absent override, got %+v %v", o, err)
	}
}

func TestKeys(t *testing.T) {
	d := domain.Date{Year: 2025, Month: time.June, Day: 2}
	if got := overrideKey("p1", d); got != "availability:override:p1:2025-06-02" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := weeklyKey("p1"); got != "availability:weekly:p1" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestEntryRoundTripWeekly(t *testing.T) {
	var w domain.WeeklyAvailability
	w[time.Monday] = &domain.DaySchedule{
		Hours: domain.Hours{
			Start: domain.MustClock("09:00"),
			End:   domain.MustClock("18:00"),
			Break: &domain.Window{Start: domain.MustClock("12:00"), End: domain.MustClock("13:00")},
		},
		IsAvailable: true,
	}
	w[time.Saturday] = &domain.DaySchedule{
		Hours: domain.Hours{Start: domain.MustClock("08:00"), End: domain.MustClock("12:00")},
	}

	raw, err := encodeEntry(w)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var got domain.WeeklyAvailability
	if err := decodeEntry(raw, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, w) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, w)
	}
	if got[time.Sunday] != nil {
		t.Fatalf("missing row came back as %+v", got[time.Sunday])
	}
}

func TestEntryRoundTripOverride(t *testing.T) {
	d := domain.Date{Year: 2025, Month: time.June, Day: 2}

	cases := map[string]*domain.DateOverride{
		"absent": nil,
		"closed": {Date: d, IsAvailable: false},
		"open with hours": {
			Date:        d,
			IsAvailable: true,
			Hours:       &domain.Hours{Start: domain.MustClock("14:00"), End: domain.MustClock("16:00")},
		},
	}

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := encodeEntry(want)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if want == nil && string(raw) != "null" {
				t.Fatalf("absent override stored as %s", raw)
			}

			got := &domain.DateOverride{Date: domain.Date{Year: 1999, Month: time.January, Day: 1}}
			if err := decodeEntry(raw, &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
			}
		})
	}
}

func TestDecodeEntryRejectsGarbage(t *testing.T) {
	var w domain.WeeklyAvailability
	if err := decodeEntry([]byte("{not json"), &w); err == nil {
		t.Fatal("expected decode error")
	}
}
