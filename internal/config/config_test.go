package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if cfg.BookingWindowDays != 30 {
		t.Fatalf("expected 30 day window, got %d", cfg.BookingWindowDays)
	}
	if cfg.CancelMinNotice != 2*time.Hour {
		t.Fatalf("expected 2h notice, got %v", cfg.CancelMinNotice)
	}
	if cfg.AvailabilityCacheTTL != 5*time.Minute || cfg.BookingLockTTL != 10*time.Second {
		t.Fatalf("unexpected ttls %v %v", cfg.AvailabilityCacheTTL, cfg.BookingLockTTL)
	}
	if cfg.RedisEnabled() {
		t.Fatalf("redis should be off by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("BOOKING_WINDOW_DAYS", "14")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("WAITLIST_SWEEP_INTERVAL", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StorageDriver != DriverMemory || cfg.BookingWindowDays != 14 {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if !cfg.RedisEnabled() || cfg.WaitlistSweepInterval != 0 {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"SERVER_PORT":         "99999",
		"STORAGE_DRIVER":      "mongo",
		"BOOKING_WINDOW_DAYS": "0",
		"BOOKING_LOCK_TTL":    "soon",
		"DEFAULT_TIMEZONE":    "Mars/Olympus",
		"LOG_FORMAT":          "xml",
	}

	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, val)
			}
		})
	}
}
