package handlers

import (
	"strconv"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

// parseMonth accepts "YYYY-MM" and returns the first day of that month.
func parseMonth(s string) (domain.Date, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return domain.Date{}, httperr.Invalid("month must be YYYY-MM")
	}
	return domain.DateOf(t), nil
}

// parseDuration reads the duration query value. An empty value falls back
// to the default appointment length.
func parseDuration(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return domain.DefaultAppointmentMinutes, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, httperr.Invalid("duration must be a positive number of minutes")
	}
	return n, nil
}

func parseDate(s string) (domain.Date, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, httperr.Invalid("date must be YYYY-MM-DD")
	}
	return d, nil
}

// parseOptionalClock returns nil for an empty value.
func parseOptionalClock(field, s string) (*domain.ClockTime, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	c, err := domain.ParseClock(s)
	if err != nil {
		return nil, httperr.Invalid("%s must be HH:MM", field)
	}
	return &c, nil
}
