package availability

import (
	"errors"
	"time"
)

// Hours is a working interval with an optional break inside it.
type Hours struct {
	Start ClockTime
	End   ClockTime
	Break *Window
}

func (h Hours) Working() Window {
	return Window{Start: h.Start, End: h.End}
}

// Validate enforces start < end and, with a break,
// start <= breakStart < breakEnd <= end.
func (h Hours) Validate() error {
	if !h.Working().Valid() {
		return errors.New("start time must be before end time")
	}
	if h.Break != nil {
		if !h.Break.Valid() {
			return errors.New("break start must be before break end")
		}
		if !h.Working().Contains(*h.Break) {
			return errors.New("break must lie inside working hours")
		}
	}
	return nil
}

// DaySchedule is one weekly availability row.
type DaySchedule struct {
	Hours
	IsAvailable bool
}

// WeeklyAvailability holds one optional row per weekday, indexed by
// time.Weekday (Sunday = 0). A nil entry means no row exists.
type WeeklyAvailability [7]*DaySchedule

func (w WeeklyAvailability) For(day time.Weekday) *DaySchedule {
	if day < time.Sunday || day > time.Saturday {
		return nil
	}
	return w[day]
}

func (w WeeklyAvailability) Validate() error {
	for day, row := range w {
		if row == nil {
			continue
		}
		if err := row.Validate(); err != nil {
			return errors.New(time.Weekday(day).String() + ": " + err.Error())
		}
	}
	return nil
}

// DateOverride replaces the weekly pattern for one date. Hours is optional;
// an open override without hours keeps the weekly row's hours.
// "No override" is represented by a nil *DateOverride, never by IsAvailable=false.
type DateOverride struct {
	Date        Date
	IsAvailable bool
	Hours       *Hours
}

func (o DateOverride) Validate() error {
	if o.Date.IsZero() {
		return errors.New("override date is required")
	}
	if o.Hours != nil {
		return o.Hours.Validate()
	}
	return nil
}

// ResolveDay returns whether date is open and which hours apply, with the
// override taking precedence over the weekly row. hours is nil when no
// source defines them.
func ResolveDay(date Date, weekly WeeklyAvailability, override *DateOverride) (open bool, hours *Hours) {
	row := weekly.For(date.Weekday())

	if override != nil {
		if override.Hours != nil {
			h := *override.Hours
			hours = &h
		} else if row != nil {
			h := row.Hours
			hours = &h
		}
		return override.IsAvailable, hours
	}

	if row == nil {
		return false, nil
	}
	h := row.Hours
	return row.IsAvailable, &h
}
