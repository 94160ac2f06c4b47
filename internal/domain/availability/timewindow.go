package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	isoDateLayout = "2006-01-02"
	minutesPerDay = 24 * 60
)

// Date is a calendar day with no time of day and no zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.utc().Format(isoDateLayout)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// utc is midnight UTC of d; UTC has no DST so day arithmetic on it is exact.
func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Midnight is d at 00:00 UTC, the form stored in date columns.
func (d Date) Midnight() time.Time {
	return d.utc()
}

func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	return d.utc().Before(o.utc())
}

// At returns the instant at minute-of-day m on d in loc.
func (d Date) At(m ClockTime, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, int(m), 0, 0, loc)
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// DaysInMonth lists every day of d's month in order.
func (d Date) DaysInMonth() []Date {
	first := d.FirstOfMonth()
	next := DateOf(first.utc().AddDate(0, 1, 0))

	days := make([]Date, 0, 31)
	for cur := first; cur.Before(next); cur = cur.AddDays(1) {
		days = append(days, cur)
	}
	return days
}

// DayIndexDelta is the number of calendar days from a to b (negative when b
// is before a). Only the date components are compared.
func DayIndexDelta(a, b Date) int {
	return int(b.utc().Sub(a.utc()).Hours() / 24)
}

// ClockTime is a minute of the day, 0 (00:00) to 1440 (24:00).
type ClockTime int

func ParseClock(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}

	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return ClockTime(h*60 + m), nil
}

func MustClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf returns the minute of day of t in t's own location.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) Valid() bool {
	return c >= 0 && c <= minutesPerDay
}

// Window is a half-open minute range [Start, End) within one day.
type Window struct {
	Start ClockTime
	End   ClockTime
}

func (w Window) Valid() bool {
	return w.Start.Valid() && w.End.Valid() && w.Start < w.End
}

func (w Window) Contains(o Window) bool {
	return w.Start <= o.Start && o.End <= w.End
}

// Overlaps is the half-open interval test: touching endpoints do not overlap.
// Every conflict check in this package goes through it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
