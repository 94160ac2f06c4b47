package availability

// Reason classifies a calendar day for booking.
type Reason string

const (
	ReasonPast          Reason = "PAST"
	ReasonOutsideWindow Reason = "OUTSIDE_WINDOW"
	ReasonUnavailable   Reason = "UNAVAILABLE"
	ReasonOK            Reason = "OK"
)

type DayState struct {
	Bookable bool   `json:"bookable"`
	Reason   Reason `json:"reason"`
}

// DefaultWindowDays is the booking horizon when none is configured.
const DefaultWindowDays = 30

// DayStateResolver classifies days against a booking horizon of
// WindowDays: today is the first eligible day and today+WindowDays the
// first ineligible one.
type DayStateResolver struct {
	WindowDays int
}

func NewDayStateResolver(windowDays int) DayStateResolver {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return DayStateResolver{WindowDays: windowDays}
}

// Resolve applies, first match wins: PAST, OUTSIDE_WINDOW, UNAVAILABLE, OK.
// OUTSIDE_WINDOW outranks UNAVAILABLE.
func (r DayStateResolver) Resolve(date, today Date, weekly WeeklyAvailability, override *DateOverride) DayState {
	idx := DayIndexDelta(today, date)

	switch {
	case idx < 0:
		return DayState{Reason: ReasonPast}
	case idx >= r.WindowDays:
		return DayState{Reason: ReasonOutsideWindow}
	}

	if open, _ := ResolveDay(date, weekly, override); !open {
		return DayState{Reason: ReasonUnavailable}
	}
	return DayState{Bookable: true, Reason: ReasonOK}
}
