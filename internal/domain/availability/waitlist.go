package availability

import (
	"time"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

type WaitlistStatus string

const (
	WaitlistWaiting  WaitlistStatus = "waiting"
	WaitlistNotified WaitlistStatus = "notified"
	WaitlistRemoved  WaitlistStatus = "removed"
)

func (s WaitlistStatus) Valid() bool {
	switch s {
	case WaitlistWaiting, WaitlistNotified, WaitlistRemoved:
		return true
	}
	return false
}

// Requested range used when the client gives none.
var (
	DefaultWaitlistStart = MustClock("09:00")
	DefaultWaitlistEnd   = MustClock("18:00")
)

type WaitlistEntry struct {
	ID            string
	ProviderID    string
	ClientID      string
	ServiceID     string
	RequestedDate Date
	TimeStart     ClockTime
	TimeEnd       ClockTime
	Status        WaitlistStatus
	// Priority is the creation time in unix seconds; lower is served first.
	Priority  int64
	Notes     string
	CreatedAt time.Time
}

// Transition moves the entry to next. Allowed: waiting -> notified and
// waiting|notified -> removed.
func (e *WaitlistEntry) Transition(next WaitlistStatus) error {
	if !next.Valid() {
		return httperr.Invalid("unknown waitlist status %q", next)
	}

	switch {
	case e.Status == WaitlistWaiting && next == WaitlistNotified:
	case (e.Status == WaitlistWaiting || e.Status == WaitlistNotified) && next == WaitlistRemoved:
	default:
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	e.Status = next
	return nil
}
