package availability

import "time"

// DefaultAppointmentMinutes is assumed for stored appointments without a
// duration.
const DefaultAppointmentMinutes = 20

// MaxDurationMinutes bounds a service duration to one day.
const MaxDurationMinutes = minutesPerDay

// ValidDuration reports whether minutes is a usable service duration.
func ValidDuration(minutes int) bool {
	return minutes > 0 && minutes <= MaxDurationMinutes
}

// OverlapGuard is the conflict check shared by slot listing and the
// booking commit.
type OverlapGuard struct{}

// Blocks reports whether a takes part in conflict checks.
func (OverlapGuard) Blocks(a Appointment) bool {
	return a.Status.Active()
}

// FirstConflict returns the first blocking appointment overlapping
// [start, end).
func (g OverlapGuard) FirstConflict(start, end time.Time, existing []Appointment) (Appointment, bool) {
	for _, a := range existing {
		if !g.Blocks(a) {
			continue
		}
		if Overlaps(start, end, a.Start, a.End()) {
			return a, true
		}
	}
	return Appointment{}, false
}

func (g OverlapGuard) Conflicts(start, end time.Time, existing []Appointment) bool {
	_, ok := g.FirstConflict(start, end, existing)
	return ok
}
