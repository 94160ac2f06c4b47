package availability

import (
	"iter"
	"time"
)

// CandidateSlot is a bookable [Start, End) range. Never persisted.
type CandidateSlot struct {
	Start time.Time
	End   time.Time
}

type SlotRequest struct {
	Date            Date
	Location        *time.Location
	DurationMinutes int
	State           DayState
	Hours           *Hours
	Existing        []Appointment
	Now             time.Time
}

// SlotGenerator steps through the working window by the requested service
// duration.
type SlotGenerator struct {
	Guard OverlapGuard
}

// Slots yields bookable slots in chronological order. The sequence can be
// ranged over any number of times and yields nothing unless the day is OK,
// the duration is within (0, MaxDurationMinutes] and hours are known.
func (g SlotGenerator) Slots(req SlotRequest) iter.Seq[CandidateSlot] {
	return func(yield func(CandidateSlot) bool) {
		if req.State.Reason != ReasonOK || !ValidDuration(req.DurationMinutes) || req.Hours == nil {
			return
		}

		loc := req.Location
		if loc == nil {
			loc = time.UTC
		}

		step := time.Duration(req.DurationMinutes) * time.Minute
		dayStart := req.Date.At(req.Hours.Start, loc)
		dayEnd := req.Date.At(req.Hours.End, loc)

		var breakStart, breakEnd time.Time
		hasBreak := req.Hours.Break != nil
		if hasBreak {
			breakStart = req.Date.At(req.Hours.Break.Start, loc)
			breakEnd = req.Date.At(req.Hours.Break.End, loc)
		}

		isToday := !req.Now.IsZero() && DateOf(req.Now.In(loc)) == req.Date

		for cur := dayStart; !cur.Add(step).After(dayEnd); cur = cur.Add(step) {
			end := cur.Add(step)

			// today's elapsed slots
			if isToday && !cur.After(req.Now) {
				continue
			}

			if hasBreak && Overlaps(cur, end, breakStart, breakEnd) {
				continue
			}

			if g.Guard.Conflicts(cur, end, req.Existing) {
				continue
			}

			if !yield(CandidateSlot{Start: cur, End: end}) {
				return
			}
		}
	}
}

// StartTimes collects the slot start times as HH:MM.
func StartTimes(seq iter.Seq[CandidateSlot]) []string {
	out := []string{}
	for s := range seq {
		out = append(out, ClockOf(s.Start).String())
	}
	return out
}
