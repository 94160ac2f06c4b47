package repository

import (
	"fmt"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/models"
)

// Rows store clock times as HH:MM text and dates as date columns.

func hoursFromRow(start, end string, hasBreak bool, breakStart, breakEnd string) (domain.Hours, error) {
	s, err := domain.ParseClock(start)
	if err != nil {
		return domain.Hours{}, err
	}
	e, err := domain.ParseClock(end)
	if err != nil {
		return domain.Hours{}, err
	}

	h := domain.Hours{Start: s, End: e}
	if hasBreak {
		bs, err := domain.ParseClock(breakStart)
		if err != nil {
			return domain.Hours{}, err
		}
		be, err := domain.ParseClock(breakEnd)
		if err != nil {
			return domain.Hours{}, err
		}
		h.Break = &domain.Window{Start: bs, End: be}
	}
	return h, nil
}

func breakColumns(h domain.Hours) (bool, string, string) {
	if h.Break == nil {
		return false, "", ""
	}
	return true, h.Break.Start.String(), h.Break.End.String()
}

func weeklyFromRows(rows []models.WorkingHours) (domain.WeeklyAvailability, error) {
	var w domain.WeeklyAvailability
	for _, row := range rows {
		if row.Weekday < 0 || row.Weekday > 6 {
			return w, fmt.Errorf("working_hours %d: weekday %d out of range", row.ID, row.Weekday)
		}

		h, err := hoursFromRow(row.StartTime, row.EndTime, row.HasBreak, row.BreakStartTime, row.BreakEndTime)
		if err != nil {
			return w, fmt.Errorf("working_hours %d: %w", row.ID, err)
		}

		w[row.Weekday] = &domain.DaySchedule{Hours: h, IsAvailable: row.IsAvailable}
	}
	return w, nil
}

func weeklyToRows(providerID string, w domain.WeeklyAvailability) []models.WorkingHours {
	rows := make([]models.WorkingHours, 0, len(w))
	for day, sched := range w {
		if sched == nil {
			continue
		}
		hasBreak, bs, be := breakColumns(sched.Hours)
		rows = append(rows, models.WorkingHours{
			ProviderID:     providerID,
			Weekday:        day,
			StartTime:      sched.Start.String(),
			EndTime:        sched.End.String(),
			IsAvailable:    sched.IsAvailable,
			HasBreak:       hasBreak,
			BreakStartTime: bs,
			BreakEndTime:   be,
		})
	}
	return rows
}

func overrideFromRow(row models.DateOverride) (domain.DateOverride, error) {
	o := domain.DateOverride{
		Date:        domain.DateOf(row.Date.UTC()),
		IsAvailable: row.IsAvailable,
	}
	if row.StartTime == "" && row.EndTime == "" {
		return o, nil
	}

	h, err := hoursFromRow(row.StartTime, row.EndTime, row.HasBreak, row.BreakStartTime, row.BreakEndTime)
	if err != nil {
		return o, fmt.Errorf("date_override %d: %w", row.ID, err)
	}
	o.Hours = &h
	return o, nil
}

func overrideToRow(providerID string, o domain.DateOverride) models.DateOverride {
	row := models.DateOverride{
		ProviderID:  providerID,
		Date:        o.Date.Midnight(),
		IsAvailable: o.IsAvailable,
	}
	if o.Hours != nil {
		row.StartTime = o.Hours.Start.String()
		row.EndTime = o.Hours.End.String()
		row.HasBreak, row.BreakStartTime, row.BreakEndTime = breakColumns(*o.Hours)
	}
	return row
}

func appointmentFromRow(row models.Appointment) domain.Appointment {
	return domain.Appointment{
		ID:              row.ID,
		ProviderID:      row.ProviderID,
		ClientID:        row.ClientID,
		ServiceID:       row.ServiceID,
		Date:            domain.DateOf(row.Date.UTC()),
		Start:           row.StartTime,
		DurationMinutes: row.DurationMinutes,
		Status:          domain.Status(row.Status),
		CreatedAt:       row.CreatedAt,
		CancelledAt:     row.CancelledAt,
		CompletedAt:     row.CompletedAt,
	}
}

func waitlistFromRow(row models.WaitlistEntry) (domain.WaitlistEntry, error) {
	start, err := domain.ParseClock(row.TimeStart)
	if err != nil {
		return domain.WaitlistEntry{}, fmt.Errorf("waitlist_entry %s: %w", row.ID, err)
	}
	end, err := domain.ParseClock(row.TimeEnd)
	if err != nil {
		return domain.WaitlistEntry{}, fmt.Errorf("waitlist_entry %s: %w", row.ID, err)
	}

	return domain.WaitlistEntry{
		ID:            row.ID,
		ProviderID:    row.ProviderID,
		ClientID:      row.ClientID,
		ServiceID:     row.ServiceID,
		RequestedDate: domain.DateOf(row.RequestedDate.UTC()),
		TimeStart:     start,
		TimeEnd:       end,
		Status:        domain.WaitlistStatus(row.Status),
		Priority:      row.Priority,
		Notes:         row.Notes,
		CreatedAt:     row.CreatedAt,
	}, nil
}
