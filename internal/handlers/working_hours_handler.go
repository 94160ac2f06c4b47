package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/httpresp"
	"github.com/BruksfildServices01/barber-availability/internal/usecase/schedule"
)

type WorkingHoursHandler struct {
	get            *schedule.GetWeeklyAvailability
	replace        *schedule.ReplaceWeeklyAvailability
	upsertOverride *schedule.UpsertDateOverride
	deleteOverride *schedule.DeleteDateOverride
}

func NewWorkingHoursHandler(
	get *schedule.GetWeeklyAvailability,
	replace *schedule.ReplaceWeeklyAvailability,
	upsertOverride *schedule.UpsertDateOverride,
	deleteOverride *schedule.DeleteDateOverride,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		get:            get,
		replace:        replace,
		upsertOverride: upsertOverride,
		deleteOverride: deleteOverride,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start,omitempty"`
	BreakEnd   string `json:"break_end,omitempty"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,dive"`
}

type DateOverrideRequest struct {
	IsAvailable bool   `json:"is_available"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	BreakStart  string `json:"break_start"`
	BreakEnd    string `json:"break_end"`
}

// ======================================================
// WEEKLY
// ======================================================

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	weekly, err := h.get.Execute(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	days := make([]WorkingDayConfig, 0, len(weekly))
	for i, row := range weekly {
		if row == nil {
			continue
		}
		cfg := WorkingDayConfig{
			Weekday:   i,
			Active:    row.IsAvailable,
			StartTime: row.Start.String(),
			EndTime:   row.End.String(),
		}
		if row.Break != nil {
			cfg.BreakStart = row.Break.Start.String()
			cfg.BreakEnd = row.Break.End.String()
		}
		days = append(days, cfg)
	}

	httpresp.List(c, days)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid request body")
		return
	}

	var (
		weekly domain.WeeklyAvailability
		seen   [7]bool
	)
	for _, d := range req.Days {
		if seen[d.Weekday] {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "weekday listed twice")
			return
		}
		seen[d.Weekday] = true

		hours, err := hoursFromRequest(d.StartTime, d.EndTime, d.BreakStart, d.BreakEnd)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		if hours == nil {
			if d.Active {
				httperr.BadRequest(c, httperr.CodeInvalidInput, "active day needs start_time and end_time")
				return
			}
			// closed day without hours: no row at all
			continue
		}
		weekly[time.Weekday(d.Weekday)] = &domain.DaySchedule{Hours: *hours, IsAvailable: d.Active}
	}

	if err := h.replace.Execute(c.Request.Context(), c.Param("providerID"), weekly); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// OVERRIDES
// ======================================================

func (h *WorkingHoursHandler) PutOverride(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	var req DateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid request body")
		return
	}

	hours, err := hoursFromRequest(req.StartTime, req.EndTime, req.BreakStart, req.BreakEnd)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	override := domain.DateOverride{Date: date, IsAvailable: req.IsAvailable, Hours: hours}
	if err := h.upsertOverride.Execute(c.Request.Context(), c.Param("providerID"), override); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WorkingHoursHandler) DeleteOverride(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.deleteOverride.Execute(c.Request.Context(), c.Param("providerID"), date); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// hoursFromRequest returns nil when neither start nor end is given.
func hoursFromRequest(start, end, breakStart, breakEnd string) (*domain.Hours, error) {
	s, err := parseOptionalClock("start_time", start)
	if err != nil {
		return nil, err
	}
	e, err := parseOptionalClock("end_time", end)
	if err != nil {
		return nil, err
	}
	if s == nil && e == nil {
		return nil, nil
	}
	if s == nil || e == nil {
		return nil, httperr.Invalid("start_time and end_time go together")
	}

	hours := &domain.Hours{Start: *s, End: *e}

	bs, err := parseOptionalClock("break_start", breakStart)
	if err != nil {
		return nil, err
	}
	be, err := parseOptionalClock("break_end", breakEnd)
	if err != nil {
		return nil, err
	}
	switch {
	case bs != nil && be != nil:
		hours.Break = &domain.Window{Start: *bs, End: *be}
	case bs != nil || be != nil:
		return nil, httperr.Invalid("break_start and break_end go together")
	}
	return hours, nil
}
