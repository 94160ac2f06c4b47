package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/httpresp"
	"github.com/BruksfildServices01/barber-availability/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	dayStates *booking.GetMonthDayStates
	slots     *booking.ListAvailableSlots
}

func NewAvailabilityHandler(
	dayStates *booking.GetMonthDayStates,
	slots *booking.ListAvailableSlots,
) *AvailabilityHandler {
	return &AvailabilityHandler{dayStates: dayStates, slots: slots}
}

// ======================================================
// DAY STATES
// ======================================================

func (h *AvailabilityHandler) DayStates(c *gin.Context) {
	month, err := parseMonth(c.Query("month"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	states, err := h.dayStates.Execute(c.Request.Context(), c.Param("providerID"), month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"month": c.Query("month"),
		"days":  states,
	})
}

// ======================================================
// SLOTS
// ======================================================

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "date is required")
		return
	}

	duration, err := parseDuration(c.Query("duration"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), c.Param("providerID"), date, duration)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":             date,
		"duration_minutes": duration,
		"slots":            slots,
	})
}
