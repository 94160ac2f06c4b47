package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/httpresp"
	"github.com/BruksfildServices01/barber-availability/internal/usecase/booking"
)

type BookingHandler struct {
	commit *booking.CommitBooking
}

func NewBookingHandler(commit *booking.CommitBooking) *BookingHandler {
	return &BookingHandler{commit: commit}
}

type CreateBookingRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes *int   `json:"duration_minutes"`
	ClientID        string `json:"client_id" binding:"required"`
	ServiceID       string `json:"service_id"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid request body")
		return
	}

	// Omitted means the default service length; an explicit value goes to validation as is.
	duration := domain.DefaultAppointmentMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	ap, err := h.commit.Execute(c.Request.Context(), booking.CommitBookingInput{
		ProviderID:      c.Param("providerID"),
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: duration,
		ClientID:        req.ClientID,
		ServiceID:       req.ServiceID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"appointment_id": ap.ID,
		"start_time":     ap.Start,
		"end_time":       ap.End(),
		"status":         ap.Status,
	})
}
