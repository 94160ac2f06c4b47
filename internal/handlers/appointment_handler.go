package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-availability/internal/dto"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/httpresp"
	"github.com/BruksfildServices01/barber-availability/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listByDate *appointment.ListAppointmentsByDate
	cancel     *appointment.CancelAppointment
	complete   *appointment.CompleteAppointment
}

func NewAppointmentHandler(
	listByDate *appointment.ListAppointmentsByDate,
	cancel *appointment.CancelAppointment,
	complete *appointment.CompleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		listByDate: listByDate,
		cancel:     cancel,
		complete:   complete,
	}
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "date is required")
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), c.Param("providerID"), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("providerID"), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap, time.UTC))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.complete.Execute(c.Request.Context(), c.Param("providerID"), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap, time.UTC))
}
