package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/dto"
	"github.com/BruksfildServices01/barber-availability/internal/httperr"
	"github.com/BruksfildServices01/barber-availability/internal/httpresp"
	"github.com/BruksfildServices01/barber-availability/internal/usecase/waitlist"
)

type WaitlistHandler struct {
	join   *waitlist.JoinWaitlist
	list   *waitlist.ListWaitlist
	update *waitlist.UpdateWaitlistStatus
}

func NewWaitlistHandler(
	join *waitlist.JoinWaitlist,
	list *waitlist.ListWaitlist,
	update *waitlist.UpdateWaitlistStatus,
) *WaitlistHandler {
	return &WaitlistHandler{join: join, list: list, update: update}
}

type JoinWaitlistRequest struct {
	Date      string `json:"date" binding:"required"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
	ClientID  string `json:"client_id" binding:"required"`
	ServiceID string `json:"service_id"`
	Notes     string `json:"notes"`
}

type UpdateWaitlistStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *WaitlistHandler) Join(c *gin.Context) {
	var req JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid request body")
		return
	}

	id, err := h.join.Execute(c.Request.Context(), waitlist.JoinWaitlistInput{
		ProviderID: c.Param("providerID"),
		Date:       req.Date,
		TimeStart:  req.TimeStart,
		TimeEnd:    req.TimeEnd,
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		Notes:      req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"waitlist_id": id})
}

func (h *WaitlistHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "date is required")
		return
	}

	entries, err := h.list.Execute(c.Request.Context(), c.Param("providerID"), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]dto.WaitlistEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.FromWaitlistEntry(e))
	}
	httpresp.List(c, out)
}

func (h *WaitlistHandler) UpdateStatus(c *gin.Context) {
	var req UpdateWaitlistStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "status is required")
		return
	}

	entry, err := h.update.Execute(c.Request.Context(), c.Param("id"), domain.WaitlistStatus(req.Status))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromWaitlistEntry(*entry))
}
