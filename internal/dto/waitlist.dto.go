package dto

import domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"

type WaitlistEntryDTO struct {
	ID            string `json:"id"`
	ProviderID    string `json:"provider_id"`
	ClientID      string `json:"client_id"`
	ServiceID     string `json:"service_id"`
	RequestedDate string `json:"requested_date"`
	TimeStart     string `json:"time_start"`
	TimeEnd       string `json:"time_end"`
	Status        string `json:"status"`
	Priority      int64  `json:"priority"`
	Notes         string `json:"notes,omitempty"`
}

func FromWaitlistEntry(e domain.WaitlistEntry) WaitlistEntryDTO {
	return WaitlistEntryDTO{
		ID:            e.ID,
		ProviderID:    e.ProviderID,
		ClientID:      e.ClientID,
		ServiceID:     e.ServiceID,
		RequestedDate: e.RequestedDate.String(),
		TimeStart:     e.TimeStart.String(),
		TimeEnd:       e.TimeEnd.String(),
		Status:        string(e.Status),
		Priority:      e.Priority,
		Notes:         e.Notes,
	}
}
