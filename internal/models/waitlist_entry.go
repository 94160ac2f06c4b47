package models

import "time"

type WaitlistEntry struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	ProviderID string `gorm:"size:64;not null;index:idx_waitlist_provider_date" json:"provider_id"`
	ClientID   string `gorm:"size:64;not null" json:"client_id"`
	ServiceID  string `gorm:"size:64" json:"service_id"`

	RequestedDate time.Time `gorm:"type:date;not null;index:idx_waitlist_provider_date" json:"requested_date"`
	TimeStart     string `gorm:"size:5;not null" json:"time_start"`
	TimeEnd       string `gorm:"size:5;not null" json:"time_end"`

	Status   string `gorm:"size:20;default:'waiting';index" json:"status"`
	Priority int64  `gorm:"not null" json:"priority"`
	Notes    string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
