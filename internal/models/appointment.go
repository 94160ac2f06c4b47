package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	ProviderID string `gorm:"size:64;not null;index:idx_appointments_provider_date" json:"provider_id"`
	ClientID   string `gorm:"size:64;not null" json:"client_id"`
	ServiceID  string `gorm:"size:64" json:"service_id"`

	Date            time.Time `gorm:"type:date;not null;index:idx_appointments_provider_date" json:"date"`
	StartTime       time.Time `gorm:"not null" json:"start_time"`
	EndTime         time.Time `gorm:"not null" json:"end_time"`
	DurationMinutes int       `gorm:"not null;default:20" json:"duration_minutes"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
