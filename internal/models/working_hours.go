package models

import "time"

type WorkingHours struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProviderID string `gorm:"size:64;not null;uniqueIndex:idx_working_hours_provider_weekday" json:"provider_id"`

	Weekday int `gorm:"not null;uniqueIndex:idx_working_hours_provider_weekday" json:"weekday"`

	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`
	IsAvailable bool   `json:"is_available"`

	HasBreak       bool   `json:"has_break"`
	BreakStartTime string `gorm:"size:5" json:"break_start_time"`
	BreakEndTime   string `gorm:"size:5" json:"break_end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DateOverride supersedes WorkingHours for one date.
// StartTime/EndTime are empty when the override keeps the weekly hours.
type DateOverride struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProviderID string `gorm:"size:64;not null;uniqueIndex:idx_date_overrides_provider_date" json:"provider_id"`

	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_date_overrides_provider_date" json:"date"`
	IsAvailable bool   `json:"is_available"`

	StartTime      string `gorm:"size:5" json:"start_time"`
	EndTime        string `gorm:"size:5" json:"end_time"`
	HasBreak       bool   `json:"has_break"`
	BreakStartTime string `gorm:"size:5" json:"break_start_time"`
	BreakEndTime   string `gorm:"size:5" json:"break_end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
