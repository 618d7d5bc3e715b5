package model

import "gorm.io/gorm"

// TimeSlot is a bookable interval. Slots are duration-based: a start
// time-of-day plus a length in minutes. Slots are immutable once created.
type TimeSlot struct {
	gorm.Model
	Name            string `json:"name" gorm:"not null"`
	StartTime       string `json:"start_time" gorm:"not null"` // "HH:MM", 24h
	DurationMinutes int    `json:"duration_minutes" gorm:"not null"`
	IsDinner        bool   `json:"is_dinner"`
}
