package models

import (
	"strings"
	"time"
)

// TimeEntry records one work session per user per calendar day. CheckIn and
// CheckOut are "HH:MM" clock values on that day; TotalHours is derived from
// them and is 0 while the entry is still open.
type TimeEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_entry_user_date" json:"user_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_entry_user_date" json:"date"`
	CheckIn    string    `gorm:"not null" json:"check_in"`
	CheckOut   *string   `json:"check_out"`
	TotalHours float64   `gorm:"not null;default:0" json:"total_hours"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (entry *TimeEntry) Open() bool {
	return entry.CheckOut == nil || strings.TrimSpace(*entry.CheckOut) == ""
}
