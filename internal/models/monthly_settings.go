package models

import "time"

const (
	DefaultWorkingDays = 22
	DefaultDailyHours  = 8.0
)

// MonthlySettings is the tenant-wide hours policy for one calendar month,
// keyed by "YYYY-MM". Months without a stored record fall back to
// DefaultWorkingDays x DefaultDailyHours.
type MonthlySettings struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Month       string    `gorm:"uniqueIndex;not null;size:7" json:"month"`
	WorkingDays int       `gorm:"not null" json:"working_days"`
	DailyHours  float64   `gorm:"not null" json:"daily_hours"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (settings *MonthlySettings) RequiredHours() float64 {
	return float64(settings.WorkingDays) * settings.DailyHours
}

func DefaultMonthlySettings(month string) MonthlySettings {
	return MonthlySettings{
		Month:       month,
		WorkingDays: DefaultWorkingDays,
		DailyHours:  DefaultDailyHours,
	}
}
