package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
)

var (
	ErrInvalidClock = errors.New("clock value must be formatted as HH:MM")
	ErrInvalidMonth = errors.New("month must be formatted as YYYY-MM")
)

const minutesPerHour = 60

// ParseClock turns an "HH:MM" value into minutes since midnight.
func ParseClock(value string) (int, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, ErrInvalidClock
	}
	return parsed.Hour()*minutesPerHour + parsed.Minute(), nil
}

// FormatClock is the inverse of ParseClock and normalizes stored values.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// ElapsedHours is the signed wall-clock difference between two clock values
// on the same reference day, rounded to 2 decimal places. A check-out earlier
// than the check-in yields a negative result; the entry lifecycle rejects
// such a pair before it is ever persisted.
func ElapsedHours(checkIn string, checkOut string) (float64, error) {
	inMinutes, err := ParseClock(checkIn)
	if err != nil {
		return 0, err
	}
	outMinutes, err := ParseClock(checkOut)
	if err != nil {
		return 0, err
	}
	return roundHours(float64(outMinutes-inMinutes) / minutesPerHour), nil
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}

// NormalizeMonth validates a "YYYY-MM" key and strips surrounding whitespace.
func NormalizeMonth(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if _, err := time.Parse("2006-01", trimmed); err != nil {
		return "", ErrInvalidMonth
	}
	return trimmed, nil
}

// MonthKey maps a date to the "YYYY-MM" key used by monthly settings.
func MonthKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format("2006-01")
}

// MonthRange returns the [start, nextStart) window covering one month key.
func MonthRange(month string, location *time.Location) (time.Time, time.Time, error) {
	normalized, err := NormalizeMonth(month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation("2006-01", normalized, location)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	return parsed, parsed.AddDate(0, 1, 0), nil
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// StartOfWeek returns the Sunday opening the week containing the value.
func StartOfWeek(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthlyTotal sums TotalHours over entries whose date falls in the month.
func MonthlyTotal(entries []models.TimeEntry, month string, location *time.Location) float64 {
	total := 0.0
	for _, entry := range entries {
		if MonthKey(entry.Date, location) == month {
			total += entry.TotalHours
		}
	}
	return total
}

// WeeklyTotal sums TotalHours over the 7-day window starting weekOffset weeks
// before the week containing referenceDate.
func WeeklyTotal(entries []models.TimeEntry, referenceDate time.Time, weekOffset int, location *time.Location) float64 {
	weekStart := StartOfWeek(referenceDate, location).AddDate(0, 0, -7*weekOffset)
	weekEnd := weekStart.AddDate(0, 0, 7)

	total := 0.0
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, location)
		if !day.Before(weekStart) && day.Before(weekEnd) {
			total += entry.TotalHours
		}
	}
	return total
}

type ProgressReport struct {
	Percentage     float64 `json:"percentage"`
	RemainingHours float64 `json:"remaining_hours"`
}

// Progress reports completion against a required-hours target. The
// percentage is unbounded above 100; callers clamp for display. A
// non-positive target reports zero progress instead of dividing by zero.
func Progress(totalHours float64, requiredHours float64) ProgressReport {
	report := ProgressReport{}
	if requiredHours > 0 {
		report.Percentage = roundHours(100 * totalHours / requiredHours)
		report.RemainingHours = roundHours(math.Max(0, requiredHours-totalHours))
	}
	return report
}

// DailyTargetRemaining spreads the remaining hours over the remaining
// working days, flooring the divisor at one day.
func DailyTargetRemaining(remainingHours float64, remainingWorkDays int) float64 {
	if remainingWorkDays < 1 {
		remainingWorkDays = 1
	}
	return roundHours(remainingHours / float64(remainingWorkDays))
}

// RequiredHours resolves the target for a month, falling back to the fixed
// default policy when no record is stored.
func RequiredHours(settings *models.MonthlySettings) float64 {
	if settings == nil {
		return float64(models.DefaultWorkingDays) * models.DefaultDailyHours
	}
	return settings.RequiredHours()
}
