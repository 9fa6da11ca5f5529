package services

import (
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
)

type ReportUserRepository interface {
	List() ([]models.User, error)
}

type ReportEntryRepository interface {
	ListByRange(fromStart time.Time, toEnd time.Time) ([]models.TimeEntry, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.TimeEntry, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.TimeEntry, bool, error)
}

type MonthSettingsResolver interface {
	Current(month string) (models.MonthlySettings, error)
}

// ReportService aggregates entries into the dashboard and admin views.
type ReportService struct {
	users    ReportUserRepository
	entries  ReportEntryRepository
	settings MonthSettingsResolver
	location *time.Location
}

func NewReportService(users ReportUserRepository, entries ReportEntryRepository, settings MonthSettingsResolver, location *time.Location) *ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportService{
		users:    users,
		entries:  entries,
		settings: settings,
		location: location,
	}
}

type UserProgress struct {
	UserID         uint    `json:"user_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	TotalHours     float64 `json:"total_hours"`
	RequiredHours  float64 `json:"required_hours"`
	Percentage     float64 `json:"percentage"`
	RemainingHours float64 `json:"remaining_hours"`
}

type MonthlyReport struct {
	Month         string         `json:"month"`
	WorkingDays   int            `json:"working_days"`
	DailyHours    float64        `json:"daily_hours"`
	RequiredHours float64        `json:"required_hours"`
	Users         []UserProgress `json:"users"`
}

// BuildMonthlyReport computes per-user progress for one month across all
// non-admin users, against that month's required-hours target.
func (service *ReportService) BuildMonthlyReport(month string) (MonthlyReport, error) {
	settings, err := service.settings.Current(month)
	if err != nil {
		return MonthlyReport{}, err
	}
	required := settings.RequiredHours()

	monthStart, monthEnd, err := MonthRange(settings.Month, service.location)
	if err != nil {
		return MonthlyReport{}, err
	}
	entries, err := service.entries.ListByRange(monthStart, monthEnd)
	if err != nil {
		return MonthlyReport{}, err
	}
	totalsByUser := make(map[uint]float64, len(entries))
	for _, entry := range entries {
		totalsByUser[entry.UserID] += entry.TotalHours
	}

	users, err := service.users.List()
	if err != nil {
		return MonthlyReport{}, err
	}

	report := MonthlyReport{
		Month:         settings.Month,
		WorkingDays:   settings.WorkingDays,
		DailyHours:    settings.DailyHours,
		RequiredHours: required,
		Users:         make([]UserProgress, 0, len(users)),
	}
	for _, user := range users {
		if user.IsAdmin() {
			continue
		}
		progress := Progress(totalsByUser[user.ID], required)
		report.Users = append(report.Users, UserProgress{
			UserID:         user.ID,
			Name:           user.Name,
			Email:          user.Email,
			TotalHours:     roundHours(totalsByUser[user.ID]),
			RequiredHours:  required,
			Percentage:     progress.Percentage,
			RemainingHours: progress.RemainingHours,
		})
	}
	return report, nil
}

type UserSummary struct {
	Month                string  `json:"month"`
	TodayHours           float64 `json:"today_hours"`
	MonthHours           float64 `json:"month_hours"`
	RequiredHours        float64 `json:"required_hours"`
	RemainingHours       float64 `json:"remaining_hours"`
	Percentage           float64 `json:"percentage"`
	RemainingWorkingDays int     `json:"remaining_working_days"`
	DailyTarget          float64 `json:"daily_target"`
	CheckedIn            bool    `json:"checked_in"`
}

// BuildUserSummary computes the dashboard numbers for one user "as of now":
// today's hours, month progress and the average still needed per remaining
// working day. Days with a recorded entry count as spent working days.
func (service *ReportService) BuildUserSummary(userID uint, now time.Time) (UserSummary, error) {
	month := MonthKey(now, service.location)
	settings, err := service.settings.Current(month)
	if err != nil {
		return UserSummary{}, err
	}
	required := settings.RequiredHours()

	monthStart, monthEnd, err := MonthRange(month, service.location)
	if err != nil {
		return UserSummary{}, err
	}
	entries, err := service.entries.ListByUserRange(userID, monthStart, monthEnd)
	if err != nil {
		return UserSummary{}, err
	}

	monthHours := 0.0
	for _, entry := range entries {
		monthHours += entry.TotalHours
	}
	progress := Progress(monthHours, required)

	remainingDays := settings.WorkingDays - len(entries)
	if remainingDays < 1 {
		remainingDays = 1
	}

	summary := UserSummary{
		Month:                month,
		MonthHours:           roundHours(monthHours),
		RequiredHours:        required,
		RemainingHours:       progress.RemainingHours,
		Percentage:           progress.Percentage,
		RemainingWorkingDays: remainingDays,
		DailyTarget:          DailyTargetRemaining(progress.RemainingHours, remainingDays),
	}

	dayStart, dayEnd := DayRange(now, service.location)
	today, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return UserSummary{}, err
	}
	if found {
		summary.TodayHours = today.TotalHours
		summary.CheckedIn = today.Open()
	}
	return summary, nil
}
