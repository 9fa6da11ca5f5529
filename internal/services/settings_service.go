package services

import (
	"errors"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
)

var (
	ErrInvalidWorkingDays = errors.New("working days must be between 1 and 31")
	ErrInvalidDailyHours  = errors.New("daily hours must be greater than 0 and at most 24")
)

type SettingsRepository interface {
	List() ([]models.MonthlySettings, error)
	FindByMonth(month string) (models.MonthlySettings, bool, error)
	Upsert(settings *models.MonthlySettings) error
}

type SettingsService struct {
	settings SettingsRepository
}

func NewSettingsService(settings SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

func (service *SettingsService) List() ([]models.MonthlySettings, error) {
	return service.settings.List()
}

// Current resolves the policy for a month, answering the fixed default when
// no record is stored. The default is never persisted.
func (service *SettingsService) Current(month string) (models.MonthlySettings, error) {
	normalized, err := NormalizeMonth(month)
	if err != nil {
		return models.MonthlySettings{}, err
	}

	stored, found, err := service.settings.FindByMonth(normalized)
	if err != nil {
		return models.MonthlySettings{}, err
	}
	if !found {
		return models.DefaultMonthlySettings(normalized), nil
	}
	return stored, nil
}

// Upsert validates and stores the policy for a month, replacing any prior
// record under the same key. Omitted daily hours default to 8.
func (service *SettingsService) Upsert(month string, workingDays int, dailyHours float64) (models.MonthlySettings, error) {
	normalized, err := NormalizeMonth(month)
	if err != nil {
		return models.MonthlySettings{}, err
	}
	if dailyHours == 0 {
		dailyHours = models.DefaultDailyHours
	}
	if workingDays < 1 || workingDays > 31 {
		return models.MonthlySettings{}, ErrInvalidWorkingDays
	}
	if dailyHours < 0 || dailyHours > 24 {
		return models.MonthlySettings{}, ErrInvalidDailyHours
	}

	settings := models.MonthlySettings{
		Month:       normalized,
		WorkingDays: workingDays,
		DailyHours:  dailyHours,
	}
	if err := service.settings.Upsert(&settings); err != nil {
		return models.MonthlySettings{}, err
	}
	return settings, nil
}
