package db

import (
	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
	"gorm.io/gorm"
)

type MonthlySettingsRepository struct {
	database *gorm.DB
}

func NewMonthlySettingsRepository(database *gorm.DB) *MonthlySettingsRepository {
	return &MonthlySettingsRepository{database: database}
}

func (repo *MonthlySettingsRepository) CountSettings() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.MonthlySettings{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *MonthlySettingsRepository) List() ([]models.MonthlySettings, error) {
	settings := make([]models.MonthlySettings, 0)
	if err := repo.database.Order("month ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (repo *MonthlySettingsRepository) FindByMonth(month string) (models.MonthlySettings, bool, error) {
	var settings models.MonthlySettings
	result := repo.database.Where("month = ?", month).Limit(1).Find(&settings)
	if result.Error != nil {
		return models.MonthlySettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MonthlySettings{}, false, nil
	}
	return settings, true, nil
}

// Upsert replaces the record for the month when one exists, otherwise
// appends a new one. Exactly one row per month survives either way.
func (repo *MonthlySettingsRepository) Upsert(settings *models.MonthlySettings) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.MonthlySettings
		result := tx.Where("month = ?", settings.Month).Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return tx.Create(settings).Error
		}

		settings.ID = existing.ID
		return tx.Model(&existing).Updates(map[string]any{
			"working_days": settings.WorkingDays,
			"daily_hours":  settings.DailyHours,
		}).Error
	})
}
