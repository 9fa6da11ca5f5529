package db

import (
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
	"gorm.io/gorm"
)

type TimeEntryRepository struct {
	database *gorm.DB
}

func NewTimeEntryRepository(database *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{database: database}
}

func (repo *TimeEntryRepository) CountEntries() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.TimeEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *TimeEntryRepository) List() ([]models.TimeEntry, error) {
	entries := make([]models.TimeEntry, 0)
	if err := repo.database.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *TimeEntryRepository) ListByUser(userID uint) ([]models.TimeEntry, error) {
	entries := make([]models.TimeEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *TimeEntryRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.TimeEntry, error) {
	entries := make([]models.TimeEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *TimeEntryRepository) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.TimeEntry, error) {
	entries := make([]models.TimeEntry, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *TimeEntryRepository) FindByID(entryID uint) (models.TimeEntry, bool, error) {
	var entry models.TimeEntry
	result := repo.database.Limit(1).Find(&entry, entryID)
	if result.Error != nil {
		return models.TimeEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TimeEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *TimeEntryRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.TimeEntry, bool, error) {
	var entry models.TimeEntry
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.TimeEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TimeEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *TimeEntryRepository) Create(entry *models.TimeEntry) error {
	return repo.database.Create(entry).Error
}

// Update merges the given column values into the matching row and reports
// whether a row matched at all.
func (repo *TimeEntryRepository) Update(entryID uint, updates map[string]any) (models.TimeEntry, bool, error) {
	result := repo.database.Model(&models.TimeEntry{}).Where("id = ?", entryID).Updates(updates)
	if result.Error != nil {
		return models.TimeEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TimeEntry{}, false, nil
	}
	return repo.FindByID(entryID)
}

// Delete removes the matching row if present; deleting an unknown id is a
// no-op, not an error.
func (repo *TimeEntryRepository) Delete(entryID uint) error {
	return repo.database.Delete(&models.TimeEntry{}, entryID).Error
}
