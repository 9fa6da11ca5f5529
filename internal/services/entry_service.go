package services

import (
	"errors"
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
)

var (
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrAlreadyCheckedIn = errors.New("an entry already exists for this day")
	ErrEntryClosed      = errors.New("entry is already checked out")
	ErrInvalidTimeRange = errors.New("check-out must be after check-in")
)

type EntryRepository interface {
	ListByUser(userID uint) ([]models.TimeEntry, error)
	FindByID(entryID uint) (models.TimeEntry, bool, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.TimeEntry, bool, error)
	Create(entry *models.TimeEntry) error
	Update(entryID uint, updates map[string]any) (models.TimeEntry, bool, error)
	Delete(entryID uint) error
}

// EntryService owns the check-in/check-out lifecycle. TotalHours is always
// re-derived from the stored clock values; callers never supply it.
type EntryService struct {
	entries  EntryRepository
	location *time.Location
}

func NewEntryService(entries EntryRepository, location *time.Location) *EntryService {
	if location == nil {
		location = time.UTC
	}
	return &EntryService{entries: entries, location: location}
}

// CheckIn opens a new entry for the user's calendar day. One entry per user
// per day is enforced; a second check-in on the same day is rejected.
func (service *EntryService) CheckIn(userID uint, day time.Time, checkIn string) (models.TimeEntry, error) {
	checkInMinutes, err := ParseClock(checkIn)
	if err != nil {
		return models.TimeEntry{}, err
	}

	dayStart, dayEnd := DayRange(day, service.location)
	_, exists, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.TimeEntry{}, err
	}
	if exists {
		return models.TimeEntry{}, ErrAlreadyCheckedIn
	}

	entry := models.TimeEntry{
		UserID:     userID,
		Date:       dayStart,
		CheckIn:    FormatClock(checkInMinutes),
		TotalHours: 0,
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.TimeEntry{}, err
	}
	return entry, nil
}

// CheckOut closes an open entry and derives its total. A check-out at or
// before the check-in is rejected rather than persisting a negative total.
func (service *EntryService) CheckOut(entryID uint, userID uint, checkOut string) (models.TimeEntry, error) {
	entry, err := service.findOwned(entryID, userID)
	if err != nil {
		return models.TimeEntry{}, err
	}
	if !entry.Open() {
		return models.TimeEntry{}, ErrEntryClosed
	}

	checkOutMinutes, err := ParseClock(checkOut)
	if err != nil {
		return models.TimeEntry{}, err
	}
	normalized := FormatClock(checkOutMinutes)
	total, err := ElapsedHours(entry.CheckIn, normalized)
	if err != nil {
		return models.TimeEntry{}, err
	}
	if total <= 0 {
		return models.TimeEntry{}, ErrInvalidTimeRange
	}

	updated, found, err := service.entries.Update(entryID, map[string]any{
		"check_out":   normalized,
		"total_hours": total,
	})
	if err != nil {
		return models.TimeEntry{}, err
	}
	if !found {
		return models.TimeEntry{}, ErrEntryNotFound
	}
	return updated, nil
}

// UpdateTimes rewrites both clock values of an entry (the timesheet edit
// flow). An empty check-out reopens the entry with a zero total.
func (service *EntryService) UpdateTimes(entryID uint, userID uint, checkIn string, checkOut string) (models.TimeEntry, error) {
	if _, err := service.findOwned(entryID, userID); err != nil {
		return models.TimeEntry{}, err
	}

	checkInMinutes, err := ParseClock(checkIn)
	if err != nil {
		return models.TimeEntry{}, err
	}

	updates := map[string]any{
		"check_in":    FormatClock(checkInMinutes),
		"check_out":   nil,
		"total_hours": 0.0,
	}
	if checkOut != "" {
		checkOutMinutes, err := ParseClock(checkOut)
		if err != nil {
			return models.TimeEntry{}, err
		}
		normalized := FormatClock(checkOutMinutes)
		total, err := ElapsedHours(FormatClock(checkInMinutes), normalized)
		if err != nil {
			return models.TimeEntry{}, err
		}
		if total <= 0 {
			return models.TimeEntry{}, ErrInvalidTimeRange
		}
		updates["check_out"] = normalized
		updates["total_hours"] = total
	}

	updated, found, err := service.entries.Update(entryID, updates)
	if err != nil {
		return models.TimeEntry{}, err
	}
	if !found {
		return models.TimeEntry{}, ErrEntryNotFound
	}
	return updated, nil
}

// Delete removes an owned entry; deleting an unknown id is a no-op.
func (service *EntryService) Delete(entryID uint, userID uint) error {
	entry, found, err := service.entries.FindByID(entryID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if entry.UserID != userID {
		return ErrEntryNotFound
	}
	return service.entries.Delete(entryID)
}

type Timesheet struct {
	Entries           []models.TimeEntry
	CurrentWeekHours  float64
	PreviousWeekHours float64
}

// BuildTimesheet lists a user's entries newest-first together with the
// rolling week totals shown above the table.
func (service *EntryService) BuildTimesheet(userID uint, now time.Time) (Timesheet, error) {
	entries, err := service.entries.ListByUser(userID)
	if err != nil {
		return Timesheet{}, err
	}
	return Timesheet{
		Entries:           entries,
		CurrentWeekHours:  WeeklyTotal(entries, now, 0, service.location),
		PreviousWeekHours: WeeklyTotal(entries, now, 1, service.location),
	}, nil
}

// EntryForDay reports the user's entry for one calendar day, if any.
func (service *EntryService) EntryForDay(userID uint, day time.Time) (models.TimeEntry, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
}

func (service *EntryService) findOwned(entryID uint, userID uint) (models.TimeEntry, error) {
	entry, found, err := service.entries.FindByID(entryID)
	if err != nil {
		return models.TimeEntry{}, err
	}
	if !found || entry.UserID != userID {
		return models.TimeEntry{}, ErrEntryNotFound
	}
	return entry, nil
}
