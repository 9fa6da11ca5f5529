package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "clockwise-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}

func TestTimeEntryRepositoryCreateAndFind(t *testing.T) {
	repo := NewTimeEntryRepository(openTestDatabase(t))

	entry := models.TimeEntry{UserID: 1, Date: day(t, "2026-03-09"), CheckIn: "09:00"}
	if err := repo.Create(&entry); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("expected assigned id")
	}

	found, exists, err := repo.FindByID(entry.ID)
	if err != nil {
		t.Fatalf("FindByID() unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected entry to exist")
	}
	if found.CheckIn != "09:00" || found.CheckOut != nil {
		t.Fatalf("unexpected stored entry: %+v", found)
	}
}

func TestTimeEntryRepositoryUniquePerUserAndDay(t *testing.T) {
	repo := NewTimeEntryRepository(openTestDatabase(t))

	first := models.TimeEntry{UserID: 1, Date: day(t, "2026-03-09"), CheckIn: "09:00"}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	duplicate := models.TimeEntry{UserID: 1, Date: day(t, "2026-03-09"), CheckIn: "10:00"}
	if err := repo.Create(&duplicate); err == nil {
		t.Fatal("expected unique index violation for second entry on the same day")
	}

	otherUser := models.TimeEntry{UserID: 2, Date: day(t, "2026-03-09"), CheckIn: "10:00"}
	if err := repo.Create(&otherUser); err != nil {
		t.Fatalf("Create() for another user unexpected error: %v", err)
	}
}

func TestTimeEntryRepositoryUpdate(t *testing.T) {
	repo := NewTimeEntryRepository(openTestDatabase(t))

	entry := models.TimeEntry{UserID: 1, Date: day(t, "2026-03-09"), CheckIn: "09:00"}
	if err := repo.Create(&entry); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	updated, found, err := repo.Update(entry.ID, map[string]any{
		"check_out":   "17:30",
		"total_hours": 8.5,
	})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected update to match the row")
	}
	if updated.CheckOut == nil || *updated.CheckOut != "17:30" {
		t.Fatalf("expected stored check-out 17:30, got %+v", updated.CheckOut)
	}
	if updated.TotalHours != 8.5 {
		t.Fatalf("expected 8.5 total hours, got %v", updated.TotalHours)
	}

	if _, found, err := repo.Update(9999, map[string]any{"total_hours": 1.0}); err != nil || found {
		t.Fatalf("expected unknown id to report not found, got found=%v err=%v", found, err)
	}
}

func TestTimeEntryRepositoryDeleteIsIdempotent(t *testing.T) {
	repo := NewTimeEntryRepository(openTestDatabase(t))

	entry := models.TimeEntry{UserID: 1, Date: day(t, "2026-03-09"), CheckIn: "09:00"}
	if err := repo.Create(&entry); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := repo.Delete(9999); err != nil {
		t.Fatalf("expected deleting unknown id to be a no-op, got %v", err)
	}
	count, err := repo.CountEntries()
	if err != nil {
		t.Fatalf("CountEntries() unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected store size unchanged, got %d", count)
	}

	if err := repo.Delete(entry.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if err := repo.Delete(entry.ID); err != nil {
		t.Fatalf("expected repeated delete to be a no-op, got %v", err)
	}
	count, err = repo.CountEntries()
	if err != nil {
		t.Fatalf("CountEntries() unexpected error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty store, got %d", count)
	}
}

func TestTimeEntryRepositoryRangeQueries(t *testing.T) {
	repo := NewTimeEntryRepository(openTestDatabase(t))

	for _, seed := range []struct {
		userID uint
		date   string
	}{
		{userID: 1, date: "2026-02-28"},
		{userID: 1, date: "2026-03-02"},
		{userID: 2, date: "2026-03-05"},
		{userID: 1, date: "2026-04-01"},
	} {
		entry := models.TimeEntry{UserID: seed.userID, Date: day(t, seed.date), CheckIn: "09:00"}
		if err := repo.Create(&entry); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	march := day(t, "2026-03-01")
	april := day(t, "2026-04-01")

	all, err := repo.ListByRange(march, april)
	if err != nil {
		t.Fatalf("ListByRange() unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries in March, got %d", len(all))
	}

	mine, err := repo.ListByUserRange(1, march, april)
	if err != nil {
		t.Fatalf("ListByUserRange() unexpected error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 March entry for user 1, got %d", len(mine))
	}

	_, found, err := repo.FindByUserAndDayRange(1, day(t, "2026-03-02"), day(t, "2026-03-03"))
	if err != nil {
		t.Fatalf("FindByUserAndDayRange() unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected to find user 1 entry on 2026-03-02")
	}
}

func TestMonthlySettingsRepositoryUpsertReplacesByMonth(t *testing.T) {
	repo := NewMonthlySettingsRepository(openTestDatabase(t))

	first := models.MonthlySettings{Month: "2026-03", WorkingDays: 20, DailyHours: 7.5}
	if err := repo.Upsert(&first); err != nil {
		t.Fatalf("Upsert() unexpected error: %v", err)
	}
	second := models.MonthlySettings{Month: "2026-03", WorkingDays: 18, DailyHours: 8}
	if err := repo.Upsert(&second); err != nil {
		t.Fatalf("second Upsert() unexpected error: %v", err)
	}

	all, err := repo.List()
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one record for the month, got %d", len(all))
	}
	if all[0].WorkingDays != 18 || all[0].DailyHours != 8 {
		t.Fatalf("expected latest values to win, got %+v", all[0])
	}

	other := models.MonthlySettings{Month: "2026-04", WorkingDays: 21, DailyHours: 8}
	if err := repo.Upsert(&other); err != nil {
		t.Fatalf("Upsert() for another month unexpected error: %v", err)
	}
	all, err = repo.List()
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected two months stored, got %d", len(all))
	}
}

func TestUserRepositoryFindByNormalizedEmail(t *testing.T) {
	repo := NewUserRepository(openTestDatabase(t))

	user := models.User{Email: "user@company.com", Name: "John Doe", PasswordHash: "x", Role: models.RoleUser}
	if err := repo.Create(&user); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	found, exists, err := repo.FindByNormalizedEmail("user@company.com")
	if err != nil {
		t.Fatalf("FindByNormalizedEmail() unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected user to be found")
	}
	if found.Name != "John Doe" {
		t.Fatalf("expected John Doe, got %q", found.Name)
	}

	if _, exists, err := repo.FindByNormalizedEmail("nobody@company.com"); err != nil || exists {
		t.Fatalf("expected unknown email to report not found, got exists=%v err=%v", exists, err)
	}
}
