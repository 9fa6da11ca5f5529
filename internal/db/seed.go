package db

import (
	"fmt"
	"log"
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedUser struct {
	Email    string
	Name     string
	Role     string
	Password string
}

// Demo accounts from the original deployment. Passwords are documented on the
// login screen, so there is no secret to protect here.
var seedUsers = []seedUser{
	{Email: "user@company.com", Name: "John Doe", Role: models.RoleUser, Password: "password123"},
	{Email: "admin@company.com", Name: "Admin User", Role: models.RoleAdmin, Password: "admin123"},
	{Email: "jane@company.com", Name: "Jane Smith", Role: models.RoleUser, Password: "password123"},
}

// Seed populates empty record families with the demo data set: three fixed
// users, one sample entry for today and the current month's default settings.
// Families that already hold rows are left untouched.
func Seed(database *gorm.DB, location *time.Location) error {
	if location == nil {
		location = time.UTC
	}
	repos := NewRepositories(database)

	if err := seedDemoUsers(repos.Users); err != nil {
		return err
	}
	if err := seedSampleEntry(repos, location); err != nil {
		return err
	}
	return seedCurrentMonthSettings(repos.MonthlySettings, location)
}

func seedDemoUsers(users *UserRepository) error {
	count, err := users.CountUsers()
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, seed := range seedUsers {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", seed.Email, err)
		}
		user := models.User{
			Email:        seed.Email,
			Name:         seed.Name,
			PasswordHash: string(passwordHash),
			Role:         seed.Role,
		}
		if err := users.Create(&user); err != nil {
			return fmt.Errorf("create seed user %s: %w", seed.Email, err)
		}
	}

	log.Printf("seeded %d demo users (admin: %s)", len(seedUsers), seedUsers[1].Email)
	return nil
}

func seedSampleEntry(repos *Repositories, location *time.Location) error {
	count, err := repos.TimeEntries.CountEntries()
	if err != nil {
		return fmt.Errorf("count time entries: %w", err)
	}
	if count > 0 {
		return nil
	}

	owner, found, err := repos.Users.FindByNormalizedEmail(seedUsers[0].Email)
	if err != nil {
		return fmt.Errorf("load seed entry owner: %w", err)
	}
	if !found {
		return nil
	}

	now := time.Now().In(location)
	year, month, day := now.Date()
	checkOut := "17:30"
	entry := models.TimeEntry{
		UserID:     owner.ID,
		Date:       time.Date(year, month, day, 0, 0, 0, 0, location),
		CheckIn:    "09:00",
		CheckOut:   &checkOut,
		TotalHours: 8.5,
	}
	if err := repos.TimeEntries.Create(&entry); err != nil {
		return fmt.Errorf("create sample time entry: %w", err)
	}
	return nil
}

func seedCurrentMonthSettings(settings *MonthlySettingsRepository, location *time.Location) error {
	count, err := settings.CountSettings()
	if err != nil {
		return fmt.Errorf("count monthly settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	current := models.DefaultMonthlySettings(time.Now().In(location).Format("2006-01"))
	if err := settings.Upsert(&current); err != nil {
		return fmt.Errorf("create default monthly settings: %w", err)
	}
	return nil
}
