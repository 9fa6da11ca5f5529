package api

import (
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/db"
	"github.com/Er-Siddharth/clockwise-performance-suite/internal/services"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	auth         *services.AuthService
	entries      *services.EntryService
	settings     *services.SettingsService
	reports      *services.ReportService
	users        *db.UserRepository
	entryStore   *db.TimeEntryRepository
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
}

type Config struct {
	SecretKey    string
	Location     *time.Location
	CookieSecure bool

	// LoginDelay reproduces the artificial latency of the original mock
	// backend. Defaults to zero.
	LoginDelay time.Duration
}

func NewHandler(repos *db.Repositories, config Config) *Handler {
	location := config.Location
	if location == nil {
		location = time.Local
	}

	settingsService := services.NewSettingsService(repos.MonthlySettings)
	verifier := services.NewStoredCredentialVerifier(repos.Users)

	return &Handler{
		auth:         services.NewAuthService(verifier, repos.Users, config.LoginDelay),
		entries:      services.NewEntryService(repos.TimeEntries, location),
		settings:     settingsService,
		reports:      services.NewReportService(repos.Users, repos.TimeEntries, settingsService, location),
		users:        repos.Users,
		entryStore:   repos.TimeEntries,
		secretKey:    []byte(config.SecretKey),
		location:     location,
		cookieSecure: config.CookieSecure,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
