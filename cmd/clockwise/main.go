package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/api"
	"github.com/Er-Siddharth/clockwise-performance-suite/internal/db"
	"github.com/Er-Siddharth/clockwise-performance-suite/internal/security"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "clockwise.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"
	loginDelay := parseLoginDelay(getEnv("LOGIN_DELAY", ""))
	secretKey := resolveSecretKey()

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	if err := db.Seed(database, location); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	repos := db.NewRepositories(database)
	handler := api.NewHandler(repos, api.Config{
		SecretKey:    secretKey,
		Location:     location,
		CookieSecure: cookieSecure,
		LoginDelay:   loginDelay,
	})

	app := fiber.New(fiber.Config{
		AppName:               "Clockwise",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Clockwise listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// resolveSecretKey prefers SECRET_KEY from the environment; otherwise it
// generates an ephemeral one, which invalidates sessions on restart.
func resolveSecretKey() string {
	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		return secret
	}
	generated, err := security.RandomString(48, secretAlphabet)
	if err != nil {
		log.Fatalf("generate session secret failed: %v", err)
	}
	log.Print("SECRET_KEY not set, using an ephemeral secret; sessions will not survive restarts")
	return generated
}

func parseLoginDelay(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	delay, err := time.ParseDuration(raw)
	if err != nil || delay < 0 {
		log.Printf("invalid LOGIN_DELAY %q, disabling artificial delay", raw)
		return 0
	}
	return delay
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
