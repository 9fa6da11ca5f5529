package api

import (
	"errors"
	"strconv"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// domainErrorStatus classifies service errors into HTTP responses. Unknown
// errors fall through to a 500 at the call site.
func domainErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, services.ErrEntryNotFound):
		return fiber.StatusNotFound, true
	case errors.Is(err, services.ErrAlreadyCheckedIn), errors.Is(err, services.ErrEntryClosed):
		return fiber.StatusConflict, true
	case errors.Is(err, services.ErrInvalidClock),
		errors.Is(err, services.ErrInvalidMonth),
		errors.Is(err, services.ErrInvalidTimeRange),
		errors.Is(err, services.ErrInvalidWorkingDays),
		errors.Is(err, services.ErrInvalidDailyHours):
		return fiber.StatusBadRequest, true
	}
	return 0, false
}

func respondDomainError(c *fiber.Ctx, err error, fallback string) error {
	if status, ok := domainErrorStatus(err); ok {
		return apiError(c, status, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}
