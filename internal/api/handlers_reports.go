package api

import (
	"strings"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Summary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.reports.BuildUserSummary(user.ID, handler.now())
	if err != nil {
		return respondDomainError(c, err, "failed to build summary")
	}
	return c.JSON(summary)
}

func (handler *Handler) MonthlyReport(c *fiber.Ctx) error {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		month = services.MonthKey(handler.now(), handler.location)
	}

	report, err := handler.reports.BuildMonthlyReport(month)
	if err != nil {
		return respondDomainError(c, err, "failed to build report")
	}
	return c.JSON(report)
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.users.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}
	return c.JSON(fiber.Map{"users": users})
}
