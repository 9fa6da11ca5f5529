package api

import (
	"github.com/gofiber/fiber/v2"
)

type settingsInput struct {
	WorkingDays int     `json:"working_days" form:"working_days"`
	DailyHours  float64 `json:"daily_hours" form:"daily_hours"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.settings.Current(c.Params("month"))
	if err != nil {
		return respondDomainError(c, err, "failed to load settings")
	}
	return c.JSON(fiber.Map{
		"settings":       settings,
		"required_hours": settings.RequiredHours(),
	})
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	input := settingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	settings, err := handler.settings.Upsert(c.Params("month"), input.WorkingDays, input.DailyHours)
	if err != nil {
		return respondDomainError(c, err, "failed to save settings")
	}
	return c.JSON(fiber.Map{
		"settings":       settings,
		"required_hours": settings.RequiredHours(),
	})
}
