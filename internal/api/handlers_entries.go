package api

import (
	"strings"
	"time"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/models"
	"github.com/gofiber/fiber/v2"
)

type checkInInput struct {
	Date    string `json:"date" form:"date"`
	CheckIn string `json:"check_in" form:"check_in"`
}

type checkOutInput struct {
	CheckOut string `json:"check_out" form:"check_out"`
}

type updateEntryInput struct {
	CheckIn  string `json:"check_in" form:"check_in"`
	CheckOut string `json:"check_out" form:"check_out"`
}

type entryView struct {
	ID         uint    `json:"id"`
	UserID     uint    `json:"user_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	TotalHours float64 `json:"total_hours"`
}

func (handler *Handler) entryView(entry models.TimeEntry) entryView {
	return entryView{
		ID:         entry.ID,
		UserID:     entry.UserID,
		Date:       entry.Date.In(handler.location).Format("2006-01-02"),
		CheckIn:    entry.CheckIn,
		CheckOut:   entry.CheckOut,
		TotalHours: entry.TotalHours,
	}
}

func (handler *Handler) entryViews(entries []models.TimeEntry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, handler.entryView(entry))
	}
	return views
}

// ListEntries answers the timesheet: the user's entries newest-first plus
// the current and previous week totals.
func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	timesheet, err := handler.entries.BuildTimesheet(user.ID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}

	return c.JSON(fiber.Map{
		"entries":             handler.entryViews(timesheet.Entries),
		"current_week_hours":  timesheet.CurrentWeekHours,
		"previous_week_hours": timesheet.PreviousWeekHours,
	})
}

func (handler *Handler) CheckIn(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := checkInInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.CheckIn) == "" {
		return apiError(c, fiber.StatusBadRequest, "check-in time is required")
	}

	day := handler.now()
	if trimmed := strings.TrimSpace(input.Date); trimmed != "" {
		parsed, err := time.ParseInLocation("2006-01-02", trimmed, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		}
		day = parsed
	}

	entry, err := handler.entries.CheckIn(user.ID, day, input.CheckIn)
	if err != nil {
		return respondDomainError(c, err, "failed to check in")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": handler.entryView(entry)})
}

func (handler *Handler) CheckOut(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	input := checkOutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.CheckOut) == "" {
		return apiError(c, fiber.StatusBadRequest, "check-out time is required")
	}

	entry, err := handler.entries.CheckOut(entryID, user.ID, input.CheckOut)
	if err != nil {
		return respondDomainError(c, err, "failed to check out")
	}
	return c.JSON(fiber.Map{"entry": handler.entryView(entry)})
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	input := updateEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.CheckIn) == "" {
		return apiError(c, fiber.StatusBadRequest, "check-in time is required")
	}

	entry, err := handler.entries.UpdateTimes(entryID, user.ID, input.CheckIn, strings.TrimSpace(input.CheckOut))
	if err != nil {
		return respondDomainError(c, err, "failed to update entry")
	}
	return c.JSON(fiber.Map{"entry": handler.entryView(entry)})
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	if err := handler.entries.Delete(entryID, user.ID); err != nil {
		return respondDomainError(c, err, "failed to delete entry")
	}
	return c.JSON(fiber.Map{"ok": true})
}
