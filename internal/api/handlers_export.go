package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/Er-Siddharth/clockwise-performance-suite/internal/services"
	"github.com/gofiber/fiber/v2"
)

var exportCSVHeaders = []string{"date", "email", "name", "check_in", "check_out", "total_hours"}

// ExportCSV streams one month of entries across all users, ordered by date.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		month = services.MonthKey(handler.now(), handler.location)
	}

	monthStart, monthEnd, err := services.MonthRange(month, handler.location)
	if err != nil {
		return respondDomainError(c, err, "failed to resolve month")
	}

	entries, err := handler.entryStore.ListByRange(monthStart, monthEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}
	users, err := handler.users.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch users")
	}
	usersByID := make(map[uint]string, len(users))
	namesByID := make(map[uint]string, len(users))
	for _, user := range users {
		usersByID[user.ID] = user.Email
		namesByID[user.ID] = user.Name
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(exportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for _, entry := range entries {
		checkOut := ""
		if entry.CheckOut != nil {
			checkOut = *entry.CheckOut
		}
		if err := writer.Write([]string{
			services.DateAtLocation(entry.Date, handler.location).Format("2006-01-02"),
			usersByID[entry.UserID],
			namesByID[entry.UserID],
			entry.CheckIn,
			checkOut,
			strconv.FormatFloat(entry.TotalHours, 'f', 2, 64),
		}); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(month))
	return c.Send(output.Bytes())
}

func buildExportFilename(month string) string {
	return fmt.Sprintf("clockwise_entries_%s.csv", month)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType+"; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(fiber.HeaderCacheControl, "no-store")
}
