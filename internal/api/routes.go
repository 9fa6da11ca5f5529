package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Get("", handler.ListEntries)
	entries.Post("/check-in", handler.CheckIn)
	entries.Post("/:id/check-out", handler.CheckOut)
	entries.Put("/:id", handler.UpdateEntry)
	entries.Delete("/:id", handler.DeleteEntry)

	api.Get("/summary", handler.AuthRequired, handler.Summary)
	api.Get("/settings/:month", handler.AuthRequired, handler.GetSettings)
	api.Put("/settings/:month", handler.AuthRequired, handler.AdminOnly, handler.UpdateSettings)

	api.Get("/users", handler.AuthRequired, handler.AdminOnly, handler.ListUsers)
	api.Get("/reports/monthly", handler.AuthRequired, handler.AdminOnly, handler.MonthlyReport)
	api.Get("/export/csv", handler.AuthRequired, handler.AdminOnly, handler.ExportCSV)
}
