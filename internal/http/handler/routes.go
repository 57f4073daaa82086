package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"medalert/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when evaluation history is disabled.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.DashboardService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/dashboard", DashboardPrompt())
	app.Post("/dashboard/evaluations", EvaluateUpload(svc))

	app.Get("/reports", ListReports(svc))
	app.Get("/reports/:id", GetReport(svc))
	app.Get("/reports/:id/archive", GetReportArchive(svc))
}
