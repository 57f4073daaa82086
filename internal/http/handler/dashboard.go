package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"medalert/internal/inventory"
	"medalert/internal/service"
)

// PromptMessage is returned while no file has been uploaded.
const PromptMessage = "Please upload a CSV file to begin monitoring."

// DashboardPrompt returns the state shown before any upload.
//
// @Summary Dashboard prompt state
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]string
// @Router /dashboard [get]
func DashboardPrompt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "awaiting_upload", "message": PromptMessage})
	}
}

// EvaluateUpload evaluates an uploaded inventory CSV (multipart/form-data, field name: file).
//
// @Summary Evaluate an inventory snapshot
// @Tags dashboard
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV with name, batch, quantity, min_threshold, expiry_date"
// @Success 200 {object} service.DashboardResult
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /dashboard/evaluations [post]
func EvaluateUpload(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", PromptMessage)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "text/csv"
		}

		res, err := svc.Evaluate(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			var mce *inventory.MissingColumnError
			var mre *inventory.MalformedRecordError
			switch {
			case errors.As(err, &mce):
				return writeError(c, fiber.StatusUnprocessableEntity, "MISSING_COLUMN", mce.Error())
			case errors.As(err, &mre):
				return writeError(c, fiber.StatusUnprocessableEntity, "MALFORMED_RECORD", mre.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(res)
	}
}

// ListReports lists evaluation audit summaries with limit & offset.
//
// @Summary List evaluation reports
// @Tags reports
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "page offset" default(0)
// @Success 200 {object} service.ReportListResult
// @Failure 400 {object} errorPayload
// @Failure 501 {object} errorPayload
// @Router /reports [get]
func ListReports(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.ListReports(c.UserContext(), limit, offset)
		if err != nil {
			return reportError(c, err)
		}
		return c.JSON(res)
	}
}

// GetReport returns one evaluation audit summary.
//
// @Summary Get an evaluation report
// @Tags reports
// @Produce json
// @Param id path string true "report id"
// @Success 200 {object} model.EvaluationReport
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /reports/{id} [get]
func GetReport(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		report, err := svc.GetReport(c.UserContext(), id)
		if err != nil {
			return reportError(c, err)
		}
		return c.JSON(report)
	}
}

// GetReportArchive returns a pre-signed link to the raw upload behind a report.
//
// @Summary Download link for an archived upload
// @Tags reports
// @Produce json
// @Param id path string true "report id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Failure 501 {object} errorPayload
// @Router /reports/{id}/archive [get]
func GetReportArchive(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.ArchiveURL(c.UserContext(), id)
		if err != nil {
			return reportError(c, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "report not found")
	case errors.Is(err, service.ErrHistoryDisabled):
		return writeError(c, fiber.StatusNotImplemented, "HISTORY_DISABLED", "evaluation history is disabled")
	case errors.Is(err, service.ErrArchiveDisabled):
		return writeError(c, fiber.StatusNotImplemented, "ARCHIVE_DISABLED", "upload archive is disabled")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
