package repository

import (
	"context"

	"medalert/internal/model"
)

// ReportRepository persists evaluation audit summaries using SQL queries only.
// No business logic here, strictly persistence operations.
type ReportRepository interface {
	// Create inserts a new report and returns the stored row.
	Create(ctx context.Context, report *model.EvaluationReport) (*model.EvaluationReport, error)

	// FindByID returns a report by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.EvaluationReport, error)

	// List returns a page of reports, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.EvaluationReport], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
