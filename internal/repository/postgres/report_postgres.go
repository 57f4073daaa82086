package postgres

import (
	"context"
	"database/sql"

	"medalert/internal/model"
	"medalert/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

const reportColumns = `id, filename, archive_key, record_count, total_alerts, low_stock_count, expiring_soon_count, healthy, evaluated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*model.EvaluationReport, error) {
	var (
		r          model.EvaluationReport
		archiveKey sql.NullString
	)
	if err := s.Scan(
		&r.ID,
		&r.Filename,
		&archiveKey,
		&r.RecordCount,
		&r.TotalAlerts,
		&r.LowStockCount,
		&r.ExpiringSoonCount,
		&r.Healthy,
		&r.EvaluatedAt,
	); err != nil {
		return nil, err
	}
	r.ArchiveKey = archiveKey.String
	return &r, nil
}

// Create inserts a report row and returns the stored record.
func (p *ReportPostgres) Create(ctx context.Context, r *model.EvaluationReport) (*model.EvaluationReport, error) {
	const q = `
		INSERT INTO evaluation_reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + reportColumns

	var archiveKey sql.NullString
	if r.ArchiveKey != "" {
		archiveKey = sql.NullString{String: r.ArchiveKey, Valid: true}
	}
	row := p.db.QueryRowContext(ctx, q,
		r.ID,
		r.Filename,
		archiveKey,
		r.RecordCount,
		r.TotalAlerts,
		r.LowStockCount,
		r.ExpiringSoonCount,
		r.Healthy,
		r.EvaluatedAt,
	)
	return scanReport(row)
}

// FindByID fetches a single report by its ID.
func (p *ReportPostgres) FindByID(ctx context.Context, id string) (*model.EvaluationReport, error) {
	const q = `SELECT ` + reportColumns + ` FROM evaluation_reports WHERE id = $1`
	return scanReport(p.db.QueryRowContext(ctx, q, id))
}

// List returns reports using LIMIT/OFFSET pagination and a total count.
func (p *ReportPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.EvaluationReport], error) {
	const qCount = `SELECT COUNT(*) FROM evaluation_reports`
	var total int
	if err := p.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + reportColumns + ` FROM evaluation_reports
		ORDER BY evaluated_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := p.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.EvaluationReport, 0)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.EvaluationReport]{
		Items: items,
		Total: total,
	}, nil
}
