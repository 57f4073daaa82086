package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"medalert/internal/alerting"
	"medalert/internal/inventory"
	"medalert/internal/metrics"
	"medalert/internal/model"
	"medalert/internal/repository"
	"medalert/internal/storage"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("report not found")
	ErrReaderNil       = errors.New("reader is nil")
	ErrHistoryDisabled = errors.New("evaluation history is disabled")
	ErrArchiveDisabled = errors.New("upload archive is disabled")
)

// Dashboard states.
const (
	StatusHealthy = "healthy"
	StatusAlerts  = "alerts"
)

const archiveURLExpiry = 15 * time.Minute

// DashboardResult is everything a dashboard needs to render one upload.
type DashboardResult struct {
	ReportID      string                  `json:"report_id,omitempty"`
	Status        string                  `json:"status"`
	Message       string                  `json:"message,omitempty"`
	RecordCount   int                     `json:"record_count"`
	EvaluatedAt   time.Time               `json:"evaluated_at"`
	Alerts        []model.AlertRecord     `json:"alerts"`
	Summary       alerting.Summary        `json:"summary"`
	Notifications []alerting.Notification `json:"notifications"`
}

// ReportListResult is the service-level DTO for paginated evaluation reports.
type ReportListResult struct {
	Items []model.EvaluationReport `json:"data"`
	Total int                      `json:"total"`
}

// DashboardService defines the use cases behind the upload dashboard.
type DashboardService interface {
	// Evaluate parses an uploaded CSV snapshot and computes its alerts.
	// Every call is independent; nothing from earlier uploads affects the result.
	Evaluate(ctx context.Context, r io.Reader, filename string, contentType string, size int64) (*DashboardResult, error)

	// ListReports returns audit summaries using limit/offset and a total count.
	ListReports(ctx context.Context, limit, offset int) (*ReportListResult, error)

	// GetReport returns a single audit summary by its ID.
	GetReport(ctx context.Context, id string) (*model.EvaluationReport, error)

	// ArchiveURL returns a time-limited download link for the raw upload behind a report.
	ArchiveURL(ctx context.Context, id string) (string, error)
}

// Option configures optional collaborators of the dashboard service.
type Option func(*dashboardService)

// WithArchive stores each raw upload in store.
func WithArchive(store storage.Storage) Option {
	return func(s *dashboardService) { s.store = store }
}

// WithHistory records an audit summary of each upload in repo.
func WithHistory(repo repository.ReportRepository) Option {
	return func(s *dashboardService) { s.repo = repo }
}

// WithRecorder sends evaluation measurements to rec.
func WithRecorder(rec metrics.Recorder) Option {
	return func(s *dashboardService) { s.rec = rec }
}

// WithLogger sets the logger used for non-fatal failures.
func WithLogger(log *zap.Logger) Option {
	return func(s *dashboardService) { s.log = log }
}

// WithClock overrides the evaluation time source.
func WithClock(now func() time.Time) Option {
	return func(s *dashboardService) { s.now = now }
}

type dashboardService struct {
	evaluator *alerting.Evaluator
	store     storage.Storage
	repo      repository.ReportRepository
	rec       metrics.Recorder
	log       *zap.Logger
	now       func() time.Time
	tracer    trace.Tracer
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(evaluator *alerting.Evaluator, opts ...Option) DashboardService {
	s := &dashboardService{
		evaluator: evaluator,
		rec:       metrics.Nop{},
		log:       zap.NewNop(),
		now:       time.Now,
		tracer:    otel.Tracer("medalert/internal/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *dashboardService) Evaluate(ctx context.Context, r io.Reader, filename string, contentType string, size int64) (res *DashboardResult, err error) {
	ctx, span := s.tracer.Start(ctx, "DashboardService.Evaluate",
		trace.WithAttributes(attribute.String("upload.filename", filename), attribute.Int64("upload.size", size)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if r == nil {
		return nil, ErrReaderNil
	}

	var archiveKey string
	if s.store != nil {
		data, err := io.ReadAll(r)
		if err != nil {
			s.rec.RecordUpload(metrics.OutcomeFailed)
			return nil, fmt.Errorf("read upload: %w", err)
		}
		archiveKey = s.archive(ctx, data, filename, contentType)
		r = bytes.NewReader(data)
	}

	records, err := inventory.ReadCSV(r)
	if err != nil {
		s.discardArchive(ctx, archiveKey)
		if errors.Is(err, inventory.ErrMissingColumn) || errors.Is(err, inventory.ErrMalformedRecord) {
			s.rec.RecordUpload(metrics.OutcomeRejected)
			return nil, err
		}
		s.rec.RecordUpload(metrics.OutcomeFailed)
		return nil, fmt.Errorf("read csv: %w", err)
	}

	now := s.now()
	alerts := s.evaluator.Evaluate(records, now)
	summary := alerting.Summarize(alerts)

	res = &DashboardResult{
		Status:        StatusAlerts,
		RecordCount:   len(records),
		EvaluatedAt:   now,
		Alerts:        alerts,
		Summary:       summary,
		Notifications: alerting.Notify(alerts),
	}
	if len(alerts) == 0 {
		res.Status = StatusHealthy
		res.Message = alerting.HealthyMessage
	}

	span.SetAttributes(
		attribute.Int("upload.records", len(records)),
		attribute.Int("alerts.total", summary.Total),
		attribute.Int("alerts.low_stock", summary.LowStock()),
		attribute.Int("alerts.expiring_soon", summary.ExpiringSoon()),
	)

	if s.repo != nil {
		stored, err := s.repo.Create(ctx, &model.EvaluationReport{
			ID:                uuid.New().String(),
			Filename:          filename,
			ArchiveKey:        archiveKey,
			RecordCount:       len(records),
			TotalAlerts:       summary.Total,
			LowStockCount:     summary.LowStock(),
			ExpiringSoonCount: summary.ExpiringSoon(),
			Healthy:           summary.Total == 0,
			EvaluatedAt:       now,
		})
		if err != nil {
			s.discardArchive(ctx, archiveKey)
			s.rec.RecordUpload(metrics.OutcomeFailed)
			return nil, fmt.Errorf("save report: %w", err)
		}
		res.ReportID = stored.ID
	}

	s.rec.ObserveRecords(len(records))
	s.rec.RecordAlerts(model.AlertTypeLowStock, summary.LowStock())
	s.rec.RecordAlerts(model.AlertTypeExpiringSoon, summary.ExpiringSoon())
	s.rec.RecordUpload(res.Status)

	s.log.Info("evaluation_completed",
		zap.String("filename", filename),
		zap.String("report_id", res.ReportID),
		zap.Int("records", len(records)),
		zap.Int("alerts", summary.Total),
		zap.Int("low_stock", summary.LowStock()),
		zap.Int("expiring_soon", summary.ExpiringSoon()),
	)
	return res, nil
}

// archive uploads the raw bytes and returns the object key, or "" when the
// upload could not be stored. Archive failures never fail an evaluation.
func (s *dashboardService) archive(ctx context.Context, data []byte, filename, contentType string) string {
	if contentType == "" {
		contentType = "text/csv"
	}
	key := filepath.ToSlash(filepath.Join("uploads", uuid.New().String()+filepath.Ext(filename)))
	info, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		s.log.Warn("upload_archive_failed", zap.String("filename", filename), zap.Error(err))
		return ""
	}
	return info.Key
}

func (s *dashboardService) discardArchive(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Warn("upload_archive_rollback_failed", zap.String("key", key), zap.Error(err))
	}
}

// ListReports returns paginated reports without exposing repository types.
func (s *dashboardService) ListReports(ctx context.Context, limit, offset int) (*ReportListResult, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ReportListResult{Items: res.Items, Total: res.Total}, nil
}

// GetReport returns a report by ID.
func (s *dashboardService) GetReport(ctx context.Context, id string) (*model.EvaluationReport, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return report, nil
}

func (s *dashboardService) ArchiveURL(ctx context.Context, id string) (string, error) {
	if s.store == nil {
		return "", ErrArchiveDisabled
	}
	report, err := s.GetReport(ctx, id)
	if err != nil {
		return "", err
	}
	if report.ArchiveKey == "" {
		return "", ErrNotFound
	}
	u, err := s.store.PresignGet(ctx, report.ArchiveKey, archiveURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign archive: %w", err)
	}
	return u, nil
}
