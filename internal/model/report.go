package model

import "time"

// EvaluationReport is the audit summary of one upload.
// It holds counts only; individual alerts are never stored.
type EvaluationReport struct {
	ID                string    `json:"id"`
	Filename          string    `json:"filename"`
	ArchiveKey        string    `json:"archive_key,omitempty"`
	RecordCount       int       `json:"record_count"`
	TotalAlerts       int       `json:"total_alerts"`
	LowStockCount     int       `json:"low_stock_count"`
	ExpiringSoonCount int       `json:"expiring_soon_count"`
	Healthy           bool      `json:"healthy"`
	EvaluatedAt       time.Time `json:"evaluated_at"`
}
