// Package metrics exposes Prometheus collectors for evaluation outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"medalert/internal/model"
)

// Upload outcomes used as the "outcome" label.
const (
	OutcomeHealthy  = "healthy"
	OutcomeAlerts   = "alerts"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Recorder receives evaluation measurements.
type Recorder interface {
	RecordUpload(outcome string)
	RecordAlerts(alertType model.AlertType, n int)
	ObserveRecords(n int)
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordUpload(string) {}
func (Nop) RecordAlerts(model.AlertType, int) {}
func (Nop) ObserveRecords(int) {}

// AlertMetrics is the Prometheus-backed Recorder.
type AlertMetrics struct {
	uploads *prometheus.CounterVec
	alerts  *prometheus.CounterVec
	records prometheus.Histogram
}

var _ Recorder = (*AlertMetrics)(nil)

// NewAlertMetrics creates the collectors and registers them with reg.
func NewAlertMetrics(reg prometheus.Registerer) (*AlertMetrics, error) {
	m := &AlertMetrics{
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "medalert_uploads_total",
				Help: "Total number of inventory uploads evaluated, by outcome.",
			},
			[]string{"outcome"},
		),
		alerts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "medalert_alerts_total",
				Help: "Total number of alerts produced, by alert type.",
			},
			[]string{"alert_type"},
		),
		records: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "medalert_upload_records",
				Help:    "Number of medicine records per evaluated upload.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.uploads, m.alerts, m.records} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *AlertMetrics) RecordUpload(outcome string) {
	m.uploads.WithLabelValues(outcome).Inc()
}

func (m *AlertMetrics) RecordAlerts(alertType model.AlertType, n int) {
	if n <= 0 {
		return
	}
	m.alerts.WithLabelValues(string(alertType)).Add(float64(n))
}

func (m *AlertMetrics) ObserveRecords(n int) {
	m.records.Observe(float64(n))
}
