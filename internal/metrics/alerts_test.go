package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medalert/internal/model"
)

func TestAlertMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewAlertMetrics(reg)
	require.NoError(t, err)

	m.RecordUpload(OutcomeAlerts)
	m.RecordUpload(OutcomeAlerts)
	m.RecordUpload(OutcomeHealthy)
	m.RecordAlerts(model.AlertTypeLowStock, 3)
	m.RecordAlerts(model.AlertTypeExpiringSoon, 0)
	m.ObserveRecords(12)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.uploads.WithLabelValues(OutcomeAlerts)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.uploads.WithLabelValues(OutcomeHealthy)))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.alerts.WithLabelValues(string(model.AlertTypeLowStock))))
	// a zero count must not create the series
	assert.Equal(t, 1, testutil.CollectAndCount(m.alerts))
	assert.Equal(t, 1, testutil.CollectAndCount(m.records))
}

func TestNewAlertMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewAlertMetrics(reg)
	require.NoError(t, err)

	_, err = NewAlertMetrics(reg)
	assert.Error(t, err)
}
