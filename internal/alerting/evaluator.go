// Package alerting turns inventory snapshots into stock and expiry alerts.
package alerting

import (
	"fmt"
	"strings"
	"time"

	"medalert/internal/model"
)

// DefaultExpiryWindows are the month prefixes treated as "expiring soon".
// The window is fixed rather than relative to the evaluation time.
var DefaultExpiryWindows = []string{"2024-03", "2024-04"}

// Evaluator applies the low-stock and expiry checks to every record.
// It holds no state between calls.
type Evaluator struct {
	expiryWindows []string
}

// NewEvaluator builds an Evaluator matching expiry dates against windows.
// An empty list falls back to DefaultExpiryWindows.
func NewEvaluator(windows []string) *Evaluator {
	w := make([]string, 0, len(windows))
	for _, s := range windows {
		if s = strings.TrimSpace(s); s != "" {
			w = append(w, s)
		}
	}
	if len(w) == 0 {
		w = append(w, DefaultExpiryWindows...)
	}
	return &Evaluator{expiryWindows: w}
}

// ExpiryWindows returns a copy of the configured windows.
func (e *Evaluator) ExpiryWindows() []string {
	return append([]string(nil), e.expiryWindows...)
}

// Evaluate returns the alerts for records in input order. A record's
// low-stock alert always precedes its own expiry alert. Every alert carries
// now as its timestamp.
func (e *Evaluator) Evaluate(records []model.MedicineRecord, now time.Time) []model.AlertRecord {
	alerts := make([]model.AlertRecord, 0)
	for _, r := range records {
		if r.Quantity < r.MinThreshold {
			alerts = append(alerts, model.AlertRecord{
				Name:         r.Name,
				Batch:        r.Batch,
				AlertType:    model.AlertTypeLowStock,
				AlertMessage: fmt.Sprintf("LOW STOCK: %s has only %d units (min: %d)", r.Name, r.Quantity, r.MinThreshold),
				Priority:     model.PriorityHigh,
				Timestamp:    now,
			})
		}
		if e.inExpiryWindow(r.ExpiryDate) {
			alerts = append(alerts, model.AlertRecord{
				Name:         r.Name,
				Batch:        r.Batch,
				AlertType:    model.AlertTypeExpiringSoon,
				AlertMessage: fmt.Sprintf("EXPIRING: %s batch %s expires on %s", r.Name, r.Batch, r.ExpiryDate),
				Priority:     model.PriorityMedium,
				Timestamp:    now,
			})
		}
	}
	return alerts
}

// inExpiryWindow is a substring match, not a date comparison.
func (e *Evaluator) inExpiryWindow(expiry string) bool {
	for _, w := range e.expiryWindows {
		if strings.Contains(expiry, w) {
			return true
		}
	}
	return false
}
