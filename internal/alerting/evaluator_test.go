package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medalert/internal/model"
)

var evalTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		name   string
		record model.MedicineRecord
		want   []model.AlertRecord
	}{
		{
			name:   "low stock only",
			record: model.MedicineRecord{Name: "Paracetamol", Batch: "B1", Quantity: 5, MinThreshold: 10, ExpiryDate: "2024-05-01"},
			want: []model.AlertRecord{{
				Name:         "Paracetamol",
				Batch:        "B1",
				AlertType:    model.AlertTypeLowStock,
				AlertMessage: "LOW STOCK: Paracetamol has only 5 units (min: 10)",
				Priority:     model.PriorityHigh,
				Timestamp:    evalTime,
			}},
		},
		{
			name:   "expiring only",
			record: model.MedicineRecord{Name: "Amoxicillin", Batch: "B2", Quantity: 50, MinThreshold: 10, ExpiryDate: "2024-03-15"},
			want: []model.AlertRecord{{
				Name:         "Amoxicillin",
				Batch:        "B2",
				AlertType:    model.AlertTypeExpiringSoon,
				AlertMessage: "EXPIRING: Amoxicillin batch B2 expires on 2024-03-15",
				Priority:     model.PriorityMedium,
				Timestamp:    evalTime,
			}},
		},
		{
			name:   "healthy",
			record: model.MedicineRecord{Name: "Ibuprofen", Batch: "B3", Quantity: 10, MinThreshold: 10, ExpiryDate: "2025-01-01"},
			want:   []model.AlertRecord{},
		},
		{
			name:   "substring match anywhere in the date",
			record: model.MedicineRecord{Name: "Cetirizine", Batch: "B4", Quantity: 20, MinThreshold: 5, ExpiryDate: "exp 2024-04"},
			want: []model.AlertRecord{{
				Name:         "Cetirizine",
				Batch:        "B4",
				AlertType:    model.AlertTypeExpiringSoon,
				AlertMessage: "EXPIRING: Cetirizine batch B4 expires on exp 2024-04",
				Priority:     model.PriorityMedium,
				Timestamp:    evalTime,
			}},
		},
	}

	e := NewEvaluator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Evaluate([]model.MedicineRecord{tt.record}, evalTime)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluator_BothAlertsInOrder(t *testing.T) {
	e := NewEvaluator(nil)
	records := []model.MedicineRecord{
		{Name: "Insulin", Batch: "X9", Quantity: 1, MinThreshold: 4, ExpiryDate: "2024-04-30"},
		{Name: "Aspirin", Batch: "A1", Quantity: 0, MinThreshold: 3, ExpiryDate: "2026-01-01"},
	}

	got := e.Evaluate(records, evalTime)

	require.Len(t, got, 3)
	assert.Equal(t, "Insulin", got[0].Name)
	assert.Equal(t, model.AlertTypeLowStock, got[0].AlertType)
	assert.Equal(t, "Insulin", got[1].Name)
	assert.Equal(t, model.AlertTypeExpiringSoon, got[1].AlertType)
	assert.Equal(t, "Aspirin", got[2].Name)
	for _, a := range got {
		assert.Equal(t, evalTime, a.Timestamp)
	}
}

func TestEvaluator_EmptyInput(t *testing.T) {
	got := NewEvaluator(nil).Evaluate(nil, evalTime)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEvaluator_Repeatable(t *testing.T) {
	e := NewEvaluator(nil)
	records := []model.MedicineRecord{{Name: "Paracetamol", Batch: "B1", Quantity: 5, MinThreshold: 10, ExpiryDate: "2024-03-01"}}

	first := e.Evaluate(records, evalTime)
	second := e.Evaluate(records, evalTime)

	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
}

func TestNewEvaluator_Windows(t *testing.T) {
	assert.Equal(t, DefaultExpiryWindows, NewEvaluator(nil).ExpiryWindows())
	assert.Equal(t, DefaultExpiryWindows, NewEvaluator([]string{" ", ""}).ExpiryWindows())

	e := NewEvaluator([]string{" 2025-01 "})
	assert.Equal(t, []string{"2025-01"}, e.ExpiryWindows())

	got := e.Evaluate([]model.MedicineRecord{
		{Name: "A", Batch: "1", Quantity: 5, MinThreshold: 1, ExpiryDate: "2025-01-10"},
		{Name: "B", Batch: "2", Quantity: 5, MinThreshold: 1, ExpiryDate: "2024-03-10"},
	}, evalTime)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}
