package alerting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medalert/internal/model"
)

func TestSummarize(t *testing.T) {
	e := NewEvaluator(nil)
	alerts := e.Evaluate([]model.MedicineRecord{
		{Name: "Paracetamol", Batch: "B1", Quantity: 5, MinThreshold: 10, ExpiryDate: "2024-05-01"},
		{Name: "Amoxicillin", Batch: "B2", Quantity: 1, MinThreshold: 10, ExpiryDate: "2024-03-15"},
		{Name: "Insulin", Batch: "B3", Quantity: 50, MinThreshold: 10, ExpiryDate: "2024-04-02"},
		{Name: "Paracetamol", Batch: "B4", Quantity: 2, MinThreshold: 10, ExpiryDate: "2024-04-20"},
	}, evalTime)

	s := Summarize(alerts)

	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 3, s.LowStock())
	assert.Equal(t, 3, s.ExpiringSoon())
	assert.Equal(t, []NameCount{
		{Name: "Paracetamol", Count: 3},
		{Name: "Amoxicillin", Count: 2},
		{Name: "Insulin", Count: 1},
	}, s.ByName)
	assert.Equal(t, []TypeShare{
		{AlertType: model.AlertTypeLowStock, Count: 3, Percent: 50},
		{AlertType: model.AlertTypeExpiringSoon, Count: 3, Percent: 50},
	}, s.TypeShare)
}

func TestSummarize_Consistent(t *testing.T) {
	e := NewEvaluator(nil)
	alerts := e.Evaluate([]model.MedicineRecord{
		{Name: "A", Batch: "1", Quantity: 0, MinThreshold: 1, ExpiryDate: "2024-03-01"},
		{Name: "B", Batch: "2", Quantity: 0, MinThreshold: 1, ExpiryDate: "2030-01-01"},
		{Name: "C", Batch: "3", Quantity: 9, MinThreshold: 1, ExpiryDate: "2030-01-01"},
	}, evalTime)

	s := Summarize(alerts)

	byType, byName, share := 0, 0, 0
	for _, n := range s.ByType {
		byType += n
	}
	for _, n := range s.ByName {
		byName += n.Count
	}
	for _, ts := range s.TypeShare {
		share += ts.Count
	}
	assert.Equal(t, len(alerts), s.Total)
	assert.Equal(t, s.Total, byType)
	assert.Equal(t, s.Total, byName)
	assert.Equal(t, s.Total, share)
	assert.Equal(t, []TypeShare{
		{AlertType: model.AlertTypeLowStock, Count: 2, Percent: 67},
		{AlertType: model.AlertTypeExpiringSoon, Count: 1, Percent: 33},
	}, s.TypeShare)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.LowStock())
	assert.Equal(t, 0, s.ExpiringSoon())
	assert.Empty(t, s.ByName)
	assert.Empty(t, s.TypeShare)
}

func TestNotify(t *testing.T) {
	alerts := []model.AlertRecord{
		{AlertMessage: "LOW STOCK: A has only 1 units (min: 2)", Priority: model.PriorityHigh},
		{AlertMessage: "EXPIRING: A batch 1 expires on 2024-03-01", Priority: model.PriorityMedium},
	}

	got := Notify(alerts)

	assert.Equal(t, []Notification{
		{Level: "error", Icon: "🚨", Text: "🚨 LOW STOCK: A has only 1 units (min: 2)"},
		{Level: "warning", Icon: "⚠️", Text: "⚠️ EXPIRING: A batch 1 expires on 2024-03-01"},
	}, got)
	assert.Empty(t, Notify(nil))
}
