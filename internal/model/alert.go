package model

import "time"

// AlertType classifies the condition an alert reports.
type AlertType string

const (
	AlertTypeLowStock     AlertType = "LOW_STOCK"
	AlertTypeExpiringSoon AlertType = "EXPIRING_SOON"
)

// Priority is the urgency attached to an alert.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
)

// AlertRecord is a derived alert describing a stock or expiry condition.
// Timestamp is the capture time of the evaluation pass, shared by every
// alert produced in that pass.
type AlertRecord struct {
	Name         string    `json:"name"`
	Batch        string    `json:"batch"`
	AlertType    AlertType `json:"alert_type"`
	AlertMessage string    `json:"alert_message"`
	Priority     Priority  `json:"priority"`
	Timestamp    time.Time `json:"timestamp"`
}
