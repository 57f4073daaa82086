package alerting

import "medalert/internal/model"

const (
	iconHigh    = "🚨"
	iconWarning = "⚠️"
)

// HealthyMessage is shown when an upload produces no alerts.
const HealthyMessage = "All medicines are healthy and within safe stock levels."

// Notification is a transient toast derived from one alert.
type Notification struct {
	Level string `json:"level"`
	Icon  string `json:"icon"`
	Text  string `json:"text"`
}

// Notify maps alerts to toasts in alert order. HIGH priority alerts are
// raised as errors, everything else as warnings.
func Notify(alerts []model.AlertRecord) []Notification {
	out := make([]Notification, 0, len(alerts))
	for _, a := range alerts {
		n := Notification{Level: "warning", Icon: iconWarning}
		if a.Priority == model.PriorityHigh {
			n = Notification{Level: "error", Icon: iconHigh}
		}
		n.Text = n.Icon + " " + a.AlertMessage
		out = append(out, n)
	}
	return out
}
