package alerting

import (
	"math"
	"sort"

	"medalert/internal/model"
)

// NameCount is one bar of the per-medicine chart.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TypeShare is one slice of the alert type chart.
type TypeShare struct {
	AlertType model.AlertType `json:"alert_type"`
	Count     int             `json:"count"`
	Percent   int             `json:"percent"`
}

// Summary holds the projections a dashboard renders over an alert list.
type Summary struct {
	Total     int                     `json:"total"`
	ByType    map[model.AlertType]int `json:"by_type"`
	ByName    []NameCount             `json:"by_name"`
	TypeShare []TypeShare             `json:"type_share"`
}

// LowStock is the number of LOW_STOCK alerts.
func (s Summary) LowStock() int { return s.ByType[model.AlertTypeLowStock] }

// ExpiringSoon is the number of EXPIRING_SOON alerts.
func (s Summary) ExpiringSoon() int { return s.ByType[model.AlertTypeExpiringSoon] }

// Summarize computes totals, per-type and per-name counts. ByName is sorted
// by count descending with ties kept in order of first appearance.
func Summarize(alerts []model.AlertRecord) Summary {
	s := Summary{
		Total: len(alerts),
		ByType: map[model.AlertType]int{
			model.AlertTypeLowStock:     0,
			model.AlertTypeExpiringSoon: 0,
		},
		ByName:    make([]NameCount, 0),
		TypeShare: make([]TypeShare, 0),
	}

	pos := make(map[string]int)
	typeOrder := make([]model.AlertType, 0, 2)
	for _, a := range alerts {
		if s.ByType[a.AlertType] == 0 {
			typeOrder = append(typeOrder, a.AlertType)
		}
		s.ByType[a.AlertType]++

		if i, ok := pos[a.Name]; ok {
			s.ByName[i].Count++
			continue
		}
		pos[a.Name] = len(s.ByName)
		s.ByName = append(s.ByName, NameCount{Name: a.Name, Count: 1})
	}
	sort.SliceStable(s.ByName, func(i, j int) bool {
		return s.ByName[i].Count > s.ByName[j].Count
	})

	for _, t := range typeOrder {
		n := s.ByType[t]
		s.TypeShare = append(s.TypeShare, TypeShare{
			AlertType: t,
			Count:     n,
			Percent:   int(math.Round(float64(n) * 100 / float64(s.Total))),
		})
	}
	sort.SliceStable(s.TypeShare, func(i, j int) bool {
		return s.TypeShare[i].Count > s.TypeShare[j].Count
	})
	return s
}
