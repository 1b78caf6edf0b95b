package models

import (
	"errors"
	"fmt"
)

// MetricKey names one of the four stat cards on the dashboard.
type MetricKey string

const (
	MetricUsers    MetricKey = "users"
	MetricRevenue  MetricKey = "revenue"
	MetricProjects MetricKey = "projects"
	MetricTasks    MetricKey = "tasks"
)

// MetricKeys lists the stat cards in render order.
var MetricKeys = []MetricKey{MetricUsers, MetricRevenue, MetricProjects, MetricTasks}

var ErrMetricValueMissing = errors.New("metric value is missing")

// DashboardSnapshot is the document rendered onto the dashboard, either read
// from the data resource or synthesised when that read fails.
type DashboardSnapshot struct {
	Stats      *StatBlock `json:"stats,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
}

// StatBlock holds the four optional stat card metrics.
type StatBlock struct {
	Users    *Metric `json:"users,omitempty"`
	Revenue  *Metric `json:"revenue,omitempty"`
	Projects *Metric `json:"projects,omitempty"`
	Tasks    *Metric `json:"tasks,omitempty"`
}

// Metric is a displayed value with its signed percentage change.
// Revenue carries Amount, every other card carries Count.
type Metric struct {
	Count  *float64 `json:"count,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Change float64  `json:"change"`
}

// CountMetric builds a metric for the users, projects and tasks cards.
func CountMetric(count, change float64) *Metric {
	return &Metric{Count: &count, Change: change}
}

// AmountMetric builds a metric for the revenue card.
func AmountMetric(amount, change float64) *Metric {
	return &Metric{Amount: &amount, Change: change}
}

// ValueField returns the JSON field that carries the displayed number for key.
func ValueField(key MetricKey) string {
	if key == MetricRevenue {
		return "amount"
	}
	return "count"
}

// Value returns the displayed number for the card named by key: Amount for
// revenue, Count for every other card. The other field is ignored.
func (m *Metric) Value(key MetricKey) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v := m.Count
	if key == MetricRevenue {
		v = m.Amount
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Up reports whether the change renders with the "up" state. Zero counts as up.
func (m *Metric) Up() bool {
	return m.Change >= 0
}

// Get returns the metric stored under key, or nil.
func (s *StatBlock) Get(key MetricKey) *Metric {
	if s == nil {
		return nil
	}
	switch key {
	case MetricUsers:
		return s.Users
	case MetricRevenue:
		return s.Revenue
	case MetricProjects:
		return s.Projects
	case MetricTasks:
		return s.Tasks
	}
	return nil
}

// Validate checks that every present metric carries the value field its card
// reads.
func (d *DashboardSnapshot) Validate() error {
	if d == nil {
		return errors.New("empty snapshot")
	}
	for _, key := range MetricKeys {
		m := d.Stats.Get(key)
		if m == nil {
			continue
		}
		if _, ok := m.Value(key); !ok {
			return fmt.Errorf("stats.%s.%s: %w", key, ValueField(key), ErrMetricValueMissing)
		}
	}
	return nil
}
