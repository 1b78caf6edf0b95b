// Package render binds dashboard snapshots onto a Target.
//
// A Renderer is not safe for overlapping calls on the same Target; callers
// serialise renders, which the HTTP layer does by giving every request its
// own document.
package render

import (
	"time"

	"pulseboard/internal/models"
	"pulseboard/internal/services/formatter"
)

// Renderer writes snapshots onto a Target.
type Renderer struct {
	target Target
	format *formatter.Formatter
	now    func() time.Time
}

// NewRenderer returns a Renderer for target. now defaults to time.Now.
func NewRenderer(target Target, format *formatter.Formatter, now func() time.Time) *Renderer {
	if target == nil {
		panic("render target is required")
	}
	if format == nil {
		format = formatter.New(formatter.DefaultLocale)
	}
	if now == nil {
		now = time.Now
	}
	return &Renderer{target: target, format: format, now: now}
}

// UpdateDashboard renders the stat cards and the activity feed.
func (r *Renderer) UpdateDashboard(snapshot *models.DashboardSnapshot) {
	if snapshot == nil {
		return
	}
	r.UpdateStats(snapshot.Stats)
	r.UpdateActivityList(snapshot.Activities)
}

// UpdateStats fills every stat card whose metric and value element both
// exist. Cards without data keep their current content.
func (r *Renderer) UpdateStats(stats *models.StatBlock) {
	if stats == nil {
		return
	}
	for _, key := range models.MetricKeys {
		m := stats.Get(key)
		if m == nil || !r.target.Has(CountID(string(key))) {
			continue
		}
		value, ok := m.Value(key)
		if !ok {
			continue
		}

		text := r.format.FormatCount(value)
		if key == models.MetricRevenue {
			text = r.format.FormatCurrency(value)
		}
		r.target.SetText(CountID(string(key)), text)

		changeID := ChangeID(string(key))
		r.target.SetText(changeID, formatter.FormatPercentage(m.Change))
		r.target.SetClass(changeID, formatter.ChangeClass(m.Change))
	}
}

// UpdateActivityList replaces the feed with one item per activity in input
// order. An empty input leaves the feed untouched.
func (r *Renderer) UpdateActivityList(activities []models.Activity) {
	if len(activities) == 0 || !r.target.Has(ActivityListID) {
		return
	}

	now := r.now()
	items := make([]ActivityItem, 0, len(activities))
	for _, a := range activities {
		item := ActivityItem{Icon: a.Type.Icon(), Title: a.Title}
		// entries without a readable time keep an empty time line
		if !a.Timestamp.IsZero() {
			item.Time = formatter.FormatTimeAgo(now, a.Timestamp)
		}
		items = append(items, item)
	}
	r.target.ReplaceActivities(ActivityListID, items)
}

// UpdateLastUpdated stamps t into the last-updated element.
func (r *Renderer) UpdateLastUpdated(t time.Time) {
	r.target.SetText(LastUpdatedID, r.format.FormatTimestamp(t))
}
