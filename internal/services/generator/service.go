package generator

import (
	"math/rand/v2"
	"sync"
	"time"

	"pulseboard/internal/models"
)

const (
	// ActivityCount is the number of synthetic feed entries.
	ActivityCount = 5

	// ActivityWindow bounds how far back a synthetic timestamp may fall.
	ActivityWindow = 7 * 24 * time.Hour
)

// ActivityTitles is the phrase list synthetic titles are drawn from. Titles
// are chosen independently of the activity type.
var ActivityTitles = []string{
	"New user registered",
	"Project created",
	"Task completed",
	"Payment received",
	"New message",
	"System alert",
	"User updated profile",
	"Project milestone reached",
	"Task assigned",
	"Invoice generated",
}

// Range is an integer interval, inclusive of Min and Max.
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies within r.
func (r Range) Contains(v float64) bool {
	return v >= float64(r.Min) && v <= float64(r.Max)
}

func (r Range) draw(rng *rand.Rand) float64 {
	return float64(rng.IntN(r.Max-r.Min+1) + r.Min)
}

// MetricRange bounds the value and change drawn for one stat card.
type MetricRange struct {
	Value  Range
	Change Range
}

// Ranges holds the synthetic bounds per stat card.
var Ranges = map[models.MetricKey]MetricRange{
	models.MetricUsers:    {Value: Range{1000, 10999}, Change: Range{-5, 14}},
	models.MetricRevenue:  {Value: Range{10000, 109999}, Change: Range{-5, 24}},
	models.MetricProjects: {Value: Range{50, 549}, Change: Range{-10, 9}},
	models.MetricTasks:    {Value: Range{200, 2199}, Change: Range{-5, 19}},
}

// Generator synthesises plausible dashboard snapshots. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator drawing from rng. A nil rng is seeded randomly.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// NewSeeded returns a deterministic Generator, mostly useful in tests and
// for reproducible seed files.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// Generate returns a synthetic snapshot with all four metrics and
// ActivityCount activities timestamped within ActivityWindow before now.
func (g *Generator) Generate(now time.Time) *models.DashboardSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	stats := &models.StatBlock{
		Users:    g.countMetric(models.MetricUsers),
		Revenue:  g.amountMetric(models.MetricRevenue),
		Projects: g.countMetric(models.MetricProjects),
		Tasks:    g.countMetric(models.MetricTasks),
	}

	return &models.DashboardSnapshot{
		Stats:      stats,
		Activities: g.activities(now),
	}
}

func (g *Generator) countMetric(key models.MetricKey) *models.Metric {
	r := Ranges[key]
	return models.CountMetric(r.Value.draw(g.rng), r.Change.draw(g.rng))
}

func (g *Generator) amountMetric(key models.MetricKey) *models.Metric {
	r := Ranges[key]
	return models.AmountMetric(r.Value.draw(g.rng), r.Change.draw(g.rng))
}

func (g *Generator) activities(now time.Time) []models.Activity {
	window := ActivityWindow.Milliseconds()
	activities := make([]models.Activity, 0, ActivityCount)
	for i := 0; i < ActivityCount; i++ {
		typ := models.ActivityTypes[g.rng.IntN(len(models.ActivityTypes))]
		title := ActivityTitles[g.rng.IntN(len(ActivityTitles))]
		offset := time.Duration(g.rng.Int64N(window)) * time.Millisecond

		activities = append(activities, models.Activity{
			Type:      typ,
			Title:     title,
			Timestamp: now.Add(-offset).UTC().Truncate(time.Millisecond),
		})
	}
	return activities
}
