package generator

import (
	"testing"
	"time"

	"pulseboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	g := NewSeeded(42)

	for i := 0; i < 200; i++ {
		snap := g.Generate(now)
		require.NoError(t, snap.Validate())

		for _, key := range models.MetricKeys {
			m := snap.Stats.Get(key)
			require.NotNil(t, m, "metric %s", key)

			v, ok := m.Value(key)
			require.True(t, ok)
			r := Ranges[key]
			assert.True(t, r.Value.Contains(v), "%s value %v outside %v", key, v, r.Value)
			assert.True(t, r.Change.Contains(m.Change), "%s change %v outside %v", key, m.Change, r.Change)
			assert.Equal(t, v, float64(int(v)), "values are whole numbers")
		}

		assert.NotNil(t, snap.Stats.Revenue.Amount)
		assert.Nil(t, snap.Stats.Revenue.Count)
		assert.NotNil(t, snap.Stats.Users.Count)

		require.Len(t, snap.Activities, ActivityCount)
		for _, a := range snap.Activities {
			assert.True(t, a.Type.Known(), "type %q", a.Type)
			assert.Contains(t, ActivityTitles, a.Title)
			assert.False(t, a.Timestamp.After(now))
			assert.True(t, a.Timestamp.After(now.Add(-ActivityWindow)))
		}
	}
}

func TestGenerator_SeededIsDeterministic(t *testing.T) {
	now := time.Now()

	a := NewSeeded(7).Generate(now)
	b := NewSeeded(7).Generate(now)

	assert.Equal(t, a, b)
}

func TestGenerator_NilSource(t *testing.T) {
	snap := New(nil).Generate(time.Now())

	assert.Len(t, snap.Activities, ActivityCount)
}

func TestRange_Contains(t *testing.T) {
	r := Range{-5, 14}

	assert.True(t, r.Contains(-5))
	assert.True(t, r.Contains(14))
	assert.False(t, r.Contains(15))
	assert.False(t, r.Contains(-6))
}
