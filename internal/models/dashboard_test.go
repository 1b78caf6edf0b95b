package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityType_Icon(t *testing.T) {
	tests := []struct {
		typ  ActivityType
		want string
	}{
		{ActivityUser, "fa-user"},
		{ActivityProject, "fa-folder"},
		{ActivityTask, "fa-tasks"},
		{ActivityPayment, "fa-credit-card"},
		{ActivityMessage, "fa-comment"},
		{ActivityAlert, "fa-exclamation-circle"},
		{ActivityType("deploy"), DefaultActivityIcon},
		{ActivityType(""), DefaultActivityIcon},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Icon())
		})
	}

	assert.True(t, ActivityAlert.Known())
	assert.False(t, ActivityType("deploy").Known())
}

func TestMetric_Value(t *testing.T) {
	v, ok := CountMetric(1200, 0).Value(MetricUsers)
	assert.True(t, ok)
	assert.Equal(t, float64(1200), v)

	v, ok = AmountMetric(5000, -2).Value(MetricRevenue)
	assert.True(t, ok)
	assert.Equal(t, float64(5000), v)

	_, ok = (&Metric{Change: 3}).Value(MetricTasks)
	assert.False(t, ok)

	_, ok = (*Metric)(nil).Value(MetricUsers)
	assert.False(t, ok)
}

func TestMetric_ValueFollowsCard(t *testing.T) {
	count, amount := 5.0, 100.0
	both := &Metric{Count: &count, Amount: &amount}

	v, ok := both.Value(MetricRevenue)
	require.True(t, ok)
	assert.Equal(t, 100.0, v)

	for _, key := range []MetricKey{MetricUsers, MetricProjects, MetricTasks} {
		v, ok := both.Value(key)
		require.True(t, ok)
		assert.Equal(t, 5.0, v, "%s reads count", key)
	}

	_, ok = AmountMetric(100, 1).Value(MetricUsers)
	assert.False(t, ok)
	_, ok = CountMetric(5, 1).Value(MetricRevenue)
	assert.False(t, ok)

	assert.Equal(t, "amount", ValueField(MetricRevenue))
	assert.Equal(t, "count", ValueField(MetricProjects))
}

func TestMetric_Sign(t *testing.T) {
	assert.True(t, CountMetric(1, 0).Up())
	assert.False(t, CountMetric(1, -0.1).Up())
}

func TestDashboardSnapshot_DecodeAndValidate(t *testing.T) {
	body := `{
		"stats": {
			"users": {"count": 1250, "change": 12.5},
			"revenue": {"amount": 48250, "change": -3}
		},
		"activities": [
			{"type": "user", "title": "New user registered", "timestamp": "2026-10-17T09:30:00Z"}
		]
	}`

	var snap DashboardSnapshot
	require.NoError(t, json.Unmarshal([]byte(body), &snap))
	require.NoError(t, snap.Validate())

	assert.NotNil(t, snap.Stats.Get(MetricUsers))
	assert.NotNil(t, snap.Stats.Get(MetricRevenue))
	assert.Nil(t, snap.Stats.Get(MetricProjects))
	assert.Nil(t, snap.Stats.Get(MetricTasks))
	require.Len(t, snap.Activities, 1)
	assert.Equal(t, ActivityUser, snap.Activities[0].Type)

	bad := DashboardSnapshot{Stats: &StatBlock{Tasks: &Metric{Change: 1}}}
	err := bad.Validate()
	assert.ErrorIs(t, err, ErrMetricValueMissing)
	assert.Contains(t, err.Error(), "stats.tasks.count")

	wrongField := DashboardSnapshot{Stats: &StatBlock{Users: AmountMetric(100, 1)}}
	err = wrongField.Validate()
	assert.ErrorIs(t, err, ErrMetricValueMissing)
	assert.Contains(t, err.Error(), "stats.users.count")

	revenueCount := DashboardSnapshot{Stats: &StatBlock{Revenue: CountMetric(5, 1)}}
	assert.ErrorIs(t, revenueCount.Validate(), ErrMetricValueMissing)

	var nilStats DashboardSnapshot
	assert.NoError(t, nilStats.Validate())
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 10, 17, 9, 42, 0, 0, time.UTC)

	for _, s := range []string{
		"2026-10-17T09:42:00Z",
		"2026-10-17T09:42:00.000Z",
		"2026-10-17T10:42:00+01:00",
		"2026-10-17T10:42:00+0100",
	} {
		got, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), "%s parsed as %v", s, got)
	}

	for _, s := range []string{"", "yesterday", "17/10/2026", "2026-13-01"} {
		_, err := ParseTimestamp(s)
		assert.ErrorIs(t, err, ErrInvalidTimestamp, s)
	}
}

func TestActivity_UnmarshalJSON(t *testing.T) {
	var a Activity
	require.NoError(t, json.Unmarshal([]byte(`{"type":"deploy","title":"Release","timestamp":"not a date"}`), &a))
	assert.Equal(t, ActivityType("deploy"), a.Type)
	assert.Equal(t, "Release", a.Title)
	assert.True(t, a.Timestamp.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"type":"user","title":"x","timestamp":null}`), &a))
	assert.True(t, a.Timestamp.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"type":1}`), &a))
}
