package formatter

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero is up", 0, "+0%"},
		{"negative zero", math.Copysign(0, -1), "+0%"},
		{"positive integer", 12, "+12%"},
		{"positive fraction", 2.25, "+2.25%"},
		{"negative fraction", -3.5, "-3.5%"},
		{"negative integer", -10, "-10%"},
		{"large but plain", 123456789012, "+123456789012%"},
		{"exponent threshold", 1e21, "+1e+21%"},
		{"large negative", -2.5e22, "-2.5e+22%"},
		{"smallest plain", 0.000001, "+0.000001%"},
		{"tiny", 1.5e-7, "+1.5e-7%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercentage(tt.in))
		})
	}
}

func TestChangeClass(t *testing.T) {
	assert.Equal(t, "stat-change up", ChangeClass(0))
	assert.Equal(t, "stat-change up", ChangeClass(4))
	assert.Equal(t, "stat-change down", ChangeClass(-0.5))
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	ago := func(seconds int64) time.Time {
		return now.Add(-time.Duration(seconds) * time.Second)
	}

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"same instant", now, "just now"},
		{"five seconds", ago(5), "just now"},
		{"nine seconds", ago(9), "just now"},
		{"ten seconds", ago(10), "10 seconds ago"},
		{"forty five seconds", ago(45), "45 seconds ago"},
		{"one minute", ago(60), "1 minute ago"},
		{"minutes", ago(150), "2 minutes ago"},
		{"one hour", ago(3600), "1 hour ago"},
		{"day boundary minus one", ago(86399), "23 hours ago"},
		{"day boundary", ago(86400), "1 day ago"},
		{"days", ago(3 * 86400), "3 days ago"},
		{"one month", ago(2592000), "1 month ago"},
		{"eleven months", ago(11 * 2592000), "11 months ago"},
		{"year boundary plus one", ago(31536001), "1 year ago"},
		{"years", ago(2 * 31536000), "2 years ago"},
		{"beyond duration range", time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC), "527 years ago"},
		{"far future", time.Date(2600, 1, 1, 0, 0, 0, 0, time.UTC), "just now"},
		{"future", now.Add(90 * time.Second), "just now"},
		{"slightly future", now.Add(400 * time.Millisecond), "just now"},
		{"sub-second past", now.Add(-999 * time.Millisecond), "just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimeAgo(now, tt.ts))
		})
	}
}

func TestFormatter_Numbers(t *testing.T) {
	f := New("en-US")

	assert.Equal(t, "en-US", f.Locale())
	assert.Equal(t, "0", f.FormatCount(0))
	assert.Equal(t, "999", f.FormatCount(999))
	assert.Equal(t, "12,345", f.FormatCount(12345))
	assert.Equal(t, "1,234,567", f.FormatCount(1234567))
	assert.Equal(t, "1,234.5", f.FormatCount(1234.5))
	assert.Equal(t, "$48,250", f.FormatCurrency(48250))
}

func TestFormatter_Timestamp(t *testing.T) {
	ts := time.Date(2026, 10, 17, 15, 4, 5, 0, time.Local)

	assert.Equal(t, "10/17/2026, 3:04:05 PM", New("en-US").FormatTimestamp(ts))
	assert.Equal(t, "17/10/2026, 15:04:05", New("en-GB").FormatTimestamp(ts))
	assert.Equal(t, "17.10.2026, 15:04:05", New("de-DE").FormatTimestamp(ts))
	assert.Equal(t, "2026-10-17 15:04:05", New("sw").FormatTimestamp(ts))
}

func TestNew_InvalidLocaleFallsBack(t *testing.T) {
	f := New("not a locale!")

	assert.Equal(t, "en-US", f.Locale())
	assert.Equal(t, "12,345", f.FormatCount(12345))
}
