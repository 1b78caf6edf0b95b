package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ActivityType classifies a feed entry. Values outside the known set are
// legal and render with DefaultActivityIcon.
type ActivityType string

const (
	ActivityUser    ActivityType = "user"
	ActivityProject ActivityType = "project"
	ActivityTask    ActivityType = "task"
	ActivityPayment ActivityType = "payment"
	ActivityMessage ActivityType = "message"
	ActivityAlert   ActivityType = "alert"
)

// DefaultActivityIcon is used for any type not listed in ActivityTypes.
const DefaultActivityIcon = "fa-circle"

// ActivityTypes lists the known activity types.
var ActivityTypes = []ActivityType{
	ActivityUser,
	ActivityProject,
	ActivityTask,
	ActivityPayment,
	ActivityMessage,
	ActivityAlert,
}

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Layouts with an explicit offset, then local date-times, then a bare date.
var (
	zonedTimestampLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999Z0700",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04Z0700",
	}
	localTimestampLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
	}
)

const dateOnlyLayout = "2006-01-02"

// ParseTimestamp reads an ISO-8601 instant. Date-times without an offset are
// taken in the local zone and a bare date is midnight UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range zonedTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localTimestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// Activity is one entry of the recent activity feed. A zero Timestamp means
// the entry carried no readable time.
type Activity struct {
	Type      ActivityType `json:"type"`
	Title     string       `json:"title"`
	Timestamp time.Time    `json:"timestamp"`
}

// UnmarshalJSON accepts the timestamp as an ISO-8601 string or as epoch
// milliseconds. An unreadable timestamp leaves Timestamp zero and keeps the
// rest of the entry.
func (a *Activity) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type      ActivityType    `json:"type"`
		Title     string          `json:"title"`
		Timestamp json.RawMessage `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = Activity{Type: raw.Type, Title: raw.Title}
	a.Timestamp, _ = decodeTimestamp(raw.Timestamp)
	return nil
}

func decodeTimestamp(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, ErrInvalidTimestamp
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, err
		}
		return ParseTimestamp(s)
	}
	ms, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTimestamp, raw)
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// Icon returns the Font Awesome icon class for the type.
func (t ActivityType) Icon() string {
	switch t {
	case ActivityUser:
		return "fa-user"
	case ActivityProject:
		return "fa-folder"
	case ActivityTask:
		return "fa-tasks"
	case ActivityPayment:
		return "fa-credit-card"
	case ActivityMessage:
		return "fa-comment"
	case ActivityAlert:
		return "fa-exclamation-circle"
	default:
		return DefaultActivityIcon
	}
}

// Known reports whether t is one of ActivityTypes.
func (t ActivityType) Known() bool {
	return t.Icon() != DefaultActivityIcon
}

func (t ActivityType) String() string {
	return string(t)
}
