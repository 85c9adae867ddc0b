package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// layouts without a zone are read as UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func unquote(b []byte, what string) (string, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", fmt.Errorf("%s must be a string: %w", what, err)
	}
	return s, nil
}

// Timestamp accepts an RFC 3339 timestamp, or one without a zone
// (2006-01-02T15:04:05 or 2006-01-02T15:04) taken as UTC
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := unquote(b, "datetime")
	if err != nil {
		return err
	}
	t, ok := parseTimestamp(s)
	if !ok {
		return fmt.Errorf("datetime %q is not an ISO 8601 timestamp", s)
	}
	ts.Time = t
	return nil
}

// Date accepts a calendar date (2006-01-02) or any form Timestamp accepts
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := unquote(b, "date")
	if err != nil {
		return err
	}
	if t, ok := parseTimestamp(s); ok {
		d.Time = t
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date %q is neither YYYY-MM-DD nor an ISO 8601 timestamp", s)
	}
	d.Time = t
	return nil
}

// Midnight returns the calendar day of d at 00:00 UTC
func (d Date) Midnight() time.Time {
	y, m, day := d.Time.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// FormatDay renders t as YYYY-MM-DD, or "" for the zero time
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

// Instant normalises t to what the store keeps: UTC, millisecond precision
func Instant(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
