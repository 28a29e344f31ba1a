// Package timestamp normalizes badge-reader timestamps into local wall-clock values.
//
// Values are never converted between zones. A parsed value keeps the literal wall clock
// of its input and is carried in time.UTC, which is only used as a neutral location.
package timestamp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// CanonicalLayout is the normalized representation of a local datetime.
	CanonicalLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
	MonthLayout     = "2006-01"
	ClockLayout     = "15:04"
)

var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
	ErrInvalidClock     = errors.New("clock must be in HH:MM format")
)

// variant is one accepted input shape, selected by its date separator.
type variant struct {
	name      string
	separator byte
	layouts   []string
}

var variants = []variant{
	{name: "day-first", separator: '/', layouts: []string{"2/1/2006 15:04"}},
	{name: "iso-date", separator: '-', layouts: []string{"2006-01-02 15:04:05", "2006-01-02 15:04"}},
}

// sniff picks the parser variant from the first date separator found in value.
func sniff(value string) (variant, bool) {
	idx := strings.IndexAny(value, "/-")
	if idx < 0 {
		return variant{}, false
	}
	for _, v := range variants {
		if v.separator == value[idx] {
			return v, true
		}
	}
	return variant{}, false
}

// Parse accepts "DD/MM/YYYY HH:mm" or "YYYY-MM-DD HH:mm[:ss]".
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	v, ok := sniff(value)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q has no date separator", ErrInvalidTimestamp, value)
	}

	for _, layout := range v.layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q does not match %s format", ErrInvalidTimestamp, value, v.name)
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseManual parses timestamps typed by users for manual entries. Besides the two
// badge shapes it accepts ISO-8601; any zone offset is dropped and the wall clock kept.
func ParseManual(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if !strings.Contains(value, "T") {
		return Parse(value)
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return WallClock(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not ISO-8601", ErrInvalidTimestamp, value)
}

// Normalize parses value and returns its canonical "YYYY-MM-DD HH:mm:ss" form.
func Normalize(value string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return Format(t), nil
}

// Format renders t in the canonical layout.
func Format(t time.Time) string {
	return t.Format(CanonicalLayout)
}

// DateKey returns the local calendar date of t.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MinuteOfDay returns the minutes elapsed since local midnight, ignoring seconds.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseClock parses "HH:MM" into minutes of day.
func ParseClock(value string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	return MinuteOfDay(t), nil
}

// FormatClock renders minutes of day as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WallClock reinterprets the clock fields of t in time.UTC without conversion.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
