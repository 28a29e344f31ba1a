package timestamp

import (
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month used to scope reports.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(value string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(value))
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, value)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Start returns local midnight of the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the exclusive upper bound, the first instant of the following month.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Contains reports whether the local date of t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return m.Start().Format(MonthLayout)
}
