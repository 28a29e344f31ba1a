package overtime

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"
)

// Rounding converts a raw duration into whole minutes.
type Rounding string

const (
	RoundNearest Rounding = "nearest"
	RoundFloor   Rounding = "floor"
	RoundCeil    Rounding = "ceil"
)

func ParseRounding(value string) (Rounding, error) {
	r := Rounding(strings.ToLower(strings.TrimSpace(value)))
	switch r {
	case RoundNearest, RoundFloor, RoundCeil:
		return r, nil
	case "":
		return RoundNearest, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRounding, value)
}

// Minutes returns the non-negative minute count of d. Zero and negative
// durations yield 0.
func (r Rounding) Minutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	raw := d.Minutes()
	switch r {
	case RoundFloor:
		return int(math.Floor(raw))
	case RoundCeil:
		return int(math.Ceil(raw))
	default:
		return int(math.Round(raw))
	}
}

// Config holds the detection policy. Thresholds are minutes of day.
type Config struct {
	SentinelID  int64
	WindowStart int
	WindowEnd   int
	Rounding    Rounding
}

const (
	DefaultWindowStart = 13*60 + 40
	DefaultWindowEnd   = 14*60 + 15
)

func DefaultConfig(sentinelID int64) Config {
	return Config{
		SentinelID:  sentinelID,
		WindowStart: DefaultWindowStart,
		WindowEnd:   DefaultWindowEnd,
		Rounding:    RoundNearest,
	}
}

func (c Config) Validate() error {
	if c.WindowStart < 0 || c.WindowStart >= 24*60 {
		return fmt.Errorf("%w: start %d", ErrInvalidWindow, c.WindowStart)
	}
	if c.WindowEnd < c.WindowStart || c.WindowEnd >= 24*60 {
		return fmt.Errorf("%w: %s-%s", ErrInvalidWindow, timestamp.FormatClock(c.WindowStart), timestamp.FormatClock(c.WindowEnd))
	}
	if _, err := ParseRounding(string(c.Rounding)); err != nil {
		return err
	}
	return nil
}

// IsSentinel reports whether employeeID is the guard identity.
func (c Config) IsSentinel(employeeID int64) bool {
	return employeeID == c.SentinelID
}

// InWindow reports whether minute lies inside the closed window.
func (c Config) InWindow(minute int) bool {
	return minute >= c.WindowStart && minute <= c.WindowEnd
}
