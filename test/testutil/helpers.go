// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/countdown-timer/countdown/internal/domain"
)

// Timeouts for asserting on asynchronous engine updates.
const (
	WaitFor = time.Second
	Poll    = 2 * time.Millisecond
)

// StateReader is the read side of a countdown engine.
type StateReader interface {
	State() domain.State
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format as UTC midnight,
// the instant a date-only target resolves to. It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Remaining builds a TimeLeft for a target still in the future.
func Remaining(days, hours, minutes, seconds int) domain.TimeLeft {
	return domain.TimeLeft{
		Days: days, Hours: hours, Minutes: minutes, Seconds: seconds,
		Direction: domain.DirectionCountdown,
	}
}

// Elapsed builds a TimeLeft for a target already passed.
func Elapsed(days, hours, minutes, seconds int) domain.TimeLeft {
	return domain.TimeLeft{
		Days: days, Hours: hours, Minutes: minutes, Seconds: seconds,
		Direction: domain.DirectionElapsed,
	}
}

// EventuallyTimeLeft waits until the engine publishes want.
func EventuallyTimeLeft(t *testing.T, e StateReader, want domain.TimeLeft) {
	t.Helper()
	require.Eventually(t, func() bool {
		return e.State().TimeLeft == want
	}, WaitFor, Poll, "want %+v, last %+v", want, e.State().TimeLeft)
}
