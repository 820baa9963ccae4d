package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/countdown-timer/countdown/internal/infrastructure/timeutil"
)

// targetKind distinguishes how a Target was supplied.
type targetKind uint8

const (
	targetText targetKind = iota
	targetTime
)

// zonedLayouts carry their own offset and are location independent.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// localLayouts have no zone and are read in the host location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// dateOnlyLayouts are read as UTC midnight of the first day they cover.
var dateOnlyLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// Target is the point in time a countdown measures against.
// It is either text (an ISO timestamp) or a native time.Time.
// Construction never validates; Resolve does.
type Target struct {
	kind targetKind
	text string
	at   time.Time
}

// TargetFromString creates a Target from an ISO-formatted timestamp.
func TargetFromString(s string) Target {
	return Target{kind: targetText, text: s}
}

// TargetFromTime creates a Target from a native time value.
func TargetFromTime(t time.Time) Target {
	return Target{kind: targetTime, at: t}
}

// Resolve interprets the target as a point in time.
// Text without zone information is read in loc; nil loc means time.Local.
// Returns an error wrapping ErrInvalidTarget when the target is not a valid point in time.
func (t Target) Resolve(loc *time.Location) (time.Time, error) {
	if t.kind == targetTime {
		if t.at.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time value", ErrInvalidTarget)
		}
		return t.at, nil
	}

	value := strings.TrimSpace(t.text)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", ErrInvalidTarget)
	}

	if at, err := timeutil.ParseFirst(value, time.UTC, zonedLayouts...); err == nil {
		return at, nil
	}
	if at, err := timeutil.ParseFirst(value, loc, localLayouts...); err == nil {
		return at, nil
	}
	if at, err := timeutil.ParseFirst(value, time.UTC, dateOnlyLayouts...); err == nil {
		return at, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTarget, t.text)
}

// Equal reports whether two targets were supplied the same way with the same value.
func (t Target) Equal(other Target) bool {
	if t.kind != other.kind {
		return false
	}
	if t.kind == targetTime {
		return t.at.Equal(other.at)
	}
	return t.text == other.text
}

// String returns the target as supplied.
func (t Target) String() string {
	if t.kind == targetTime {
		if t.at.IsZero() {
			return "<zero time>"
		}
		return t.at.Format(time.RFC3339Nano)
	}
	return t.text
}
