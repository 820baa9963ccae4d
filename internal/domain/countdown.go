// Package domain contains the core entities and rules of the countdown engine.
// Everything here is pure: no goroutines, no clocks, no I/O.
package domain

import "time"

// Day is the largest unit a duration is decomposed into.
const Day = 24 * time.Hour

// Direction tells whether a countdown is still counting down or already counting up.
type Direction string

const (
	// DirectionCountdown means the target is still ahead.
	DirectionCountdown Direction = "-"

	// DirectionElapsed means the target is now or in the past.
	DirectionElapsed Direction = "+"

	// DirectionNone means there is no valid computation (e.g. the target is invalid).
	DirectionNone Direction = ""
)

// TimeLeft is the absolute difference between a target and now, split into units.
// The sign is carried only by Direction.
type TimeLeft struct {
	// Days is the number of whole days
	Days int `json:"days"`

	// Hours is the number of whole hours after removing days (0-23)
	Hours int `json:"hours"`

	// Minutes is the number of whole minutes after removing hours (0-59)
	Minutes int `json:"minutes"`

	// Seconds is the number of whole seconds after removing minutes (0-59)
	Seconds int `json:"seconds"`

	// Direction is "-" while counting down, "+" once the target is reached
	Direction Direction `json:"direction"`
}

// ZeroTimeLeft is reported before any valid computation and whenever the target is invalid.
var ZeroTimeLeft = TimeLeft{Direction: DirectionNone}

// Duration returns the signed duration the fields represent, truncated to seconds.
// Counting down is negative, counting up positive.
func (t TimeLeft) Duration() time.Duration {
	d := time.Duration(t.Days)*Day +
		time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second
	if t.Direction == DirectionCountdown {
		return -d
	}
	return d
}

// State is what a countdown exposes to its host after each computation.
type State struct {
	// TimeLeft is the most recent decomposition
	TimeLeft TimeLeft `json:"timeLeft"`

	// IsPaused reports whether periodic recomputation is suspended
	IsPaused bool `json:"isPaused"`

	// Error is a human-readable message; empty when the last computation succeeded
	Error string `json:"error,omitempty"`
}

// HasError reports whether the last computation failed.
func (s State) HasError() bool {
	return s.Error != ""
}

// Decompose splits diff (target minus now) into days, hours, minutes and seconds.
// A zero difference counts as reached, not as counting down.
func Decompose(diff time.Duration) TimeLeft {
	direction := DirectionElapsed
	if diff > 0 {
		direction = DirectionCountdown
	}

	// Abs saturates for the minimum duration
	remaining := diff.Abs()

	days := remaining / Day
	remaining -= days * Day

	hours := remaining / time.Hour
	remaining -= hours * time.Hour

	minutes := remaining / time.Minute
	remaining -= minutes * time.Minute

	seconds := remaining / time.Second

	return TimeLeft{
		Days:      int(days),
		Hours:     int(hours),
		Minutes:   int(minutes),
		Seconds:   int(seconds),
		Direction: direction,
	}
}

// Compute performs one recomputation of target against now.
// On failure it returns ZeroTimeLeft and an error wrapping ErrInvalidTarget.
func Compute(target Target, now time.Time, loc *time.Location) (TimeLeft, error) {
	at, err := target.Resolve(loc)
	if err != nil {
		return ZeroTimeLeft, err
	}
	return Decompose(at.Sub(now)), nil
}
