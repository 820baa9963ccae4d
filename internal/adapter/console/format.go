// Package console renders countdown state for a terminal host and runs the
// interactive command loop that drives an engine.
package console

import (
	"fmt"

	"github.com/countdown-timer/countdown/internal/domain"
)

// Format renders a state as a single line, e.g. "-1d 01:01:01" or "+0d 00:00:05 (paused)".
// A failed computation renders as the error message.
func Format(state domain.State) string {
	if state.HasError() {
		return "! " + state.Error
	}

	tl := state.TimeLeft
	line := fmt.Sprintf("%s%dd %02d:%02d:%02d", directionPrefix(tl.Direction), tl.Days, tl.Hours, tl.Minutes, tl.Seconds)
	if state.IsPaused {
		line += " (paused)"
	}
	return line
}

// directionPrefix keeps columns aligned when nothing has been computed yet.
func directionPrefix(d domain.Direction) string {
	if d == domain.DirectionNone {
		return " "
	}
	return string(d)
}
