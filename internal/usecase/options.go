package usecase

import (
	"github.com/countdown-timer/countdown/internal/domain"
	"github.com/countdown-timer/countdown/internal/infrastructure/logger"
	"github.com/countdown-timer/countdown/internal/infrastructure/timeutil"
)

// options collects the optional collaborators of a countdown engine.
type options struct {
	clock       timeutil.Clock
	log         *logger.Logger
	observer    domain.StateObserver
	startPaused bool
}

// Option configures a countdown engine.
type Option func(*options)

// WithClock sets the time source. Tests pass a *timeutil.MockClock.
func WithClock(clock timeutil.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger. The engine adds its countdown_id to every entry.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithObserver registers an observer for state changes.
func WithObserver(observer domain.StateObserver) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithStartPaused creates the engine paused. Nothing is computed until the first resume.
func WithStartPaused() Option {
	return func(o *options) {
		o.startPaused = true
	}
}
