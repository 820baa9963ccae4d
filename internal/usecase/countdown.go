// Package usecase contains the countdown engine.
// It owns the periodic recomputation lifecycle: activate, tick, pause, retarget, close.
package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/countdown-timer/countdown/internal/domain"
	"github.com/countdown-timer/countdown/internal/infrastructure/logger"
	"github.com/countdown-timer/countdown/internal/infrastructure/timeutil"
)

// DefaultInterval is the period between recomputations.
const DefaultInterval = time.Second

// CountdownEngine defines the operations a host has on a countdown.
type CountdownEngine interface {
	// State returns the most recent computation.
	State() domain.State

	// Target returns the current target.
	Target() domain.Target

	// TogglePause flips between paused and running.
	// Resuming recomputes immediately and restarts the schedule.
	TogglePause() error

	// SetTarget replaces the target. While running the countdown recomputes
	// immediately and restarts its schedule; while paused the target is only stored.
	SetTarget(target domain.Target) error

	// ID identifies this instance in logs.
	ID() string

	// Close stops the schedule and waits for background work to finish.
	Close()
}

// Config contains configuration options for a countdown engine.
type Config struct {
	// Interval is the period between recomputations
	Interval time.Duration

	// Location is used for text targets without zone information
	Location *time.Location
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Location: time.Local,
	}
}

// countdownEngine implements CountdownEngine with one ticker goroutine per activation.
type countdownEngine struct {
	id       string
	clock    timeutil.Clock
	log      *logger.Logger
	notifier *notifier
	interval time.Duration
	location *time.Location

	mu         sync.RWMutex
	target     domain.Target
	state      domain.State
	closed     bool
	failing    bool
	generation uint64
	schedule   *schedule

	// wg tracks tick goroutines of every activation, current or cancelled
	wg sync.WaitGroup
}

// schedule is one activation's periodic work.
type schedule struct {
	ticker timeutil.Ticker
	stop   chan struct{}
}

// NewCountdownEngine creates a countdown for target and activates it unless
// WithStartPaused is given. The target is not validated here; an invalid
// target shows up in State().Error. If config is nil, defaults are used.
func NewCountdownEngine(target domain.Target, config *Config, opts ...Option) CountdownEngine {
	cfg := DefaultConfig()
	if config != nil {
		if config.Interval > 0 {
			cfg.Interval = config.Interval
		}
		if config.Location != nil {
			cfg.Location = config.Location
		}
	}

	o := options{
		clock: timeutil.NewRealClock(),
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	e := &countdownEngine{
		id:       id,
		clock:    o.clock,
		log:      o.log.WithCountdownID(id),
		interval: cfg.Interval,
		location: cfg.Location,
		target:   target,
		state:    domain.State{TimeLeft: domain.ZeroTimeLeft, IsPaused: o.startPaused},
	}
	if o.observer != nil {
		e.notifier = newNotifier(o.observer)
	}

	e.log.Debug().
		Str("target", target.String()).
		Dur("interval", e.interval).
		Bool("paused", o.startPaused).
		Msg("Countdown created")

	if !o.startPaused {
		e.mu.Lock()
		e.activateLocked()
		e.mu.Unlock()
	}

	return e
}

// ID implements CountdownEngine.ID.
func (e *countdownEngine) ID() string {
	return e.id
}

// State implements CountdownEngine.State.
func (e *countdownEngine) State() domain.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Target implements CountdownEngine.Target.
func (e *countdownEngine) Target() domain.Target {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.target
}

// TogglePause implements CountdownEngine.TogglePause.
func (e *countdownEngine) TogglePause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return domain.ErrEngineClosed
	}

	if e.state.IsPaused {
		e.state.IsPaused = false
		e.log.Info().Msg("Countdown resumed")
		e.activateLocked()
		return nil
	}

	e.state.IsPaused = true
	e.deactivateLocked()
	e.log.Info().Msg("Countdown paused")
	e.publishLocked()
	return nil
}

// SetTarget implements CountdownEngine.SetTarget.
func (e *countdownEngine) SetTarget(target domain.Target) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return domain.ErrEngineClosed
	}
	if e.target.Equal(target) {
		return nil
	}

	e.target = target
	e.log.Info().
		Str("target", target.String()).
		Bool("paused", e.state.IsPaused).
		Msg("Countdown target changed")

	if e.state.IsPaused {
		// Picked up on resume
		return nil
	}

	e.deactivateLocked()
	e.activateLocked()
	return nil
}

// Close implements CountdownEngine.Close. It is safe to call more than once.
// Close must not be called from a StateObserver callback.
func (e *countdownEngine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.deactivateLocked()
	e.mu.Unlock()

	// Tick goroutines re-check closed under the lock, so they exit promptly
	e.wg.Wait()
	if e.notifier != nil {
		e.notifier.close()
	}

	e.log.Info().Msg("Countdown closed")
}

// activateLocked recomputes once and starts a new schedule.
// Caller must hold e.mu and must have cancelled any previous schedule.
func (e *countdownEngine) activateLocked() {
	e.generation++
	e.recomputeLocked()

	s := &schedule{
		ticker: e.clock.NewTicker(e.interval),
		stop:   make(chan struct{}),
	}
	e.schedule = s

	e.wg.Add(1)
	go e.run(e.generation, s)
}

// deactivateLocked cancels the current schedule, if any.
// Caller must hold e.mu.
func (e *countdownEngine) deactivateLocked() {
	if e.schedule == nil {
		return
	}
	e.schedule.ticker.Stop()
	close(e.schedule.stop)
	e.schedule = nil

	// Ticks already in flight for the old schedule are discarded
	e.generation++
}

// run drives one schedule until it is cancelled.
func (e *countdownEngine) run(generation uint64, s *schedule) {
	defer e.wg.Done()

	for {
		select {
		case <-s.stop:
			return
		case <-s.ticker.C():
			e.tick(generation)
		}
	}
}

// tick recomputes if generation is still the current one.
func (e *countdownEngine) tick(generation uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.state.IsPaused || e.generation != generation {
		return
	}
	e.recomputeLocked()
}

// recomputeLocked computes the state for the current target and publishes it.
// Caller must hold e.mu.
func (e *countdownEngine) recomputeLocked() {
	timeLeft, err := domain.Compute(e.target, e.clock.Now(), e.location)

	e.state.TimeLeft = timeLeft
	e.state.Error = domain.ErrorMessage(err)

	switch {
	case err != nil && !e.failing:
		e.failing = true
		e.log.Warn().Err(err).Str("target", e.target.String()).Msg("Countdown target is not a valid point in time")
	case err == nil && e.failing:
		e.failing = false
		e.log.Info().Str("target", e.target.String()).Msg("Countdown target is valid again")
	}

	e.log.Debug().
		Int("days", timeLeft.Days).
		Int("hours", timeLeft.Hours).
		Int("minutes", timeLeft.Minutes).
		Int("seconds", timeLeft.Seconds).
		Str("direction", string(timeLeft.Direction)).
		Dur("remaining", timeLeft.Duration()).
		Msg("Countdown tick")

	e.publishLocked()
}

// publishLocked queues the current state for the observer.
// Caller must hold e.mu, which keeps notifications in publication order.
func (e *countdownEngine) publishLocked() {
	if e.notifier != nil {
		e.notifier.push(e.state)
	}
}

// Ensure interface is implemented.
var _ CountdownEngine = (*countdownEngine)(nil)
