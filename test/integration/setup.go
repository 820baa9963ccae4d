// Package integration provides helpers and integration tests for the countdown.
// Integration tests verify that components work together correctly, including
// the engine, the mock clock and recording observers.
package integration

import (
	"testing"
	"time"

	"github.com/countdown-timer/countdown/internal/domain"
	"github.com/countdown-timer/countdown/internal/infrastructure/timeutil"
	"github.com/countdown-timer/countdown/internal/usecase"
	"github.com/countdown-timer/countdown/test/mock"
)

// StartTime is the frozen "now" every fixture starts from.
var StartTime = time.Date(2025, 12, 15, 10, 0, 0, 0, time.UTC)

// Fixture bundles an engine with the clock that drives it and an observer that records it.
type Fixture struct {
	Clock    *timeutil.MockClock
	Observer *mock.Observer
	Engine   usecase.CountdownEngine
}

// NewFixture creates an engine for target on a fresh mock clock.
// The engine is closed when the test ends.
func NewFixture(t *testing.T, target domain.Target, opts ...usecase.Option) *Fixture {
	t.Helper()
	return NewFixtureOnClock(t, timeutil.NewMockClock(StartTime), mock.NewObserver(t.Name()), target, opts...)
}

// NewFixtureOnClock creates an engine on a clock shared with other fixtures.
func NewFixtureOnClock(t *testing.T, clock *timeutil.MockClock, observer *mock.Observer, target domain.Target, opts ...usecase.Option) *Fixture {
	t.Helper()

	opts = append([]usecase.Option{
		usecase.WithClock(clock),
		usecase.WithObserver(observer),
	}, opts...)

	e := usecase.NewCountdownEngine(target, &usecase.Config{Location: time.UTC}, opts...)
	t.Cleanup(e.Close)

	return &Fixture{
		Clock:    clock,
		Observer: observer,
		Engine:   e,
	}
}

// In returns a target d away from StartTime.
func In(d time.Duration) domain.Target {
	return domain.TargetFromTime(StartTime.Add(d))
}
