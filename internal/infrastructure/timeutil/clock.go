// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"sync"
	"time"
)

// Clock provides an abstraction over time.Now() and periodic tickers for testability.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// NewTicker returns a Ticker that delivers the current time every d.
	NewTicker(d time.Duration) Ticker
}

// Ticker wraps time.Ticker functionality.
type Ticker interface {
	// C returns the channel on which ticks are delivered.
	C() <-chan time.Time

	// Stop turns off the ticker. After Stop, no more ticks will be sent.
	Stop()
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NewTicker returns a ticker backed by time.NewTicker.
func (RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{inner: time.NewTicker(d)}
}

type realTicker struct {
	inner *time.Ticker
}

func (t *realTicker) C() <-chan time.Time { return t.inner.C }
func (t *realTicker) Stop()               { t.inner.Stop() }

// MockClock returns a controllable time for testing.
// Tickers created from it only fire when the clock is moved forward.
type MockClock struct {
	mu        sync.RWMutex
	fixedTime time.Time
	tickers   map[*mockTicker]struct{}
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{
		fixedTime: t,
		tickers:   make(map[*mockTicker]struct{}),
	}
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fixedTime
}

// NewTicker registers a ticker that fires every d of simulated time.
// Panics on a non-positive interval, like time.NewTicker.
func (m *MockClock) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("non-positive interval for MockClock.NewTicker")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := &mockTicker{
		clock:    m,
		interval: d,
		next:     m.fixedTime.Add(d),
		ch:       make(chan time.Time, 1),
	}
	m.tickers[t] = struct{}{}
	return t
}

// Tickers returns the number of tickers that have not been stopped.
func (m *MockClock) Tickers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tickers)
}

// Set sets the mock clock to a specific time.
// Tickers do not fire on Set; use Advance to simulate elapsed time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fixedTime = t
	for tk := range m.tickers {
		tk.next = t.Add(tk.interval)
	}
}

// Advance moves the mock clock forward by the given duration and fires
// every ticker whose deadline was reached.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fixedTime = m.fixedTime.Add(d)
	for tk := range m.tickers {
		if tk.next.After(m.fixedTime) {
			continue
		}
		// Missed periods collapse into one tick.
		missed := m.fixedTime.Sub(tk.next)/tk.interval + 1
		tk.fire(m.fixedTime)
		tk.next = tk.next.Add(missed * tk.interval)
	}
}

// AdvanceMinutes moves the mock clock forward by the given number of minutes.
func (m *MockClock) AdvanceMinutes(minutes int) {
	m.Advance(time.Duration(minutes) * time.Minute)
}

// AdvanceHours moves the mock clock forward by the given number of hours.
func (m *MockClock) AdvanceHours(hours int) {
	m.Advance(time.Duration(hours) * time.Hour)
}

// AdvanceDays moves the mock clock forward by the given number of days.
func (m *MockClock) AdvanceDays(days int) {
	m.Advance(time.Duration(days) * 24 * time.Hour)
}

type mockTicker struct {
	clock    *MockClock
	interval time.Duration
	next     time.Time
	ch       chan time.Time
}

func (t *mockTicker) C() <-chan time.Time { return t.ch }

// Stop unregisters the ticker. A tick already buffered stays readable.
func (t *mockTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	delete(t.clock.tickers, t)
}

// fire delivers now without blocking; a tick the reader has not consumed
// yet absorbs the new one.
func (t *mockTicker) fire(now time.Time) {
	select {
	case t.ch <- now:
	default:
	}
}

// Ensure interfaces are implemented.
var (
	_ Clock  = (*RealClock)(nil)
	_ Clock  = (*MockClock)(nil)
	_ Ticker = (*realTicker)(nil)
	_ Ticker = (*mockTicker)(nil)
)
