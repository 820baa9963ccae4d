// Package mock provides test doubles for the countdown engine.
// These doubles are designed for integration testing where we need
// configurable behavior (slow consumers, callbacks, recorded history).
package mock

import (
	"sync"
	"time"

	"github.com/countdown-timer/countdown/internal/domain"
)

// Observer is a configurable recording implementation of domain.StateObserver.
// It keeps every state it receives, in delivery order.
type Observer struct {
	name   string
	delay  time.Duration
	hook   func(domain.State)
	states []domain.State
	mu     sync.Mutex
}

// NewObserver creates a new recording observer with the given name.
// The observer is configured using the builder pattern methods.
func NewObserver(name string) *Observer {
	return &Observer{name: name}
}

// WithDelay makes every delivery block for d before it is recorded.
// This is useful for checking that a slow consumer never stalls the engine.
func (o *Observer) WithDelay(d time.Duration) *Observer {
	o.delay = d
	return o
}

// WithHook runs fn after each state is recorded.
func (o *Observer) WithHook(fn func(domain.State)) *Observer {
	o.hook = fn
	return o
}

// Name returns the observer's label.
func (o *Observer) Name() string {
	return o.name
}

// OnStateChange implements domain.StateObserver.
func (o *Observer) OnStateChange(state domain.State) {
	if o.delay > 0 {
		time.Sleep(o.delay)
	}

	o.mu.Lock()
	o.states = append(o.states, state)
	o.mu.Unlock()

	if o.hook != nil {
		o.hook(state)
	}
}

// States returns a copy of every recorded state.
func (o *Observer) States() []domain.State {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]domain.State, len(o.states))
	copy(out, o.states)
	return out
}

// Count returns the number of recorded states.
func (o *Observer) Count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.states)
}

// Last returns the most recent state and whether any was recorded.
func (o *Observer) Last() (domain.State, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.states) == 0 {
		return domain.State{}, false
	}
	return o.states[len(o.states)-1], true
}

// Reset clears the recorded history.
func (o *Observer) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.states = nil
}

// Ensure Observer implements domain.StateObserver at compile time.
var _ domain.StateObserver = (*Observer)(nil)
