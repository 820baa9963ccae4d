package domain

//go:generate mockgen -source=observer.go -destination=mock_observer.go -package=domain

// StateObserver is notified after every published state change of a countdown:
// each tick, each pause toggle and each target change.
//
// Notifications are delivered one at a time, in publication order.
// Observers may call back into the countdown from the callback, except to close it.
type StateObserver interface {
	OnStateChange(state State)
}

// StateObserverFunc adapts a plain function to StateObserver.
type StateObserverFunc func(State)

// OnStateChange calls f(state).
func (f StateObserverFunc) OnStateChange(state State) {
	f(state)
}
