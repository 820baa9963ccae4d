package usecase

import (
	"sync"

	"github.com/countdown-timer/countdown/internal/domain"
)

// notifier delivers published states to an observer on its own goroutine.
// push never blocks, so the engine can publish while holding its lock and
// observers remain free to call back into the engine.
type notifier struct {
	observer domain.StateObserver

	mu    sync.Mutex
	queue []domain.State

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

func newNotifier(observer domain.StateObserver) *notifier {
	n := &notifier{
		observer: observer,
		wake:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go n.run()
	return n
}

// push queues state for delivery.
func (n *notifier) push(state domain.State) {
	n.mu.Lock()
	n.queue = append(n.queue, state)
	n.mu.Unlock()

	select {
	case n.wake <- struct{}{}:
	default:
	}
}

// close delivers what is still queued and stops the goroutine.
func (n *notifier) close() {
	n.once.Do(func() {
		close(n.quit)
	})
	<-n.done
}

func (n *notifier) run() {
	defer close(n.done)

	for {
		select {
		case <-n.wake:
			n.drain()
		case <-n.quit:
			n.drain()
			return
		}
	}
}

func (n *notifier) drain() {
	for {
		n.mu.Lock()
		if len(n.queue) == 0 {
			n.mu.Unlock()
			return
		}
		state := n.queue[0]
		n.queue = n.queue[1:]
		n.mu.Unlock()

		n.observer.OnStateChange(state)
	}
}
