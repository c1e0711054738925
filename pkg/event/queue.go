// Package event provides the in-memory event plumbing the widget toolkit is
// built on: multi-listener broadcast queues, single-claim consumable events,
// bidirectional single-slot channels and observed value cells.
//
// All types are designed for the toolkit's single-threaded frame model.
// "Sharing" here means sharing between sequential calls within one tick,
// never concurrent access, so no locking is performed.
package event

// Queue is an append-only broadcast log. Every listener created through
// Listen receives all events emitted after it subscribed, in emission
// order. Listeners drain independently of each other.
type Queue[T any] struct {
	listeners []*Listener[T]
}

// NewQueue creates an empty broadcast queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Emit broadcasts an event to all current listeners.
func (q *Queue[T]) Emit(ev T) {
	for _, l := range q.listeners {
		l.buffer = append(l.buffer, ev)
	}
}

// Listen subscribes a new listener. The listener only observes events
// emitted after this call.
func (q *Queue[T]) Listen() *Listener[T] {
	l := &Listener[T]{queue: q}
	q.listeners = append(q.listeners, l)
	return l
}

// ListenerCount returns the number of live listeners.
func (q *Queue[T]) ListenerCount() int {
	return len(q.listeners)
}

func (q *Queue[T]) unsubscribe(l *Listener[T]) {
	for i, cand := range q.listeners {
		if cand == l {
			q.listeners = append(q.listeners[:i], q.listeners[i+1:]...)
			return
		}
	}
}

// Listener receives events broadcast on a Queue from the moment it
// subscribed until it is closed.
type Listener[T any] struct {
	queue  *Queue[T]
	buffer []T
}

// Drain returns all pending events in emission order and clears the
// pending buffer.
func (l *Listener[T]) Drain() []T {
	if len(l.buffer) == 0 {
		return nil
	}
	out := l.buffer
	l.buffer = nil
	return out
}

// Pending reports whether any undrained events are buffered.
func (l *Listener[T]) Pending() bool {
	return len(l.buffer) > 0
}

// Close unsubscribes the listener from its queue. Closing twice is a no-op.
func (l *Listener[T]) Close() {
	if l.queue != nil {
		l.queue.unsubscribe(l)
		l.queue = nil
	}
	l.buffer = nil
}
