package event

import "sync"

// Queue accumulates raw events between frames. A window system may push from
// its own goroutine; the toolkit drains it once per frame.
type Queue struct {
	mu     sync.Mutex
	events []RawEvent
}

// NewQueue creates an empty queue.
func NewQueue(events ...RawEvent) *Queue {
	q := &Queue{}
	q.Push(events...)
	return q
}

// Push appends events in arrival order.
func (q *Queue) Push(events ...RawEvent) {
	q.mu.Lock()
	q.events = append(q.events, events...)
	q.mu.Unlock()
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Drain removes and returns all pending events, oldest first.
func (q *Queue) Drain() []RawEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

// Coalesce collapses runs of consecutive pointermove or resize events into the
// last event of each run. Other events are kept in order.
func Coalesce(events []RawEvent) []RawEvent {
	if len(events) < 2 {
		return events
	}
	out := events[:0:0]
	for i, e := range events {
		if (e.Type == RawPointerMove || e.Type == RawResize) &&
			i+1 < len(events) && events[i+1].Type == e.Type {
			continue
		}
		out = append(out, e)
	}
	return out
}
