package event

// Queue is the insertion-ordered event sequence of one frame. It is owned by the
// application loop and is not safe for concurrent use.
//
// Layers share the same queue within a frame: consuming an event only marks it, so
// layers further down the stack can still see it through Events and skip it through Pending.
type Queue struct {
	events   []Event
	consumed []bool
}

// Push appends e to the end of the queue.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
	q.consumed = append(q.consumed, false)
}

// Len returns the number of queued events, consumed ones included.
func (q *Queue) Len() int {
	return len(q.events)
}

// At returns the i-th event in insertion order.
func (q *Queue) At(i int) Event {
	return q.events[i]
}

// Events returns the queued events in insertion order. The slice is only valid until the
// next Push or Clear and must not be modified.
func (q *Queue) Events() []Event {
	return q.events
}

// Consume marks the i-th event as handled.
func (q *Queue) Consume(i int) {
	q.consumed[i] = true
}

// Consumed reports whether the i-th event has been marked as handled.
func (q *Queue) Consumed(i int) bool {
	return q.consumed[i]
}

// Pending calls fn for every unconsumed event whose category intersects mask, in insertion
// order. fn receives the index so it can Consume the event. Events pushed by fn are visited too.
func (q *Queue) Pending(mask Category, fn func(i int, e Event)) {
	for i := 0; i < len(q.events); i++ {
		if q.consumed[i] || !IsInCategory(q.events[i], mask) {
			continue
		}
		fn(i, q.events[i])
	}
}

// Contains reports whether any queued event, consumed or not, has type t.
func (q *Queue) Contains(t Type) bool {
	for _, e := range q.events {
		if e.Type() == t {
			return true
		}
	}
	return false
}

// Clear drops every event and consumption mark. The backing arrays are reused.
func (q *Queue) Clear() {
	clear(q.events)
	q.events = q.events[:0]
	q.consumed = q.consumed[:0]
}
