package layer

import "simulacra/internal/event"

// Layer is a unit of event-handling logic composed by the application.
// OnAttach is called once when the layer is pushed, before it receives any events;
// OnDetach once when it is removed. HandleEvents is called once per frame with the shared
// frame queue: other layers see the same queue in the same frame, so a layer marks what it
// handled with Queue.Consume instead of removing it.
type Layer interface {
	OnAttach()
	OnDetach()
	HandleEvents(q *event.Queue)
}

// Func adapts a plain event handler into a Layer with no-op lifecycle hooks.
type Func func(q *event.Queue)

func (f Func) OnAttach() {}

func (f Func) OnDetach() {}

// HandleEvents calls f(q).
func (f Func) HandleEvents(q *event.Queue) {
	f(q)
}
