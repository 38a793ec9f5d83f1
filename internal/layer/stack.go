package layer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"simulacra/internal/event"
)

// ID identifies a layer for as long as it is on a stack.
type ID = uuid.UUID

type entry struct {
	id       ID
	layer    Layer
	detached bool
}

// Stack owns layers in insertion order. It is not safe for concurrent use; the application
// loop is its only caller.
type Stack struct {
	entries       []*entry
	log           zerolog.Logger
	recoverPanics bool

	// OnRecover, if set, is called after a recovered HandleEvents panic has detached its layer.
	OnRecover func(id ID, v any)
}

// NewStack returns an empty stack that logs attach/detach through log.
func NewStack(log zerolog.Logger) *Stack {
	return &Stack{log: log}
}

// SetLogger replaces the logger used for attach/detach and recovered panics.
func (s *Stack) SetLogger(log zerolog.Logger) {
	s.log = log
}

// SetRecover turns the per-layer failure boundary on or off. When on, a panic inside a layer's
// HandleEvents is logged, the layer is detached and dispatch continues with the next layer.
// When off (the default) the panic propagates to the caller.
func (s *Stack) SetRecover(on bool) {
	s.recoverPanics = on
}

// Push appends l, calls its OnAttach and returns its ID.
func (s *Stack) Push(l Layer) ID {
	id := uuid.New()
	l.OnAttach()
	s.entries = append(s.entries, &entry{id: id, layer: l})
	s.log.Debug().Str("layer", id.String()).Str("kind", kind(l)).Int("depth", len(s.entries)).Msg("layer attached")
	return id
}

// Pop removes the layer with the given ID and calls its OnDetach. Returns false if no such layer is on the stack.
func (s *Stack) Pop(id ID) bool {
	for i, e := range s.entries {
		if e.id != id {
			continue
		}
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		e.detached = true
		e.layer.OnDetach()
		s.log.Debug().Str("layer", id.String()).Str("kind", kind(e.layer)).Msg("layer detached")
		return true
	}
	return false
}

// Len returns the number of layers on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Dispatch hands q to every layer, most recently pushed first. A layer popped during the
// pass is not called again; layers pushed during the pass are first called on the next one.
func (s *Stack) Dispatch(q *event.Queue) {
	snapshot := append([]*entry(nil), s.entries...)
	for i := len(snapshot) - 1; i >= 0; i-- {
		if snapshot[i].detached {
			continue
		}
		s.handle(snapshot[i], q)
	}
}

func (s *Stack) handle(e *entry, q *event.Queue) {
	if !s.recoverPanics {
		e.layer.HandleEvents(q)
		return
	}
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		s.log.Error().Str("layer", e.id.String()).Str("kind", kind(e.layer)).
			Str("panic", fmt.Sprint(v)).Msg("layer panicked while handling events, detaching")
		s.Pop(e.id)
		if s.OnRecover != nil {
			s.OnRecover(e.id, v)
		}
	}()
	e.layer.HandleEvents(q)
}

// DetachAll removes every layer, most recently pushed first, calling OnDetach on each.
func (s *Stack) DetachAll() {
	for len(s.entries) > 0 {
		s.Pop(s.entries[len(s.entries)-1].id)
	}
}

func kind(l Layer) string {
	return fmt.Sprintf("%T", l)
}
