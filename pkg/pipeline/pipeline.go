// Package pipeline wires event queues to widget handlers. A widget owns
// one Pipeline made of stages; each stage (a Terminal) listens to one
// queue and dispatches drained events to handlers keyed by event key.
// Stages are established at construction; the queues they listen to may
// belong to anything, be it the window event broadcast, another widget's
// event queue, or an observed value's change queue.
package pipeline

import "github.com/go-loft/loft/pkg/event"

// Keyed is satisfied by events that carry a dispatch discriminant.
type Keyed interface {
	EventKey() string
}

// Handler reacts to one event. W is the widget the pipeline belongs to
// and A the auxiliary update context.
type Handler[W, A any, E Keyed] func(w W, aux A, ev E)

// Stage is one binding of a pipeline to an event source.
type Stage[W, A any] interface {
	// Run drains the stage's source and invokes matching handlers.
	Run(w W, aux A)
	// Close detaches the stage from its source.
	Close()
}

// Pipeline is an ordered set of stages. On update, stages run in the
// order they were added; within a stage, events dispatch in arrival
// order.
type Pipeline[W, A any] struct {
	stages []Stage[W, A]
}

// New creates a pipeline from the given stages.
func New[W, A any](stages ...Stage[W, A]) *Pipeline[W, A] {
	return &Pipeline[W, A]{stages: stages}
}

// Add appends a stage and returns the pipeline for chaining.
func (p *Pipeline[W, A]) Add(s Stage[W, A]) *Pipeline[W, A] {
	p.stages = append(p.stages, s)
	return p
}

// Update runs every stage once.
func (p *Pipeline[W, A]) Update(w W, aux A) {
	for _, s := range p.stages {
		s.Run(w, aux)
	}
}

// Close detaches all stages from their sources.
func (p *Pipeline[W, A]) Close() {
	for _, s := range p.stages {
		s.Close()
	}
	p.stages = nil
}

// Terminal binds handlers to one event queue. Handlers are registered per
// event key with On; events whose key has no handler are dropped.
type Terminal[W, A any, E Keyed] struct {
	listener *event.Listener[E]
	handlers map[string]Handler[W, A, E]
}

// NewTerminal subscribes a terminal to the given queue.
func NewTerminal[W, A any, E Keyed](q *event.Queue[E]) *Terminal[W, A, E] {
	return &Terminal[W, A, E]{
		listener: q.Listen(),
		handlers: make(map[string]Handler[W, A, E]),
	}
}

// On registers a handler for an event key, replacing any previous handler
// for that key. Returns the terminal for chaining.
func (t *Terminal[W, A, E]) On(key string, h Handler[W, A, E]) *Terminal[W, A, E] {
	t.handlers[key] = h
	return t
}

// Run drains pending events in arrival order and invokes the handler
// matching each event's key.
func (t *Terminal[W, A, E]) Run(w W, aux A) {
	for _, ev := range t.listener.Drain() {
		if h, ok := t.handlers[ev.EventKey()]; ok {
			h(w, aux, ev)
		}
	}
}

// Close unsubscribes the terminal from its queue.
func (t *Terminal[W, A, E]) Close() {
	t.listener.Close()
}
