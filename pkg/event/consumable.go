package event

// Consumable wraps an event payload that should be handled by at most one
// interested party. Copies made of a Consumable share one logical claim
// flag: as soon as any holder claims the payload through With, every other
// holder sees it as consumed.
//
// This is how exclusive input such as clicks stays exclusive when
// broadcast to every widget. Say several buttons are stacked atop each
// other; when the stack is clicked only the foremost button should react,
// so the first interested handler claims the event and the rest see
// nothing.
//
// The primitive is deliberately loose: Get bypasses the claim entirely for
// callers that need to inspect the payload regardless of state.
type Consumable[T any] struct {
	inner *consumableInner[T]
}

type consumableInner[T any] struct {
	consumed bool
	payload  T
}

// NewConsumable creates an unconsumed event carrying payload.
func NewConsumable[T any](payload T) Consumable[T] {
	return Consumable[T]{inner: &consumableInner[T]{payload: payload}}
}

// With returns the payload as long as both of the following hold:
//
//  1. the event has not been consumed yet, and
//  2. the predicate returns true.
//
// If both hold, the event is consumed and the payload returned. The
// predicate lets the caller check whether the event actually applies to
// them before consuming needlessly; it is never invoked once the event is
// consumed, so predicates with side effects do not run post-claim.
func (c Consumable[T]) With(pred func(T) bool) (T, bool) {
	if c.inner == nil || c.inner.consumed {
		var zero T
		return zero, false
	}
	if !pred(c.inner.payload) {
		var zero T
		return zero, false
	}
	c.inner.consumed = true
	return c.inner.payload, true
}

// Get returns the payload regardless of consumption and without affecting
// the claim state.
func (c Consumable[T]) Get() T {
	if c.inner == nil {
		var zero T
		return zero
	}
	return c.inner.payload
}

// Consumed reports whether the event has been claimed.
func (c Consumable[T]) Consumed() bool {
	return c.inner != nil && c.inner.consumed
}
