package event

// Change marks a mutation of an Observed value.
type Change struct{}

// EventKey identifies Change events in pipeline dispatch.
func (Change) EventKey() string { return "change" }

// Observed wraps a value and broadcasts a Change on every mutating access.
// Subscribers typically react by marking themselves dirty or scheduling a
// repaint; the cell itself knows nothing about what the notification is
// used for.
//
// Notification is access-triggered, not diff-triggered: GetMut emits even
// if the caller never writes through the returned pointer, and Set emits
// even when the new value equals the old one.
type Observed[T any] struct {
	// OnChange receives one Change per Set or GetMut call.
	OnChange *Queue[Change]

	value T
}

// NewObserved creates an observed cell holding v.
func NewObserved[T any](v T) *Observed[T] {
	return &Observed[T]{OnChange: NewQueue[Change](), value: v}
}

// Get returns the current value without emitting a notification.
func (o *Observed[T]) Get() T {
	return o.value
}

// Set replaces the value and emits a Change.
func (o *Observed[T]) Set(v T) {
	o.value = v
	o.OnChange.Emit(Change{})
}

// GetMut returns a pointer to the value and emits a Change, whether or not
// the caller ends up mutating through it.
func (o *Observed[T]) GetMut() *T {
	o.OnChange.Emit(Change{})
	return &o.value
}
