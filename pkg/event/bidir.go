package event

// bidirState holds the two single-value slots of a bidirectional channel.
// Each direction retains only the newest value; an Emit before the other
// side drains simply overwrites.
type bidirState[T any] struct {
	toSecondary slot[T]
	toPrimary   slot[T]
}

type slot[T any] struct {
	value T
	set   bool
}

func (s *slot[T]) put(v T) {
	s.value = v
	s.set = true
}

func (s *slot[T]) take() (T, bool) {
	if !s.set {
		var zero T
		return zero, false
	}
	v := s.value
	var zero T
	s.value = zero
	s.set = false
	return v, true
}

// Bidir is the primary half of a bidirectional latest-value channel.
// The layout protocol uses one per child association: the container holds
// the primary half, the child the secondary half, and rectangles flow in
// both directions.
type Bidir[T any] struct {
	state *bidirState[T]
}

// NewBidir creates a bidirectional channel and returns its primary half.
func NewBidir[T any]() Bidir[T] {
	return Bidir[T]{state: &bidirState[T]{}}
}

// Secondary returns the opposite half of the channel.
func (b Bidir[T]) Secondary() BidirSecondary[T] {
	return BidirSecondary[T]{state: b.state}
}

// Emit sends a value toward the secondary half, replacing any value not
// yet received.
func (b Bidir[T]) Emit(v T) {
	b.state.toSecondary.put(v)
}

// TryRecv returns the newest value sent from the secondary half, if any.
func (b Bidir[T]) TryRecv() (T, bool) {
	return b.state.toPrimary.take()
}

// BidirSecondary is the secondary half of a bidirectional latest-value
// channel.
type BidirSecondary[T any] struct {
	state *bidirState[T]
}

// Emit sends a value toward the primary half, replacing any value not yet
// received.
func (b BidirSecondary[T]) Emit(v T) {
	b.state.toPrimary.put(v)
}

// TryRecv returns the newest value sent from the primary half, if any.
func (b BidirSecondary[T]) TryRecv() (T, bool) {
	return b.state.toSecondary.take()
}
