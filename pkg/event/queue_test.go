package event

import "testing"

func TestQueue_EmissionOrder(t *testing.T) {
	q := NewQueue[int]()
	l := q.Listen()

	q.Emit(1)
	q.Emit(2)
	q.Emit(3)

	got := l.Drain()
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for i, v := range got {
		if v != i+1 {
			t.Errorf("event %d: got %d, want %d", i, v, i+1)
		}
	}
}

func TestQueue_ListenersDrainIndependently(t *testing.T) {
	q := NewQueue[string]()
	a := q.Listen()
	b := q.Listen()

	q.Emit("x")
	if got := a.Drain(); len(got) != 1 || got[0] != "x" {
		t.Fatalf("listener a: got %v", got)
	}

	// b has not drained yet; a's drain must not affect it.
	if !b.Pending() {
		t.Fatal("listener b should still have the event pending")
	}
	if got := b.Drain(); len(got) != 1 || got[0] != "x" {
		t.Fatalf("listener b: got %v", got)
	}
}

func TestQueue_LateListenerMissesEarlierEvents(t *testing.T) {
	q := NewQueue[int]()
	q.Emit(1)

	l := q.Listen()
	if l.Pending() {
		t.Fatal("late listener should not see events emitted before subscribing")
	}

	q.Emit(2)
	got := l.Drain()
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("got %v, want [2]", got)
	}
}

func TestListener_Close(t *testing.T) {
	q := NewQueue[int]()
	l := q.Listen()

	l.Close()
	if q.ListenerCount() != 0 {
		t.Fatalf("expected 0 listeners after close, got %d", q.ListenerCount())
	}

	q.Emit(1)
	if l.Pending() {
		t.Fatal("closed listener should not receive events")
	}

	// Double close is a no-op.
	l.Close()
}

func TestListener_DrainEmpty(t *testing.T) {
	q := NewQueue[int]()
	l := q.Listen()

	if got := l.Drain(); got != nil {
		t.Fatalf("expected nil drain on empty listener, got %v", got)
	}
}
