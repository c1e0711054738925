package event

import "testing"

func TestBidir_RoundTrip(t *testing.T) {
	primary := NewBidir[int]()
	secondary := primary.Secondary()

	primary.Emit(1)
	if v, ok := secondary.TryRecv(); !ok || v != 1 {
		t.Fatalf("secondary recv: got %d,%v", v, ok)
	}

	secondary.Emit(2)
	if v, ok := primary.TryRecv(); !ok || v != 2 {
		t.Fatalf("primary recv: got %d,%v", v, ok)
	}
}

func TestBidir_EmptyRecv(t *testing.T) {
	primary := NewBidir[int]()
	secondary := primary.Secondary()

	if _, ok := primary.TryRecv(); ok {
		t.Fatal("primary should have nothing to receive")
	}
	if _, ok := secondary.TryRecv(); ok {
		t.Fatal("secondary should have nothing to receive")
	}
}

func TestBidir_LatestWins(t *testing.T) {
	primary := NewBidir[int]()
	secondary := primary.Secondary()

	primary.Emit(1)
	primary.Emit(2)
	primary.Emit(3)

	if v, ok := secondary.TryRecv(); !ok || v != 3 {
		t.Fatalf("expected latest value 3, got %d,%v", v, ok)
	}
	if _, ok := secondary.TryRecv(); ok {
		t.Fatal("slot should be empty after receiving")
	}
}

func TestBidir_DirectionsIndependent(t *testing.T) {
	primary := NewBidir[string]()
	secondary := primary.Secondary()

	primary.Emit("down")
	secondary.Emit("up")

	if v, ok := primary.TryRecv(); !ok || v != "up" {
		t.Fatalf("primary recv: got %q,%v", v, ok)
	}
	if v, ok := secondary.TryRecv(); !ok || v != "down" {
		t.Fatalf("secondary recv: got %q,%v", v, ok)
	}
}
