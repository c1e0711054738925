package event

import "testing"

func TestConsumable_SingleClaim(t *testing.T) {
	ev := NewConsumable(42)
	copies := []Consumable[int]{ev, ev, ev}

	claims := 0
	for _, c := range copies {
		if v, ok := c.With(func(int) bool { return true }); ok {
			claims++
			if v != 42 {
				t.Errorf("claimed payload: got %d, want 42", v)
			}
		}
	}

	if claims != 1 {
		t.Fatalf("expected exactly one successful claim, got %d", claims)
	}
	if !ev.Consumed() {
		t.Fatal("event should be consumed after the claim")
	}
}

func TestConsumable_PredicateRejection(t *testing.T) {
	ev := NewConsumable(10)

	if _, ok := ev.With(func(v int) bool { return v > 100 }); ok {
		t.Fatal("claim should fail when the predicate rejects")
	}
	if ev.Consumed() {
		t.Fatal("a rejected claim must not consume the event")
	}

	// A later interested party can still claim it.
	if _, ok := ev.With(func(v int) bool { return v == 10 }); !ok {
		t.Fatal("claim should succeed after an earlier rejection")
	}
}

func TestConsumable_PredicateNotRunAfterClaim(t *testing.T) {
	ev := NewConsumable(1)
	if _, ok := ev.With(func(int) bool { return true }); !ok {
		t.Fatal("initial claim failed")
	}

	ran := false
	if _, ok := ev.With(func(int) bool { ran = true; return true }); ok {
		t.Fatal("second claim should fail")
	}
	if ran {
		t.Fatal("predicate must not run once the event is consumed")
	}
}

func TestConsumable_GetIgnoresClaimState(t *testing.T) {
	ev := NewConsumable("payload")

	if got := ev.Get(); got != "payload" {
		t.Fatalf("Get before claim: got %q", got)
	}
	if ev.Consumed() {
		t.Fatal("Get must not consume")
	}

	ev.With(func(string) bool { return true })

	if got := ev.Get(); got != "payload" {
		t.Fatalf("Get after claim: got %q", got)
	}
}

func TestConsumable_Zero(t *testing.T) {
	var ev Consumable[int]

	if _, ok := ev.With(func(int) bool { return true }); ok {
		t.Fatal("zero-value consumable should never yield a claim")
	}
	if ev.Get() != 0 {
		t.Fatal("zero-value Get should return the zero payload")
	}
	if ev.Consumed() {
		t.Fatal("zero-value consumable should not report consumed")
	}
}
