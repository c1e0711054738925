package widgets

import (
	"testing"

	"github.com/go-loft/loft/pkg/geometry"
)

func TestMargins_SizesToContent(t *testing.T) {
	child := newBoxWidget(geometry.RectFromLTWH(0, 0, 100, 50))

	m := NewMargins(geometry.UniformSideOffsets(10))
	m.Push(child)
	settle(m, child)

	if got := m.Rect().Size(); got != (geometry.Size{Width: 120, Height: 70}) {
		t.Errorf("margins size: got %+v, want 120x70", got)
	}
}

func TestMargins_MovingContainerMovesChildren(t *testing.T) {
	child := newBoxWidget(geometry.RectFromLTWH(0, 0, 100, 50))

	m := NewMargins(geometry.UniformSideOffsets(10))
	m.Push(child)
	settle(m, child)

	before := child.Rect().Origin()
	m.SetPosition(m.Position().Add(geometry.Offset{X: 5, Y: 5}))
	settle(m, child)

	want := before.Add(geometry.Offset{X: 5, Y: 5})
	if got := child.Rect().Origin(); got != want {
		t.Errorf("child origin after move: got %+v, want %+v", got, want)
	}
}

func TestMargins_AnchorsRecapturedOnChildMove(t *testing.T) {
	child := newBoxWidget(geometry.RectFromLTWH(0, 0, 40, 40))

	m := NewMargins(geometry.UniformSideOffsets(10))
	m.Push(child)
	settle(m, child)

	// The child moves itself; its new displacement from the content
	// region becomes the anchor.
	child.SetPosition(child.Position().Add(geometry.Offset{X: 7, Y: 3}))
	settle(m, child)
	anchored := child.Rect().Origin()

	m.SetPosition(m.Position().Add(geometry.Offset{X: 20, Y: 0}))
	settle(m, child)

	want := anchored.Add(geometry.Offset{X: 20, Y: 0})
	if got := child.Rect().Origin(); got != want {
		t.Errorf("child origin: got %+v, want %+v", got, want)
	}
}

func TestMargins_OffsetsChangeReflows(t *testing.T) {
	child := newBoxWidget(geometry.RectFromLTWH(0, 0, 100, 50))

	m := NewMargins(geometry.UniformSideOffsets(10))
	m.Push(child)
	settle(m, child)

	m.Offsets.Set(geometry.UniformSideOffsets(20))
	settle(m, child)

	if got := m.Rect().Size(); got != (geometry.Size{Width: 140, Height: 90}) {
		t.Errorf("margins size after offsets change: got %+v, want 140x90", got)
	}
}

func TestMargins_RemoveAndReap(t *testing.T) {
	a := newBoxWidget(geometry.RectFromLTWH(0, 0, 100, 50))
	b := newBoxWidget(geometry.RectFromLTWH(0, 0, 30, 30))

	m := NewMargins(geometry.UniformSideOffsets(10))
	m.Push(a)
	m.Push(b)
	settle(m, a, b)

	m.Remove(b, false)
	if m.Len() != 1 {
		t.Fatalf("len after remove: got %d", m.Len())
	}

	a.Dispose()
	m.Update(nil)
	if m.Len() != 0 {
		t.Fatalf("len after dispose: got %d", m.Len())
	}
}
