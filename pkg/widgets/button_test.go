package widgets

import (
	"testing"

	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/geometry"
	"github.com/go-loft/loft/pkg/theme"
	"github.com/go-loft/loft/pkg/uitest"
)

func buttonHarness(t *testing.T) (*uitest.Harness, *Button) {
	t.Helper()
	var btn *Button
	h := uitest.New(t, func(thm theme.Theme, uctx core.UpdateContext, gctx core.GraphicsContext) core.WidgetChildren {
		root := NewContainer()
		btn = NewButton("Save", theme.ButtonPrimary, false, geometry.Offset{X: 10, Y: 10}, thm, uctx, gctx)
		root.Add(btn)
		return root
	})
	return h, btn
}

func TestButton_SizesToText(t *testing.T) {
	_, btn := buttonHarness(t)

	size := btn.Rect().Size()
	if size.Width <= 0 || size.Height <= 0 {
		t.Fatalf("button size: got %+v", size)
	}

	var wide *Button
	uitest.New(t, func(thm theme.Theme, uctx core.UpdateContext, gctx core.GraphicsContext) core.WidgetChildren {
		root := NewContainer()
		wide = NewButton("A considerably longer label", theme.ButtonPrimary, false, geometry.Offset{}, thm, uctx, gctx)
		root.Add(wide)
		return root
	})
	if wide.Rect().Width() <= size.Width {
		t.Errorf("longer text should widen the button: %g vs %g", wide.Rect().Width(), size.Width)
	}
}

func TestButton_Click(t *testing.T) {
	h, btn := buttonHarness(t)
	events := btn.Events.Listen()

	h.ClickAt(btn.MouseBounds().Center())

	var clicked, pressed, released bool
	for _, ev := range events.Drain() {
		switch ev.Kind {
		case ButtonClicked:
			clicked = true
		case ButtonPressed:
			pressed = true
		case ButtonReleased:
			released = true
		}
	}
	if !pressed || !released || !clicked {
		t.Errorf("click events: pressed=%v released=%v clicked=%v", pressed, released, clicked)
	}
}

func TestButton_ReleaseOutsideIsNotAClick(t *testing.T) {
	h, btn := buttonHarness(t)
	events := btn.Events.Listen()

	inside := btn.MouseBounds().Center()
	outside := inside.Add(geometry.Offset{X: 300, Y: 0})
	h.PressAt(inside)
	h.ReleaseAt(outside)

	var clicked, released bool
	for _, ev := range events.Drain() {
		switch ev.Kind {
		case ButtonClicked:
			clicked = true
		case ButtonReleased:
			released = true
		}
	}
	if !released {
		t.Error("release should still fire when the pointer left the button")
	}
	if clicked {
		t.Error("releasing outside must not count as a click")
	}
}

func TestButton_DisabledIgnoresClick(t *testing.T) {
	h, btn := buttonHarness(t)
	btn.Disabled.Set(true)
	h.Tick()
	events := btn.Events.Listen()

	h.ClickAt(btn.MouseBounds().Center())

	for _, ev := range events.Drain() {
		if ev.Kind == ButtonPressed || ev.Kind == ButtonClicked {
			t.Fatalf("disabled button emitted %v", ev.Kind)
		}
	}
}
