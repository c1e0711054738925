package theme

import (
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/geometry"
)

// Painter renders one kind of control from a state snapshot S. Widgets
// keep their painter for the lifetime of the widget and never draw
// directly; everything visual goes through these four methods.
type Painter[S any] interface {
	// SizeHint returns the control's natural size for the given state.
	SizeHint(state S, ctx core.GraphicsContext) geometry.Size
	// PaintHint returns the painted bounds for a control occupying rect.
	// May extend past rect, e.g. for a focus ring.
	PaintHint(rect geometry.Rect) geometry.Rect
	// MouseHint returns the hit-test region for a control occupying
	// rect. May differ from the painted bounds.
	MouseHint(rect geometry.Rect) geometry.Rect
	// Draw emits the drawing commands for the given state.
	Draw(state S, ctx core.GraphicsContext) []display.Command
}

// Theme hands out painters per control kind.
type Theme interface {
	Checkbox() Painter[CheckboxState]
	Button() Painter[ButtonState]
	Label() Painter[LabelState]
	Palette() Palette
}
