// Package uitest provides an isolated widget test harness. It drives the
// same update and draw phases as a real window but records draw commands
// into an in-memory display instead of rendering.
package uitest

import (
	"testing"

	"github.com/go-loft/loft/pkg/app"
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/geometry"
	"github.com/go-loft/loft/pkg/theme"
)

// DefaultSettleTicks is the number of frames Settle runs when callers
// pass zero.
const DefaultSettleTicks = 3

// Harness hosts a widget tree over a recording display.
type Harness struct {
	t   *testing.T
	app *app.App
	out *display.ListDisplay
}

// New creates a harness with the default theme and mounts the tree
// returned by root. No warmup frames run; tests tick explicitly.
func New(t *testing.T, root app.RootFunc) *Harness {
	t.Helper()
	return NewWithTheme(t, theme.DefaultTheme(), root)
}

// NewWithTheme is New with an explicit theme.
func NewWithTheme(t *testing.T, thm theme.Theme, root app.RootFunc) *Harness {
	t.Helper()
	out := display.NewListDisplay()
	a, err := app.New(thm, out, root, app.Options{Warmup: 0})
	if err != nil {
		t.Fatalf("uitest: creating app: %v", err)
	}
	return &Harness{t: t, app: a, out: out}
}

// App returns the underlying app for direct event injection.
func (h *Harness) App() *app.App {
	return h.app
}

// Root returns the mounted root widget.
func (h *Harness) Root() core.WidgetChildren {
	return h.app.Root()
}

// Display returns the recording display.
func (h *Harness) Display() *display.ListDisplay {
	return h.out
}

// UpdateContext returns the harness update auxiliary, for constructing
// widgets outside the root function.
func (h *Harness) UpdateContext() *app.UpdateContext {
	return h.app.UpdateContext()
}

// GraphicsContext returns the harness graphics auxiliary.
func (h *Harness) GraphicsContext() *app.GraphicsContext {
	return h.app.GraphicsContext()
}

// Tick runs one update/draw frame.
func (h *Harness) Tick() {
	h.app.Tick()
}

// Settle runs n frames, letting layout negotiation converge. Zero means
// DefaultSettleTicks.
func (h *Harness) Settle(n int) {
	if n == 0 {
		n = DefaultSettleTicks
	}
	for range n {
		h.app.Tick()
	}
}

// MoveTo moves the pointer to pos and ticks once.
func (h *Harness) MoveTo(pos geometry.Offset) {
	h.app.PointerMoved(pos, core.KeyModifiers{})
	h.app.Tick()
}

// PressAt moves the pointer to pos, presses the left button and ticks.
func (h *Harness) PressAt(pos geometry.Offset) {
	h.app.PointerMoved(pos, core.KeyModifiers{})
	h.app.PointerPressed(core.MouseButtonLeft, core.KeyModifiers{})
	h.app.Tick()
}

// ReleaseAt moves the pointer to pos, releases the left button and
// ticks.
func (h *Harness) ReleaseAt(pos geometry.Offset) {
	h.app.PointerMoved(pos, core.KeyModifiers{})
	h.app.PointerReleased(core.MouseButtonLeft, core.KeyModifiers{})
	h.app.Tick()
}

// ClickAt presses and releases the left button at pos.
func (h *Harness) ClickAt(pos geometry.Offset) {
	h.PressAt(pos)
	h.ReleaseAt(pos)
}

// Blur simulates the window losing focus and ticks once.
func (h *Harness) Blur() {
	h.app.WindowBlurred()
	h.app.Tick()
}
