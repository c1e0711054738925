// Package app glues a widget tree to a window: it owns the window event
// broadcast, the graphics auxiliary state, and the tick that drives one
// update traversal followed by one draw traversal per redraw request.
//
// Platform integration stays outside: whatever translates native window
// events calls the Pointer*/Key*/Text methods here, and whatever owns the
// render surface hands in a display.Display.
package app

import (
	"golang.org/x/image/font"

	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/errors"
	"github.com/go-loft/loft/pkg/event"
	"github.com/go-loft/loft/pkg/geometry"
	"github.com/go-loft/loft/pkg/theme"
)

// Options control app creation.
type Options struct {
	// Name is the application name, usually the window title.
	Name string
	// WindowSize is the initial window size in logical pixels.
	WindowSize geometry.Size
	// Background is the window clear color.
	Background display.Color
	// Scale is the HiDPI scaling factor. Zero means 1.
	Scale float64
	// FontSize is the UI font size in points. Zero means the theme
	// default.
	FontSize float64
	// Warmup is the number of offscreen update/draw cycles run before
	// the first real frame, letting layouts settle.
	Warmup int
}

// DefaultOptions returns the options used when a field is left zero.
func DefaultOptions() Options {
	return Options{
		Name:       "Loft Application",
		WindowSize: geometry.Size{Width: 500, Height: 500},
		Background: display.RGB(0xFF, 0xFF, 0xFF),
		Scale:      1,
		FontSize:   theme.DefaultFontSize,
		Warmup:     2,
	}
}

// UpdateContext is the concrete update auxiliary handed to the widget
// tree.
type UpdateContext struct {
	windowEvents *event.Queue[core.WindowEvent]
	cursor       geometry.Offset
}

// WindowEvents returns the window event broadcast queue.
func (c *UpdateContext) WindowEvents() *event.Queue[core.WindowEvent] {
	return c.windowEvents
}

// Cursor returns the last known cursor position.
func (c *UpdateContext) Cursor() geometry.Offset {
	return c.cursor
}

// GraphicsContext is the concrete graphics auxiliary handed to draws and
// painters.
type GraphicsContext struct {
	ui       font.Face
	semibold font.Face
	scale    float64
}

// UIFont returns the interface font face.
func (c *GraphicsContext) UIFont() font.Face { return c.ui }

// SemiboldUIFont returns the semi-bold interface font variant.
func (c *GraphicsContext) SemiboldUIFont() font.Face { return c.semibold }

// Scale returns the HiDPI scaling factor.
func (c *GraphicsContext) Scale() float64 { return c.scale }

// App owns a root widget, the auxiliary contexts and the display it
// paints to.
type App struct {
	root core.WidgetChildren

	uctx *UpdateContext
	gctx *GraphicsContext

	display    display.Display
	background display.Color
	size       geometry.Size
}

// RootFunc builds the root widget once the contexts exist.
type RootFunc func(thm theme.Theme, uctx core.UpdateContext, gctx core.GraphicsContext) core.WidgetChildren

// New creates an app: it loads the UI fonts, builds the root widget tree
// and runs the warmup cycles.
func New(thm theme.Theme, d display.Display, root RootFunc, opts Options) (*App, error) {
	def := DefaultOptions()
	if opts.Scale == 0 {
		opts.Scale = def.Scale
	}
	if opts.FontSize == 0 {
		opts.FontSize = def.FontSize
	}
	if opts.WindowSize.IsEmpty() {
		opts.WindowSize = def.WindowSize
	}

	ui, err := theme.LoadUIFont(opts.FontSize, opts.Scale)
	if err != nil {
		return nil, &errors.LoftError{Op: "app.New", Kind: errors.KindInit, Err: err}
	}
	semibold, err := theme.LoadSemiboldUIFont(opts.FontSize, opts.Scale)
	if err != nil {
		return nil, &errors.LoftError{Op: "app.New", Kind: errors.KindInit, Err: err}
	}

	uctx := &UpdateContext{windowEvents: event.NewQueue[core.WindowEvent]()}
	gctx := &GraphicsContext{ui: ui, semibold: semibold, scale: opts.Scale}

	a := &App{
		root:       root(thm, uctx, gctx),
		uctx:       uctx,
		gctx:       gctx,
		display:    d,
		background: opts.Background,
		size:       opts.WindowSize,
	}

	for range opts.Warmup {
		a.Tick()
	}

	return a, nil
}

// Root returns the root widget.
func (a *App) Root() core.WidgetChildren {
	return a.root
}

// UpdateContext returns the app's update auxiliary.
func (a *App) UpdateContext() *UpdateContext {
	return a.uctx
}

// GraphicsContext returns the app's graphics auxiliary.
func (a *App) GraphicsContext() *GraphicsContext {
	return a.gctx
}

// Tick runs one frame: the update traversal followed by the draw
// traversal. A panic in widget code is reported through the global error
// handler rather than tearing the window down.
func (a *App) Tick() {
	defer errors.Recover("app.Tick")

	if v := a.root.Visibility(); v != core.VisibilityStatic && v != core.VisibilityNone {
		a.root.Update(a.uctx)
	}
	if v := a.root.Visibility(); v != core.VisibilityInvisible && v != core.VisibilityNone {
		a.root.Draw(a.display, a.gctx)
	}
}

// PointerMoved records the cursor position and broadcasts a consumable
// mouse move.
func (a *App) PointerMoved(pos geometry.Offset, mods core.KeyModifiers) {
	a.uctx.cursor = pos
	a.uctx.windowEvents.Emit(core.MouseMove{
		Event: event.NewConsumable(core.MouseMoveData{Pos: pos, Modifiers: mods}),
	})
}

// PointerPressed broadcasts ClearFocus followed by a consumable mouse
// press at the last known cursor position.
func (a *App) PointerPressed(button core.MouseButton, mods core.KeyModifiers) {
	a.uctx.windowEvents.Emit(core.ClearFocus{})
	a.uctx.windowEvents.Emit(core.MousePress{
		Event: event.NewConsumable(core.MouseData{Pos: a.uctx.cursor, Button: button, Modifiers: mods}),
	})
}

// PointerReleased broadcasts ClearFocus followed by a consumable mouse
// release at the last known cursor position.
func (a *App) PointerReleased(button core.MouseButton, mods core.KeyModifiers) {
	a.uctx.windowEvents.Emit(core.ClearFocus{})
	a.uctx.windowEvents.Emit(core.MouseRelease{
		Event: event.NewConsumable(core.MouseData{Pos: a.uctx.cursor, Button: button, Modifiers: mods}),
	})
}

// KeyPressed broadcasts a consumable key press.
func (a *App) KeyPressed(key core.Key, mods core.KeyModifiers) {
	a.uctx.windowEvents.Emit(core.KeyPress{
		Event: event.NewConsumable(core.KeyData{Key: key, Modifiers: mods}),
	})
}

// KeyReleased broadcasts a consumable key release.
func (a *App) KeyReleased(key core.Key, mods core.KeyModifiers) {
	a.uctx.windowEvents.Emit(core.KeyRelease{
		Event: event.NewConsumable(core.KeyData{Key: key, Modifiers: mods}),
	})
}

// TextEntered broadcasts consumable committed text.
func (a *App) TextEntered(text string) {
	a.uctx.windowEvents.Emit(core.TextInput{Event: event.NewConsumable(text)})
}

// WindowBlurred broadcasts ClearFocus when the window loses focus.
func (a *App) WindowBlurred() {
	a.uctx.windowEvents.Emit(core.ClearFocus{})
}

// Resized records the new window size.
func (a *App) Resized(size geometry.Size) {
	a.size = size
}

// Size returns the current window size.
func (a *App) Size() geometry.Size {
	return a.size
}
