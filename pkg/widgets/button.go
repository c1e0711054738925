package widgets

import (
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/event"
	"github.com/go-loft/loft/pkg/geometry"
	"github.com/go-loft/loft/pkg/pipeline"
	"github.com/go-loft/loft/pkg/theme"
)

// ButtonEventKind discriminates the events a button emits.
type ButtonEventKind uint8

const (
	// ButtonPressed fires when a pointer goes down on the button.
	ButtonPressed ButtonEventKind = iota
	// ButtonReleased fires when the held pointer is released.
	ButtonReleased
	// ButtonClicked fires when the held pointer is released inside the
	// button's hit region.
	ButtonClicked
	// ButtonHoverBegin fires when the cursor enters the hit region.
	ButtonHoverBegin
	// ButtonHoverEnd fires when the cursor leaves the hit region.
	ButtonHoverEnd
	// ButtonFocused fires when the button gains focus.
	ButtonFocused
	// ButtonBlurred fires when the button loses focus.
	ButtonBlurred
)

var buttonEventKeys = map[ButtonEventKind]string{
	ButtonPressed:    "press",
	ButtonReleased:   "release",
	ButtonClicked:    "click",
	ButtonHoverBegin: "begin_hover",
	ButtonHoverEnd:   "end_hover",
	ButtonFocused:    "focus",
	ButtonBlurred:    "blur",
}

// ButtonEvent is emitted on a button's Events queue.
type ButtonEvent struct {
	Kind ButtonEventKind
	Pos  geometry.Offset
}

// EventKey identifies the event for pipeline dispatch.
func (e ButtonEvent) EventKey() string {
	return buttonEventKeys[e.Kind]
}

// Button is a clickable push control with a text label.
type Button struct {
	core.WidgetBase
	core.RectHolder

	// Events broadcasts the button's own event stream.
	Events *event.Queue[ButtonEvent]

	// Text is the observed label text. Any mutation schedules a repaint.
	Text *event.Observed[string]

	// Disabled is the observed disabled state. Any mutation schedules a
	// repaint.
	Disabled *event.Observed[bool]

	kind        theme.ButtonType
	pipe        *pipeline.Pipeline[*Button, core.UpdateContext]
	painter     theme.Painter[theme.ButtonState]
	group       display.CommandGroup
	layout      core.LayoutEvents
	interaction theme.InteractionState
}

// NewButton creates a button with the given label at the given position,
// sized by the theme's button painter.
func NewButton(text string, kind theme.ButtonType, disabled bool, pos geometry.Offset, thm theme.Theme, uctx core.UpdateContext, gctx core.GraphicsContext) *Button {
	painter := thm.Button()

	b := &Button{
		WidgetBase: core.NewWidgetBase(),
		Events:     event.NewQueue[ButtonEvent](),
		Text:       event.NewObserved(text),
		Disabled:   event.NewObserved(disabled),
		kind:       kind,
		painter:    painter,
	}
	b.RectHolder.OnTransform = b.onTransform

	size := painter.SizeHint(theme.ButtonState{Text: text, Type: kind}, gctx)
	b.SetRectQuiet(geometry.RectFromOriginSize(pos, size))

	b.pipe = pipeline.New[*Button, core.UpdateContext](
		repaintOnChange[*Button](b.Text.OnChange),
		repaintOnChange[*Button](b.Disabled.OnChange),
		buttonTerminal(uctx.WindowEvents()),
	)

	return b
}

// buttonTerminal binds the window event queue to button interaction
// handling.
func buttonTerminal(q *event.Queue[core.WindowEvent]) *pipeline.Terminal[*Button, core.UpdateContext, core.WindowEvent] {
	return pipeline.NewTerminal[*Button, core.UpdateContext](q).
		On("mouse_press", func(b *Button, _ core.UpdateContext, ev core.WindowEvent) {
			press := ev.(core.MousePress)
			if data, ok := press.Event.With(func(d core.MouseData) bool {
				return !b.Disabled.Get() && d.Button == core.MouseButtonLeft && b.MouseBounds().Contains(d.Pos)
			}); ok {
				b.interaction.Insert(theme.InteractionPressed)
				b.Events.Emit(ButtonEvent{Kind: ButtonPressed, Pos: data.Pos})
				b.Repaint()
			}
		}).
		On("mouse_release", func(b *Button, _ core.UpdateContext, ev core.WindowEvent) {
			release := ev.(core.MouseRelease)
			if data, ok := release.Event.With(func(d core.MouseData) bool {
				return !b.Disabled.Get() && d.Button == core.MouseButtonLeft && b.interaction.Contains(theme.InteractionPressed)
			}); ok {
				b.interaction.Remove(theme.InteractionPressed)
				b.interaction.Insert(theme.InteractionFocused)
				b.Events.Emit(ButtonEvent{Kind: ButtonReleased, Pos: data.Pos})
				if b.MouseBounds().Contains(data.Pos) {
					b.Events.Emit(ButtonEvent{Kind: ButtonClicked, Pos: data.Pos})
				}
				b.Repaint()
			}
		}).
		On("mouse_move", func(b *Button, _ core.UpdateContext, ev core.WindowEvent) {
			move := ev.(core.MouseMove)
			if data, ok := move.Event.With(func(d core.MouseMoveData) bool {
				return b.MouseBounds().Contains(d.Pos)
			}); ok {
				if !b.interaction.Contains(theme.InteractionHovered) {
					b.interaction.Insert(theme.InteractionHovered)
					b.Events.Emit(ButtonEvent{Kind: ButtonHoverBegin, Pos: data.Pos})
					b.Repaint()
				}
			} else if b.interaction.Contains(theme.InteractionHovered) {
				b.interaction.Remove(theme.InteractionHovered)
				b.Events.Emit(ButtonEvent{Kind: ButtonHoverEnd, Pos: move.Event.Get().Pos})
				b.Repaint()
			}
		}).
		On("clear_focus", func(b *Button, _ core.UpdateContext, _ core.WindowEvent) {
			b.interaction.Remove(theme.InteractionFocused)
		})
}

func (b *Button) onTransform() {
	b.Repaint()
	b.layout.Notify(b.Rect())
}

func (b *Button) deriveState() theme.ButtonState {
	return theme.ButtonState{
		Rect: b.Rect(),
		Text: b.Text.Get(),
		Type: b.kind,
		Control: theme.ControlState{
			Disabled:    b.Disabled.Get(),
			Interaction: b.interaction,
		},
	}
}

// MouseBounds returns the hit-test region for the button.
func (b *Button) MouseBounds() geometry.Rect {
	return b.painter.MouseHint(b.Rect())
}

// Bounds returns the painted bounds for the button.
func (b *Button) Bounds() geometry.Rect {
	return b.painter.PaintHint(b.Rect())
}

// Interaction returns the current interaction flags.
func (b *Button) Interaction() theme.InteractionState {
	return b.interaction
}

// Repaint schedules the button's retained commands for resubmission.
func (b *Button) Repaint() {
	b.group.Repaint()
}

// ResizeToTheme resizes the button to its painter's size hint, which
// tracks the current label text.
func (b *Button) ResizeToTheme(ctx core.GraphicsContext) {
	b.SetSize(b.painter.SizeHint(b.deriveState(), ctx))
}

// ListenToLayout associates the button with a parent layout.
func (b *Button) ListenToLayout(binding *core.LayoutBinding) {
	b.layout.Update(binding)
}

// LayoutID returns the button's association id, if any.
func (b *Button) LayoutID() (uint64, bool) {
	return b.layout.ID()
}

// Children returns nil; a button is a leaf.
func (b *Button) Children() []core.WidgetChildren {
	return nil
}

// Update runs the reactive pipeline, emits focus transitions and applies
// any rect assigned by a parent layout.
func (b *Button) Update(ctx core.UpdateContext) {
	wasFocused := b.interaction.Contains(theme.InteractionFocused)

	b.pipe.Update(b, ctx)

	if focused := b.interaction.Contains(theme.InteractionFocused); focused != wasFocused {
		b.Repaint()
		kind := ButtonBlurred
		if focused {
			kind = ButtonFocused
		}
		b.Events.Emit(ButtonEvent{Kind: kind})
	}

	if rect, ok := b.layout.Receive(); ok {
		b.SetRectQuiet(rect)
		b.Repaint()
	}
}

// Draw submits the button's commands when dirty.
func (b *Button) Draw(d display.Display, ctx core.GraphicsContext) {
	state := b.deriveState()
	b.group.PushWith(d, display.GroupOptions{}, func() []display.Command {
		return b.painter.Draw(state, ctx)
	})
}

// Dispose detaches the pipeline and fires the drop broadcast.
func (b *Button) Dispose() {
	b.pipe.Close()
	b.WidgetBase.Dispose()
}
