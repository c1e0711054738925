package widgets

import (
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/event"
	"github.com/go-loft/loft/pkg/geometry"
	"github.com/go-loft/loft/pkg/pipeline"
	"github.com/go-loft/loft/pkg/theme"
)

// CheckboxEventKind discriminates the events a checkbox emits.
type CheckboxEventKind uint8

const (
	// CheckboxPressed fires when a pointer goes down on the checkbox.
	CheckboxPressed CheckboxEventKind = iota
	// CheckboxReleased fires when the held pointer is released.
	CheckboxReleased
	// CheckboxChecked fires when the checkbox becomes checked.
	CheckboxChecked
	// CheckboxUnchecked fires when the checkbox becomes unchecked.
	CheckboxUnchecked
	// CheckboxHoverBegin fires when the cursor enters the hit region.
	CheckboxHoverBegin
	// CheckboxHoverEnd fires when the cursor leaves the hit region.
	CheckboxHoverEnd
	// CheckboxFocused fires when the checkbox gains focus.
	CheckboxFocused
	// CheckboxBlurred fires when the checkbox loses focus.
	CheckboxBlurred
)

var checkboxEventKeys = map[CheckboxEventKind]string{
	CheckboxPressed:    "press",
	CheckboxReleased:   "release",
	CheckboxChecked:    "check",
	CheckboxUnchecked:  "uncheck",
	CheckboxHoverBegin: "begin_hover",
	CheckboxHoverEnd:   "end_hover",
	CheckboxFocused:    "focus",
	CheckboxBlurred:    "blur",
}

// CheckboxEvent is emitted on a checkbox's Events queue.
type CheckboxEvent struct {
	Kind CheckboxEventKind
	Pos  geometry.Offset
}

// EventKey identifies the event for pipeline dispatch.
func (e CheckboxEvent) EventKey() string {
	return checkboxEventKeys[e.Kind]
}

// Checkbox is a toggleable boolean input.
type Checkbox struct {
	core.WidgetBase
	core.RectHolder

	// Events broadcasts the checkbox's own event stream.
	Events *event.Queue[CheckboxEvent]

	// Checked is the observed checked state. Any mutation schedules a
	// repaint.
	Checked *event.Observed[bool]

	// Disabled is the observed disabled state. Any mutation schedules a
	// repaint.
	Disabled *event.Observed[bool]

	pipe        *pipeline.Pipeline[*Checkbox, core.UpdateContext]
	painter     theme.Painter[theme.CheckboxState]
	group       display.CommandGroup
	layout      core.LayoutEvents
	interaction theme.InteractionState
}

// NewCheckbox creates a checkbox with the given initial state at the
// given position, sized by the theme's checkbox painter.
func NewCheckbox(checked, disabled bool, pos geometry.Offset, thm theme.Theme, uctx core.UpdateContext, gctx core.GraphicsContext) *Checkbox {
	painter := thm.Checkbox()

	c := &Checkbox{
		WidgetBase: core.NewWidgetBase(),
		Events:     event.NewQueue[CheckboxEvent](),
		Checked:    event.NewObserved(checked),
		Disabled:   event.NewObserved(disabled),
		painter:    painter,
	}
	c.RectHolder.OnTransform = c.onTransform

	size := painter.SizeHint(theme.CheckboxState{Checked: checked}, gctx)
	c.SetRectQuiet(geometry.RectFromOriginSize(pos, size))

	c.pipe = pipeline.New[*Checkbox, core.UpdateContext](
		repaintOnChange[*Checkbox](c.Checked.OnChange),
		repaintOnChange[*Checkbox](c.Disabled.OnChange),
		checkboxTerminal(uctx.WindowEvents()),
	)

	return c
}

// repaintOnChange builds a stage that schedules a repaint whenever an
// observed value is touched.
func repaintOnChange[W core.Repaintable](q *event.Queue[event.Change]) *pipeline.Terminal[W, core.UpdateContext, event.Change] {
	return pipeline.NewTerminal[W, core.UpdateContext](q).
		On("change", func(w W, _ core.UpdateContext, _ event.Change) {
			w.Repaint()
		})
}

// checkboxTerminal binds the window event queue to checkbox interaction
// handling.
func checkboxTerminal(q *event.Queue[core.WindowEvent]) *pipeline.Terminal[*Checkbox, core.UpdateContext, core.WindowEvent] {
	return pipeline.NewTerminal[*Checkbox, core.UpdateContext](q).
		On("mouse_press", func(c *Checkbox, _ core.UpdateContext, ev core.WindowEvent) {
			press := ev.(core.MousePress)
			if data, ok := press.Event.With(func(d core.MouseData) bool {
				return !c.Disabled.Get() && d.Button == core.MouseButtonLeft && c.MouseBounds().Contains(d.Pos)
			}); ok {
				c.interaction.Insert(theme.InteractionPressed)
				c.Events.Emit(CheckboxEvent{Kind: CheckboxPressed, Pos: data.Pos})
				c.Repaint()
			}
		}).
		On("mouse_release", func(c *Checkbox, _ core.UpdateContext, ev core.WindowEvent) {
			release := ev.(core.MouseRelease)
			if data, ok := release.Event.With(func(d core.MouseData) bool {
				return !c.Disabled.Get() && d.Button == core.MouseButtonLeft && c.interaction.Contains(theme.InteractionPressed)
			}); ok {
				c.interaction.Remove(theme.InteractionPressed)
				c.interaction.Insert(theme.InteractionFocused)
				c.Events.Emit(CheckboxEvent{Kind: CheckboxReleased, Pos: data.Pos})

				c.Checked.Set(!c.Checked.Get())
				kind := CheckboxUnchecked
				if c.Checked.Get() {
					kind = CheckboxChecked
				}
				c.Events.Emit(CheckboxEvent{Kind: kind, Pos: data.Pos})

				c.Repaint()
			}
		}).
		On("mouse_move", func(c *Checkbox, _ core.UpdateContext, ev core.WindowEvent) {
			move := ev.(core.MouseMove)
			if data, ok := move.Event.With(func(d core.MouseMoveData) bool {
				return c.MouseBounds().Contains(d.Pos)
			}); ok {
				if !c.interaction.Contains(theme.InteractionHovered) {
					c.interaction.Insert(theme.InteractionHovered)
					c.Events.Emit(CheckboxEvent{Kind: CheckboxHoverBegin, Pos: data.Pos})
					c.Repaint()
				}
			} else if c.interaction.Contains(theme.InteractionHovered) {
				c.interaction.Remove(theme.InteractionHovered)
				c.Events.Emit(CheckboxEvent{Kind: CheckboxHoverEnd, Pos: move.Event.Get().Pos})
				c.Repaint()
			}
		}).
		On("clear_focus", func(c *Checkbox, _ core.UpdateContext, _ core.WindowEvent) {
			c.interaction.Remove(theme.InteractionFocused)
		})
}

func (c *Checkbox) onTransform() {
	c.Repaint()
	c.layout.Notify(c.Rect())
}

func (c *Checkbox) deriveState() theme.CheckboxState {
	return theme.CheckboxState{
		Rect:    c.Rect(),
		Checked: c.Checked.Get(),
		Control: theme.ControlState{
			Disabled:    c.Disabled.Get(),
			Interaction: c.interaction,
		},
	}
}

// MouseBounds returns the hit-test region for the checkbox.
func (c *Checkbox) MouseBounds() geometry.Rect {
	return c.painter.MouseHint(c.Rect())
}

// Bounds returns the painted bounds for the checkbox.
func (c *Checkbox) Bounds() geometry.Rect {
	return c.painter.PaintHint(c.Rect())
}

// Interaction returns the current interaction flags.
func (c *Checkbox) Interaction() theme.InteractionState {
	return c.interaction
}

// Repaint schedules the checkbox's retained commands for resubmission.
func (c *Checkbox) Repaint() {
	c.group.Repaint()
}

// ResizeToTheme resizes the checkbox to its painter's size hint.
func (c *Checkbox) ResizeToTheme(ctx core.GraphicsContext) {
	c.SetSize(c.painter.SizeHint(c.deriveState(), ctx))
}

// ListenToLayout associates the checkbox with a parent layout.
func (c *Checkbox) ListenToLayout(binding *core.LayoutBinding) {
	c.layout.Update(binding)
}

// LayoutID returns the checkbox's association id, if any.
func (c *Checkbox) LayoutID() (uint64, bool) {
	return c.layout.ID()
}

// Children returns nil; a checkbox is a leaf.
func (c *Checkbox) Children() []core.WidgetChildren {
	return nil
}

// Update runs the reactive pipeline, emits focus transitions and applies
// any rect assigned by a parent layout.
func (c *Checkbox) Update(ctx core.UpdateContext) {
	wasFocused := c.interaction.Contains(theme.InteractionFocused)

	c.pipe.Update(c, ctx)

	if focused := c.interaction.Contains(theme.InteractionFocused); focused != wasFocused {
		c.Repaint()
		kind := CheckboxBlurred
		if focused {
			kind = CheckboxFocused
		}
		c.Events.Emit(CheckboxEvent{Kind: kind})
	}

	if rect, ok := c.layout.Receive(); ok {
		c.SetRectQuiet(rect)
		c.Repaint()
	}
}

// Draw submits the checkbox's commands when dirty.
func (c *Checkbox) Draw(d display.Display, ctx core.GraphicsContext) {
	state := c.deriveState()
	c.group.PushWith(d, display.GroupOptions{}, func() []display.Command {
		return c.painter.Draw(state, ctx)
	})
}

// Dispose detaches the pipeline and fires the drop broadcast.
func (c *Checkbox) Dispose() {
	c.pipe.Close()
	c.WidgetBase.Dispose()
}
