package widgets

import (
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/event"
	"github.com/go-loft/loft/pkg/geometry"
	"github.com/go-loft/loft/pkg/pipeline"
	"github.com/go-loft/loft/pkg/theme"
)

// Label is a non-interactive single line of text.
type Label struct {
	core.WidgetBase
	core.RectHolder

	// Text is the observed label text. Any mutation schedules a repaint.
	Text *event.Observed[string]

	pipe    *pipeline.Pipeline[*Label, core.UpdateContext]
	painter theme.Painter[theme.LabelState]
	group   display.CommandGroup
	layout  core.LayoutEvents
}

// NewLabel creates a label at the given position, sized to its text by
// the theme's label painter.
func NewLabel(text string, pos geometry.Offset, thm theme.Theme, gctx core.GraphicsContext) *Label {
	painter := thm.Label()

	l := &Label{
		WidgetBase: core.NewWidgetBase(),
		Text:       event.NewObserved(text),
		painter:    painter,
	}
	l.RectHolder.OnTransform = l.onTransform

	size := painter.SizeHint(theme.LabelState{Text: text}, gctx)
	l.SetRectQuiet(geometry.RectFromOriginSize(pos, size))

	l.pipe = pipeline.New[*Label, core.UpdateContext](
		repaintOnChange[*Label](l.Text.OnChange),
	)

	return l
}

func (l *Label) onTransform() {
	l.Repaint()
	l.layout.Notify(l.Rect())
}

func (l *Label) deriveState() theme.LabelState {
	return theme.LabelState{Rect: l.Rect(), Text: l.Text.Get()}
}

// Bounds returns the painted bounds for the label.
func (l *Label) Bounds() geometry.Rect {
	return l.painter.PaintHint(l.Rect())
}

// Repaint schedules the label's retained commands for resubmission.
func (l *Label) Repaint() {
	l.group.Repaint()
}

// ResizeToTheme resizes the label to fit its current text.
func (l *Label) ResizeToTheme(ctx core.GraphicsContext) {
	l.SetSize(l.painter.SizeHint(l.deriveState(), ctx))
}

// ListenToLayout associates the label with a parent layout.
func (l *Label) ListenToLayout(binding *core.LayoutBinding) {
	l.layout.Update(binding)
}

// LayoutID returns the label's association id, if any.
func (l *Label) LayoutID() (uint64, bool) {
	return l.layout.ID()
}

// Children returns nil; a label is a leaf.
func (l *Label) Children() []core.WidgetChildren {
	return nil
}

// Update drains the text change listener and applies any rect assigned
// by a parent layout.
func (l *Label) Update(ctx core.UpdateContext) {
	l.pipe.Update(l, ctx)

	if rect, ok := l.layout.Receive(); ok {
		l.SetRectQuiet(rect)
		l.Repaint()
	}
}

// Draw submits the label's commands when dirty.
func (l *Label) Draw(d display.Display, ctx core.GraphicsContext) {
	state := l.deriveState()
	l.group.PushWith(d, display.GroupOptions{}, func() []display.Command {
		return l.painter.Draw(state, ctx)
	})
}

// Dispose detaches the pipeline and fires the drop broadcast.
func (l *Label) Dispose() {
	l.pipe.Close()
	l.WidgetBase.Dispose()
}
