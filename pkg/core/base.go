package core

import "github.com/go-loft/loft/pkg/event"

// WidgetBase bundles the capabilities every widget carries: visibility
// tracking, the teardown broadcast and a no-op themed stub. Widgets embed
// it and override what they need; a leaf widget with retained drawing
// overrides Repaint, a themed widget overrides ResizeToTheme.
type WidgetBase struct {
	visibility Visibility
	dropEvents *event.Queue[DropEvent]
	disposed   bool
}

// NewWidgetBase creates a base in the Normal visibility state.
func NewWidgetBase() WidgetBase {
	return WidgetBase{dropEvents: event.NewQueue[DropEvent]()}
}

// Visibility returns the widget's visibility state.
func (b *WidgetBase) Visibility() Visibility {
	return b.visibility
}

// SetVisibility sets the widget's visibility state.
func (b *WidgetBase) SetVisibility(v Visibility) {
	b.visibility = v
}

// DropEvents returns the teardown broadcast queue.
func (b *WidgetBase) DropEvents() *event.Queue[DropEvent] {
	return b.dropEvents
}

// Dispose fires the teardown broadcast. Parent layouts listening on
// DropEvents reap the widget's association on their next update. Calling
// Dispose more than once only fires the broadcast the first time.
func (b *WidgetBase) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.dropEvents.Emit(DropEvent{})
}

// Repaint is a no-op; widgets with retained drawing override it.
func (b *WidgetBase) Repaint() {}

// ResizeToTheme is a no-op; themed widgets override it.
func (b *WidgetBase) ResizeToTheme(ctx GraphicsContext) {}
