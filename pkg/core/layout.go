package core

import (
	"github.com/go-loft/loft/pkg/event"
	"github.com/go-loft/loft/pkg/geometry"
)

// DropEvent is broadcast exactly once when a widget is torn down.
// Containers listen for it to reap layout entries whose child disappeared
// without being removed.
type DropEvent struct{}

// EventKey identifies DropEvent in pipeline dispatch.
func (DropEvent) EventKey() string { return "drop" }

// DropNotifier is implemented by widgets with a teardown broadcast.
type DropNotifier interface {
	DropEvents() *event.Queue[DropEvent]
}

// LayoutBinding is one child's half of a layout association: the id the
// container knows the child by and the child side of the bidirectional
// rectangle channel.
type LayoutBinding struct {
	ID      uint64
	Channel event.BidirSecondary[geometry.Rect]
}

// LayoutEvents optionally holds a widget's association with a parent
// layout. A widget has at most one association at a time. The zero value
// is unassociated and ready to use.
type LayoutEvents struct {
	binding *LayoutBinding
}

// ID returns the associated layout id, if any.
func (l *LayoutEvents) ID() (uint64, bool) {
	if l.binding == nil {
		return 0, false
	}
	return l.binding.ID, true
}

// Update replaces the association. Passing nil clears it.
func (l *LayoutEvents) Update(binding *LayoutBinding) {
	l.binding = binding
}

// Notify tells the parent layout that the widget's rectangle changed on
// the widget side. No-op while unassociated.
func (l *LayoutEvents) Notify(rect geometry.Rect) {
	if l.binding != nil {
		l.binding.Channel.Emit(rect)
	}
}

// Receive returns the most up-to-date rectangle assigned by the parent
// layout, if one arrived since the last call.
func (l *LayoutEvents) Receive() (geometry.Rect, bool) {
	if l.binding == nil {
		return geometry.Rect{}, false
	}
	return l.binding.Channel.TryRecv()
}

// Layable is a widget capable of being managed by a Layout.
type Layable interface {
	WidgetChildren
	Rectangular
	DropNotifier

	// ListenToLayout hands the widget its half of a layout association,
	// or clears the association when binding is nil.
	ListenToLayout(binding *LayoutBinding)
	// LayoutID returns the current association id, if any.
	LayoutID() (uint64, bool)
}

// Layout is a container that assigns rectangles to registered children.
// D is the per-child layout data the container accepts on Push.
//
// Containers do not own the widgets they lay out; they only own the
// association table. Ownership of child widgets stays with whatever
// composes them.
type Layout[D any] interface {
	WidgetChildren
	Rectangular

	// Push registers a child. A nil data uses the container's defaults.
	Push(data *D, child Layable)
	// Remove deregisters a child, optionally restoring the rectangle it
	// had when it joined. Removing an unregistered child is a no-op.
	Remove(child Layable, restoreOriginal bool)
}
