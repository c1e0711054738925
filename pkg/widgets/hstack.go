package widgets

import (
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/event"
	"github.com/go-loft/loft/pkg/geometry"
)

// HStackItem describes how one HStack child is laid out.
type HStackItem struct {
	// LeftMargin is the gap between the previous child (or the left edge
	// of the container) and the left side of the child.
	LeftMargin float64
	// RightMargin is the gap between the child and whatever follows it.
	RightMargin float64
	// Alignment places the child vertically within the container.
	Alignment Align
}

// WithLeftMargin returns a copy with the left margin set.
func (i HStackItem) WithLeftMargin(m float64) HStackItem {
	i.LeftMargin = m
	return i
}

// WithRightMargin returns a copy with the right margin set.
func (i HStackItem) WithRightMargin(m float64) HStackItem {
	i.RightMargin = m
	return i
}

// WithAlignment returns a copy with the alignment set.
func (i HStackItem) WithAlignment(a Align) HStackItem {
	i.Alignment = a
	return i
}

// stackEntry is one child association owned by a stack container.
type stackEntry struct {
	id           uint64
	item         HStackItem
	channel      event.Bidir[geometry.Rect]
	dropListener *event.Listener[core.DropEvent]
	rect         geometry.Rect
	originalRect geometry.Rect
}

// HStack arranges registered children in a horizontal list, in the order
// they were pushed, with per-child margins and vertical alignment. The
// container sizes itself to its content: width is the sum of child
// widths plus margins, height the tallest child.
//
// HStack draws nothing and owns no widgets; it only negotiates
// rectangles. It is itself layable, so stacks nest.
type HStack struct {
	core.WidgetBase
	core.RectHolder

	// Defaults supplies the item data for children pushed with nil data.
	// Mutating it marks the container dirty.
	Defaults *event.Observed[HStackItem]

	entries          []*stackEntry
	nextID           uint64
	dirty            bool
	layout           core.LayoutEvents
	defaultsListener *event.Listener[event.Change]
}

// NewHStack creates an empty horizontal stack with the given default
// child item data.
func NewHStack(defaults HStackItem) *HStack {
	s := &HStack{
		WidgetBase: core.NewWidgetBase(),
		Defaults:   event.NewObserved(defaults),
		dirty:      true,
	}
	s.defaultsListener = s.Defaults.OnChange.Listen()
	s.RectHolder.OnTransform = s.onTransform
	return s
}

func (s *HStack) onTransform() {
	s.dirty = true
	s.layout.Notify(s.Rect())
}

// Push registers a child at the end of the stack. A nil data uses the
// container's defaults. The child's current rect is recorded as its
// original, restorable on Remove.
func (s *HStack) Push(data *HStackItem, child core.Layable) {
	s.dirty = true

	id := s.nextID
	s.nextID++

	channel := event.NewBidir[geometry.Rect]()
	child.ListenToLayout(&core.LayoutBinding{ID: id, Channel: channel.Secondary()})

	item := s.Defaults.Get()
	if data != nil {
		item = *data
	}

	rect := child.Rect()
	s.entries = append(s.entries, &stackEntry{
		id:           id,
		item:         item,
		channel:      channel,
		dropListener: child.DropEvents().Listen(),
		rect:         rect,
		originalRect: rect,
	})

	s.resizeToFit()
}

// Remove deregisters a child, optionally restoring the rect it had when
// pushed. Removing a child that isn't registered is a no-op.
func (s *HStack) Remove(child core.Layable, restoreOriginal bool) {
	id, ok := child.LayoutID()
	if !ok {
		return
	}
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			e.dropListener.Close()
			child.ListenToLayout(nil)
			if restoreOriginal {
				child.SetRect(e.originalRect)
			}
			s.dirty = true
			return
		}
	}
}

// Len returns the number of registered children.
func (s *HStack) Len() int {
	return len(s.entries)
}

// ListenToLayout associates the stack with a parent layout.
func (s *HStack) ListenToLayout(binding *core.LayoutBinding) {
	s.layout.Update(binding)
}

// LayoutID returns the stack's own association id, if any.
func (s *HStack) LayoutID() (uint64, bool) {
	return s.layout.ID()
}

// Children returns nil: the stack manages rectangles, not widgets.
func (s *HStack) Children() []core.WidgetChildren {
	return nil
}

// Bounds returns the stack's current rectangle.
func (s *HStack) Bounds() geometry.Rect {
	return s.Rect()
}

func (s *HStack) resizeToFit() {
	var size geometry.Size
	for _, e := range s.entries {
		size.Width += e.rect.Width() + e.item.LeftMargin + e.item.RightMargin
		if h := e.rect.Height(); h > size.Height {
			size.Height = h
		}
	}
	s.SetSize(size)
}

// Update drains the stack's inbound channels and, when dirty, recomputes
// and assigns every child rectangle.
func (s *HStack) Update(ctx core.UpdateContext) {
	if rect, ok := s.layout.Receive(); ok {
		s.SetRectQuiet(rect)
		s.dirty = true
	}

	if s.defaultsListener.Drain() != nil {
		s.dirty = true
	}

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.dropListener.Pending() {
			// The child is gone; reap the association as if Remove had
			// been called without restore.
			e.dropListener.Close()
			s.dirty = true
			continue
		}
		if r, ok := e.channel.TryRecv(); ok {
			s.dirty = true
			e.rect = r
		}
		kept = append(kept, e)
	}
	s.entries = kept

	if !s.dirty {
		return
	}

	s.resizeToFit()
	rect := s.Rect()
	advance := rect.Left
	for _, e := range s.entries {
		advance += e.item.LeftMargin

		target := e.rect
		height := target.Height()
		var top float64
		switch e.item.Alignment {
		case AlignMiddle:
			top = rect.Center().Y - height/2
		case AlignEnd:
			top = rect.Bottom - height
		case AlignStretch:
			height = rect.Height()
			top = rect.Top
		default:
			top = rect.Top
		}
		target = geometry.RectFromLTWH(advance, top, target.Width(), height)

		e.channel.Emit(target)
		e.rect = target

		advance += target.Width() + e.item.RightMargin
	}

	s.dirty = false
}

// Draw does nothing; the stack has no visual.
func (s *HStack) Draw(d display.Display, ctx core.GraphicsContext) {}
