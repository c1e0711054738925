package widgets

import (
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/event"
	"github.com/go-loft/loft/pkg/geometry"
)

// VStackItem describes how one VStack child is laid out.
type VStackItem struct {
	// TopMargin is the gap between the previous child (or the top edge
	// of the container) and the top side of the child.
	TopMargin float64
	// BottomMargin is the gap between the child and whatever follows it.
	BottomMargin float64
	// Alignment places the child horizontally within the container.
	Alignment Align
}

// WithTopMargin returns a copy with the top margin set.
func (i VStackItem) WithTopMargin(m float64) VStackItem {
	i.TopMargin = m
	return i
}

// WithBottomMargin returns a copy with the bottom margin set.
func (i VStackItem) WithBottomMargin(m float64) VStackItem {
	i.BottomMargin = m
	return i
}

// WithAlignment returns a copy with the alignment set.
func (i VStackItem) WithAlignment(a Align) VStackItem {
	i.Alignment = a
	return i
}

type vstackEntry struct {
	id           uint64
	item         VStackItem
	channel      event.Bidir[geometry.Rect]
	dropListener *event.Listener[core.DropEvent]
	rect         geometry.Rect
	originalRect geometry.Rect
}

// VStack arranges registered children in a vertical list, in the order
// they were pushed, with per-child margins and horizontal alignment. It
// is the vertical counterpart of HStack: height is the sum of child
// heights plus margins, width the widest child.
type VStack struct {
	core.WidgetBase
	core.RectHolder

	// Defaults supplies the item data for children pushed with nil data.
	Defaults *event.Observed[VStackItem]

	entries          []*vstackEntry
	nextID           uint64
	dirty            bool
	layout           core.LayoutEvents
	defaultsListener *event.Listener[event.Change]
}

// NewVStack creates an empty vertical stack with the given default child
// item data.
func NewVStack(defaults VStackItem) *VStack {
	s := &VStack{
		WidgetBase: core.NewWidgetBase(),
		Defaults:   event.NewObserved(defaults),
		dirty:      true,
	}
	s.defaultsListener = s.Defaults.OnChange.Listen()
	s.RectHolder.OnTransform = s.onTransform
	return s
}

func (s *VStack) onTransform() {
	s.dirty = true
	s.layout.Notify(s.Rect())
}

// Push registers a child at the end of the stack. A nil data uses the
// container's defaults.
func (s *VStack) Push(data *VStackItem, child core.Layable) {
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
	s.entries = append(s.entries, &vstackEntry{
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
func (s *VStack) Remove(child core.Layable, restoreOriginal bool) {
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
func (s *VStack) Len() int {
	return len(s.entries)
}

// ListenToLayout associates the stack with a parent layout.
func (s *VStack) ListenToLayout(binding *core.LayoutBinding) {
	s.layout.Update(binding)
}

// LayoutID returns the stack's own association id, if any.
func (s *VStack) LayoutID() (uint64, bool) {
	return s.layout.ID()
}

// Children returns nil: the stack manages rectangles, not widgets.
func (s *VStack) Children() []core.WidgetChildren {
	return nil
}

// Bounds returns the stack's current rectangle.
func (s *VStack) Bounds() geometry.Rect {
	return s.Rect()
}

func (s *VStack) resizeToFit() {
	var size geometry.Size
	for _, e := range s.entries {
		size.Height += e.rect.Height() + e.item.TopMargin + e.item.BottomMargin
		if w := e.rect.Width(); w > size.Width {
			size.Width = w
		}
	}
	s.SetSize(size)
}

// Update drains the stack's inbound channels and, when dirty, recomputes
// and assigns every child rectangle.
func (s *VStack) Update(ctx core.UpdateContext) {
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
	advance := rect.Top
	for _, e := range s.entries {
		advance += e.item.TopMargin

		target := e.rect
		width := target.Width()
		var left float64
		switch e.item.Alignment {
		case AlignMiddle:
			left = rect.Center().X - width/2
		case AlignEnd:
			left = rect.Right - width
		case AlignStretch:
			width = rect.Width()
			left = rect.Left
		default:
			left = rect.Left
		}
		target = geometry.RectFromLTWH(left, advance, width, target.Height())

		e.channel.Emit(target)
		e.rect = target

		advance += target.Height() + e.item.BottomMargin
	}

	s.dirty = false
}

// Draw does nothing; the stack has no visual.
func (s *VStack) Draw(d display.Display, ctx core.GraphicsContext) {}
