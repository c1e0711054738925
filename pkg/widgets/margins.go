package widgets

import (
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/event"
	"github.com/go-loft/loft/pkg/geometry"
)

type marginsEntry struct {
	id             uint64
	channel        event.Bidir[geometry.Rect]
	dropListener   *event.Listener[core.DropEvent]
	rect           geometry.Rect
	originalRect   geometry.Rect
	distanceFromTL geometry.Offset
}

// Margins keeps a uniform inset around its children. The container sizes
// itself to the union of child rects inflated by the four margin offsets.
// Each child is anchored by its displacement from the top-left of the
// inset region, captured when it joins or when its rect changes
// externally, so children keep their relative offsets as the container
// moves and resizes.
type Margins struct {
	core.WidgetBase
	core.RectHolder

	// Offsets are the four margin distances. Mutating marks the
	// container dirty.
	Offsets *event.Observed[geometry.SideOffsets]

	entries         []*marginsEntry
	nextID          uint64
	dirty           bool
	layout          core.LayoutEvents
	offsetsListener *event.Listener[event.Change]
}

// NewMargins creates an empty margins container with the given offsets.
func NewMargins(offsets geometry.SideOffsets) *Margins {
	m := &Margins{
		WidgetBase: core.NewWidgetBase(),
		Offsets:    event.NewObserved(offsets),
		dirty:      true,
	}
	m.offsetsListener = m.Offsets.OnChange.Listen()
	m.RectHolder.OnTransform = m.onTransform
	return m
}

func (m *Margins) onTransform() {
	m.dirty = true
	m.layout.Notify(m.Rect())
}

// innerRect returns the content region: the container rect inset by the
// margins.
func (m *Margins) innerRect() geometry.Rect {
	return m.Rect().Inset(m.Offsets.Get())
}

// Push registers a child. Margins has no per-child data so Push takes
// none; the displacement anchor is captured from the child's current
// rect.
func (m *Margins) Push(child core.Layable) {
	m.dirty = true

	id := m.nextID
	m.nextID++

	channel := event.NewBidir[geometry.Rect]()
	child.ListenToLayout(&core.LayoutBinding{ID: id, Channel: channel.Secondary()})

	rect := child.Rect()
	m.entries = append(m.entries, &marginsEntry{
		id:             id,
		channel:        channel,
		dropListener:   child.DropEvents().Listen(),
		rect:           rect,
		originalRect:   rect,
		distanceFromTL: rect.Origin().Sub(m.innerRect().Origin()),
	})

	m.resizeToFit()
}

// Remove deregisters a child, optionally restoring the rect it had when
// pushed. Removing a child that isn't registered is a no-op.
func (m *Margins) Remove(child core.Layable, restoreOriginal bool) {
	id, ok := child.LayoutID()
	if !ok {
		return
	}
	for i, e := range m.entries {
		if e.id == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			e.dropListener.Close()
			child.ListenToLayout(nil)
			if restoreOriginal {
				child.SetRect(e.originalRect)
			}
			m.dirty = true
			return
		}
	}
}

// Len returns the number of registered children.
func (m *Margins) Len() int {
	return len(m.entries)
}

// ListenToLayout associates the container with a parent layout.
func (m *Margins) ListenToLayout(binding *core.LayoutBinding) {
	m.layout.Update(binding)
}

// LayoutID returns the container's own association id, if any.
func (m *Margins) LayoutID() (uint64, bool) {
	return m.layout.ID()
}

// Children returns nil: the container manages rectangles, not widgets.
func (m *Margins) Children() []core.WidgetChildren {
	return nil
}

// Bounds returns the container's current rectangle.
func (m *Margins) Bounds() geometry.Rect {
	return m.Rect()
}

func (m *Margins) resizeToFit() {
	var union geometry.Rect
	for _, e := range m.entries {
		union = union.Union(e.rect)
	}
	offsets := m.Offsets.Get()
	m.SetSize(geometry.Size{
		Width:  union.Width() + offsets.Horizontal(),
		Height: union.Height() + offsets.Vertical(),
	})
}

// Update drains the container's inbound channels and, when dirty,
// re-anchors every child against the inset region.
func (m *Margins) Update(ctx core.UpdateContext) {
	if rect, ok := m.layout.Receive(); ok {
		m.SetRectQuiet(rect)
		m.dirty = true
	}

	if m.offsetsListener.Drain() != nil {
		m.dirty = true
	}

	inner := m.innerRect()
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.dropListener.Pending() {
			e.dropListener.Close()
			m.dirty = true
			continue
		}
		if r, ok := e.channel.TryRecv(); ok {
			m.dirty = true
			e.rect = r
			e.distanceFromTL = r.Origin().Sub(inner.Origin())
		}
		kept = append(kept, e)
	}
	m.entries = kept

	if !m.dirty {
		return
	}

	m.resizeToFit()
	origin := m.Rect().Origin()
	offsets := m.Offsets.Get()
	for _, e := range m.entries {
		target := e.rect.WithOrigin(geometry.Offset{
			X: origin.X + offsets.Left + e.distanceFromTL.X,
			Y: origin.Y + offsets.Top + e.distanceFromTL.Y,
		})
		e.channel.Emit(target)
		e.rect = target
	}

	m.dirty = false
}

// Draw does nothing; the container has no visual.
func (m *Margins) Draw(d display.Display, ctx core.GraphicsContext) {}
