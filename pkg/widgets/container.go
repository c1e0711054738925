package widgets

import (
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/geometry"
)

// Container is a plain composite widget owning a heterogeneous list of
// children. It propagates updates and draws, reports the union of its
// children's bounds, and can itself join a layout: when a parent layout
// moves it, it moves its children along with it.
type Container struct {
	core.WidgetBase

	children []core.WidgetChildren
	rect     geometry.Rect
	layout   core.LayoutEvents
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{WidgetBase: core.NewWidgetBase()}
}

// Add appends a child. Insertion order is the draw order; input reaches
// children in the reverse of it.
func (c *Container) Add(child core.WidgetChildren) {
	c.children = append(c.children, child)
}

// Children returns the owned children in insertion order.
func (c *Container) Children() []core.WidgetChildren {
	return c.children
}

// Bounds returns the union of the children's bounds.
func (c *Container) Bounds() geometry.Rect {
	return c.rect
}

// Position returns the top-left corner of the container's bounds.
func (c *Container) Position() geometry.Offset {
	return c.rect.Origin()
}

// SetPosition moves the container and every movable child by the same
// delta.
func (c *Container) SetPosition(pos geometry.Offset) {
	c.moveBy(pos.Sub(c.rect.Origin()))
}

// Size returns the size of the container's bounds.
func (c *Container) Size() geometry.Size {
	return c.rect.Size()
}

// SetSize is a no-op: the container's size is derived from its children.
func (c *Container) SetSize(size geometry.Size) {}

// Rect returns the container's bounds.
func (c *Container) Rect() geometry.Rect {
	return c.rect
}

// SetRect moves the container to the rect's origin; the size stays
// content-derived.
func (c *Container) SetRect(rect geometry.Rect) {
	c.SetPosition(rect.Origin())
}

// ListenToLayout associates the container with a parent layout.
func (c *Container) ListenToLayout(binding *core.LayoutBinding) {
	c.layout.Update(binding)
}

// LayoutID returns the container's association id, if any.
func (c *Container) LayoutID() (uint64, bool) {
	return c.layout.ID()
}

func (c *Container) moveBy(delta geometry.Offset) {
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	c.rect = c.rect.Translate(delta.X, delta.Y)
	for _, child := range c.children {
		if mv, ok := child.(core.Movable); ok {
			mv.SetPosition(mv.Position().Add(delta))
		}
	}
}

// Update propagates to the children, refreshes the container's bounds
// from theirs and applies any rect assigned by a parent layout.
func (c *Container) Update(ctx core.UpdateContext) {
	core.PropagateUpdate(c, ctx)

	var union geometry.Rect
	for _, child := range c.children {
		union = union.Union(child.Bounds())
	}
	if !geometry.RectEqual(union, c.rect) {
		c.rect = union
		c.layout.Notify(c.rect)
	}

	if assigned, ok := c.layout.Receive(); ok {
		c.moveBy(assigned.Origin().Sub(c.rect.Origin()))
	}
}

// Draw propagates to the children in insertion order.
func (c *Container) Draw(d display.Display, ctx core.GraphicsContext) {
	core.PropagateDraw(c, d, ctx)
}
