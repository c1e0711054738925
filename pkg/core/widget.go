// Package core defines the widget contract of loft: the capability
// interfaces every widget satisfies, the window event model, the layout
// negotiation protocol between containers and their children, and the
// update/draw propagation over the widget tree.
package core

import (
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/geometry"
)

// Widget is the minimal widget capability: it updates once per tick,
// draws onto a display and reports its painted bounds.
type Widget interface {
	// Bounds returns the rectangle the widget paints into, which may
	// extend past its logical rect (e.g. a focus ring).
	Bounds() geometry.Rect
	// Update runs the widget's reactive pipeline and state transitions.
	// Called once per tick, before Draw.
	Update(ctx UpdateContext)
	// Draw paints the widget. Called once per tick, after Update.
	Draw(d display.Display, ctx GraphicsContext)
}

// WidgetChildren is the full capability set a widget needs to take part in
// tree propagation.
type WidgetChildren interface {
	Widget
	HasVisibility
	Repaintable
	ThemeConsumer

	// Children enumerates the widget's direct children in insertion
	// order. Leaf widgets return nil.
	Children() []WidgetChildren
}

// Repaintable is implemented by widgets that retain drawing commands and
// can be asked to re-emit them on the next draw.
type Repaintable interface {
	Repaint()
}

// ThemeConsumer is implemented by widgets whose visuals come from a theme
// painter. Widgets without themed visuals embed the no-op implementation
// from WidgetBase.
type ThemeConsumer interface {
	// ResizeToTheme resizes the widget to its painter's size hint.
	ResizeToTheme(ctx GraphicsContext)
}

// Visibility describes the interactivity/visibility state of a widget.
type Visibility uint8

const (
	// VisibilityNormal widgets are rendered and receive updates.
	VisibilityNormal Visibility = iota
	// VisibilityInvisible widgets receive updates but aren't rendered.
	VisibilityInvisible
	// VisibilityStatic widgets are rendered but don't receive updates.
	VisibilityStatic
	// VisibilityNone widgets are neither rendered nor updated.
	VisibilityNone
)

func (v Visibility) String() string {
	switch v {
	case VisibilityNormal:
		return "normal"
	case VisibilityInvisible:
		return "invisible"
	case VisibilityStatic:
		return "static"
	case VisibilityNone:
		return "none"
	default:
		return "unknown"
	}
}

// HasVisibility is implemented by widgets that track visibility.
type HasVisibility interface {
	Visibility() Visibility
	SetVisibility(v Visibility)
}

// Movable is implemented by widgets that can be positioned.
type Movable interface {
	Position() geometry.Offset
	SetPosition(pos geometry.Offset)
}

// Resizable is implemented by widgets that can be resized.
type Resizable interface {
	Size() geometry.Size
	SetSize(size geometry.Size)
}

// Rectangular combines position and size access into rectangle access.
// Embedding RectHolder satisfies it.
type Rectangular interface {
	Movable
	Resizable
	Rect() geometry.Rect
	SetRect(rect geometry.Rect)
}

// RectHolder is a reusable Rectangular implementation widgets embed.
// SetRect and friends go through the OnTransform callback when set, so
// owners can react to any externally driven move or resize.
type RectHolder struct {
	rect geometry.Rect

	// OnTransform, when non-nil, runs after every position/size change.
	OnTransform func()
}

// Position returns the top-left corner.
func (h *RectHolder) Position() geometry.Offset {
	return h.rect.Origin()
}

// SetPosition moves the rectangle, preserving its size.
func (h *RectHolder) SetPosition(pos geometry.Offset) {
	h.rect = h.rect.WithOrigin(pos)
	h.transformed()
}

// Size returns the current size.
func (h *RectHolder) Size() geometry.Size {
	return h.rect.Size()
}

// SetSize resizes the rectangle, preserving its top-left corner.
func (h *RectHolder) SetSize(size geometry.Size) {
	h.rect = h.rect.WithSize(size)
	h.transformed()
}

// Rect returns the current rectangle.
func (h *RectHolder) Rect() geometry.Rect {
	return h.rect
}

// SetRect replaces the rectangle.
func (h *RectHolder) SetRect(rect geometry.Rect) {
	h.rect = rect
	h.transformed()
}

// SetRectQuiet replaces the rectangle without running OnTransform. Used
// when applying a rect assigned by a parent layout, which must not echo
// back through the layout channel.
func (h *RectHolder) SetRectQuiet(rect geometry.Rect) {
	h.rect = rect
}

func (h *RectHolder) transformed() {
	if h.OnTransform != nil {
		h.OnTransform()
	}
}
