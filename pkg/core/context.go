package core

import (
	"golang.org/x/image/font"

	"github.com/go-loft/loft/pkg/event"
)

// UpdateContext is the auxiliary state handed to every Update call. It is
// how widgets reach the window's event broadcast.
type UpdateContext interface {
	// WindowEvents returns the queue where window events are emitted.
	// All interested widgets bind listeners to this one queue; consumable
	// payloads keep exclusive events exclusive.
	WindowEvents() *event.Queue[WindowEvent]
}

// GraphicsContext is the auxiliary state handed to every Draw call and to
// theme painters.
type GraphicsContext interface {
	// UIFont returns the interface font face.
	UIFont() font.Face
	// SemiboldUIFont returns the semi-bold interface font variant, which
	// themes may use stylistically over UIFont.
	SemiboldUIFont() font.Face
	// Scale returns the HiDPI scaling factor.
	Scale() float64
}
