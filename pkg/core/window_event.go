package core

import (
	"github.com/go-loft/loft/pkg/event"
	"github.com/go-loft/loft/pkg/geometry"
)

// WindowEvent is an event related to the window, e.g. input. Events whose
// handling should be exclusive carry their payload inside a consumable
// wrapper; broadcast-to-all signals like ClearFocus do not.
type WindowEvent interface {
	// EventKey discriminates the event for pipeline dispatch.
	EventKey() string
}

// MouseButton identifies a button on a mouse.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// KeyModifiers captures the modifier keys held during an input event.
type KeyModifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Logo  bool
}

// MouseData is the payload of a mouse press or release.
type MouseData struct {
	Pos       geometry.Offset
	Button    MouseButton
	Modifiers KeyModifiers
}

// MouseMoveData is the payload of a cursor move.
type MouseMoveData struct {
	Pos       geometry.Offset
	Modifiers KeyModifiers
}

// KeyData is the payload of a keyboard press or release.
type KeyData struct {
	Key       Key
	Modifiers KeyModifiers
}

// Key identifies a keyboard key.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyTab
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeySpace
)

// MousePress means the user pressed a mouse button.
type MousePress struct {
	Event event.Consumable[MouseData]
}

// MouseRelease means the user released a mouse button. It complements
// MousePress, so it realistically only appears after a MousePress.
type MouseRelease struct {
	Event event.Consumable[MouseData]
}

// MouseMove means the user moved the cursor.
type MouseMove struct {
	Event event.Consumable[MouseMoveData]
}

// KeyPress means the user pressed a keyboard key.
type KeyPress struct {
	Event event.Consumable[KeyData]
}

// KeyRelease means the user released a keyboard key.
type KeyRelease struct {
	Event event.Consumable[KeyData]
}

// TextInput carries committed text from the keyboard.
type TextInput struct {
	Event event.Consumable[string]
}

// ClearFocus is emitted immediately before any event capable of changing
// focus. It is broadcast to all widgets rather than consumable: every
// focusable widget clears its local focused flag when it sees one.
type ClearFocus struct{}

func (MousePress) EventKey() string   { return "mouse_press" }
func (MouseRelease) EventKey() string { return "mouse_release" }
func (MouseMove) EventKey() string    { return "mouse_move" }
func (KeyPress) EventKey() string     { return "key_press" }
func (KeyRelease) EventKey() string   { return "key_release" }
func (TextInput) EventKey() string    { return "text_input" }
func (ClearFocus) EventKey() string   { return "clear_focus" }
