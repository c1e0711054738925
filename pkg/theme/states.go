// Package theme provides the visual contract between widgets and their
// painters: per-control state snapshots, the Painter interface with size,
// paint and hit-test hints, YAML-defined palettes, and the built-in slate
// theme.
package theme

import "github.com/go-loft/loft/pkg/geometry"

// InteractionState is a bit set of transient user interaction flags.
type InteractionState uint8

const (
	// InteractionPressed is set while a pointer is held on the control.
	InteractionPressed InteractionState = 1 << iota
	// InteractionHovered is set while the cursor is over the control's
	// hit-test region.
	InteractionHovered
	// InteractionFocused is set while the control holds keyboard focus.
	InteractionFocused
)

// Contains reports whether all flags in f are set.
func (s InteractionState) Contains(f InteractionState) bool {
	return s&f == f
}

// Insert sets the given flags.
func (s *InteractionState) Insert(f InteractionState) {
	*s |= f
}

// Remove clears the given flags.
func (s *InteractionState) Remove(f InteractionState) {
	*s &^= f
}

// ControlState is the part of a control's state every painter cares
// about: whether it is disabled and, if not, how the user is currently
// interacting with it.
type ControlState struct {
	Disabled    bool
	Interaction InteractionState
}

// CheckboxState is the snapshot a checkbox painter renders from.
type CheckboxState struct {
	Rect    geometry.Rect
	Checked bool
	Control ControlState
}

// ButtonType selects a button's visual emphasis.
type ButtonType uint8

const (
	ButtonNormal ButtonType = iota
	ButtonPrimary
	ButtonDanger
)

// ButtonState is the snapshot a button painter renders from.
type ButtonState struct {
	Rect    geometry.Rect
	Text    string
	Type    ButtonType
	Control ControlState
}

// LabelState is the snapshot a label painter renders from.
type LabelState struct {
	Rect geometry.Rect
	Text string
}
