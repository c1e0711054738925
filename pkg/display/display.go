// Package display defines the drawing surface contract the widget toolkit
// paints against: a small set of drawing command primitives, a retained
// command-group handle with in-place repaint invalidation, and an
// in-memory reference surface.
//
// Rendering backends (GPU submission, rasterization, font shaping) live
// behind the Display interface and are outside this package's concern.
package display

import "github.com/go-loft/loft/pkg/geometry"

// Command is a single drawing primitive.
type Command interface {
	isCommand()
}

// FillRect fills a rectangle with a solid color.
type FillRect struct {
	Rect  geometry.Rect
	Color Color
}

// StrokeRect outlines a rectangle.
type StrokeRect struct {
	Rect  geometry.Rect
	Color Color
	Width float64
}

// FillRoundRect fills a rounded rectangle with a uniform corner radius.
type FillRoundRect struct {
	Rect   geometry.Rect
	Radius float64
	Color  Color
}

// StrokeRoundRect outlines a rounded rectangle with a uniform corner
// radius.
type StrokeRoundRect struct {
	Rect   geometry.Rect
	Radius float64
	Color  Color
	Width  float64
}

// Line draws a straight segment.
type Line struct {
	From  geometry.Offset
	To    geometry.Offset
	Color Color
	Width float64
}

// Text draws a string with its baseline-left anchor at Pos.
type Text struct {
	Pos      geometry.Offset
	Content  string
	Color    Color
	Size     float64
	Semibold bool
}

func (FillRect) isCommand()        {}
func (StrokeRect) isCommand()      {}
func (FillRoundRect) isCommand()   {}
func (StrokeRoundRect) isCommand() {}
func (Line) isCommand()            {}
func (Text) isCommand()            {}

// GroupID identifies a retained command group on a Display.
type GroupID uint64

// GroupOptions control how a command group is composited.
type GroupOptions struct {
	// ZOrder orders groups relative to each other; higher draws on top.
	// Groups with equal Z draw in submission order.
	ZOrder int
	// Clip restricts the group to a rectangle when non-nil.
	Clip *geometry.Rect
	// Opacity multiplies the group's alpha. Zero means fully opaque
	// (unset), matching the common case.
	Opacity float64
}

// Display is a retained drawing surface. Widgets submit batches of
// commands as groups; a group persists across frames until it is either
// resubmitted (repaint) or removed. The surface is assumed not to fail
// mid-frame; backend failures are fatal at the application bootstrap
// layer, not here.
type Display interface {
	// PushGroup retains a new command group and returns its id.
	PushGroup(cmds []Command, opts GroupOptions) GroupID
	// RepaintGroup replaces the commands of an existing group in place,
	// keeping its id and options. Unknown ids are ignored.
	RepaintGroup(id GroupID, cmds []Command)
	// RemoveGroup discards a retained group. Unknown ids are ignored.
	RemoveGroup(id GroupID)
}
