package theme

import (
	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/geometry"
)

const (
	checkboxSide    = 20.0
	cornerRadius    = 3.0
	focusRingWidth  = 3.0
	buttonPaddingH  = 14.0
	buttonPaddingV  = 7.0
	borderWidth     = 1.0
	checkmarkInsetF = 0.25
)

// Slate is the built-in theme: flat surfaces, thin borders, a translucent
// focus ring.
type Slate struct {
	palette Palette
}

// NewSlate creates the slate theme over the given palette.
func NewSlate(palette Palette) *Slate {
	return &Slate{palette: palette}
}

// DefaultTheme returns the slate theme with its default palette.
func DefaultTheme() *Slate {
	return NewSlate(DefaultPalette())
}

func (s *Slate) Checkbox() Painter[CheckboxState] {
	return &slateCheckbox{palette: s.palette}
}

func (s *Slate) Button() Painter[ButtonState] {
	return &slateButton{palette: s.palette}
}

func (s *Slate) Label() Painter[LabelState] {
	return &slateLabel{palette: s.palette}
}

func (s *Slate) Palette() Palette {
	return s.palette
}

type slateCheckbox struct {
	palette Palette
}

func (p *slateCheckbox) SizeHint(state CheckboxState, ctx core.GraphicsContext) geometry.Size {
	return geometry.Size{Width: checkboxSide, Height: checkboxSide}
}

func (p *slateCheckbox) PaintHint(rect geometry.Rect) geometry.Rect {
	return rect.Outset(geometry.UniformSideOffsets(focusRingWidth))
}

func (p *slateCheckbox) MouseHint(rect geometry.Rect) geometry.Rect {
	return rect
}

func (p *slateCheckbox) Draw(state CheckboxState, ctx core.GraphicsContext) []display.Command {
	fill := p.palette.Surface
	border := p.palette.Border
	mark := p.palette.OnPrimary

	switch {
	case state.Control.Disabled:
		border = p.palette.TextDisabled
		if state.Checked {
			fill = p.palette.TextDisabled
		}
	case state.Checked:
		fill = p.palette.Primary
		border = p.palette.Primary
	case state.Control.Interaction.Contains(InteractionPressed):
		fill = p.palette.Pressed
	case state.Control.Interaction.Contains(InteractionHovered):
		fill = p.palette.Hover
	}

	cmds := []display.Command{
		display.FillRoundRect{Rect: state.Rect, Radius: cornerRadius, Color: fill},
		display.StrokeRoundRect{Rect: state.Rect, Radius: cornerRadius, Color: border, Width: borderWidth},
	}

	if state.Checked {
		inset := state.Rect.Width() * checkmarkInsetF
		left := geometry.Offset{X: state.Rect.Left + inset, Y: state.Rect.Center().Y}
		mid := geometry.Offset{X: state.Rect.Center().X - 1, Y: state.Rect.Bottom - inset}
		right := geometry.Offset{X: state.Rect.Right - inset, Y: state.Rect.Top + inset}
		cmds = append(cmds,
			display.Line{From: left, To: mid, Color: mark, Width: 2},
			display.Line{From: mid, To: right, Color: mark, Width: 2},
		)
	}

	if !state.Control.Disabled && state.Control.Interaction.Contains(InteractionFocused) {
		cmds = append(cmds, display.StrokeRoundRect{
			Rect:   p.PaintHint(state.Rect),
			Radius: cornerRadius + focusRingWidth,
			Color:  p.palette.Focus,
			Width:  focusRingWidth,
		})
	}

	return cmds
}

type slateButton struct {
	palette Palette
}

func (p *slateButton) SizeHint(state ButtonState, ctx core.GraphicsContext) geometry.Size {
	text := MeasureText(ctx.SemiboldUIFont(), state.Text)
	return geometry.Size{
		Width:  text.Width + 2*buttonPaddingH,
		Height: text.Height + 2*buttonPaddingV,
	}
}

func (p *slateButton) PaintHint(rect geometry.Rect) geometry.Rect {
	return rect.Outset(geometry.UniformSideOffsets(focusRingWidth))
}

func (p *slateButton) MouseHint(rect geometry.Rect) geometry.Rect {
	return rect
}

func (p *slateButton) Draw(state ButtonState, ctx core.GraphicsContext) []display.Command {
	fill := p.palette.Surface
	text := p.palette.Text
	switch state.Type {
	case ButtonPrimary:
		fill = p.palette.Primary
		text = p.palette.OnPrimary
	case ButtonDanger:
		fill = p.palette.Danger
		text = p.palette.OnPrimary
	}

	if state.Control.Disabled {
		fill = fill.WithAlpha(0.5)
		text = p.palette.TextDisabled
	} else if state.Control.Interaction.Contains(InteractionPressed) {
		fill = darken(fill)
	} else if state.Control.Interaction.Contains(InteractionHovered) && state.Type == ButtonNormal {
		fill = p.palette.Hover
	}

	cmds := []display.Command{
		display.FillRoundRect{Rect: state.Rect, Radius: cornerRadius, Color: fill},
		display.StrokeRoundRect{Rect: state.Rect, Radius: cornerRadius, Color: p.palette.Border, Width: borderWidth},
	}

	face := ctx.SemiboldUIFont()
	measured := MeasureText(face, state.Text)
	pos := geometry.Offset{
		X: state.Rect.Center().X - measured.Width/2,
		Y: state.Rect.Top + (state.Rect.Height()-measured.Height)/2 + Ascent(face),
	}
	cmds = append(cmds, display.Text{
		Pos:      pos,
		Content:  state.Text,
		Color:    text,
		Size:     DefaultFontSize,
		Semibold: true,
	})

	if !state.Control.Disabled && state.Control.Interaction.Contains(InteractionFocused) {
		cmds = append(cmds, display.StrokeRoundRect{
			Rect:   p.PaintHint(state.Rect),
			Radius: cornerRadius + focusRingWidth,
			Color:  p.palette.Focus,
			Width:  focusRingWidth,
		})
	}

	return cmds
}

type slateLabel struct {
	palette Palette
}

func (p *slateLabel) SizeHint(state LabelState, ctx core.GraphicsContext) geometry.Size {
	return MeasureText(ctx.UIFont(), state.Text)
}

func (p *slateLabel) PaintHint(rect geometry.Rect) geometry.Rect {
	return rect
}

func (p *slateLabel) MouseHint(rect geometry.Rect) geometry.Rect {
	return rect
}

func (p *slateLabel) Draw(state LabelState, ctx core.GraphicsContext) []display.Command {
	return []display.Command{
		display.Text{
			Pos: geometry.Offset{
				X: state.Rect.Left,
				Y: state.Rect.Top + Ascent(ctx.UIFont()),
			},
			Content: state.Text,
			Color:   p.palette.Text,
			Size:    DefaultFontSize,
		},
	}
}

// darken shifts a color toward black by a fixed fraction for the pressed
// state of filled buttons.
func darken(c display.Color) display.Color {
	r, g, b, a := c.RGBAF()
	const f = 0.85
	return display.RGBA(uint8(r*f*255), uint8(g*f*255), uint8(b*f*255), a)
}
