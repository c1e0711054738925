package core

import "github.com/go-loft/loft/pkg/display"

// PropagateUpdate dispatches Update to a widget's children. Children are
// visited in reverse insertion order so the most visually forefront
// widget gets the chance to consume input first. Children whose
// visibility is Static or None are skipped.
func PropagateUpdate(w WidgetChildren, ctx UpdateContext) {
	children := w.Children()
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		if v := child.Visibility(); v != VisibilityStatic && v != VisibilityNone {
			child.Update(ctx)
		}
	}
}

// PropagateDraw dispatches Draw to a widget's children in insertion
// order, so later-added children paint on top. Children whose visibility
// is Invisible or None are skipped.
func PropagateDraw(w WidgetChildren, d display.Display, ctx GraphicsContext) {
	for _, child := range w.Children() {
		if v := child.Visibility(); v != VisibilityInvisible && v != VisibilityNone {
			child.Draw(d, ctx)
		}
	}
}
