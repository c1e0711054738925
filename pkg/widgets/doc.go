// Package widgets provides the concrete widgets of loft: input controls
// (Checkbox, Button), display widgets (Label), the composite Container
// and the layout containers (HStack, VStack, Margins).
//
// # Widget construction
//
// Widgets are created through New* constructors which take the theme the
// widget paints with and the update/graphics contexts it binds to:
//
//	cb := widgets.NewCheckbox(false, false, geometry.Offset{X: 8, Y: 8}, thm, uctx, gctx)
//
// # Layout
//
// Layout containers do not own widgets. A container manages only the
// rectangle of each registered child:
//
//	row := widgets.NewHStack(widgets.HStackItem{LeftMargin: 10, RightMargin: 10})
//	row.Push(nil, cb)
//	row.Push(nil, btn)
//
// Ownership of the widgets stays with the composite that created them,
// typically a Container. A child leaves its container explicitly through
// Remove, or implicitly when its Dispose fires the drop broadcast, which
// the container notices on its next update.
package widgets
