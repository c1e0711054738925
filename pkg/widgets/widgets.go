package widgets

import "github.com/go-loft/loft/pkg/core"

// Compile-time capability checks.
var (
	_ core.Layout[HStackItem] = (*HStack)(nil)
	_ core.Layout[VStackItem] = (*VStack)(nil)

	_ core.Layable = (*Checkbox)(nil)
	_ core.Layable = (*Button)(nil)
	_ core.Layable = (*Label)(nil)
	_ core.Layable = (*HStack)(nil)
	_ core.Layable = (*VStack)(nil)
	_ core.Layable = (*Margins)(nil)
	_ core.Layable = (*Container)(nil)
)
