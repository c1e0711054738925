package widgets

// Align describes how a child is aligned within a layout container. Which
// axis it applies to depends on the container: HStack aligns vertically,
// VStack horizontally.
type Align uint8

const (
	// AlignBegin aligns the child to the beginning of the container.
	AlignBegin Align = iota
	// AlignMiddle centers the child.
	AlignMiddle
	// AlignEnd aligns the child to the end of the container.
	AlignEnd
	// AlignStretch stretches the child to fill the container.
	AlignStretch
)
