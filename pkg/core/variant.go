package core

// WithVariant adds the block modifier for variant. An empty variant is a
// no-op.
func WithVariant[V ~string](variant V) func(*Component) *Component {
	return withModifier(string(variant))
}

// WithSize adds the block modifier for size. An empty size is a no-op.
func WithSize[S ~string](size S) func(*Component) *Component {
	return withModifier(string(size))
}

func withModifier(modifier string) func(*Component) *Component {
	return func(c *Component) *Component {
		if modifier != "" && c.Element != nil {
			c.Element.AddClass(c.Modifier(modifier))
		}
		return c
	}
}

// WithModifier adds the block modifier when on is true.
func WithModifier(modifier string, on bool) func(*Component) *Component {
	if !on {
		return func(c *Component) *Component { return c }
	}
	return withModifier(modifier)
}
