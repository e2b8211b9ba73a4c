package core

// WithEvents adds an Emitter. Lifecycle.Destroy (or Component.Destroy)
// clears every handler registered on it.
func WithEvents() func(*Component) *Component {
	return func(c *Component) *Component {
		if c.Events == nil {
			c.Events = NewEmitter()
		}
		return c
	}
}
