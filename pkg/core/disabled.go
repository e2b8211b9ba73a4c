package core

// DisabledManager toggles the disabled state of a component.
type DisabledManager struct {
	c        *Component
	disabled bool
}

// WithDisabled adds a DisabledManager and applies the initial state.
func WithDisabled(disabled bool) func(*Component) *Component {
	return func(c *Component) *Component {
		c.Disabled = &DisabledManager{c: c}
		if disabled {
			c.Disabled.Disable()
		}
		return c
	}
}

// Enable clears the disabled state. It is a no-op when already enabled.
func (d *DisabledManager) Enable() *DisabledManager {
	if !d.disabled {
		return d
	}
	d.disabled = false
	d.apply()
	return d
}

// Disable sets the disabled state. It is a no-op when already disabled.
func (d *DisabledManager) Disable() *DisabledManager {
	if d.disabled {
		return d
	}
	d.disabled = true
	d.apply()
	return d
}

// Toggle flips the disabled state.
func (d *DisabledManager) Toggle() *DisabledManager {
	if d.disabled {
		return d.Enable()
	}
	return d.Disable()
}

// IsDisabled reports the current state.
func (d *DisabledManager) IsDisabled() bool { return d.disabled }

func (d *DisabledManager) apply() {
	el := d.c.Element
	if el == nil {
		return
	}
	el.ToggleClass(d.c.Modifier("disabled"), d.disabled)
	el.ToggleAttribute("disabled", d.disabled)
	if d.disabled {
		el.SetAttribute("aria-disabled", "true")
	} else {
		el.RemoveAttribute("aria-disabled")
	}
	if input := el.QuerySelector("input"); input != nil {
		input.ToggleAttribute("disabled", d.disabled)
	}
}
