package core

import "github.com/go-mtrl/mtrl/pkg/dom"

// InputConfig configures the native input created by WithInput.
type InputConfig struct {
	// Type is the input type. Defaults to "checkbox".
	Type string
	// ID, Name and Value are copied to the input when set.
	ID    string
	Name  string
	Value string
	// Checked sets the initial checked attribute.
	Checked bool
	// Required marks the input required.
	Required bool
	// AriaLabel labels the input for assistive technology.
	AriaLabel string
	// Role overrides the input role (e.g. "switch").
	Role string
}

// InputComponent is a Component that owns a native <input>. Enhancers that
// need an input take an *InputComponent, so the requirement is checked by
// the compiler.
type InputComponent struct {
	*Component
	// Input is the native input element, a child of Element.
	Input *dom.Element
	// Checkable is set by WithCheckable.
	Checkable *Checkable
}

// WithInput creates the native input inside the root element and moves the
// pipeline to *InputComponent.
func WithInput(cfg InputConfig) func(*Component) *InputComponent {
	return func(c *Component) *InputComponent {
		typ := cfg.Type
		if typ == "" {
			typ = "checkbox"
		}
		input := c.CreateElement("input", c.Part("input"))
		input.SetAttribute("type", typ)
		for _, attr := range [][2]string{
			{"id", cfg.ID},
			{"name", cfg.Name},
			{"value", cfg.Value},
			{"aria-label", cfg.AriaLabel},
			{"role", cfg.Role},
		} {
			if attr[1] != "" {
				input.SetAttribute(attr[0], attr[1])
			}
		}
		input.SetChecked(cfg.Checked)
		input.ToggleAttribute("required", cfg.Required)
		c.Element.AppendChild(input)
		return &InputComponent{Component: c, Input: input}
	}
}

// Stage lifts a plain enhancer so it can run in an *InputComponent pipeline.
func Stage(fn func(*Component) *Component) func(*InputComponent) *InputComponent {
	return func(ic *InputComponent) *InputComponent {
		ic.Component = fn(ic.Component)
		return ic
	}
}
