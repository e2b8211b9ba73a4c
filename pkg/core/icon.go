package core

import (
	"github.com/go-mtrl/mtrl/pkg/dom"
	"github.com/go-mtrl/mtrl/pkg/errors"
)

// IconPosition places the icon relative to the other children.
type IconPosition string

const (
	IconStart IconPosition = "start"
	IconEnd   IconPosition = "end"
)

// IconConfig configures WithIcon.
type IconConfig struct {
	// Icon is an HTML snippet (usually an inline SVG). Empty creates no node.
	Icon string
	// Position defaults to IconStart.
	Position IconPosition
	// Part is the block element name of the span. Defaults to "icon".
	Part string
}

// IconManager owns the component's icon span.
type IconManager struct {
	c        *Component
	el       *dom.Element
	icon     string
	class    string
	position IconPosition
}

// WithIcon adds an IconManager and sets the initial icon.
func WithIcon(cfg IconConfig) func(*Component) *Component {
	return func(c *Component) *Component {
		part := cfg.Part
		if part == "" {
			part = "icon"
		}
		pos := cfg.Position
		if pos == "" {
			pos = IconStart
		}
		c.Icon = &IconManager{c: c, class: c.Part(part), position: pos}
		c.Icon.Set(cfg.Icon)
		return c
	}
}

// Set replaces the icon markup. The span is created on the first non-empty
// value and removed when the icon becomes empty. Markup that cannot be
// parsed is reported and shown as text.
func (m *IconManager) Set(icon string) *IconManager {
	m.icon = icon
	if icon == "" {
		m.remove()
		return m
	}
	if m.el == nil {
		m.el = m.c.CreateElement("span", m.class)
		if m.position == IconEnd {
			m.c.Element.AppendChild(m.el)
		} else {
			m.c.Element.PrependChild(m.el)
		}
	}
	if err := m.el.SetInnerHTML(icon); err != nil {
		errors.Report(&errors.ComponentError{Op: m.c.Name() + ".setIcon", Kind: errors.KindDOM, Err: err})
		m.el.SetText(icon)
	}
	return m
}

// Get returns the current icon markup.
func (m *IconManager) Get() string { return m.icon }

// Element returns the icon span, or nil when no icon is set.
func (m *IconManager) Element() *dom.Element { return m.el }

func (m *IconManager) remove() {
	if m.el != nil {
		m.el.Remove()
		m.el = nil
	}
}
