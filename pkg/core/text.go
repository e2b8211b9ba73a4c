package core

import "github.com/go-mtrl/mtrl/pkg/dom"

// TextConfig configures WithText.
type TextConfig struct {
	// Text is the initial content. Empty creates no node.
	Text string
	// Part is the block element name of the span. Defaults to "text".
	Part string
}

// TextManager owns the component's text span.
type TextManager struct {
	c     *Component
	el    *dom.Element
	text  string
	class string
}

// WithText adds a TextManager and sets the initial text.
func WithText(cfg TextConfig) func(*Component) *Component {
	return func(c *Component) *Component {
		part := cfg.Part
		if part == "" {
			part = "text"
		}
		c.Text = &TextManager{c: c, class: c.Part(part)}
		c.Text.Set(cfg.Text)
		return c
	}
}

// Set replaces the text. The span is created on the first non-empty value
// and removed when the text becomes empty.
func (t *TextManager) Set(text string) *TextManager {
	t.text = text
	if text == "" {
		t.remove()
		return t
	}
	if t.el == nil {
		t.el = t.c.CreateElement("span", t.class)
		t.c.Element.AppendChild(t.el)
	}
	t.el.SetText(text)
	return t
}

// Get returns the current text.
func (t *TextManager) Get() string { return t.text }

// Element returns the text span, or nil when the text is empty.
func (t *TextManager) Element() *dom.Element { return t.el }

func (t *TextManager) remove() {
	if t.el != nil {
		t.el.Remove()
		t.el = nil
	}
}
