package core

import (
	"maps"
	"slices"
	"strings"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

// ForwardPredicate decides whether a native event is re-emitted through the
// component emitter. A nil predicate always forwards.
type ForwardPredicate func(c *Component, ev *dom.Event) bool

// ElementOptions configures WithElement.
type ElementOptions struct {
	// Tag is the element tag. Defaults to "div".
	Tag string
	// ComponentName overrides the block name used for the base class.
	ComponentName string
	// ClassName lists classes that receive the prefix ("card-media" becomes
	// "mtrl-card-media"). Empty entries are dropped; entries already carrying
	// the prefix are kept as is.
	ClassName []string
	// Classes lists raw classes added verbatim (user supplied classes).
	Classes []string
	// Attrs are applied in key order; empty values are skipped.
	Attrs map[string]string
	// BoolAttrs are set as boolean attributes.
	BoolAttrs []string
	// Interactive enables tap/swipe synthesis on touch platforms.
	Interactive bool
	// ForwardEvents re-emits native events through the component emitter.
	ForwardEvents map[string]ForwardPredicate
	// Style is CSS injected once into the document head while the component
	// lives.
	Style string
}

// WithElement creates the root element. It panics with a *dom.Error when the
// tag name is invalid.
func WithElement(opts ElementOptions) func(*Component) *Component {
	return func(c *Component) *Component {
		tag := opts.Tag
		if tag == "" {
			tag = "div"
		}
		el, err := c.Document.CreateElement(tag)
		if err != nil {
			panic(err)
		}
		c.Element = el

		name := opts.ComponentName
		if name == "" {
			name = c.Config.ComponentName
		}
		var block []string
		if name != "" {
			block = []string{c.GetClass(name)}
		}
		el.AddClass(normalizeClasses(block, c.prefixAll(opts.ClassName), opts.Classes)...)

		for _, key := range slices.Sorted(maps.Keys(opts.Attrs)) {
			if v := opts.Attrs[key]; v != "" {
				el.SetAttribute(key, v)
			}
		}
		for _, key := range opts.BoolAttrs {
			el.SetAttribute(key, "")
		}

		if opts.Interactive && c.Document.Window().TouchSupported() {
			c.AddDestroyer(c.attachTouch())
		}

		for _, event := range slices.Sorted(maps.Keys(opts.ForwardEvents)) {
			pred := opts.ForwardEvents[event]
			c.Listen(el, event, func(ev *dom.Event) {
				if pred == nil || pred(c, ev) {
					c.Emit(event, ev)
				}
			})
		}

		if opts.Style != "" {
			c.AddDestroyer(c.injectStyle(opts.Style))
		}

		c.Log.Debug().Str("tag", tag).Strs("classes", el.Classes()).Msg("element created")
		return c
	}
}

func (c *Component) prefixAll(classes []string) []string {
	out := make([]string, 0, len(classes))
	prefix := c.Config.Prefix + "-"
	for _, cls := range classes {
		cls = strings.TrimSpace(cls)
		switch {
		case cls == "":
		case strings.HasPrefix(cls, prefix):
			out = append(out, cls)
		default:
			out = append(out, c.GetClass(cls))
		}
	}
	return out
}

func (c *Component) injectStyle(css string) func() {
	style := c.Document.MustCreateElement("style")
	style.SetAttribute("data-"+c.Config.Prefix+"-style", c.Config.ComponentName)
	style.SetText(css)
	c.Document.Head().AppendChild(style)
	return style.Remove
}
