package core

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-mtrl/mtrl/pkg/dom"
	"github.com/go-mtrl/mtrl/pkg/logging"
)

// DefaultPrefix is the class prefix used when none is configured.
const DefaultPrefix = "mtrl"

// BaseConfig is the configuration consumed by NewBase.
type BaseConfig struct {
	// Prefix is the class name prefix. Defaults to DefaultPrefix.
	Prefix string
	// ComponentName is the block name (e.g. "card").
	ComponentName string
	// Document owns the widget's nodes. Defaults to dom.Default().
	Document *dom.Document
}

// Component is the aggregate threaded through an enhancer pipeline.
// Fields are filled in by the enhancers that own them and stay nil when the
// corresponding enhancer is not part of the pipeline.
type Component struct {
	// Config is the resolved base configuration.
	Config BaseConfig
	// Document owns Element.
	Document *dom.Document
	// Element is the root node, owned exclusively by this component.
	Element *dom.Element
	// Touch is the gesture state for interactive elements.
	Touch *TouchState

	Events    *Emitter
	Lifecycle *Lifecycle
	Text      *TextManager
	Icon      *IconManager
	Disabled  *DisabledManager
	Ripple    *Ripple
	Draggable *Draggable

	// Log is tagged with the component name.
	Log zerolog.Logger

	destroyers []func()
	destroyed  bool
}

// NewBase creates the base component. It never touches the DOM.
func NewBase(cfg BaseConfig) *Component {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.Document == nil {
		cfg.Document = dom.Default()
	}
	return &Component{
		Config:   cfg,
		Document: cfg.Document,
		Log:      logging.For(cfg.ComponentName),
	}
}

// Prefix returns the class prefix.
func (c *Component) Prefix() string { return c.Config.Prefix }

// Name returns the component name.
func (c *Component) Name() string { return c.Config.ComponentName }

// GetClass returns prefix-name.
func (c *Component) GetClass(name string) string {
	return c.Config.Prefix + "-" + name
}

// BlockClass returns the component's own class, e.g. "mtrl-card".
func (c *Component) BlockClass() string {
	return c.GetClass(c.Config.ComponentName)
}

// ModifierClass returns base--modifier.
func (c *Component) ModifierClass(base, modifier string) string {
	return base + "--" + modifier
}

// ElementClass returns base-element.
func (c *Component) ElementClass(base, element string) string {
	return base + "-" + element
}

// Modifier returns the block modifier class, e.g. Modifier("disabled") on a
// card is "mtrl-card--disabled".
func (c *Component) Modifier(modifier string) string {
	return c.ModifierClass(c.BlockClass(), modifier)
}

// Part returns the block element class, e.g. Part("media") on a card is
// "mtrl-card-media".
func (c *Component) Part(element string) string {
	return c.ElementClass(c.BlockClass(), element)
}

// AddClass adds raw class names to the root element.
func (c *Component) AddClass(classes ...string) *Component {
	if c.Element != nil {
		c.Element.AddClass(classes...)
	}
	return c
}

// CreateElement creates a child node in the component's document with the
// given classes. It panics on an invalid tag, like WithElement.
func (c *Component) CreateElement(tag string, classes ...string) *dom.Element {
	el := c.Document.MustCreateElement(tag)
	el.AddClass(classes...)
	return el
}

// Emit sends an event through the component's emitter. Without WithEvents it
// is a silent no-op, so enhancers can emit regardless of pipeline order.
func (c *Component) Emit(event string, data any) {
	if c.Events != nil {
		c.Events.Emit(event, data)
	}
}

// On registers a handler on the component's emitter. It returns 0 when the
// component has no emitter.
func (c *Component) On(event string, h Handler) ListenerID {
	if c.Events == nil {
		return 0
	}
	return c.Events.On(event, h)
}

// Off removes a handler registered with On.
func (c *Component) Off(event string, id ListenerID) {
	if c.Events != nil {
		c.Events.Off(event, id)
	}
}

// AddDestroyer registers cleanup to run when the component is destroyed.
// Destroyers run in reverse registration order.
func (c *Component) AddDestroyer(fn func()) {
	if fn != nil {
		c.destroyers = append(c.destroyers, fn)
	}
}

// Listen attaches a DOM listener to el and registers its removal as a
// destroyer.
func (c *Component) Listen(el *dom.Element, event string, fn dom.Listener) func() {
	remove := el.AddEventListener(event, fn)
	c.AddDestroyer(remove)
	return remove
}

// IsDestroyed reports whether Destroy already ran.
func (c *Component) IsDestroyed() bool { return c.destroyed }

// Destroy tears the component down. With WithLifecycle it delegates to
// Lifecycle.Destroy; otherwise it runs destroyers, clears listeners and
// removes the element. Calling it again is a no-op.
func (c *Component) Destroy() {
	if c.Lifecycle != nil {
		c.Lifecycle.Destroy()
		return
	}
	c.teardown()
}

func (c *Component) teardown() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	if c.Events != nil {
		c.Events.Clear()
	}
	for _, fn := range slices.Backward(c.destroyers) {
		fn()
	}
	c.destroyers = nil
	if c.Text != nil {
		c.Text.remove()
	}
	if c.Icon != nil {
		c.Icon.remove()
	}
	if c.Element != nil {
		c.Element.Remove()
	}
}

// normalizeClasses splits, filters empty entries and de-duplicates while
// keeping first-seen order.
func normalizeClasses(groups ...[]string) []string {
	var out []string
	for _, group := range groups {
		for _, entry := range group {
			for _, cls := range strings.Fields(entry) {
				if !slices.Contains(out, cls) {
					out = append(out, cls)
				}
			}
		}
	}
	return out
}
