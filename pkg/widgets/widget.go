package widgets

import (
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/google/uuid"

	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
	"github.com/go-mtrl/mtrl/pkg/errors"
	"github.com/go-mtrl/mtrl/pkg/schedule"
)

// Events emitted by widgets in addition to the core ones.
const (
	EventClick            = "click"
	EventChange           = core.EventChange
	EventRemove           = "remove"
	EventExpandedChanged  = "expandedChanged"
	EventVisibilityChange = "visibilityChange"
	EventShow             = "show"
	EventHide             = "hide"
	EventOpen             = "open"
	EventClose            = "close"
	EventScrolled         = "scrolled"
)

// Widget is implemented by every widget in this package.
type Widget interface {
	// Element returns the root element.
	Element() *dom.Element
	// Destroy detaches listeners, cancels timers and removes the element.
	Destroy()
}

// base carries the assembled component and provides the methods every
// widget shares.
type base struct {
	c *core.Component
}

// Element returns the root element.
func (b *base) Element() *dom.Element { return b.c.Element }

// Component returns the underlying component.
func (b *base) Component() *core.Component { return b.c }

// On registers an event handler.
func (b *base) On(event string, h core.Handler) core.ListenerID {
	return b.c.On(event, h)
}

// Once registers a handler for the next emission of event.
func (b *base) Once(event string, h core.Handler) core.ListenerID {
	if b.c.Events == nil {
		return 0
	}
	return b.c.Events.Once(event, h)
}

// Off removes a handler registered with On.
func (b *base) Off(event string, id core.ListenerID) {
	b.c.Off(event, id)
}

// Destroy tears the widget down. Calling it more than once is harmless.
func (b *base) Destroy() {
	b.c.Destroy()
}

// IsDestroyed reports whether Destroy ran.
func (b *base) IsDestroyed() bool { return b.c.IsDestroyed() }

// newBase starts a pipeline for the named widget.
func newBase(name, prefix string, doc *dom.Document) *core.Component {
	return core.NewBase(core.BaseConfig{Prefix: prefix, ComponentName: name, Document: doc})
}

// create runs build under errors.Guard so that panics raised by enhancers
// come back as a *errors.CreateError.
func create[T any](name string, build func() (T, error)) (T, error) {
	return errors.Guard(name, build)
}

// withDefaults fills the zero fields of cfg from defaults.
func withDefaults[T any](cfg, defaults T) T {
	if err := mergo.Merge(&cfg, defaults); err != nil {
		panic(err)
	}
	return cfg
}

// newID returns a document-unique id for elements that are referenced from
// aria attributes.
func newID(c *core.Component, kind string) string {
	return c.GetClass(kind) + "-" + uuid.NewString()[:8]
}

// boolAttr renders an aria boolean.
func boolAttr(on bool) string {
	if on {
		return "true"
	}
	return "false"
}

// whenEnabled forwards native events only while the component is enabled.
func whenEnabled(c *core.Component, _ *dom.Event) bool {
	return c.Disabled == nil || !c.Disabled.IsDisabled()
}

// isActivationKey reports whether key activates a button-like element.
func isActivationKey(key string) bool {
	return key == "Enter" || key == " " || key == "Spacebar"
}

func classes(class string) []string {
	return strings.Fields(class)
}

// transition adds a modifier class to the root element for a while,
// restarting the timer when started again before it fires. The timer is
// stopped when the component is destroyed.
type transition struct {
	c     *core.Component
	class string
	timer schedule.Timer
}

func newTransition(c *core.Component, modifier string) *transition {
	t := &transition{c: c, class: c.Modifier(modifier)}
	c.AddDestroyer(t.stop)
	return t
}

func (t *transition) start(d time.Duration) {
	t.stop()
	if d <= 0 {
		return
	}
	t.c.Element.AddClass(t.class)
	t.timer = t.c.Document.Scheduler().AfterFunc(d, func() {
		t.timer = nil
		t.c.Element.RemoveClass(t.class)
	})
}

func (t *transition) stop() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.c.Element.RemoveClass(t.class)
}

func (t *transition) running() bool { return t.timer != nil }
