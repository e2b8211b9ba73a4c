package core

import "github.com/go-mtrl/mtrl/pkg/dom"

// Drag events re-emitted from the native ones.
const (
	EventDragStart = "dragstart"
	EventDragEnd   = "dragend"
)

// Draggable makes the root element a native drag source.
type Draggable struct {
	c        *Component
	enabled  bool
	dragging bool
	unlisten []func()
	onStart  func(*dom.Event)
}

// WithDraggable adds a Draggable, enabled when enabled is true.
func WithDraggable(enabled bool) func(*Component) *Component {
	return func(c *Component) *Component {
		c.Draggable = &Draggable{c: c}
		c.AddDestroyer(c.Draggable.Disable)
		if enabled {
			c.Draggable.Enable(nil)
		}
		return c
	}
}

// Enable sets draggable="true" and starts forwarding drag events. onStart,
// when non-nil, runs for every native dragstart.
func (d *Draggable) Enable(onStart func(*dom.Event)) *Draggable {
	if onStart != nil {
		d.onStart = onStart
	}
	if d.enabled {
		return d
	}
	d.enabled = true
	el := d.c.Element
	el.SetAttribute("draggable", "true")
	el.SetAttribute("aria-grabbed", "false")
	d.unlisten = append(d.unlisten,
		el.AddEventListener("dragstart", func(ev *dom.Event) {
			d.dragging = true
			el.AddClass(d.c.Modifier("dragging"))
			el.SetAttribute("aria-grabbed", "true")
			if d.onStart != nil {
				d.onStart(ev)
			}
			d.c.Emit(EventDragStart, ev)
		}),
		el.AddEventListener("dragend", func(ev *dom.Event) {
			d.dragging = false
			el.RemoveClass(d.c.Modifier("dragging"))
			el.SetAttribute("aria-grabbed", "false")
			d.c.Emit(EventDragEnd, ev)
		}),
	)
	return d
}

// Disable removes the draggable attributes and listeners.
func (d *Draggable) Disable() {
	if !d.enabled {
		return
	}
	d.enabled = false
	d.dragging = false
	for _, fn := range d.unlisten {
		fn()
	}
	d.unlisten = nil
	el := d.c.Element
	el.RemoveAttribute("draggable").RemoveAttribute("aria-grabbed")
	el.RemoveClass(d.c.Modifier("dragging"))
}

// IsEnabled reports whether dragging is enabled.
func (d *Draggable) IsEnabled() bool { return d.enabled }

// IsDragging reports whether a drag is in progress.
func (d *Draggable) IsDragging() bool { return d.dragging }
