package dom

import (
	"slices"
	"time"
)

// Touch is a single touch point.
type Touch struct {
	Identifier int
	ClientX    float64
	ClientY    float64
}

// Event is dispatched to listeners registered with AddEventListener.
type Event struct {
	// Type is the event name (e.g. "click", "touchstart").
	Type string
	// Target is the element the event was dispatched on. It is nil for
	// events dispatched on the window or the document.
	Target *Element
	// CurrentTarget is the element whose listeners are running.
	CurrentTarget *Element
	// Bubbles reports whether the event propagates to ancestors.
	Bubbles bool
	// Detail carries custom event data.
	Detail any
	// Touches holds the active touch points for touch events.
	Touches []Touch
	// ChangedTouches holds the touch points that changed for touch events.
	ChangedTouches []Touch
	// ClientX and ClientY are the pointer coordinates for mouse events.
	ClientX float64
	ClientY float64
	// Key is the key value for keyboard events.
	Key string
	// Time is the dispatch time, taken from the document scheduler when zero.
	Time time.Time

	defaultPrevented bool
	stopped          bool
}

// bubbling lists the event types that bubble by default.
var bubbling = map[string]bool{
	"click":      true,
	"dblclick":   true,
	"mousedown":  true,
	"mouseup":    true,
	"mousemove":  true,
	"mouseover":  true,
	"mouseout":   true,
	"keydown":    true,
	"keyup":      true,
	"input":      true,
	"change":     true,
	"touchstart": true,
	"touchmove":  true,
	"touchend":   true,
	"focusin":    true,
	"focusout":   true,
	"dragstart":  true,
	"dragend":    true,
	"submit":     true,
}

// NewEvent returns an event of the given type with the default bubbling
// behavior for that type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ, Bubbles: bubbling[typ]}
}

// NewCustomEvent returns a bubbling event carrying detail.
func NewCustomEvent(typ string, detail any) *Event {
	return &Event{Type: typ, Bubbles: true, Detail: detail}
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation prevents the event from reaching further targets.
func (e *Event) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.stopped }

// FirstTouch returns the first touch point, preferring Touches over
// ChangedTouches (touchend carries its point in ChangedTouches only).
func (e *Event) FirstTouch() (Touch, bool) {
	if len(e.Touches) > 0 {
		return e.Touches[0], true
	}
	if len(e.ChangedTouches) > 0 {
		return e.ChangedTouches[0], true
	}
	return Touch{}, false
}

// Listener handles a dispatched event.
type Listener func(*Event)

type listenerEntry struct {
	id      uint64
	fn      Listener
	removed bool
}

// EventTarget stores listeners per event type. The zero value is ready to use.
type EventTarget struct {
	listeners map[string][]*listenerEntry
	nextID    uint64
}

// AddEventListener registers fn for events of type typ and returns a function
// that removes it. Calling the remover more than once is harmless.
func (t *EventTarget) AddEventListener(typ string, fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	if t.listeners == nil {
		t.listeners = make(map[string][]*listenerEntry)
	}
	t.nextID++
	entry := &listenerEntry{id: t.nextID, fn: fn}
	t.listeners[typ] = append(t.listeners[typ], entry)
	return func() { t.remove(typ, entry.id) }
}

// ListenerCount returns the number of listeners registered for typ.
func (t *EventTarget) ListenerCount(typ string) int {
	return len(t.listeners[typ])
}

// RemoveAllListeners drops every registered listener.
func (t *EventTarget) RemoveAllListeners() {
	for _, entries := range t.listeners {
		for _, e := range entries {
			e.removed = true
		}
	}
	t.listeners = nil
}

func (t *EventTarget) remove(typ string, id uint64) {
	entries := t.listeners[typ]
	idx := slices.IndexFunc(entries, func(e *listenerEntry) bool { return e.id == id })
	if idx < 0 {
		return
	}
	entries[idx].removed = true
	entries = slices.Delete(entries, idx, idx+1)
	if len(entries) == 0 {
		delete(t.listeners, typ)
		return
	}
	t.listeners[typ] = entries
}

// invoke runs the listeners registered for ev.Type. Listeners added during
// dispatch do not run; listeners removed during dispatch are skipped.
func (t *EventTarget) invoke(ev *Event) {
	entries := slices.Clone(t.listeners[ev.Type])
	for _, e := range entries {
		if e.removed {
			continue
		}
		e.fn(ev)
	}
}
