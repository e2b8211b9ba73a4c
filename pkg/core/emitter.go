package core

import "slices"

// Handler receives the data passed to Emit.
type Handler func(data any)

// ListenerID identifies a registered handler. Zero is never a valid ID.
type ListenerID uint64

type handlerEntry struct {
	id      ListenerID
	fn      Handler
	once    bool
	removed bool
}

// Emitter is a per-component publish/subscribe registry mapping event names
// to handler lists. The zero value is ready to use.
type Emitter struct {
	handlers map[string][]*handlerEntry
	nextID   ListenerID
}

// NewEmitter returns an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// On registers h for event.
func (e *Emitter) On(event string, h Handler) ListenerID {
	return e.add(event, h, false)
}

// Once registers h to run for the next emission of event only.
func (e *Emitter) Once(event string, h Handler) ListenerID {
	return e.add(event, h, true)
}

func (e *Emitter) add(event string, h Handler, once bool) ListenerID {
	if h == nil {
		return 0
	}
	if e.handlers == nil {
		e.handlers = make(map[string][]*handlerEntry)
	}
	e.nextID++
	e.handlers[event] = append(e.handlers[event], &handlerEntry{id: e.nextID, fn: h, once: once})
	return e.nextID
}

// Off removes the handler with the given id from event.
func (e *Emitter) Off(event string, id ListenerID) {
	entries := e.handlers[event]
	idx := slices.IndexFunc(entries, func(h *handlerEntry) bool { return h.id == id })
	if idx < 0 {
		return
	}
	entries[idx].removed = true
	entries = slices.Delete(entries, idx, idx+1)
	if len(entries) == 0 {
		delete(e.handlers, event)
		return
	}
	e.handlers[event] = entries
}

// Emit calls every handler registered for event with data. Handlers added
// while emitting run from the next emission on.
func (e *Emitter) Emit(event string, data any) {
	entries := slices.Clone(e.handlers[event])
	for _, h := range entries {
		if h.removed {
			continue
		}
		if h.once {
			e.Off(event, h.id)
		}
		h.fn(data)
	}
}

// AddListeners registers several handlers and returns their IDs by event.
func (e *Emitter) AddListeners(handlers map[string]Handler) map[string]ListenerID {
	ids := make(map[string]ListenerID, len(handlers))
	for event, h := range handlers {
		ids[event] = e.On(event, h)
	}
	return ids
}

// RemoveListeners removes handlers returned by AddListeners.
func (e *Emitter) RemoveListeners(ids map[string]ListenerID) {
	for event, id := range ids {
		e.Off(event, id)
	}
}

// ListenerCount returns the number of handlers for event, or for all events
// when event is empty.
func (e *Emitter) ListenerCount(event string) int {
	if event != "" {
		return len(e.handlers[event])
	}
	n := 0
	for _, entries := range e.handlers {
		n += len(entries)
	}
	return n
}

// Clear removes every handler.
func (e *Emitter) Clear() {
	for _, entries := range e.handlers {
		for _, h := range entries {
			h.removed = true
		}
	}
	e.handlers = nil
}
