package core

// Lifecycle events.
const (
	EventMount   = "mount"
	EventUnmount = "unmount"
	EventDestroy = "destroy"
)

// Lifecycle tracks mount state and owns component teardown.
type Lifecycle struct {
	c       *Component
	mounted bool
	emitter Emitter
}

// WithLifecycle adds a Lifecycle.
func WithLifecycle() func(*Component) *Component {
	return func(c *Component) *Component {
		c.Lifecycle = &Lifecycle{c: c}
		return c
	}
}

// Mount marks the component mounted and notifies OnMount handlers. Repeated
// calls while mounted do nothing.
func (l *Lifecycle) Mount() {
	if l.mounted || l.c.destroyed {
		return
	}
	l.mounted = true
	l.emitter.Emit(EventMount, l.c)
}

// Unmount marks the component unmounted and notifies OnUnmount handlers.
// Repeated calls while unmounted do nothing.
func (l *Lifecycle) Unmount() {
	if !l.mounted {
		return
	}
	l.mounted = false
	l.emitter.Emit(EventUnmount, l.c)
}

// IsMounted reports the mount state.
func (l *Lifecycle) IsMounted() bool { return l.mounted }

// OnMount registers a mount handler and returns a function removing it.
func (l *Lifecycle) OnMount(fn func()) func() {
	return l.subscribe(EventMount, fn)
}

// OnUnmount registers an unmount handler and returns a function removing it.
func (l *Lifecycle) OnUnmount(fn func()) func() {
	return l.subscribe(EventUnmount, fn)
}

// OnDestroy registers a handler that runs at the start of Destroy.
func (l *Lifecycle) OnDestroy(fn func()) func() {
	return l.subscribe(EventDestroy, fn)
}

func (l *Lifecycle) subscribe(event string, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	id := l.emitter.On(event, func(any) { fn() })
	return func() { l.emitter.Off(event, id) }
}

// Destroy unmounts the component if needed, runs destroy handlers, clears
// the event emitter, runs registered destroyers, removes text and icon
// nodes and detaches the root element. Calling it again does nothing.
func (l *Lifecycle) Destroy() {
	if l.c.destroyed {
		return
	}
	if l.mounted {
		l.Unmount()
	}
	l.emitter.Emit(EventDestroy, l.c)
	l.emitter.Clear()
	l.c.teardown()
}
