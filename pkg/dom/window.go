package dom

// Window is the global event target: viewport size, scroll position and
// platform capabilities.
type Window struct {
	EventTarget

	doc     *Document
	touch   bool
	width   float64
	height  float64
	scrollX float64
	scrollY float64
}

// Document returns the window's document.
func (w *Window) Document() *Document { return w.doc }

// TouchSupported reports whether the platform delivers touch events.
func (w *Window) TouchSupported() bool { return w.touch }

// SetTouchSupported changes the reported touch capability.
func (w *Window) SetTouchSupported(supported bool) { w.touch = supported }

// InnerWidth returns the viewport width.
func (w *Window) InnerWidth() float64 { return w.width }

// InnerHeight returns the viewport height.
func (w *Window) InnerHeight() float64 { return w.height }

// ScrollX returns the horizontal scroll offset.
func (w *Window) ScrollX() float64 { return w.scrollX }

// ScrollY returns the vertical scroll offset.
func (w *Window) ScrollY() float64 { return w.scrollY }

// ScrollTo moves the scroll position and dispatches a "scroll" event when it
// changed.
func (w *Window) ScrollTo(x, y float64) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x == w.scrollX && y == w.scrollY {
		return
	}
	w.scrollX, w.scrollY = x, y
	w.DispatchEvent(NewEvent("scroll"))
}

// Resize changes the viewport size and dispatches a "resize" event.
func (w *Window) Resize(width, height float64) {
	w.width, w.height = width, height
	w.DispatchEvent(NewEvent("resize"))
}

// DispatchEvent runs the window's listeners for ev.
func (w *Window) DispatchEvent(ev *Event) bool {
	w.doc.stamp(ev)
	w.invoke(ev)
	return !ev.defaultPrevented
}
