package dom

// Rect is a layout rectangle in CSS pixels, relative to the viewport.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge.
func (r Rect) Top() float64 { return r.Y }

// Left returns the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }
