package core

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/go-mtrl/mtrl/pkg/dom"
	"github.com/go-mtrl/mtrl/pkg/schedule"
)

// DefaultRippleDuration is how long a ripple wave stays in the DOM.
const DefaultRippleDuration = 300 * time.Millisecond

// RippleConfig configures WithRipple.
type RippleConfig struct {
	// Enabled turns the ripple on.
	Enabled bool
	// Duration of one wave. Defaults to DefaultRippleDuration.
	Duration time.Duration
	// Centered starts waves from the element center instead of the pointer.
	Centered bool
}

// Ripple draws press feedback waves inside a container span.
type Ripple struct {
	c         *Component
	cfg       RippleConfig
	container *dom.Element
	waves     []*rippleWave
	unlisten  []func()
}

type rippleWave struct {
	el     *dom.Element
	frame  schedule.Timer
	expire schedule.Timer
}

// WithRipple adds a Ripple and mounts it when enabled.
func WithRipple(cfg RippleConfig) func(*Component) *Component {
	return func(c *Component) *Component {
		if !cfg.Enabled || c.Element == nil {
			return c
		}
		if cfg.Duration <= 0 {
			cfg.Duration = DefaultRippleDuration
		}
		c.Ripple = &Ripple{c: c, cfg: cfg}
		c.Ripple.Mount()
		c.AddDestroyer(c.Ripple.Unmount)
		return c
	}
}

// Mount creates the wave container and starts listening for presses.
func (r *Ripple) Mount() {
	if r.container != nil {
		return
	}
	r.container = r.c.CreateElement("span", r.c.GetClass("ripple"))
	r.container.SetAttribute("aria-hidden", "true")
	r.c.Element.AppendChild(r.container)

	el := r.c.Element
	r.unlisten = append(r.unlisten,
		el.AddEventListener("mousedown", func(ev *dom.Event) { r.spawn(ev.ClientX, ev.ClientY) }),
		el.AddEventListener("touchstart", func(ev *dom.Event) {
			if t, ok := ev.FirstTouch(); ok {
				r.spawn(t.ClientX, t.ClientY)
			}
		}),
	)
}

// Unmount removes listeners, pending waves and the container.
func (r *Ripple) Unmount() {
	for _, fn := range r.unlisten {
		fn()
	}
	r.unlisten = nil
	for _, w := range r.waves {
		schedule.Stop(w.frame)
		schedule.Stop(w.expire)
		w.el.Remove()
	}
	r.waves = nil
	if r.container != nil {
		r.container.Remove()
		r.container = nil
	}
}

// ActiveWaves returns the number of waves currently in the DOM.
func (r *Ripple) ActiveWaves() int { return len(r.waves) }

func (r *Ripple) spawn(clientX, clientY float64) {
	if r.container == nil || r.c.Element.Disabled() {
		return
	}
	rect := r.c.Element.BoundingClientRect()
	size := math.Max(rect.Width, rect.Height)
	x, y := clientX-rect.X, clientY-rect.Y
	if r.cfg.Centered || rect.IsEmpty() {
		x, y = rect.Width/2, rect.Height/2
	}

	wave := &rippleWave{el: r.c.CreateElement("span", r.c.GetClass("ripple-wave"))}
	wave.el.SetStyle("left", px(x-size/2)).
		SetStyle("top", px(y-size/2)).
		SetStyle("width", px(size)).
		SetStyle("height", px(size)).
		SetStyle("animation-duration", fmt.Sprintf("%dms", r.cfg.Duration.Milliseconds()))
	r.container.AppendChild(wave.el)
	r.waves = append(r.waves, wave)

	sched := r.c.Document.Scheduler()
	wave.frame = sched.RequestFrame(func() {
		wave.el.AddClass(r.c.GetClass("ripple-wave--active"))
	})
	wave.expire = sched.AfterFunc(r.cfg.Duration, func() {
		wave.el.Remove()
		r.waves = slices.DeleteFunc(r.waves, func(w *rippleWave) bool { return w == wave })
	})
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", math.Round(v*100)/100)
}
