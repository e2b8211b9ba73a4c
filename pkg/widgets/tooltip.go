package widgets

import (
	"math"
	"strings"
	"time"

	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
	"github.com/go-mtrl/mtrl/pkg/schedule"
)

// TooltipPosition places the tooltip relative to its target.
type TooltipPosition string

const (
	TooltipTop         TooltipPosition = "top"
	TooltipTopStart    TooltipPosition = "top-start"
	TooltipTopEnd      TooltipPosition = "top-end"
	TooltipBottom      TooltipPosition = "bottom"
	TooltipBottomStart TooltipPosition = "bottom-start"
	TooltipBottomEnd   TooltipPosition = "bottom-end"
	TooltipLeft        TooltipPosition = "left"
	TooltipLeftStart   TooltipPosition = "left-start"
	TooltipLeftEnd     TooltipPosition = "left-end"
	TooltipRight       TooltipPosition = "right"
	TooltipRightStart  TooltipPosition = "right-start"
	TooltipRightEnd    TooltipPosition = "right-end"
)

// side returns the edge of the target the tooltip sits on and the
// alignment along that edge ("", "start" or "end").
func (p TooltipPosition) side() (string, string) {
	side, align, _ := strings.Cut(string(p), "-")
	return side, align
}

// TooltipVariant selects the tooltip type.
type TooltipVariant string

const (
	TooltipPlain TooltipVariant = "default"
	TooltipRich  TooltipVariant = "rich"
)

// Tooltip timing and geometry defaults.
const (
	DefaultTooltipShowDelay = 300 * time.Millisecond
	DefaultTooltipHideDelay = 100 * time.Millisecond
	DefaultTooltipOffset    = 8.0

	tooltipViewportMargin = 8.0
	tooltipPaddingX       = 8.0
	tooltipPaddingY       = 4.0
	tooltipMaxWidth       = 200.0
	tooltipRichMaxWidth   = 312.0
)

// TooltipConfig configures NewTooltip.
type TooltipConfig struct {
	Document *dom.Document
	Prefix   string
	// Target is the element the tooltip describes.
	Target *dom.Element
	Text   string
	// Position defaults to TooltipTop.
	Position TooltipPosition
	// Variant defaults to TooltipPlain.
	Variant TooltipVariant
	// ShowDelay and HideDelay default to DefaultTooltipShowDelay and
	// DefaultTooltipHideDelay. A negative value means no delay.
	ShowDelay time.Duration
	HideDelay time.Duration
	// Offset is the gap to the target in pixels. Defaults to
	// DefaultTooltipOffset.
	Offset float64
	// DisableHover and DisableFocus turn off showing on mouseenter and focus.
	DisableHover bool
	DisableFocus bool
	// Visible shows the tooltip immediately.
	Visible bool
	Class   string
}

var tooltipDefaults = TooltipConfig{
	Position:  TooltipTop,
	Variant:   TooltipPlain,
	ShowDelay: DefaultTooltipShowDelay,
	HideDelay: DefaultTooltipHideDelay,
	Offset:    DefaultTooltipOffset,
}

// Tooltip is a floating label attached to a target element.
type Tooltip struct {
	base
	cfg       TooltipConfig
	target    *dom.Element
	position  TooltipPosition
	visible   bool
	showTimer schedule.Timer
	hideTimer schedule.Timer
	unbind    []func()
}

// NewTooltip creates a tooltip and appends it to the document body.
func NewTooltip(cfg TooltipConfig) (*Tooltip, error) {
	return create("tooltip", func() (*Tooltip, error) {
		cfg = withDefaults(cfg, tooltipDefaults)
		cfg.ShowDelay = max(cfg.ShowDelay, 0)
		cfg.HideDelay = max(cfg.HideDelay, 0)

		c := compose.Pipe(
			core.WithEvents(),
			core.WithElement(core.ElementOptions{
				Classes: classes(cfg.Class),
				Attrs:   map[string]string{"role": "tooltip", "aria-hidden": "true"},
			}),
			core.WithVariant(cfg.Variant),
			core.WithText(core.TextConfig{Text: cfg.Text, Part: "content"}),
			core.WithLifecycle(),
		)(newBase("tooltip", cfg.Prefix, cfg.Document))

		tip := &Tooltip{base: base{c}, cfg: cfg}
		c.Element.SetID(newID(c, "tooltip"))
		c.Element.AppendChild(c.CreateElement("div", c.Part("arrow")))
		tip.SetPosition(cfg.Position)
		c.Document.Body().AppendChild(c.Element)

		win := c.Document.Window()
		reposition := func(*dom.Event) {
			if tip.visible {
				tip.UpdatePosition()
			}
		}
		c.AddDestroyer(win.AddEventListener("scroll", reposition))
		c.AddDestroyer(win.AddEventListener("resize", reposition))
		c.AddDestroyer(tip.cancelTimers)
		c.AddDestroyer(tip.unbindTarget)

		tip.SetTarget(cfg.Target)
		if cfg.Visible {
			tip.Show(true)
		}
		c.Log.Debug().Str("id", c.Element.ID()).Str("position", string(tip.position)).Msg("tooltip created")
		return tip, nil
	})
}

// Show displays the tooltip, after the show delay unless immediate is set.
// A pending hide is cancelled.
func (tip *Tooltip) Show(immediate bool) *Tooltip {
	schedule.Stop(tip.hideTimer)
	tip.hideTimer = nil
	if tip.visible {
		return tip
	}
	if immediate || tip.cfg.ShowDelay == 0 {
		schedule.Stop(tip.showTimer)
		tip.showTimer = nil
		tip.setVisible(true)
		return tip
	}
	if tip.showTimer == nil {
		tip.showTimer = tip.c.Document.Scheduler().AfterFunc(tip.cfg.ShowDelay, func() {
			tip.showTimer = nil
			tip.setVisible(true)
		})
	}
	return tip
}

// Hide hides the tooltip, after the hide delay unless immediate is set.
// A pending show is cancelled.
func (tip *Tooltip) Hide(immediate bool) *Tooltip {
	schedule.Stop(tip.showTimer)
	tip.showTimer = nil
	if !tip.visible {
		return tip
	}
	if immediate || tip.cfg.HideDelay == 0 {
		schedule.Stop(tip.hideTimer)
		tip.hideTimer = nil
		tip.setVisible(false)
		return tip
	}
	if tip.hideTimer == nil {
		tip.hideTimer = tip.c.Document.Scheduler().AfterFunc(tip.cfg.HideDelay, func() {
			tip.hideTimer = nil
			tip.setVisible(false)
		})
	}
	return tip
}

// IsVisible reports whether the tooltip is shown.
func (tip *Tooltip) IsVisible() bool { return tip.visible }

func (tip *Tooltip) setVisible(visible bool) {
	tip.visible = visible
	el := tip.c.Element
	el.SetAttribute("aria-hidden", boolAttr(!visible))
	el.ToggleClass(tip.c.Modifier("visible"), visible)
	if visible {
		tip.UpdatePosition()
		tip.c.Emit(EventShow, tip)
		return
	}
	tip.c.Emit(EventHide, tip)
}

func (tip *Tooltip) cancelTimers() {
	schedule.Stop(tip.showTimer)
	schedule.Stop(tip.hideTimer)
	tip.showTimer, tip.hideTimer = nil, nil
}

// SetText replaces the tooltip text.
func (tip *Tooltip) SetText(text string) *Tooltip {
	tip.c.Text.Set(text)
	if tip.visible {
		tip.UpdatePosition()
	}
	return tip
}

// Text returns the tooltip text.
func (tip *Tooltip) Text() string { return tip.c.Text.Get() }

// SetPosition moves the tooltip to another side of the target.
func (tip *Tooltip) SetPosition(position TooltipPosition) *Tooltip {
	if tip.position != "" {
		tip.c.Element.RemoveClass(tip.c.Modifier(string(tip.position)))
	}
	tip.position = position
	tip.c.Element.AddClass(tip.c.Modifier(string(position)))
	if tip.visible {
		tip.UpdatePosition()
	}
	return tip
}

// Position returns the current position.
func (tip *Tooltip) Position() TooltipPosition { return tip.position }

// SetTarget attaches the tooltip to another element. A nil target detaches
// it.
func (tip *Tooltip) SetTarget(target *dom.Element) *Tooltip {
	tip.unbindTarget()
	tip.target = target
	if target == nil {
		return tip
	}
	target.SetAttribute("aria-describedby", tip.c.Element.ID())
	listen := func(event string, fn dom.Listener) {
		tip.unbind = append(tip.unbind, target.AddEventListener(event, fn))
	}
	if !tip.cfg.DisableHover {
		listen("mouseenter", func(*dom.Event) { tip.Show(false) })
		listen("mouseleave", func(*dom.Event) { tip.Hide(false) })
	}
	if !tip.cfg.DisableFocus {
		listen("focus", func(*dom.Event) { tip.Show(false) })
		listen("blur", func(*dom.Event) { tip.Hide(false) })
	}
	listen("keydown", func(ev *dom.Event) {
		if ev.Key == "Escape" && tip.visible {
			tip.Hide(true)
		}
	})
	if tip.visible {
		tip.UpdatePosition()
	}
	return tip
}

// Target returns the described element.
func (tip *Tooltip) Target() *dom.Element { return tip.target }

func (tip *Tooltip) unbindTarget() {
	for _, fn := range tip.unbind {
		fn()
	}
	tip.unbind = nil
	if tip.target != nil && tip.target.Attr("aria-describedby") == tip.c.Element.ID() {
		tip.target.RemoveAttribute("aria-describedby")
	}
}

// size returns the tooltip box, estimated from the text when the host
// reports no layout.
func (tip *Tooltip) size() (float64, float64) {
	if r := tip.c.Element.BoundingClientRect(); !r.IsEmpty() {
		return r.Width, r.Height
	}
	maxWidth := tooltipMaxWidth
	if tip.cfg.Variant == TooltipRich {
		maxWidth = tooltipRichMaxWidth
	}
	layout := layoutText(tip.Text(), paragraphOptions{maxWidth: maxWidth - 2*tooltipPaddingX})
	return math.Ceil(layout.width) + 2*tooltipPaddingX, math.Ceil(layout.height) + 2*tooltipPaddingY
}

// UpdatePosition places the tooltip next to its target in page
// coordinates, kept inside the viewport.
func (tip *Tooltip) UpdatePosition() *Tooltip {
	if tip.target == nil {
		return tip
	}
	tr := tip.target.BoundingClientRect()
	w, h := tip.size()
	offset := tip.cfg.Offset
	side, align := tip.position.side()

	var top, left float64
	switch side {
	case "bottom", "top":
		if side == "top" {
			top = tr.Top() - h - offset
		} else {
			top = tr.Bottom() + offset
		}
		switch align {
		case "start":
			left = tr.Left()
		case "end":
			left = tr.Right() - w
		default:
			left = tr.Left() + (tr.Width-w)/2
		}
	default:
		if side == "left" {
			left = tr.Left() - w - offset
		} else {
			left = tr.Right() + offset
		}
		switch align {
		case "start":
			top = tr.Top()
		case "end":
			top = tr.Bottom() - h
		default:
			top = tr.Top() + (tr.Height-h)/2
		}
	}

	win := tip.c.Document.Window()
	left = clamp(left, tooltipViewportMargin, win.InnerWidth()-w-tooltipViewportMargin)
	top = clamp(top, tooltipViewportMargin, win.InnerHeight()-h-tooltipViewportMargin)
	tip.c.Element.
		SetStyle("top", px(top+win.ScrollY())).
		SetStyle("left", px(left+win.ScrollX()))
	return tip
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
