package widgets

import (
	"time"

	"github.com/go-mtrl/mtrl/pkg/animation"
	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
)

// SheetVariant selects the sheet type.
type SheetVariant string

const (
	SheetStandard SheetVariant = "standard"
	SheetModal    SheetVariant = "modal"
)

// SheetPosition is the screen edge the sheet slides in from.
type SheetPosition string

const (
	SheetBottom SheetPosition = "bottom"
	SheetTop    SheetPosition = "top"
	SheetLeft   SheetPosition = "left"
	SheetRight  SheetPosition = "right"
)

// SheetDragCloseThreshold is the handle drag distance in pixels, towards the
// sheet's edge, that closes a dismissible sheet.
const SheetDragCloseThreshold = 100.0

// SheetConfig configures NewSheet.
type SheetConfig struct {
	Document *dom.Document
	Prefix   string
	// Variant defaults to SheetStandard.
	Variant SheetVariant
	// Position defaults to SheetBottom.
	Position SheetPosition
	Title    string
	// Content is HTML placed in the sheet body.
	Content string
	// NoDragHandle omits the drag handle.
	NoDragHandle bool
	// NotDismissible ignores Escape, scrim clicks and handle drags.
	NotDismissible bool
	Open           bool
	// TransitionDuration defaults to DefaultBarTransition.
	TransitionDuration time.Duration
	Class              string
}

var sheetDefaults = SheetConfig{Variant: SheetStandard, Position: SheetBottom, TransitionDuration: DefaultBarTransition}

// Sheet is a surface anchored to a screen edge holding supplementary
// content.
type Sheet struct {
	base
	cfg       SheetConfig
	scrim     *dom.Element
	container *dom.Element
	handle    *dom.Element
	title     *dom.Element
	content   *dom.Element
	open      bool
	anim      *transition

	dragStart core.Point
	dragging  bool
	dragDelta float64
	snap      *animation.Controller
	snapFrom  float64
}

// NewSheet creates a sheet and appends it to the document body.
func NewSheet(cfg SheetConfig) (*Sheet, error) {
	return create("sheet", func() (*Sheet, error) {
		cfg = withDefaults(cfg, sheetDefaults)
		modal := cfg.Variant == SheetModal
		ariaModal := ""
		if modal {
			ariaModal = "true"
		}

		c := compose.Pipe(
			core.WithEvents(),
			core.WithElement(core.ElementOptions{
				Classes: classes(cfg.Class),
				Attrs: map[string]string{
					"role":        "dialog",
					"aria-modal":  ariaModal,
					"aria-hidden": "true",
				},
			}),
			core.WithVariant(cfg.Variant),
			core.WithModifier(string(cfg.Position), true),
			core.WithLifecycle(),
		)(newBase("sheet", cfg.Prefix, cfg.Document))

		sh := &Sheet{
			base:      base{c},
			cfg:       cfg,
			container: c.CreateElement("div", c.Part("container")),
			content:   c.CreateElement("div", c.Part("content")),
			anim:      newTransition(c, "transitioning"),
		}
		if modal {
			sh.scrim = c.CreateElement("div", c.Part("scrim"))
			c.Element.AppendChild(sh.scrim)
			c.Listen(sh.scrim, "click", func(*dom.Event) { sh.dismiss() })
		}
		c.Element.AppendChild(sh.container)
		if !cfg.NoDragHandle {
			sh.handle = c.CreateElement("div", c.Part("handle"))
			sh.handle.SetAttribute("aria-hidden", "true")
			sh.container.AppendChild(sh.handle)
			sh.bindDrag()
		}
		sh.SetTitle(cfg.Title)
		sh.container.AppendChild(sh.content)
		sh.SetContent(cfg.Content)

		c.AddDestroyer(c.Document.AddEventListener("keydown", func(ev *dom.Event) {
			if ev.Key == "Escape" && sh.open {
				sh.dismiss()
			}
		}))
		c.Document.Body().AppendChild(c.Element)
		if cfg.Open {
			sh.Open()
		}
		c.Log.Debug().Str("variant", string(cfg.Variant)).Str("position", string(cfg.Position)).Msg("sheet created")
		return sh, nil
	})
}

// Open shows the sheet and emits EventOpen.
func (sh *Sheet) Open() *Sheet { return sh.setOpen(true) }

// Close hides the sheet and emits EventClose.
func (sh *Sheet) Close() *Sheet { return sh.setOpen(false) }

// IsOpen reports whether the sheet is shown.
func (sh *Sheet) IsOpen() bool { return sh.open }

func (sh *Sheet) dismiss() {
	if !sh.cfg.NotDismissible {
		sh.Close()
	}
}

func (sh *Sheet) setOpen(open bool) *Sheet {
	if sh.open == open {
		return sh
	}
	sh.open = open
	sh.c.Element.ToggleClass(sh.c.Modifier("open"), open)
	sh.c.Element.SetAttribute("aria-hidden", boolAttr(!open))
	sh.anim.start(sh.cfg.TransitionDuration)
	if open {
		sh.c.Emit(EventOpen, sh)
	} else {
		sh.c.Emit(EventClose, sh)
	}
	return sh
}

// SetContent replaces the body markup.
func (sh *Sheet) SetContent(markup string) *Sheet {
	if err := sh.content.SetInnerHTML(markup); err != nil {
		sh.c.Log.Warn().Err(err).Msg("sheet content is not valid HTML, using text")
		sh.content.SetText(markup)
	}
	return sh
}

// SetTitle replaces the title. Empty removes it.
func (sh *Sheet) SetTitle(title string) *Sheet {
	if title == "" {
		if sh.title != nil {
			sh.title.Remove()
			sh.title = nil
			sh.c.Element.RemoveAttribute("aria-labelledby")
		}
		return sh
	}
	if sh.title == nil {
		sh.title = sh.c.CreateElement("h2", sh.c.Part("title"))
		sh.title.SetID(newID(sh.c, "sheet-title"))
		if sh.handle != nil {
			sh.container.InsertAfter(sh.title, sh.handle)
		} else {
			sh.container.PrependChild(sh.title)
		}
		sh.c.Element.SetAttribute("aria-labelledby", sh.title.ID())
	}
	sh.title.SetText(title)
	return sh
}

// Title returns the title text.
func (sh *Sheet) Title() string {
	if sh.title == nil {
		return ""
	}
	return sh.title.Text()
}

// closingDistance projects a pointer movement onto the direction the sheet
// closes in.
func (sh *Sheet) closingDistance(dx, dy float64) float64 {
	switch sh.cfg.Position {
	case SheetTop:
		return -dy
	case SheetLeft:
		return -dx
	case SheetRight:
		return dx
	default:
		return dy
	}
}

// setDragOffset moves the container by offset pixels towards the closing
// edge. Zero clears the transform.
func (sh *Sheet) setDragOffset(offset float64) {
	if offset <= 0 {
		sh.container.RemoveStyle("transform")
		return
	}
	axis := "translateY"
	if sh.cfg.Position == SheetLeft || sh.cfg.Position == SheetRight {
		axis = "translateX"
	}
	sign := 1.0
	if sh.cfg.Position == SheetTop || sh.cfg.Position == SheetLeft {
		sign = -1
	}
	sh.container.SetStyle("transform", axis+"("+px(sign*offset)+")")
}

func (sh *Sheet) bindDrag() {
	c := sh.c
	// A released drag that does not close the sheet springs back.
	sh.snap = animation.NewController(c.Document.Scheduler(), animation.DurationShort)
	sh.snap.Curve = animation.StandardDecelerate
	sh.snap.AddListener(func(v float64) { sh.setDragOffset(sh.snapFrom * v) })
	c.AddDestroyer(sh.snap.Dispose)

	c.Listen(sh.handle, "touchstart", func(ev *dom.Event) {
		t, ok := ev.FirstTouch()
		if !ok || !sh.open {
			return
		}
		sh.snap.Stop()
		sh.dragging = true
		sh.dragDelta = 0
		sh.dragStart = core.Point{X: t.ClientX, Y: t.ClientY}
		c.Element.AddClass(c.Modifier("dragging"))
	})
	c.Listen(sh.handle, "touchmove", func(ev *dom.Event) {
		t, ok := ev.FirstTouch()
		if !ok || !sh.dragging {
			return
		}
		sh.dragDelta = max(sh.closingDistance(t.ClientX-sh.dragStart.X, t.ClientY-sh.dragStart.Y), 0)
		sh.setDragOffset(sh.dragDelta)
	})
	c.Listen(sh.handle, "touchend", func(*dom.Event) {
		if !sh.dragging {
			return
		}
		sh.dragging = false
		c.Element.RemoveClass(c.Modifier("dragging"))
		switch {
		case sh.dragDelta > SheetDragCloseThreshold:
			sh.setDragOffset(0)
			sh.dismiss()
		case sh.dragDelta > 0:
			sh.snapFrom = sh.dragDelta
			sh.snap.SetValue(1)
			sh.snap.Reverse()
		}
		sh.dragDelta = 0
	})
}
