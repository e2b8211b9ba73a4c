package widgets

import (
	"time"

	"github.com/go-mtrl/mtrl/pkg/animation"
	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
)

// FabPosition places the floating action button in a bottom app bar.
type FabPosition string

const (
	FabCenter FabPosition = "center"
	FabEnd    FabPosition = "end"
)

// DefaultBarTransition is the show/hide transition duration of app bars.
const DefaultBarTransition = animation.DurationMedium

// VisibilityDetail is the payload of EventVisibilityChange.
type VisibilityDetail struct {
	Visible bool
}

// BottomAppBarConfig configures NewBottomAppBar.
type BottomAppBarConfig struct {
	Document *dom.Document
	Prefix   string
	// FabPosition defaults to FabEnd.
	FabPosition FabPosition
	// AutoHide hides the bar while the window scrolls down and shows it
	// again when it scrolls up.
	AutoHide bool
	// TransitionDuration defaults to DefaultBarTransition.
	TransitionDuration time.Duration
	Class              string
}

var bottomAppBarDefaults = BottomAppBarConfig{FabPosition: FabEnd, TransitionDuration: DefaultBarTransition}

// BottomAppBar holds actions and an optional floating action button at the
// bottom of the screen.
type BottomAppBar struct {
	base
	cfg        BottomAppBarConfig
	actions    *dom.Element
	fabSlot    *dom.Element
	visible    bool
	lastScroll float64
	anim       *transition
}

// NewBottomAppBar creates a bottom app bar.
func NewBottomAppBar(cfg BottomAppBarConfig) (*BottomAppBar, error) {
	return create("bottom-app-bar", func() (*BottomAppBar, error) {
		cfg = withDefaults(cfg, bottomAppBarDefaults)

		c := compose.Pipe(
			core.WithEvents(),
			core.WithElement(core.ElementOptions{
				Classes: classes(cfg.Class),
				Attrs:   map[string]string{"role": "toolbar"},
			}),
			core.WithModifier("fab-"+string(cfg.FabPosition), true),
			core.WithModifier("auto-hide", cfg.AutoHide),
			core.WithLifecycle(),
		)(newBase("bottom-app-bar", cfg.Prefix, cfg.Document))

		bar := &BottomAppBar{
			base:    base{c},
			cfg:     cfg,
			actions: c.CreateElement("div", c.Part("actions")),
			visible: true,
			anim:    newTransition(c, "transitioning"),
		}
		c.Element.AppendChild(bar.actions)

		if cfg.AutoHide {
			win := c.Document.Window()
			bar.lastScroll = win.ScrollY()
			c.AddDestroyer(win.AddEventListener("scroll", func(*dom.Event) {
				y := win.ScrollY()
				switch {
				case y > bar.lastScroll:
					bar.Hide()
				case y < bar.lastScroll:
					bar.Show()
				}
				bar.lastScroll = y
			}))
		}
		c.Log.Debug().Str("fab", string(cfg.FabPosition)).Bool("autoHide", cfg.AutoHide).Msg("bottom app bar created")
		return bar, nil
	})
}

// AddAction appends an element to the actions area.
func (bar *BottomAppBar) AddAction(el *dom.Element) *BottomAppBar {
	if el != nil {
		bar.actions.AppendChild(el)
	}
	return bar
}

// AddFab places el as the floating action button, replacing any previous
// one.
func (bar *BottomAppBar) AddFab(el *dom.Element) *BottomAppBar {
	if el == nil {
		return bar
	}
	if bar.fabSlot == nil {
		bar.fabSlot = bar.c.CreateElement("div", bar.c.Part("fab"))
		bar.c.Element.AppendChild(bar.fabSlot)
		bar.c.Element.AddClass(bar.c.Modifier("with-fab"))
	}
	for _, child := range bar.fabSlot.Children() {
		child.Remove()
	}
	bar.fabSlot.AppendChild(el)
	return bar
}

// Show slides the bar in.
func (bar *BottomAppBar) Show() *BottomAppBar { return bar.setVisible(true) }

// Hide slides the bar out.
func (bar *BottomAppBar) Hide() *BottomAppBar { return bar.setVisible(false) }

// IsVisible reports whether the bar is shown.
func (bar *BottomAppBar) IsVisible() bool { return bar.visible }

func (bar *BottomAppBar) setVisible(visible bool) *BottomAppBar {
	if bar.visible == visible {
		return bar
	}
	bar.visible = visible
	bar.c.Element.ToggleClass(bar.c.Modifier("hidden"), !visible)
	bar.c.Element.SetAttribute("aria-hidden", boolAttr(!visible))
	bar.anim.start(bar.cfg.TransitionDuration)
	bar.c.Emit(EventVisibilityChange, VisibilityDetail{Visible: visible})
	return bar
}
