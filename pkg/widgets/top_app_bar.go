package widgets

import (
	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
)

// TopAppBarType selects the top app bar layout.
type TopAppBarType string

const (
	TopAppBarSmall  TopAppBarType = "small"
	TopAppBarMedium TopAppBarType = "medium"
	TopAppBarLarge  TopAppBarType = "large"
	TopAppBarCenter TopAppBarType = "center"
)

// DefaultCompressThreshold is the scroll offset after which medium and
// large bars collapse to the small layout.
const DefaultCompressThreshold = 64.0

// ScrollDetail is the payload of EventScrolled.
type ScrollDetail struct {
	Scrolled   bool
	Compressed bool
	Offset     float64
}

// TopAppBarConfig configures NewTopAppBar.
type TopAppBarConfig struct {
	Document *dom.Document
	Prefix   string
	// Type defaults to TopAppBarSmall.
	Type  TopAppBarType
	Title string
	// ScrollContainer is watched instead of the window when set.
	ScrollContainer *dom.Element
	// CompressThreshold defaults to DefaultCompressThreshold.
	CompressThreshold float64
	Class             string
}

var topAppBarDefaults = TopAppBarConfig{Type: TopAppBarSmall, CompressThreshold: DefaultCompressThreshold}

// TopAppBar shows the screen title with leading and trailing actions.
type TopAppBar struct {
	base
	cfg        TopAppBarConfig
	leading    *dom.Element
	headline   *dom.Element
	trailing   *dom.Element
	scrolled   bool
	compressed bool
}

// NewTopAppBar creates a top app bar.
func NewTopAppBar(cfg TopAppBarConfig) (*TopAppBar, error) {
	return create("top-app-bar", func() (*TopAppBar, error) {
		cfg = withDefaults(cfg, topAppBarDefaults)

		c := compose.Pipe(
			core.WithEvents(),
			core.WithElement(core.ElementOptions{
				Tag:     "header",
				Classes: classes(cfg.Class),
			}),
			core.WithModifier(string(cfg.Type), true),
			core.WithLifecycle(),
		)(newBase("top-app-bar", cfg.Prefix, cfg.Document))

		bar := &TopAppBar{
			base:     base{c},
			cfg:      cfg,
			leading:  c.CreateElement("div", c.Part("leading")),
			headline: c.CreateElement("h1", c.Part("headline")),
			trailing: c.CreateElement("div", c.Part("trailing")),
		}
		bar.headline.SetText(cfg.Title)
		c.Element.AppendChild(bar.leading).AppendChild(bar.headline).AppendChild(bar.trailing)

		if container := cfg.ScrollContainer; container != nil {
			c.Listen(container, "scroll", func(*dom.Event) { bar.onScroll(container.ScrollTop()) })
		} else {
			win := c.Document.Window()
			c.AddDestroyer(win.AddEventListener("scroll", func(*dom.Event) { bar.onScroll(win.ScrollY()) }))
		}
		c.Log.Debug().Str("type", string(cfg.Type)).Msg("top app bar created")
		return bar, nil
	})
}

// SetTitle replaces the headline text.
func (bar *TopAppBar) SetTitle(title string) *TopAppBar {
	bar.headline.SetText(title)
	return bar
}

// Title returns the headline text.
func (bar *TopAppBar) Title() string { return bar.headline.Text() }

// AddLeadingElement appends el before the headline, typically a navigation
// icon.
func (bar *TopAppBar) AddLeadingElement(el *dom.Element) *TopAppBar {
	if el != nil {
		bar.leading.AppendChild(el)
	}
	return bar
}

// AddTrailingElement appends el after the headline.
func (bar *TopAppBar) AddTrailingElement(el *dom.Element) *TopAppBar {
	if el != nil {
		bar.trailing.AppendChild(el)
	}
	return bar
}

// SetScrollState marks the content below the bar as scrolled.
func (bar *TopAppBar) SetScrollState(scrolled bool) *TopAppBar {
	bar.scrolled = scrolled
	bar.c.Element.ToggleClass(bar.c.Modifier("scrolled"), scrolled)
	return bar
}

// IsScrolled reports the scroll state.
func (bar *TopAppBar) IsScrolled() bool { return bar.scrolled }

// IsCompressed reports whether a medium or large bar collapsed.
func (bar *TopAppBar) IsCompressed() bool { return bar.compressed }

func (bar *TopAppBar) compressible() bool {
	return bar.cfg.Type == TopAppBarMedium || bar.cfg.Type == TopAppBarLarge
}

func (bar *TopAppBar) onScroll(offset float64) {
	scrolled := offset > 0
	compressed := bar.compressible() && offset > bar.cfg.CompressThreshold
	if scrolled == bar.scrolled && compressed == bar.compressed {
		return
	}
	bar.SetScrollState(scrolled)
	bar.compressed = compressed
	bar.c.Element.ToggleClass(bar.c.Modifier("compressed"), compressed)
	bar.c.Emit(EventScrolled, ScrollDetail{Scrolled: scrolled, Compressed: compressed, Offset: offset})
}
