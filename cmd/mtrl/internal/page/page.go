// Package page builds the widgets declared in a page file into a document.
package page

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/go-mtrl/mtrl/cmd/mtrl/internal/config"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
	"github.com/go-mtrl/mtrl/pkg/logging"
	"github.com/go-mtrl/mtrl/pkg/theme"
	"github.com/go-mtrl/mtrl/pkg/widgets"
)

// Page is a built document and the widgets living in it.
type Page struct {
	Document *dom.Document
	Theme    *theme.ThemeData
	Widgets  []widgets.Widget

	nested      []widgets.Widget
	removeTheme func()
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	return p.Document.Render(w)
}

// Destroy tears every widget down and removes the theme stylesheet.
func (p *Page) Destroy() {
	for _, w := range slices.Backward(p.Widgets) {
		w.Destroy()
	}
	for _, w := range p.nested {
		w.Destroy()
	}
	p.Widgets, p.nested = nil, nil
	if p.removeTheme != nil {
		p.removeTheme()
		p.removeTheme = nil
	}
}

// builder holds the state shared by the widget builders of one page.
type builder struct {
	page   *Page
	doc    *dom.Document
	prefix string
	log    zerolog.Logger
}

// buildFunc creates the widget declared by w. Widgets that place
// themselves in the document (sheets and tooltips) report placed.
type buildFunc func(b *builder, w config.Widget) (widget widgets.Widget, placed bool, err error)

// Types returns the widget types Build understands, sorted.
func Types() []string {
	return slices.Sorted(maps.Keys(builders))
}

// Build creates a document for res. Tooltips are built after every other
// widget so that their targets exist.
func Build(res *config.Resolved, opts ...dom.Option) (*Page, error) {
	cfg := res.Config
	doc := dom.NewDocument(opts...)

	td, err := themeFor(cfg.Theme)
	if err != nil {
		return nil, err
	}

	p := &Page{Document: doc, Theme: td}
	b := &builder{page: p, doc: doc, prefix: td.Prefix, log: logging.For("page")}
	p.removeTheme = td.Inject(doc)

	doc.Body().Parent().SetAttribute("lang", res.Lang)
	title := doc.MustCreateElement("title")
	title.SetText(res.Title)
	doc.Head().PrependChild(title)

	var deferred []config.Widget
	for _, w := range cfg.Widgets {
		if w.Type == "tooltip" {
			deferred = append(deferred, w)
			continue
		}
		if err := p.add(b, w); err != nil {
			p.Destroy()
			return nil, err
		}
	}
	for _, w := range deferred {
		if err := p.add(b, w); err != nil {
			p.Destroy()
			return nil, err
		}
	}

	b.log.Debug().Str("title", res.Title).Int("widgets", len(p.Widgets)).Msg("page built")
	return p, nil
}

func (p *Page) add(b *builder, w config.Widget) error {
	widget, placed, err := b.build(w)
	if err != nil {
		return err
	}
	if !placed {
		b.doc.Body().AppendChild(widget.Element())
	}
	mount(widget)
	p.Widgets = append(p.Widgets, widget)
	return nil
}

func (b *builder) build(w config.Widget) (widgets.Widget, bool, error) {
	fn, ok := builders[w.Type]
	if !ok {
		return nil, false, fmt.Errorf("unknown widget type %q", w.Type)
	}
	widget, placed, err := fn(b, w)
	if err != nil {
		return nil, false, err
	}
	if w.ID != "" && w.Type != "tooltip" {
		widget.Element().SetID(w.ID)
	}
	b.log.Debug().Str("type", w.Type).Str("id", w.ID).Msg("widget built")
	return widget, placed, nil
}

// children builds nested widgets and returns their root elements.
func (b *builder) children(list []config.Widget) ([]*dom.Element, error) {
	els := make([]*dom.Element, 0, len(list))
	for _, child := range list {
		widget, _, err := b.build(child)
		if err != nil {
			return nil, err
		}
		mount(widget)
		b.page.nested = append(b.page.nested, widget)
		els = append(els, widget.Element())
	}
	return els, nil
}

// mount notifies lifecycle handlers once a widget is in the document.
func mount(w widgets.Widget) {
	cw, ok := w.(interface{ Component() *core.Component })
	if !ok {
		return
	}
	if c := cw.Component(); c.Lifecycle != nil {
		c.Lifecycle.Mount()
	}
}

func themeFor(cfg config.ThemeConfig) (*theme.ThemeData, error) {
	td := theme.ForBrightness(theme.Brightness(cfg.Brightness))
	if cfg.Prefix != "" {
		td.Prefix = cfg.Prefix
	}
	if cfg.Primary != "" {
		primary, err := theme.ParseHex(cfg.Primary)
		if err != nil {
			return nil, err
		}
		scheme := td.ColorScheme
		scheme.Primary = primary
		td = td.CopyWith(&scheme, nil, nil)
	}
	return td, nil
}
