package widgets

import (
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
	"github.com/go-mtrl/mtrl/pkg/errors"
)

// partBuilder creates card sub-elements with the card's class names.
type partBuilder struct {
	doc   *dom.Document
	block string
}

func newPartBuilder(doc *dom.Document, prefix string) partBuilder {
	if doc == nil {
		doc = dom.Default()
	}
	if prefix == "" {
		prefix = core.DefaultPrefix
	}
	return partBuilder{doc: doc, block: prefix + "-card"}
}

func (p partBuilder) el(tag, part string) *dom.Element {
	return p.doc.MustCreateElement(tag).AddClass(p.block + "-" + part)
}

func (p partBuilder) html(el *dom.Element, markup, op string) {
	if err := el.SetInnerHTML(markup); err != nil {
		errors.Report(&errors.ComponentError{Op: op, Kind: errors.KindDOM, Err: err})
		el.SetText(markup)
	}
}

// CardHeaderConfig configures NewCardHeader.
type CardHeaderConfig struct {
	Document *dom.Document
	Prefix   string
	Title    string
	Subtitle string
	// Avatar is an HTML snippet shown before the text.
	Avatar string
	// Action is placed after the text, usually an icon button.
	Action *dom.Element
}

// NewCardHeader builds a card header element.
func NewCardHeader(cfg CardHeaderConfig) *dom.Element {
	p := newPartBuilder(cfg.Document, cfg.Prefix)
	header := p.el("div", "header")
	if cfg.Avatar != "" {
		avatar := p.el("div", "header-avatar")
		p.html(avatar, cfg.Avatar, "card.header.avatar")
		header.AppendChild(avatar)
	}
	text := p.el("div", "header-text")
	if cfg.Title != "" {
		text.AppendChild(p.el("h3", "header-title").SetText(cfg.Title))
	}
	if cfg.Subtitle != "" {
		text.AppendChild(p.el("h4", "header-subtitle").SetText(cfg.Subtitle))
	}
	header.AppendChild(text)
	if cfg.Action != nil {
		action := p.el("div", "header-action")
		action.AppendChild(cfg.Action)
		header.AppendChild(action)
	}
	return header
}

// CardContentConfig configures NewCardContent. HTML wins over Text.
type CardContentConfig struct {
	Document *dom.Document
	Prefix   string
	Text     string
	HTML     string
	// NoPadding removes the default content padding.
	NoPadding bool
}

// NewCardContent builds a card content element.
func NewCardContent(cfg CardContentConfig) *dom.Element {
	p := newPartBuilder(cfg.Document, cfg.Prefix)
	content := p.el("div", "content")
	switch {
	case cfg.HTML != "":
		p.html(content, cfg.HTML, "card.content")
	case cfg.Text != "":
		content.AppendChild(p.doc.MustCreateElement("p").SetText(cfg.Text))
	}
	content.ToggleClass(p.block+"-content--no-padding", cfg.NoPadding)
	return content
}

// CardMediaConfig configures NewCardMedia.
type CardMediaConfig struct {
	Document *dom.Document
	Prefix   string
	Src      string
	Alt      string
	// AspectRatio is one of "16:9", "4:3" or "1:1". Empty keeps the natural
	// size.
	AspectRatio string
	// Contain fits the image inside the box instead of cropping it.
	Contain bool
}

// NewCardMedia builds a card media element holding an image.
func NewCardMedia(cfg CardMediaConfig) *dom.Element {
	p := newPartBuilder(cfg.Document, cfg.Prefix)
	media := p.el("div", "media")
	if cfg.Src != "" {
		img := p.el("img", "media-img").SetAttribute("src", cfg.Src).SetAttribute("alt", cfg.Alt)
		media.AppendChild(img)
	}
	if ratio := aspectModifier(cfg.AspectRatio); ratio != "" {
		media.AddClass(p.block + "-media--" + ratio)
	}
	media.ToggleClass(p.block+"-media--contain", cfg.Contain)
	return media
}

func aspectModifier(ratio string) string {
	switch ratio {
	case "16:9":
		return "16-9"
	case "4:3":
		return "4-3"
	case "1:1":
		return "1-1"
	}
	return ""
}

// CardActionsAlign positions the action row.
type CardActionsAlign string

const (
	CardActionsStart        CardActionsAlign = "start"
	CardActionsEnd          CardActionsAlign = "end"
	CardActionsCenter       CardActionsAlign = "center"
	CardActionsSpaceBetween CardActionsAlign = "space-between"
)

// CardActionsConfig configures NewCardActions.
type CardActionsConfig struct {
	Document  *dom.Document
	Prefix    string
	Actions   []*dom.Element
	FullBleed bool
	Vertical  bool
	Align     CardActionsAlign
}

// NewCardActions builds a card action row.
func NewCardActions(cfg CardActionsConfig) *dom.Element {
	p := newPartBuilder(cfg.Document, cfg.Prefix)
	actions := p.el("div", "actions")
	for _, a := range cfg.Actions {
		if a != nil {
			actions.AppendChild(a)
		}
	}
	actions.ToggleClass(p.block+"-actions--full-bleed", cfg.FullBleed)
	actions.ToggleClass(p.block+"-actions--vertical", cfg.Vertical)
	if cfg.Align != "" {
		actions.AddClass(p.block + "-actions--" + string(cfg.Align))
	}
	return actions
}
