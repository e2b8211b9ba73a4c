package widgets

import (
	"github.com/go-mtrl/mtrl/pkg/compose"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
)

// CardVariant selects the card container style.
type CardVariant string

const (
	CardElevated CardVariant = "elevated"
	CardFilled   CardVariant = "filled"
	CardOutlined CardVariant = "outlined"
)

// CardMediaPosition places media added with AddMedia.
type CardMediaPosition string

const (
	CardMediaTop    CardMediaPosition = "top"
	CardMediaBottom CardMediaPosition = "bottom"
)

// ExpandedDetail is the payload of EventExpandedChanged. ID is empty for
// cards.
type ExpandedDetail struct {
	ID       string
	Expanded bool
}

// CardConfig configures NewCard. Parts are built in document order: header,
// media, content, expandable content, actions.
type CardConfig struct {
	Document *dom.Document
	Prefix   string
	// Variant defaults to CardElevated.
	Variant CardVariant
	// Interactive adds hover and press feedback and makes the card focusable.
	Interactive bool
	// Clickable gives the card a button role and emits EventClick on click,
	// Enter and Space.
	Clickable bool
	FullWidth bool
	Draggable bool
	// Expandable adds a toggle button and a collapsible content region
	// holding ExpandableContent.
	Expandable        bool
	Expanded          bool
	ExpandableContent string
	Loading           bool

	Header  *CardHeaderConfig
	Media   []CardMediaConfig
	Content []CardContentConfig
	Actions *CardActionsConfig

	AriaLabel string
	Class     string
}

var cardDefaults = CardConfig{Variant: CardElevated}

// Card is a Material card.
type Card struct {
	base
	parts partBuilder

	loading    *dom.Element
	expandable *dom.Element
	toggle     *dom.Element
	expanded   bool
}

// NewCard creates a card.
func NewCard(cfg CardConfig) (*Card, error) {
	return create("card", func() (*Card, error) {
		cfg = withDefaults(cfg, cardDefaults)

		attrs := map[string]string{"aria-label": cfg.AriaLabel}
		var forward map[string]core.ForwardPredicate
		if cfg.Clickable {
			attrs["role"] = "button"
			forward = map[string]core.ForwardPredicate{EventClick: nil}
		}
		if cfg.Clickable || cfg.Interactive {
			attrs["tabindex"] = "0"
		}

		c := compose.Pipe(
			core.WithEvents(),
			core.WithElement(core.ElementOptions{
				Classes:       classes(cfg.Class),
				Attrs:         attrs,
				Interactive:   cfg.Interactive || cfg.Clickable,
				ForwardEvents: forward,
			}),
			core.WithVariant(cfg.Variant),
			core.WithModifier("interactive", cfg.Interactive),
			core.WithModifier("clickable", cfg.Clickable),
			core.WithModifier("full-width", cfg.FullWidth),
			core.WithRipple(core.RippleConfig{Enabled: cfg.Interactive}),
			core.WithDraggable(cfg.Draggable),
			core.WithLifecycle(),
		)(newBase("card", cfg.Prefix, cfg.Document))

		card := &Card{base: base{c}, parts: newPartBuilder(c.Document, c.Prefix())}
		if cfg.Clickable {
			c.Listen(c.Element, "keydown", func(ev *dom.Event) {
				if isActivationKey(ev.Key) {
					ev.PreventDefault()
					c.Emit(EventClick, ev)
				}
			})
		}
		card.buildParts(cfg)
		if cfg.Loading {
			card.SetLoading(true)
		}
		c.Log.Debug().Str("variant", string(cfg.Variant)).Msg("card created")
		return card, nil
	})
}

func (card *Card) buildParts(cfg CardConfig) {
	doc, prefix := card.c.Document, card.c.Prefix()
	for _, m := range cfg.Media {
		m.Document, m.Prefix = doc, prefix
		card.AddMedia(NewCardMedia(m), CardMediaBottom)
	}
	if cfg.Header != nil {
		h := *cfg.Header
		h.Document, h.Prefix = doc, prefix
		card.SetHeader(NewCardHeader(h))
	}
	for _, content := range cfg.Content {
		content.Document, content.Prefix = doc, prefix
		card.AddContent(NewCardContent(content))
	}
	if cfg.Expandable {
		card.makeExpandable(cfg.ExpandableContent, cfg.Expanded)
	}
	if cfg.Actions != nil {
		a := *cfg.Actions
		a.Document, a.Prefix = doc, prefix
		card.SetActions(NewCardActions(a))
	}
}

func (card *Card) children(part string) []*dom.Element {
	class := card.c.Part(part)
	var out []*dom.Element
	for _, child := range card.c.Element.Children() {
		if child.HasClass(class) {
			out = append(out, child)
		}
	}
	return out
}

// trailing returns the first child that body content must stay in front of.
func (card *Card) trailing() *dom.Element {
	for _, child := range card.c.Element.Children() {
		for _, part := range []string{"expandable-content", "expand-button", "actions"} {
			if child.HasClass(card.c.Part(part)) {
				return child
			}
		}
	}
	return nil
}

func (card *Card) insertBody(el *dom.Element) {
	if ref := card.trailing(); ref != nil {
		card.c.Element.InsertBefore(el, ref)
		return
	}
	card.c.Element.AppendChild(el)
}

// AddContent adds a content element after the existing body, in front of
// the expandable region and actions.
func (card *Card) AddContent(content *dom.Element) *Card {
	if content != nil {
		card.insertBody(content)
	}
	return card
}

// SetHeader replaces the header. The header goes right after the last media
// element, or first when the card has no media.
func (card *Card) SetHeader(header *dom.Element) *Card {
	if header == nil {
		return card
	}
	for _, old := range card.children("header") {
		old.Remove()
	}
	if media := card.children("media"); len(media) > 0 {
		card.c.Element.InsertAfter(header, media[len(media)-1])
		return card
	}
	card.c.Element.PrependChild(header)
	return card
}

// Header returns the current header element.
func (card *Card) Header() *dom.Element {
	if h := card.children("header"); len(h) > 0 {
		return h[0]
	}
	return nil
}

// AddMedia adds a media element at the top of the card or after the body.
func (card *Card) AddMedia(media *dom.Element, pos CardMediaPosition) *Card {
	if media == nil {
		return card
	}
	if pos == CardMediaTop {
		card.c.Element.PrependChild(media)
		return card
	}
	card.insertBody(media)
	return card
}

// SetActions replaces the action row.
func (card *Card) SetActions(actions *dom.Element) *Card {
	if actions == nil {
		return card
	}
	for _, old := range card.children("actions") {
		old.Remove()
	}
	card.c.Element.AppendChild(actions)
	return card
}

// MakeDraggable enables native dragging. onStart, when non-nil, runs on
// every dragstart.
func (card *Card) MakeDraggable(onStart func(*dom.Event)) *Card {
	card.c.Draggable.Enable(onStart)
	return card
}

// Focus moves focus to the card.
func (card *Card) Focus() *Card {
	card.c.Element.Focus()
	return card
}

// SetLoading shows or hides the loading overlay.
func (card *Card) SetLoading(loading bool) *Card {
	if loading == card.IsLoading() {
		return card
	}
	el := card.c.Element
	el.ToggleClass(card.c.Modifier("loading"), loading)
	if !loading {
		card.loading.Remove()
		card.loading = nil
		el.RemoveAttribute("aria-busy")
		return card
	}
	el.SetAttribute("aria-busy", "true")
	card.loading = card.parts.el("div", "loading-overlay")
	spinner := card.parts.el("div", "loading-spinner").SetAttribute("role", "progressbar")
	card.loading.AppendChild(spinner)
	el.AppendChild(card.loading)
	return card
}

// IsLoading reports whether the loading overlay is shown.
func (card *Card) IsLoading() bool { return card.loading != nil }

func (card *Card) makeExpandable(markup string, expanded bool) {
	card.expandable = card.parts.el("div", "expandable-content")
	card.expandable.SetID(newID(card.c, "card-content"))
	if markup != "" {
		card.parts.html(card.expandable, markup, "card.expandable")
	}
	card.toggle = card.parts.el("button", "expand-button").
		SetAttribute("type", "button").
		SetAttribute("aria-label", "Expand").
		SetAttribute("aria-controls", card.expandable.ID())
	card.c.Listen(card.toggle, "click", func(ev *dom.Event) {
		ev.StopPropagation()
		card.ToggleExpanded()
	})
	card.insertBody(card.expandable)
	card.c.Element.InsertAfter(card.toggle, card.expandable)
	card.expanded = !expanded
	card.SetExpanded(expanded)
}

// ExpandableContent returns the collapsible region, or nil when the card is
// not expandable.
func (card *Card) ExpandableContent() *dom.Element { return card.expandable }

// SetExpanded expands or collapses the card. It emits EventExpandedChanged
// when the state changes. Cards without an expandable region ignore it.
func (card *Card) SetExpanded(expanded bool) *Card {
	if card.expandable == nil || card.expanded == expanded {
		return card
	}
	card.expanded = expanded
	card.c.Element.ToggleClass(card.c.Modifier("expanded"), expanded)
	card.expandable.ToggleAttribute("hidden", !expanded)
	card.toggle.SetAttribute("aria-expanded", boolAttr(expanded))
	card.c.Emit(EventExpandedChanged, ExpandedDetail{Expanded: expanded})
	return card
}

// ToggleExpanded flips the expanded state.
func (card *Card) ToggleExpanded() *Card {
	return card.SetExpanded(!card.expanded)
}

// IsExpanded reports whether the card is expanded.
func (card *Card) IsExpanded() bool { return card.expanded }
