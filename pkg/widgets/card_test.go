package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

// parts lists the first class of each child of el.
func parts(el *dom.Element) []string {
	var out []string
	for _, child := range el.Children() {
		if cls := child.Classes(); len(cls) > 0 {
			out = append(out, cls[0])
		}
	}
	return out
}

func TestCard_Defaults(t *testing.T) {
	tester := newTester(t)
	card, err := NewCard(CardConfig{Document: tester.Document()})
	require.NoError(t, err)

	el := card.Element()
	assert.Equal(t, "div", el.TagName())
	assert.True(t, el.HasClass("mtrl-card--elevated"))
	assert.False(t, el.HasClass("mtrl-card--interactive"))
	assert.False(t, el.HasClass("mtrl-card--clickable"))
	assert.False(t, el.HasAttribute("tabindex"))
	assert.False(t, el.HasAttribute("draggable"))
}

func TestCard_PartsOrder(t *testing.T) {
	tester := newTester(t)
	card, err := NewCard(CardConfig{
		Document:   tester.Document(),
		Header:     &CardHeaderConfig{Title: "Title", Subtitle: "Sub"},
		Media:      []CardMediaConfig{{Src: "a.jpg", Alt: "A", AspectRatio: "16:9"}},
		Content:    []CardContentConfig{{Text: "Body"}},
		Expandable: true,
		Actions:    &CardActionsConfig{Align: CardActionsEnd},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"mtrl-card-media",
		"mtrl-card-header",
		"mtrl-card-content",
		"mtrl-card-expandable-content",
		"mtrl-card-expand-button",
		"mtrl-card-actions",
	}, parts(card.Element()))
	assert.True(t, card.Element().QuerySelector(".mtrl-card-media").HasClass("mtrl-card-media--16-9"))
	assert.Equal(t, "Title", card.Header().QuerySelector(".mtrl-card-header-title").Text())

	card.AddContent(NewCardContent(CardContentConfig{Document: tester.Document(), HTML: "<b>more</b>"}))
	assert.Equal(t, "mtrl-card-content", parts(card.Element())[3])
}

func TestCard_SetHeaderInsertion(t *testing.T) {
	tester := newTester(t)
	doc := tester.Document()

	plain, err := NewCard(CardConfig{Document: doc, Content: []CardContentConfig{{Text: "Body"}}})
	require.NoError(t, err)
	plain.SetHeader(NewCardHeader(CardHeaderConfig{Document: doc, Title: "First"}))
	assert.Equal(t, []string{"mtrl-card-header", "mtrl-card-content"}, parts(plain.Element()))

	withMedia, err := NewCard(CardConfig{Document: doc})
	require.NoError(t, err)
	withMedia.AddMedia(NewCardMedia(CardMediaConfig{Document: doc, Src: "a.jpg"}), CardMediaTop)
	withMedia.AddMedia(NewCardMedia(CardMediaConfig{Document: doc, Src: "b.jpg"}), CardMediaBottom)
	withMedia.AddContent(NewCardContent(CardContentConfig{Document: doc, Text: "Body"}))

	withMedia.SetHeader(NewCardHeader(CardHeaderConfig{Document: doc, Title: "Old"}))
	withMedia.SetHeader(NewCardHeader(CardHeaderConfig{Document: doc, Title: "New"}))
	assert.Equal(t, []string{
		"mtrl-card-media",
		"mtrl-card-media",
		"mtrl-card-header",
		"mtrl-card-content",
	}, parts(withMedia.Element()))
	assert.Equal(t, "New", withMedia.Header().QuerySelector(".mtrl-card-header-title").Text())
}

func TestCard_Clickable(t *testing.T) {
	tester := newTester(t)
	card, err := NewCard(CardConfig{Document: tester.Document(), Clickable: true})
	require.NoError(t, err)
	tester.Mount(card.Element())

	el := card.Element()
	assert.Equal(t, "button", el.Attr("role"))
	assert.Equal(t, "0", el.Attr("tabindex"))

	clicks := collect(card, EventClick)
	el.Click()
	assert.False(t, tester.KeyDown(el, "Enter"))
	tester.KeyDown(el, " ")
	tester.KeyDown(el, "a")
	assert.Len(t, *clicks, 3)
}

func TestCard_Expandable(t *testing.T) {
	tester := newTester(t)
	card, err := NewCard(CardConfig{
		Document:          tester.Document(),
		Clickable:         true,
		Expandable:        true,
		ExpandableContent: "<p>More details</p>",
	})
	require.NoError(t, err)
	tester.Mount(card.Element())

	region := card.ExpandableContent()
	require.NotNil(t, region)
	toggle := card.Element().QuerySelector(".mtrl-card-expand-button")
	require.NotNil(t, toggle)
	assert.Equal(t, region.ID(), toggle.Attr("aria-controls"))
	assert.False(t, card.IsExpanded())
	assert.True(t, region.HasAttribute("hidden"))

	changes := collect(card, EventExpandedChanged)
	clicks := collect(card, EventClick)
	toggle.Click()
	assert.True(t, card.IsExpanded())
	assert.False(t, region.HasAttribute("hidden"))
	assert.Equal(t, "true", toggle.Attr("aria-expanded"))
	assert.True(t, card.Element().HasClass("mtrl-card--expanded"))
	assert.Empty(t, *clicks)

	card.SetExpanded(true)
	card.ToggleExpanded()
	assert.Equal(t, []any{ExpandedDetail{Expanded: true}, ExpandedDetail{Expanded: false}}, *changes)
}

func TestCard_Loading(t *testing.T) {
	tester := newTester(t)
	card, err := NewCard(CardConfig{Document: tester.Document(), Loading: true})
	require.NoError(t, err)

	assert.True(t, card.IsLoading())
	assert.Equal(t, "true", card.Element().Attr("aria-busy"))
	assert.NotNil(t, card.Element().QuerySelector(".mtrl-card-loading-overlay [role=progressbar]"))

	card.SetLoading(false)
	assert.False(t, card.IsLoading())
	assert.False(t, card.Element().HasAttribute("aria-busy"))
	assert.Nil(t, card.Element().QuerySelector(".mtrl-card-loading-overlay"))
}

func TestCard_SetActionsReplaces(t *testing.T) {
	tester := newTester(t)
	doc := tester.Document()
	card, err := NewCard(CardConfig{Document: doc, Actions: &CardActionsConfig{}})
	require.NoError(t, err)

	ok := doc.MustCreateElement("button").SetText("OK")
	card.SetActions(NewCardActions(CardActionsConfig{Document: doc, Actions: []*dom.Element{ok}, Vertical: true}))
	rows := card.Element().QuerySelectorAll(".mtrl-card-actions")
	require.Len(t, rows, 1)
	assert.True(t, rows[0].HasClass("mtrl-card-actions--vertical"))
	assert.Same(t, ok, rows[0].FirstElementChild())
}

func TestCard_Draggable(t *testing.T) {
	tester := newTester(t)
	card, err := NewCard(CardConfig{Document: tester.Document()})
	require.NoError(t, err)

	starts := 0
	card.MakeDraggable(func(*dom.Event) { starts++ })
	assert.Equal(t, "true", card.Element().Attr("draggable"))
	card.Element().DispatchEvent(dom.NewEvent("dragstart"))
	assert.Equal(t, 1, starts)
}
