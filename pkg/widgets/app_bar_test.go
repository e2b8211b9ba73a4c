package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

func TestBottomAppBar_Actions(t *testing.T) {
	tester := newTester(t)
	doc := tester.Document()
	bar, err := NewBottomAppBar(BottomAppBarConfig{Document: doc})
	require.NoError(t, err)

	el := bar.Element()
	assert.Equal(t, "toolbar", el.Attr("role"))
	assert.True(t, el.HasClass("mtrl-bottom-app-bar--fab-end"))
	assert.True(t, bar.IsVisible())

	bar.AddAction(doc.MustCreateElement("button")).AddAction(doc.MustCreateElement("button"))
	assert.Equal(t, 2, el.QuerySelector(".mtrl-bottom-app-bar-actions").ChildCount())

	first := doc.MustCreateElement("button").SetID("first")
	second := doc.MustCreateElement("button").SetID("second")
	bar.AddFab(first).AddFab(second)
	slot := el.QuerySelector(".mtrl-bottom-app-bar-fab")
	require.NotNil(t, slot)
	assert.Equal(t, []string{"second"}, ids(slot.Children()))
	assert.True(t, el.HasClass("mtrl-bottom-app-bar--with-fab"))
}

func TestBottomAppBar_ShowHide(t *testing.T) {
	tester := newTester(t)
	bar, err := NewBottomAppBar(BottomAppBarConfig{Document: tester.Document(), FabPosition: FabCenter})
	require.NoError(t, err)
	assert.True(t, bar.Element().HasClass("mtrl-bottom-app-bar--fab-center"))
	changes := collect(bar, EventVisibilityChange)

	bar.Hide()
	assert.False(t, bar.IsVisible())
	assert.True(t, bar.Element().HasClass("mtrl-bottom-app-bar--hidden"))
	assert.True(t, bar.Element().HasClass("mtrl-bottom-app-bar--transitioning"))
	tester.Advance(DefaultBarTransition)
	assert.False(t, bar.Element().HasClass("mtrl-bottom-app-bar--transitioning"))

	bar.Hide()
	bar.Show()
	assert.Equal(t, []any{VisibilityDetail{Visible: false}, VisibilityDetail{Visible: true}}, *changes)
}

func TestBottomAppBar_AutoHide(t *testing.T) {
	tester := newTester(t)
	win := tester.Document().Window()
	bar, err := NewBottomAppBar(BottomAppBarConfig{Document: tester.Document(), AutoHide: true})
	require.NoError(t, err)

	win.ScrollTo(0, 100)
	assert.False(t, bar.IsVisible())
	win.ScrollTo(0, 150)
	assert.False(t, bar.IsVisible())
	win.ScrollTo(0, 120)
	assert.True(t, bar.IsVisible())

	bar.Destroy()
	assert.Equal(t, 0, win.ListenerCount("scroll"))
	assert.Equal(t, 0, tester.Scheduler().Pending())
}

func TestTopAppBar_Structure(t *testing.T) {
	tester := newTester(t)
	doc := tester.Document()
	bar, err := NewTopAppBar(TopAppBarConfig{Document: doc, Title: "Inbox"})
	require.NoError(t, err)

	el := bar.Element()
	assert.Equal(t, "header", el.TagName())
	assert.True(t, el.HasClass("mtrl-top-app-bar--small"))
	assert.Equal(t, []string{"mtrl-top-app-bar-leading", "mtrl-top-app-bar-headline", "mtrl-top-app-bar-trailing"}, parts(el))
	assert.Equal(t, "Inbox", bar.Title())

	bar.SetTitle("Sent")
	assert.Equal(t, "Sent", el.QuerySelector("h1").Text())

	menu := doc.MustCreateElement("button")
	search := doc.MustCreateElement("button")
	bar.AddLeadingElement(menu).AddTrailingElement(search)
	assert.Same(t, el.QuerySelector(".mtrl-top-app-bar-leading"), menu.Parent())
	assert.Same(t, el.QuerySelector(".mtrl-top-app-bar-trailing"), search.Parent())
}

func TestTopAppBar_WindowScroll(t *testing.T) {
	tester := newTester(t)
	win := tester.Document().Window()
	bar, err := NewTopAppBar(TopAppBarConfig{Document: tester.Document(), Type: TopAppBarMedium})
	require.NoError(t, err)
	events := collect(bar, EventScrolled)

	win.ScrollTo(0, 10)
	assert.True(t, bar.IsScrolled())
	assert.False(t, bar.IsCompressed())
	assert.True(t, bar.Element().HasClass("mtrl-top-app-bar--scrolled"))

	win.ScrollTo(0, 20)
	win.ScrollTo(0, DefaultCompressThreshold+1)
	assert.True(t, bar.IsCompressed())
	assert.True(t, bar.Element().HasClass("mtrl-top-app-bar--compressed"))

	win.ScrollTo(0, 0)
	assert.False(t, bar.IsScrolled())
	assert.False(t, bar.IsCompressed())
	assert.Len(t, *events, 3)

	bar.Destroy()
	assert.Equal(t, 0, win.ListenerCount("scroll"))
}

func TestTopAppBar_SmallNeverCompresses(t *testing.T) {
	tester := newTester(t)
	bar, err := NewTopAppBar(TopAppBarConfig{Document: tester.Document()})
	require.NoError(t, err)

	tester.Document().Window().ScrollTo(0, 500)
	assert.True(t, bar.IsScrolled())
	assert.False(t, bar.IsCompressed())
}

func TestTopAppBar_ScrollContainer(t *testing.T) {
	tester := newTester(t)
	doc := tester.Document()
	container := tester.Mount(doc.MustCreateElement("main"))
	bar, err := NewTopAppBar(TopAppBarConfig{Document: doc, Type: TopAppBarLarge, ScrollContainer: container, CompressThreshold: 10})
	require.NoError(t, err)

	doc.Window().ScrollTo(0, 100)
	assert.False(t, bar.IsScrolled())

	container.SetScrollTop(20)
	assert.True(t, bar.IsScrolled())
	assert.True(t, bar.IsCompressed())

	bar.Destroy()
	assert.Equal(t, 0, container.ListenerCount("scroll"))

	bar.SetScrollState(false)
	assert.False(t, bar.Element().HasClass("mtrl-top-app-bar--scrolled"))
}

func ids(els []*dom.Element) []string {
	out := make([]string, len(els))
	for i, el := range els {
		out[i] = el.ID()
	}
	return out
}
