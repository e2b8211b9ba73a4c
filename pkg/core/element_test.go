package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mtrl/mtrl/pkg/dom"
	mtrltest "github.com/go-mtrl/mtrl/pkg/testing"
)

func TestWithElement_ClassesAndAttributes(t *testing.T) {
	tester := newTester(t)
	c := build(tester, "card", WithElement(ElementOptions{
		Tag:       "section",
		ClassName: []string{"card-media", "", "mtrl-card-extra"},
		Classes:   []string{"user-class"},
		Attrs:     map[string]string{"role": "region", "aria-label": "", "tabindex": "0"},
		BoolAttrs: []string{"hidden"},
	}))

	el := c.Element
	assert.Equal(t, "section", el.TagName())
	assert.Equal(t, []string{"mtrl-card", "mtrl-card-media", "mtrl-card-extra", "user-class"}, el.Classes())
	assert.Equal(t, "region", el.Attr("role"))
	assert.Equal(t, "0", el.Attr("tabindex"))
	assert.False(t, el.HasAttribute("aria-label"))
	assert.True(t, el.HasAttribute("hidden"))
}

func TestWithElement_DefaultsToDiv(t *testing.T) {
	tester := newTester(t)
	c := build(tester, "chip", WithElement(ElementOptions{ComponentName: "chip-alt"}))

	assert.Equal(t, "div", c.Element.TagName())
	assert.Equal(t, []string{"mtrl-chip-alt"}, c.Element.Classes())
}

func TestWithElement_InvalidTagPanics(t *testing.T) {
	tester := newTester(t)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		var domErr *dom.Error
		require.True(t, errors.As(r.(error), &domErr))
		assert.Equal(t, dom.InvalidCharacterError, domErr.Name)
	}()
	build(tester, "card", WithElement(ElementOptions{Tag: "bad tag"}))
}

func TestWithElement_ForwardEvents(t *testing.T) {
	tester := newTester(t)
	c := build(tester, "chip",
		WithEvents(),
		WithElement(ElementOptions{ForwardEvents: map[string]ForwardPredicate{
			"click": nil,
			"keydown": func(c *Component, ev *dom.Event) bool {
				return ev.Key == "Enter"
			},
		}}),
	)
	clicks := collect(c, "click")
	keys := collect(c, "keydown")

	tester.Click(c.Element)
	tester.KeyDown(c.Element, "a")
	tester.KeyDown(c.Element, "Enter")

	assert.Len(t, *clicks, 1)
	require.Len(t, *keys, 1)
	assert.Equal(t, "Enter", (*keys)[0].(*dom.Event).Key)
}

func TestWithElement_Style(t *testing.T) {
	tester := newTester(t)
	c := build(tester, "card", WithElement(ElementOptions{Style: ".mtrl-card{display:block}"}))

	style := tester.Document().Head().QuerySelector(`style[data-mtrl-style="card"]`)
	require.NotNil(t, style)
	assert.Contains(t, style.Text(), "display:block")

	c.Destroy()
	assert.Nil(t, tester.Document().Head().QuerySelector("style"))
}

func TestTouch_NotAttachedWithoutTouchSupport(t *testing.T) {
	tester := newTester(t)
	c := build(tester, "button", WithEvents(), WithElement(ElementOptions{Interactive: true}))

	assert.Nil(t, c.Touch)
	assert.Equal(t, 0, c.Element.ListenerCount("touchstart"))
}

func TestTouch_Tap(t *testing.T) {
	tester := newTester(t, mtrltest.WithTouch())
	c := build(tester, "button", WithEvents(), WithElement(ElementOptions{Interactive: true}))
	taps := collect(c, EventTap)
	swipes := collect(c, EventSwipe)

	active := false
	c.Element.AddEventListener("touchstart", func(*dom.Event) {
		active = c.Element.HasClass("mtrl-touch-active")
	})

	tester.Tap(c.Element)

	assert.True(t, active)
	assert.False(t, c.Element.HasClass("mtrl-touch-active"))
	require.Len(t, *taps, 1)
	assert.Equal(t, mtrltest.DefaultTapDuration, (*taps)[0].(TapDetail).Duration)
	assert.Empty(t, *swipes)
	assert.False(t, c.Touch.IsTouching)
}

func TestTouch_LongPressIsNotTap(t *testing.T) {
	tester := newTester(t, mtrltest.WithTouch())
	c := build(tester, "button", WithEvents(), WithElement(ElementOptions{Interactive: true}))
	taps := collect(c, EventTap)

	tester.TapFor(c.Element, TapThreshold)
	assert.Empty(t, *taps)

	tester.TapFor(c.Element, TapThreshold-time.Millisecond)
	assert.Len(t, *taps, 1)
}

func TestTouch_Swipe(t *testing.T) {
	tester := newTester(t, mtrltest.WithTouch())
	c := build(tester, "card", WithEvents(), WithElement(ElementOptions{Interactive: true}))
	taps := collect(c, EventTap)
	swipes := collect(c, EventSwipe)

	tester.Swipe(c.Element, -120)

	require.Len(t, *swipes, 1)
	detail := (*swipes)[0].(SwipeDetail)
	assert.Equal(t, SwipeLeft, detail.Direction)
	assert.Equal(t, -60.0, detail.DeltaX)
	assert.Empty(t, *taps)

	tester.Swipe(c.Element, 80)
	require.Len(t, *swipes, 2)
	assert.Equal(t, SwipeRight, (*swipes)[1].(SwipeDetail).Direction)
}

func TestTouch_FastSwipeSuppressesTap(t *testing.T) {
	tester := newTester(t, mtrltest.WithTouch())
	c := build(tester, "card", WithEvents(), WithElement(ElementOptions{Interactive: true}))
	taps := collect(c, EventTap)
	swipes := collect(c, EventSwipe)

	for range 2 {
		tester.TouchStart(c.Element, 1, 10, 10)
		tester.Advance(10 * time.Millisecond)
		tester.TouchMove(c.Element, 1, 10+SwipeThreshold+1, 10)
		tester.Advance(10 * time.Millisecond)
		tester.TouchEnd(c.Element, 1, 10+SwipeThreshold+1, 10)
	}

	// Both sequences end well under TapThreshold, yet only swipe.
	assert.Len(t, *swipes, 2)
	assert.Empty(t, *taps)
}

func TestTouch_ShortMoveIsTap(t *testing.T) {
	tester := newTester(t, mtrltest.WithTouch())
	c := build(tester, "card", WithEvents(), WithElement(ElementOptions{Interactive: true}))
	taps := collect(c, EventTap)
	swipes := collect(c, EventSwipe)

	tester.Swipe(c.Element, SwipeThreshold)

	assert.Empty(t, *swipes)
	assert.Len(t, *taps, 1)
}

func TestTouch_DetachedOnDestroy(t *testing.T) {
	tester := newTester(t, mtrltest.WithTouch())
	c := build(tester, "button", WithEvents(), WithElement(ElementOptions{Interactive: true}))

	c.Destroy()
	assert.Equal(t, 0, c.Element.ListenerCount("touchstart"))
	assert.Equal(t, 0, c.Element.ListenerCount("touchend"))
}
