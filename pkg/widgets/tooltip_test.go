package widgets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mtrl/mtrl/pkg/dom"
	mtrltest "github.com/go-mtrl/mtrl/pkg/testing"
)

func newTooltip(t *testing.T, tester *mtrltest.Tester, cfg TooltipConfig) (*Tooltip, *dom.Element) {
	t.Helper()
	target := tester.Mount(tester.Document().MustCreateElement("button"))
	cfg.Document = tester.Document()
	cfg.Target = target
	tip, err := NewTooltip(cfg)
	require.NoError(t, err)
	return tip, target
}

func TestTooltip_Structure(t *testing.T) {
	tester := newTester(t)
	tip, target := newTooltip(t, tester, TooltipConfig{Text: "Save file"})

	el := tip.Element()
	assert.Same(t, tester.Document().Body(), el.Parent())
	assert.Equal(t, "tooltip", el.Attr("role"))
	assert.Equal(t, "true", el.Attr("aria-hidden"))
	assert.True(t, el.HasClass("mtrl-tooltip--default"))
	assert.True(t, el.HasClass("mtrl-tooltip--top"))
	assert.Equal(t, el.ID(), target.Attr("aria-describedby"))
	assert.Equal(t, "Save file", tip.Text())
	assert.Equal(t, TooltipTop, tip.Position())
	assert.Same(t, target, tip.Target())
}

func TestTooltip_ImmediateShowHide(t *testing.T) {
	tester := newTester(t)
	tip, _ := newTooltip(t, tester, TooltipConfig{Text: "Hi"})
	shown := collect(tip, EventShow)
	hidden := collect(tip, EventHide)

	tip.Show(true)
	assert.True(t, tip.IsVisible())
	assert.Equal(t, "false", tip.Element().Attr("aria-hidden"))
	assert.True(t, tip.Element().HasClass("mtrl-tooltip--visible"))

	tip.Hide(true)
	assert.False(t, tip.IsVisible())
	assert.Equal(t, "true", tip.Element().Attr("aria-hidden"))
	assert.False(t, tip.Element().HasClass("mtrl-tooltip--visible"))

	assert.Len(t, *shown, 1)
	assert.Len(t, *hidden, 1)
	assert.Equal(t, 0, tester.Scheduler().Pending())
}

func TestTooltip_Delays(t *testing.T) {
	tester := newTester(t)
	tip, _ := newTooltip(t, tester, TooltipConfig{Text: "Hi"})

	tip.Show(false)
	tip.Show(false)
	assert.Equal(t, 1, tester.Scheduler().Pending())
	tester.Advance(DefaultTooltipShowDelay - time.Millisecond)
	assert.False(t, tip.IsVisible())
	tester.Advance(time.Millisecond)
	assert.True(t, tip.IsVisible())

	tip.Hide(false)
	tester.Advance(50 * time.Millisecond)
	tip.Show(false)
	tester.Advance(time.Second)
	assert.True(t, tip.IsVisible())

	tip.Hide(false)
	tester.Advance(DefaultTooltipHideDelay)
	assert.False(t, tip.IsVisible())
}

func TestTooltip_NegativeDelayMeansNone(t *testing.T) {
	tester := newTester(t)
	tip, _ := newTooltip(t, tester, TooltipConfig{Text: "Hi", ShowDelay: -1, HideDelay: -1})

	tip.Show(false)
	assert.True(t, tip.IsVisible())
	tip.Hide(false)
	assert.False(t, tip.IsVisible())
}

func TestTooltip_HoverFocusAndEscape(t *testing.T) {
	tester := newTester(t)
	tip, target := newTooltip(t, tester, TooltipConfig{Text: "Hi"})

	tester.Hover(target)
	tester.Advance(DefaultTooltipShowDelay)
	assert.True(t, tip.IsVisible())

	tester.Leave(target)
	tester.Advance(DefaultTooltipHideDelay)
	assert.False(t, tip.IsVisible())

	target.Focus()
	tester.Advance(DefaultTooltipShowDelay)
	assert.True(t, tip.IsVisible())

	tester.KeyDown(target, "Escape")
	assert.False(t, tip.IsVisible())
}

func TestTooltip_DisableHover(t *testing.T) {
	tester := newTester(t)
	tip, target := newTooltip(t, tester, TooltipConfig{Text: "Hi", DisableHover: true})

	tester.Hover(target)
	tester.Advance(time.Second)
	assert.False(t, tip.IsVisible())
}

func TestTooltip_SetTarget(t *testing.T) {
	tester := newTester(t)
	tip, first := newTooltip(t, tester, TooltipConfig{Text: "Hi"})
	second := tester.Mount(tester.Document().MustCreateElement("a"))

	tip.SetTarget(second)
	assert.False(t, first.HasAttribute("aria-describedby"))
	assert.Equal(t, tip.Element().ID(), second.Attr("aria-describedby"))

	tester.Hover(first)
	tester.Advance(time.Second)
	assert.False(t, tip.IsVisible())

	tester.Hover(second)
	tester.Advance(time.Second)
	assert.True(t, tip.IsVisible())
}

func TestTooltip_UpdatePosition(t *testing.T) {
	tester := newTester(t)
	tip, target := newTooltip(t, tester, TooltipConfig{Text: "abc"})
	target.SetRect(dom.Rect{X: 100, Y: 200, Width: 80, Height: 40})

	// "abc" measures 21x13 in the fallback face, plus padding.
	tip.Show(true)
	assert.Equal(t, "171px", tip.Element().Style("top"))
	assert.Equal(t, "121.5px", tip.Element().Style("left"))

	tip.SetPosition(TooltipBottomStart)
	assert.Equal(t, "248px", tip.Element().Style("top"))
	assert.Equal(t, "100px", tip.Element().Style("left"))
	assert.True(t, tip.Element().HasClass("mtrl-tooltip--bottom-start"))
	assert.False(t, tip.Element().HasClass("mtrl-tooltip--top"))

	tip.SetPosition(TooltipRight)
	assert.Equal(t, "188px", tip.Element().Style("left"))
	assert.Equal(t, "209.5px", tip.Element().Style("top"))

	tester.Document().Window().ScrollTo(0, 30)
	assert.Equal(t, "239.5px", tip.Element().Style("top"))
}

func TestTooltip_ClampsToViewport(t *testing.T) {
	tester := newTester(t)
	tip, target := newTooltip(t, tester, TooltipConfig{Text: "abc", Position: TooltipLeft})
	target.SetRect(dom.Rect{X: 0, Y: 0, Width: 20, Height: 20})

	tip.Show(true)
	assert.Equal(t, "8px", tip.Element().Style("left"))
	assert.Equal(t, "8px", tip.Element().Style("top"))
}

func TestTooltip_DestroyCancelsTimers(t *testing.T) {
	tester := newTester(t)
	tip, target := newTooltip(t, tester, TooltipConfig{Text: "Hi"})

	tip.Show(false)
	require.Equal(t, 1, tester.Scheduler().Pending())
	tip.Destroy()
	assert.Equal(t, 0, tester.Scheduler().Pending())
	assert.Nil(t, tip.Element().Parent())
	assert.False(t, target.HasAttribute("aria-describedby"))
	assert.Equal(t, 0, target.ListenerCount("mouseenter"))
	assert.Equal(t, 0, tester.Document().Window().ListenerCount("scroll"))
}

// onLoop runs fn on the goroutine running doc and waits for it.
func onLoop(doc *dom.Document, fn func()) bool {
	done := make(chan struct{})
	if !doc.Dispatch(func() {
		defer close(done)
		fn()
	}) {
		return false
	}
	select {
	case <-done:
		return true
	case <-time.After(5 * time.Second):
		return false
	}
}

func TestTooltip_DelayedShowOnDefaultDocument(t *testing.T) {
	doc := dom.Default()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- dom.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.ErrorIs(t, <-errc, context.Canceled)
	})

	var (
		tip     *Tooltip
		target  *dom.Element
		err     error
		visible bool
	)
	require.True(t, onLoop(doc, func() {
		target = doc.MustCreateElement("button")
		doc.Body().AppendChild(target)
		// No Document: the tooltip lives on the default document.
		tip, err = NewTooltip(TooltipConfig{Target: target, Text: "Later", ShowDelay: 10 * time.Millisecond})
		if err == nil {
			tip.Show(false)
			visible = tip.IsVisible()
		}
	}))
	require.NoError(t, err)
	assert.False(t, visible)

	assert.Eventually(t, func() bool {
		var shown bool
		return onLoop(doc, func() { shown = tip.IsVisible() }) && shown
	}, 5*time.Second, 5*time.Millisecond)

	require.True(t, onLoop(doc, func() {
		assert.Equal(t, "false", tip.Element().Attr("aria-hidden"))
		tip.Destroy()
		target.Remove()
	}))
}

func TestTooltip_RunUntilIdleSettlesDelays(t *testing.T) {
	doc := dom.NewDocument()
	target := doc.MustCreateElement("button")
	doc.Body().AppendChild(target)
	tip, err := NewTooltip(TooltipConfig{Document: doc, Target: target, Text: "Hi", ShowDelay: 5 * time.Millisecond})
	require.NoError(t, err)
	defer tip.Destroy()

	tip.Show(false)
	assert.False(t, tip.IsVisible())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, doc.RunUntilIdle(ctx))
	assert.True(t, tip.IsVisible())

	tester := newTester(t)
	assert.ErrorIs(t, tester.Document().Run(ctx), dom.ErrNotRunnable)
}
