package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButton_Defaults(t *testing.T) {
	tester := newTester(t)
	b, err := NewButton(ButtonConfig{Document: tester.Document(), Text: "Save", Class: "primary wide"})
	require.NoError(t, err)

	el := b.Element()
	assert.Equal(t, "button", el.TagName())
	assert.Equal(t, "button", el.Attr("type"))
	assert.True(t, el.HasClass("mtrl-button"))
	assert.True(t, el.HasClass("mtrl-button--filled"))
	assert.True(t, el.HasClass("primary"))
	assert.True(t, el.HasClass("wide"))
	assert.Equal(t, "Save", b.Text())
	assert.NotNil(t, el.QuerySelector(".mtrl-ripple"))
}

func TestButton_VariantModifier(t *testing.T) {
	tester := newTester(t)
	b, err := NewButton(ButtonConfig{
		Document: tester.Document(),
		Prefix:   "x",
		Variant:  ButtonOutlined,
		Size:     ButtonSmall,
		NoRipple: true,
	})
	require.NoError(t, err)

	el := b.Element()
	assert.True(t, el.HasClass("x-button--outlined"))
	assert.True(t, el.HasClass("x-button--small"))
	assert.False(t, el.HasClass("x-button--filled"))
	assert.Nil(t, el.QuerySelector(".x-ripple"))
}

func TestButton_DisableEnableRoundTrip(t *testing.T) {
	tester := newTester(t)
	b, err := NewButton(ButtonConfig{Document: tester.Document(), Text: "Go"})
	require.NoError(t, err)
	before := b.Element().OuterHTML()

	b.Disable()
	assert.True(t, b.IsDisabled())
	assert.True(t, b.Element().HasAttribute("disabled"))
	assert.True(t, b.Element().HasClass("mtrl-button--disabled"))
	assert.Equal(t, "true", b.Element().Attr("aria-disabled"))

	b.Disable().Enable()
	assert.False(t, b.IsDisabled())
	assert.Equal(t, before, b.Element().OuterHTML())
}

func TestButton_ClickForwardedWhileEnabled(t *testing.T) {
	tester := newTester(t)
	b, err := NewButton(ButtonConfig{Document: tester.Document(), Text: "Go"})
	require.NoError(t, err)
	tester.Mount(b.Element())
	clicks := collect(b, EventClick)

	tester.Click(b.Element())
	assert.Len(t, *clicks, 1)

	b.Disable()
	tester.Click(b.Element())
	assert.Len(t, *clicks, 1)
}

func TestButton_IconOnly(t *testing.T) {
	tester := newTester(t)
	b, err := NewButton(ButtonConfig{Document: tester.Document(), Icon: `<svg viewBox="0 0 24 24"></svg>`})
	require.NoError(t, err)
	assert.True(t, b.Element().HasClass("mtrl-button--icon"))
	assert.NotNil(t, b.Element().QuerySelector(".mtrl-button-icon svg"))

	b.SetText("Add")
	assert.False(t, b.Element().HasClass("mtrl-button--icon"))

	b.SetIcon("").SetText("")
	assert.Equal(t, "", b.Icon())
	assert.Nil(t, b.Element().QuerySelector(".mtrl-button-icon"))
}

func TestButton_LifecycleAndDestroy(t *testing.T) {
	tester := newTester(t)
	b, err := NewButton(ButtonConfig{Document: tester.Document(), Text: "Go"})
	require.NoError(t, err)
	tester.Mount(b.Element())

	lc := b.Component().Lifecycle
	mounts := 0
	lc.OnMount(func() { mounts++ })
	lc.Mount()
	lc.Mount()
	assert.Equal(t, 1, mounts)
	assert.True(t, lc.IsMounted())

	clicks := collect(b, EventClick)
	b.Destroy()
	b.Destroy()
	assert.True(t, b.IsDestroyed())
	assert.Nil(t, b.Element().Parent())
	assert.Equal(t, 0, b.Component().Events.ListenerCount(EventClick))

	b.Element().Click()
	assert.Empty(t, *clicks)
	assert.Equal(t, 0, tester.Scheduler().Pending())
}
