package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#6750a4")
	require.NoError(t, err)
	assert.Equal(t, Hex(0x6750a4), c)

	c, err = ParseHex("fff")
	require.NoError(t, err)
	assert.Equal(t, RGB(255, 255, 255), c)

	c, err = ParseHex("#00000080")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
	_, err = ParseHex("#gggggg")
	assert.Error(t, err)
}

func TestColorCSS(t *testing.T) {
	assert.Equal(t, "#6750a4", Hex(0x6750a4).CSS())
	assert.Equal(t, "rgba(0, 0, 0, 0.50)", RGBA(0, 0, 0, 128).CSS())
}

func TestCSS_UsesPrefix(t *testing.T) {
	th := DefaultLightTheme()
	th.Prefix = "ui"
	css := th.CSS()

	assert.True(t, strings.HasPrefix(css, ":root {\n  color-scheme: light;\n"))
	assert.Contains(t, css, "  --ui-sys-color-primary: #6750a4;\n")
	assert.Contains(t, css, "  --ui-sys-shape-corner-medium: 12px;\n")
	assert.Contains(t, css, "  --ui-card-shape: 12px;\n")
	assert.Contains(t, css, "  --ui-sys-motion-easing-standard: cubic-bezier(0.2, 0, 0, 1);\n")
	assert.Contains(t, css, "  --ui-sys-motion-duration-medium: 300ms;\n")
	assert.NotContains(t, css, "--mtrl-")
}

func TestComponentThemeOverride(t *testing.T) {
	th := DefaultDarkTheme()
	assert.Equal(t, th.ColorScheme.InverseSurface, th.TooltipThemeOf().BackgroundColor)

	th.TooltipTheme = &TooltipThemeData{BackgroundColor: Hex(0x123456)}
	assert.Contains(t, th.CSS(), "--mtrl-tooltip-container-color: #123456;")
}

func TestCopyWith_DoesNotAlias(t *testing.T) {
	base := DefaultLightTheme()
	dark := BrightnessDark
	shape := ShapeScheme{Medium: 4}
	copied := base.CopyWith(nil, &shape, &dark)

	assert.Equal(t, BrightnessLight, base.Brightness)
	assert.Equal(t, 12.0, base.Shape.Medium)
	assert.Equal(t, BrightnessDark, copied.Brightness)
	assert.Equal(t, 4.0, copied.Shape.Medium)
}

func TestInject_ReplacesPrevious(t *testing.T) {
	doc := dom.NewDocument()
	DefaultLightTheme().Inject(doc)
	remove := DefaultDarkTheme().Inject(doc)

	styles := doc.Head().QuerySelectorAll("style[data-mtrl-theme]")
	require.Len(t, styles, 1)
	assert.Equal(t, "dark", styles[0].Attr("data-mtrl-theme"))
	assert.Contains(t, styles[0].Text(), "color-scheme: dark;")

	remove()
	assert.Empty(t, doc.Head().QuerySelectorAll("style"))
}

func TestForBrightness(t *testing.T) {
	assert.Equal(t, BrightnessDark, ForBrightness(BrightnessDark).Brightness)
	assert.Equal(t, BrightnessLight, ForBrightness("").Brightness)
}
