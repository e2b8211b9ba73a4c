package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-mtrl/mtrl/pkg/animation"
	"github.com/go-mtrl/mtrl/pkg/core"
	"github.com/go-mtrl/mtrl/pkg/dom"
)

type token struct {
	name  string
	value string
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func (t *ThemeData) prefix() string {
	if t.Prefix == "" {
		return core.DefaultPrefix
	}
	return t.Prefix
}

// Tokens returns every custom property the theme defines, without the
// leading "--", in a stable order.
func (t *ThemeData) Tokens() [][2]string {
	p := t.prefix()
	var out [][2]string
	for _, r := range t.ColorScheme.roles() {
		out = append(out, [2]string{p + "-sys-color-" + r.name, r.color.CSS()})
	}
	for _, s := range []token{
		{"extra-small", px(t.Shape.ExtraSmall)},
		{"small", px(t.Shape.Small)},
		{"medium", px(t.Shape.Medium)},
		{"large", px(t.Shape.Large)},
		{"extra-large", px(t.Shape.ExtraLarge)},
		{"full", px(t.Shape.Full)},
	} {
		out = append(out, [2]string{p + "-sys-shape-corner-" + s.name, s.value})
	}
	for _, m := range []token{
		{"easing-standard", animation.Standard.CSS()},
		{"easing-standard-accelerate", animation.StandardAccelerate.CSS()},
		{"easing-standard-decelerate", animation.StandardDecelerate.CSS()},
		{"easing-emphasized-accelerate", animation.EmphasizedAccelerate.CSS()},
		{"easing-emphasized-decelerate", animation.EmphasizedDecelerate.CSS()},
		{"duration-short", animation.DurationShort.String()},
		{"duration-medium", animation.DurationMedium.String()},
		{"duration-long", animation.DurationLong.String()},
	} {
		out = append(out, [2]string{p + "-sys-motion-" + m.name, m.value})
	}
	groups := [][]token{
		t.ButtonThemeOf().tokens(),
		t.CardThemeOf().tokens(),
		t.ChipThemeOf().tokens(),
		t.TooltipThemeOf().tokens(),
		t.SheetThemeOf().tokens(),
		t.CheckboxThemeOf().tokens(),
		t.SwitchThemeOf().tokens(),
		t.BarThemeOf().tokens(),
	}
	for _, group := range groups {
		for _, tok := range group {
			out = append(out, [2]string{p + "-" + tok.name, tok.value})
		}
	}
	return out
}

// CSS renders the theme as custom properties on :root.
func (t *ThemeData) CSS() string {
	brightness := t.Brightness
	if brightness == "" {
		brightness = BrightnessLight
	}
	var b strings.Builder
	fmt.Fprintf(&b, ":root {\n  color-scheme: %s;\n", brightness)
	for _, tok := range t.Tokens() {
		fmt.Fprintf(&b, "  --%s: %s;\n", tok[0], tok[1])
	}
	b.WriteString("}\n")
	return b.String()
}

// Inject adds the theme stylesheet to doc's head, replacing a stylesheet
// injected earlier for the same prefix. The returned function removes it.
func (t *ThemeData) Inject(doc *dom.Document) func() {
	attr := "data-" + t.prefix() + "-theme"
	if old := doc.Head().QuerySelector("style[" + attr + "]"); old != nil {
		old.Remove()
	}
	style := doc.MustCreateElement("style")
	style.SetAttribute(attr, string(t.Brightness))
	style.SetText(t.CSS())
	doc.Head().AppendChild(style)
	return style.Remove
}
