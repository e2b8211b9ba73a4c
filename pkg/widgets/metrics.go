package widgets

import (
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// metricsFace approximates rendered text when the host reports no layout.
var metricsFace font.Face = basicfont.Face7x13

// textLine is a single laid-out line of text.
type textLine struct {
	text  string
	width float64
}

// textLayout contains measured text metrics.
type textLayout struct {
	lines      []textLine
	width      float64
	height     float64
	lineHeight float64
}

// paragraphOptions controls line wrapping. The zero value lays the text out
// on one line.
type paragraphOptions struct {
	// maxWidth is the width available for wrapping. 0 means no wrapping.
	maxWidth float64
	// maxLines limits the number of lines. 0 means unlimited.
	maxLines int
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func measure(s string) float64 {
	return toFloat(font.MeasureString(metricsFace, s))
}

// layoutText wraps text on word boundaries and measures each line.
func layoutText(text string, opts paragraphOptions) textLayout {
	layout := textLayout{lineHeight: toFloat(metricsFace.Metrics().Height)}
	for _, paragraph := range strings.Split(text, "\n") {
		layout.lines = append(layout.lines, wrapWords(strings.Fields(paragraph), opts.maxWidth)...)
	}
	if opts.maxLines > 0 && len(layout.lines) > opts.maxLines {
		layout.lines = layout.lines[:opts.maxLines]
	}
	for _, line := range layout.lines {
		layout.width = max(layout.width, line.width)
	}
	layout.height = float64(len(layout.lines)) * layout.lineHeight
	return layout
}

func wrapWords(words []string, maxWidth float64) []textLine {
	if len(words) == 0 {
		return []textLine{{}}
	}
	var lines []textLine
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if maxWidth > 0 && measure(candidate) > maxWidth {
			lines = append(lines, textLine{text: current, width: measure(current)})
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, textLine{text: current, width: measure(current)})
}

// px formats a pixel length for inline styles.
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
