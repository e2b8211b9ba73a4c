package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutText(t *testing.T) {
	layout := layoutText("hello world", paragraphOptions{})
	assert.Len(t, layout.lines, 1)
	assert.Equal(t, 77.0, layout.width)
	assert.Equal(t, 13.0, layout.height)

	wrapped := layoutText("hello world", paragraphOptions{maxWidth: 40})
	assert.Equal(t, []textLine{{text: "hello", width: 35}, {text: "world", width: 35}}, wrapped.lines)
	assert.Equal(t, 26.0, wrapped.height)

	clipped := layoutText("one two\nthree", paragraphOptions{maxWidth: 40, maxLines: 2})
	assert.Equal(t, []string{"one", "two"}, []string{clipped.lines[0].text, clipped.lines[1].text})

	empty := layoutText("", paragraphOptions{})
	assert.Equal(t, 0.0, empty.width)
	assert.Equal(t, 13.0, empty.height)
}

func TestPx(t *testing.T) {
	assert.Equal(t, "12px", px(12))
	assert.Equal(t, "121.5px", px(121.5))
}
