package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

func TestMove(t *testing.T) {
	assert.Equal(t, 1, Move(0, 3, TraversalNext))
	assert.Equal(t, 0, Move(2, 3, TraversalNext))
	assert.Equal(t, 2, Move(0, 3, TraversalPrevious))
	assert.Equal(t, 0, Move(1, 3, TraversalFirst))
	assert.Equal(t, 2, Move(1, 3, TraversalLast))
	assert.Equal(t, -1, Move(0, 0, TraversalNext))
}

func TestDirectionForKey(t *testing.T) {
	dir, ok := DirectionForKey("ArrowDown")
	assert.True(t, ok)
	assert.Equal(t, TraversalNext, dir)

	dir, ok = DirectionForKey("ArrowLeft")
	assert.True(t, ok)
	assert.Equal(t, TraversalPrevious, dir)

	_, ok = DirectionForKey("Tab")
	assert.False(t, ok)
}

func TestHandleKey(t *testing.T) {
	doc := dom.NewDocument()
	group := doc.MustCreateElement("div")
	var items []*dom.Element
	for range 3 {
		btn := doc.MustCreateElement("button")
		group.AppendChild(btn)
		items = append(items, btn)
	}
	doc.Body().AppendChild(group)

	var handled []bool
	group.AddEventListener("keydown", func(ev *dom.Event) {
		handled = append(handled, HandleKey(ev, items))
	})

	items[0].Focus()
	assert.False(t, keyDown(items[0], "ArrowLeft"), "default prevented")
	assert.True(t, items[2].IsFocused())

	keyDown(items[2], "Home")
	assert.True(t, items[0].IsFocused())

	keyDown(items[0], "x")
	keyDown(group, "End")
	assert.True(t, items[0].IsFocused())

	assert.Equal(t, []bool{true, true, false, false}, handled)
	assert.Equal(t, -1, IndexOf(items, group))
}

func keyDown(el *dom.Element, key string) bool {
	ev := dom.NewEvent("keydown")
	ev.Key = key
	return el.DispatchEvent(ev)
}
