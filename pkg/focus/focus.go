// Package focus moves keyboard focus within a group of elements, the way
// composite widgets (chip sets, navigation lists) do with arrow keys.
package focus

import "github.com/go-mtrl/mtrl/pkg/dom"

// TraversalDirection indicates where focus moves within a group.
type TraversalDirection int

const (
	// TraversalNext moves to the following element, wrapping at the end.
	TraversalNext TraversalDirection = iota
	// TraversalPrevious moves to the preceding element, wrapping at the start.
	TraversalPrevious
	// TraversalFirst moves to the first element.
	TraversalFirst
	// TraversalLast moves to the last element.
	TraversalLast
)

// DirectionForKey maps a KeyboardEvent key to a traversal direction.
// Right and Down move forward, Left and Up move back.
func DirectionForKey(key string) (TraversalDirection, bool) {
	switch key {
	case "ArrowRight", "ArrowDown":
		return TraversalNext, true
	case "ArrowLeft", "ArrowUp":
		return TraversalPrevious, true
	case "Home":
		return TraversalFirst, true
	case "End":
		return TraversalLast, true
	}
	return 0, false
}

// Move returns the index focus lands on when moving from current in a group
// of count elements. It returns -1 for an empty group.
func Move(current, count int, dir TraversalDirection) int {
	if count <= 0 {
		return -1
	}
	switch dir {
	case TraversalFirst:
		return 0
	case TraversalLast:
		return count - 1
	case TraversalPrevious:
		return wrapIndex(current-1, count)
	default:
		return wrapIndex(current+1, count)
	}
}

// HandleKey moves focus among items in response to a keydown event whose
// target sits inside one of them. It prevents the default action and
// reports true when focus moved.
func HandleKey(ev *dom.Event, items []*dom.Element) bool {
	dir, ok := DirectionForKey(ev.Key)
	if !ok {
		return false
	}
	current := IndexOf(items, ev.Target)
	if current < 0 {
		return false
	}
	next := Move(current, len(items), dir)
	ev.PreventDefault()
	items[next].Focus()
	return true
}

// IndexOf returns the index of the item containing target, or -1.
func IndexOf(items []*dom.Element, target *dom.Element) int {
	for i, item := range items {
		if item.Contains(target) {
			return i
		}
	}
	return -1
}

func wrapIndex(index, count int) int {
	if count == 0 {
		return 0
	}
	index %= count
	if index < 0 {
		index += count
	}
	return index
}
