package dom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// tree maps the nodes of one connected node tree to their Elements. The
// document tree has one, and every detached subtree owns its own, so an
// Element stays reachable from its Document only while it is attached.
// Dropping the last reference to a detached subtree releases its Elements
// together with their listeners.
type tree struct {
	elements map[*html.Node]*Element
}

func newTree() *tree {
	return &tree{elements: make(map[*html.Node]*Element)}
}

// wrap returns the Element for n, creating it on first use so that the same
// node always maps to the same Element (and the same listeners).
func (t *tree) wrap(d *Document, n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := t.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n, tree: t}
	t.elements[n] = el
	return el
}

func (t *tree) first(d *Document, sel *goquery.Selection) *Element {
	if sel.Length() == 0 {
		return nil
	}
	return t.wrap(d, sel.Get(0))
}

func (t *tree) all(d *Document, sel *goquery.Selection) []*Element {
	out := make([]*Element, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		out = append(out, t.wrap(d, n))
	}
	return out
}

// move transfers the Elements of root and its descendants from t to dst.
func (t *tree) move(root *html.Node, dst *tree) {
	if t == dst {
		return
	}
	t.moveOne(root, dst)
	for n := range descendants(root) {
		t.moveOne(n, dst)
	}
}

func (t *tree) moveOne(n *html.Node, dst *tree) {
	el, ok := t.elements[n]
	if !ok {
		return
	}
	delete(t.elements, n)
	dst.elements[n] = el
	el.tree = dst
}

// split unlinks n from its parent and gives the subtree a tree of its own.
func (t *tree) split(n *html.Node) *tree {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	own := newTree()
	t.move(n, own)
	return own
}

// size returns the number of Elements the tree keeps alive.
func (t *tree) size() int { return len(t.elements) }
