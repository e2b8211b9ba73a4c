package dom

import (
	"bytes"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is an element node in a Document.
type Element struct {
	EventTarget

	doc       *Document
	node      *html.Node
	tree      *tree
	rect      Rect
	scrollTop float64
}

// Node returns the underlying html node.
func (e *Element) Node() *html.Node { return e.node }

// OwnerDocument returns the document that created the element.
func (e *Element) OwnerDocument() *Document { return e.doc }

// TagName returns the lower-case tag name.
func (e *Element) TagName() string { return e.node.Data }

// ID returns the id attribute.
func (e *Element) ID() string {
	id, _ := e.GetAttribute("id")
	return id
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) *Element {
	return e.SetAttribute("id", id)
}

// Attributes

// SetAttribute sets an attribute, replacing any existing value.
func (e *Element) SetAttribute(name, value string) *Element {
	name = strings.ToLower(name)
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return e
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
	return e
}

// GetAttribute returns an attribute value and whether it is present.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Attr returns an attribute value, or "" when absent.
func (e *Element) Attr(name string) string {
	v, _ := e.GetAttribute(name)
	return v
}

// HasAttribute reports whether an attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) *Element {
	name = strings.ToLower(name)
	e.node.Attr = slices.DeleteFunc(e.node.Attr, func(a html.Attribute) bool { return a.Key == name })
	return e
}

// ToggleAttribute sets a boolean attribute when on and removes it otherwise.
func (e *Element) ToggleAttribute(name string, on bool) *Element {
	if on {
		return e.SetAttribute(name, "")
	}
	return e.RemoveAttribute(name)
}

// Classes

// Classes returns the class list in attribute order.
func (e *Element) Classes() []string {
	return strings.Fields(e.Attr("class"))
}

// ClassName returns the raw class attribute.
func (e *Element) ClassName() string { return e.Attr("class") }

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.Classes(), name)
}

// AddClass adds each non-empty class not already present.
func (e *Element) AddClass(names ...string) *Element {
	classes := e.Classes()
	changed := false
	for _, n := range names {
		for _, c := range strings.Fields(n) {
			if !slices.Contains(classes, c) {
				classes = append(classes, c)
				changed = true
			}
		}
	}
	if changed {
		e.setClasses(classes)
	}
	return e
}

// RemoveClass removes each named class.
func (e *Element) RemoveClass(names ...string) *Element {
	classes := e.Classes()
	n := len(classes)
	classes = slices.DeleteFunc(classes, func(c string) bool { return slices.Contains(names, c) })
	if len(classes) != n {
		e.setClasses(classes)
	}
	return e
}

// ToggleClass adds name when on and removes it otherwise.
func (e *Element) ToggleClass(name string, on bool) *Element {
	if on {
		return e.AddClass(name)
	}
	return e.RemoveClass(name)
}

func (e *Element) setClasses(classes []string) {
	if len(classes) == 0 {
		e.RemoveAttribute("class")
		return
	}
	e.SetAttribute("class", strings.Join(classes, " "))
}

// Content

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var sb strings.Builder
	for n := range descendants(e.node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	}
	return sb.String()
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) *Element {
	e.removeAllChildren()
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return e
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// OuterHTML serializes the element and its children.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	_ = html.Render(&buf, e.node)
	return buf.String()
}

// SetInnerHTML parses markup as a fragment and replaces the children with it.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     e.node.Data,
		DataAtom: e.node.DataAtom,
	})
	if err != nil {
		return newError(SyntaxError, "parse fragment: %v", err)
	}
	e.removeAllChildren()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

func (e *Element) removeAllChildren() {
	if a := e.doc.active; a != nil && a != e && e.Contains(a) {
		e.doc.setActive(nil)
	}
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.tree.split(c)
		c = next
	}
}

func (e *Element) wrap(n *html.Node) *Element {
	return e.tree.wrap(e.doc, n)
}

// Tree

// Parent returns the parent element, or nil when detached or attached
// directly to the document node.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.wrap(p)
}

// IsConnected reports whether the element is attached to its document.
func (e *Element) IsConnected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.wrap(c))
		}
	}
	return out
}

// ChildCount returns the number of element children.
func (e *Element) ChildCount() int {
	n := 0
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n++
		}
	}
	return n
}

// FirstElementChild returns the first element child, or nil.
func (e *Element) FirstElementChild() *Element {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return e.wrap(c)
		}
	}
	return nil
}

// LastElementChild returns the last element child, or nil.
func (e *Element) LastElementChild() *Element {
	for c := e.node.LastChild; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return e.wrap(c)
		}
	}
	return nil
}

// NextElementSibling returns the next sibling element, or nil.
func (e *Element) NextElementSibling() *Element {
	for c := e.node.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return e.wrap(c)
		}
	}
	return nil
}

// PreviousElementSibling returns the previous sibling element, or nil.
func (e *Element) PreviousElementSibling() *Element {
	for c := e.node.PrevSibling; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return e.wrap(c)
		}
	}
	return nil
}

// Contains reports whether other is e or a descendant of e.
func (e *Element) Contains(other *Element) bool {
	if other == nil {
		return false
	}
	for n := other.node; n != nil; n = n.Parent {
		if n == e.node {
			return true
		}
	}
	return false
}

// AppendChild moves child to the end of e's children.
// It panics with a HierarchyRequestError if child contains e.
func (e *Element) AppendChild(child *Element) *Element {
	return e.InsertBefore(child, nil)
}

// PrependChild moves child to the front of e's children.
func (e *Element) PrependChild(child *Element) *Element {
	var ref *Element
	if e.node.FirstChild != nil {
		ref = e.wrap(e.node.FirstChild)
	}
	return e.InsertBefore(child, ref)
}

// InsertBefore moves child before ref, or to the end when ref is nil.
// It panics with a NotFoundError when ref is not a child of e, mirroring the
// DOM exception.
func (e *Element) InsertBefore(child, ref *Element) *Element {
	if child == nil {
		return e
	}
	if child.Contains(e) {
		panic(newError(HierarchyRequestError, "<%s> cannot be inserted into its own descendant", child.TagName()))
	}
	if ref != nil && ref.node.Parent != e.node {
		panic(newError(NotFoundError, "reference <%s> is not a child of <%s>", ref.TagName(), e.TagName()))
	}
	if ref == child {
		return e
	}
	child.detach()
	if ref == nil {
		e.node.AppendChild(child.node)
	} else {
		e.node.InsertBefore(child.node, ref.node)
	}
	child.tree.move(child.node, e.tree)
	return e
}

// InsertAfter moves child directly after ref, or to the front when ref is nil.
func (e *Element) InsertAfter(child, ref *Element) *Element {
	if ref == nil {
		return e.PrependChild(child)
	}
	if ref.node.Parent != e.node {
		panic(newError(NotFoundError, "reference <%s> is not a child of <%s>", ref.TagName(), e.TagName()))
	}
	next := ref.node.NextSibling
	if next == nil {
		return e.InsertBefore(child, nil)
	}
	if next == child.node {
		return e
	}
	return e.InsertBefore(child, e.wrap(next))
}

// RemoveChild detaches child from e. It is a no-op if child is not a child
// of e.
func (e *Element) RemoveChild(child *Element) *Element {
	if child != nil && child.node.Parent == e.node {
		child.detach()
	}
	return e
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	e.detach()
}

// ReplaceWith puts other in e's position and detaches e.
func (e *Element) ReplaceWith(other *Element) {
	parent := e.node.Parent
	if parent == nil || other == nil {
		return
	}
	if other == e {
		return
	}
	other.detach()
	parent.InsertBefore(other.node, e.node)
	other.tree.move(other.node, e.tree)
	e.detach()
}

// detach unlinks e from its parent. The subtree takes its Elements along,
// so the old tree no longer references them.
func (e *Element) detach() {
	if e.node.Parent == nil {
		return
	}
	if e.doc.active != nil && e.Contains(e.doc.active) {
		e.doc.setActive(nil)
	}
	e.tree.split(e.node)
}

// Queries

// QuerySelector returns the first descendant matching selector, or nil.
func (e *Element) QuerySelector(selector string) *Element {
	return e.tree.first(e.doc, e.selection().Find(selector))
}

// QuerySelectorAll returns all descendants matching selector.
func (e *Element) QuerySelectorAll(selector string) []*Element {
	return e.tree.all(e.doc, e.selection().Find(selector))
}

// Matches reports whether e matches selector.
func (e *Element) Matches(selector string) bool {
	return e.selection().Is(selector)
}

// Closest returns the nearest inclusive ancestor matching selector, or nil.
func (e *Element) Closest(selector string) *Element {
	return e.tree.first(e.doc, e.selection().Closest(selector))
}

func (e *Element) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.node).Selection
}

// Style

// SetStyle sets an inline style property. An empty value removes it.
func (e *Element) SetStyle(prop, value string) *Element {
	decls := parseStyle(e.Attr("style"))
	idx := slices.IndexFunc(decls, func(d styleDecl) bool { return d.prop == prop })
	switch {
	case value == "" && idx >= 0:
		decls = slices.Delete(decls, idx, idx+1)
	case value == "":
		return e
	case idx >= 0:
		decls[idx].value = value
	default:
		decls = append(decls, styleDecl{prop: prop, value: value})
	}
	if len(decls) == 0 {
		return e.RemoveAttribute("style")
	}
	return e.SetAttribute("style", formatStyle(decls))
}

// Style returns an inline style property value.
func (e *Element) Style(prop string) string {
	for _, d := range parseStyle(e.Attr("style")) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// RemoveStyle removes an inline style property.
func (e *Element) RemoveStyle(prop string) *Element {
	return e.SetStyle(prop, "")
}

type styleDecl struct {
	prop  string
	value string
}

func parseStyle(s string) []styleDecl {
	var out []styleDecl
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop, value = strings.TrimSpace(prop), strings.TrimSpace(value)
		if prop != "" {
			out = append(out, styleDecl{prop: prop, value: value})
		}
	}
	return out
}

func formatStyle(decls []styleDecl) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ": " + d.value
	}
	return strings.Join(parts, "; ") + ";"
}

// Form state

// Checked reports the checked state of an input.
func (e *Element) Checked() bool { return e.HasAttribute("checked") }

// SetChecked sets the checked state of an input.
func (e *Element) SetChecked(checked bool) *Element {
	return e.ToggleAttribute("checked", checked)
}

// Value returns the value attribute.
func (e *Element) Value() string { return e.Attr("value") }

// SetValue sets the value attribute.
func (e *Element) SetValue(v string) *Element { return e.SetAttribute("value", v) }

// Disabled reports whether the disabled attribute is present.
func (e *Element) Disabled() bool { return e.HasAttribute("disabled") }

// IsInput reports whether the element is an <input>.
func (e *Element) IsInput() bool { return e.node.DataAtom == atom.Input }

// Layout

// SetRect records the element's layout box. Hosts with a layout engine
// report positions here; headless documents leave it empty.
func (e *Element) SetRect(r Rect) *Element {
	e.rect = r
	return e
}

// BoundingClientRect returns the recorded layout box.
func (e *Element) BoundingClientRect() Rect { return e.rect }

// ScrollTop returns the element's vertical scroll offset.
func (e *Element) ScrollTop() float64 { return e.scrollTop }

// SetScrollTop scrolls the element and dispatches a non-bubbling "scroll"
// event when the offset changed.
func (e *Element) SetScrollTop(y float64) {
	if y < 0 {
		y = 0
	}
	if y == e.scrollTop {
		return
	}
	e.scrollTop = y
	e.DispatchEvent(NewEvent("scroll"))
}

// Focus

// Focus makes e the active element, blurring the previous one.
func (e *Element) Focus() {
	prev := e.doc.active
	if prev == e {
		return
	}
	if prev != nil {
		prev.Blur()
	}
	e.doc.setActive(e)
	e.DispatchEvent(NewEvent("focus"))
	e.DispatchEvent(NewEvent("focusin"))
}

// Blur removes focus from e if it is active.
func (e *Element) Blur() {
	if e.doc.active != e {
		return
	}
	e.doc.setActive(nil)
	e.DispatchEvent(NewEvent("blur"))
	e.DispatchEvent(NewEvent("focusout"))
}

// IsFocused reports whether e is the active element.
func (e *Element) IsFocused() bool { return e.doc.active == e }

// Events

// DispatchEvent dispatches ev at e. Bubbling events then visit each ancestor
// and finally the document when e is connected. It returns false when a
// listener called PreventDefault.
func (e *Element) DispatchEvent(ev *Event) bool {
	e.doc.stamp(ev)
	ev.Target = e
	for n := e.node; n != nil; n = n.Parent {
		if n.Type == html.DocumentNode {
			if n == e.doc.root {
				ev.CurrentTarget = nil
				e.doc.invoke(ev)
			}
			break
		}
		if n.Type != html.ElementNode {
			continue
		}
		cur := e.wrap(n)
		ev.CurrentTarget = cur
		cur.invoke(ev)
		if ev.stopped || !ev.Bubbles {
			break
		}
	}
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}

// Click dispatches a bubbling "click" event.
func (e *Element) Click() bool {
	return e.DispatchEvent(NewEvent("click"))
}
