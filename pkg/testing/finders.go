package testing

import (
	"fmt"
	"strings"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

// Finder locates elements in a document subtree.
type Finder interface {
	// Evaluate returns all matching elements under root, in document order.
	// root itself is never a match.
	Evaluate(root *dom.Element) []*dom.Element
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []*dom.Element
	finder   Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *dom.Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.describe()))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *dom.Element {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *dom.Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.describe()))
	}
	return r.elements[index]
}

// All returns all matches in document order.
func (r FinderResult) All() []*dom.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

type selectorFinder struct {
	selector string
}

// BySelector finds elements matching a CSS selector.
func BySelector(selector string) Finder {
	return selectorFinder{selector: selector}
}

func (f selectorFinder) Evaluate(root *dom.Element) []*dom.Element {
	return root.QuerySelectorAll(f.selector)
}

func (f selectorFinder) Description() string {
	return fmt.Sprintf("BySelector(%q)", f.selector)
}

// ByClass finds elements carrying class.
func ByClass(class string) Finder {
	return selectorFinder{selector: "." + class}
}

// ByRole finds elements with the given role attribute.
func ByRole(role string) Finder {
	return selectorFinder{selector: fmt.Sprintf("[role=%q]", role)}
}

// ByAttribute finds elements whose attribute name equals value.
func ByAttribute(name, value string) Finder {
	return selectorFinder{selector: fmt.Sprintf("[%s=%q]", name, value)}
}

type textFinder struct {
	text    string
	partial bool
}

// ByText finds the innermost elements whose trimmed text equals text.
func ByText(text string) Finder {
	return textFinder{text: text}
}

// ByTextContaining finds the innermost elements whose text contains substr.
func ByTextContaining(substr string) Finder {
	return textFinder{text: substr, partial: true}
}

func (f textFinder) match(el *dom.Element) bool {
	got := strings.TrimSpace(el.Text())
	if f.partial {
		return strings.Contains(got, f.text)
	}
	return got == f.text
}

// Evaluate skips ancestors whose text only matches through a matching child.
func (f textFinder) Evaluate(root *dom.Element) []*dom.Element {
	var out []*dom.Element
	for _, el := range root.QuerySelectorAll("*") {
		if !f.match(el) {
			continue
		}
		inner := false
		for _, child := range el.Children() {
			if f.match(child) {
				inner = true
				break
			}
		}
		if !inner {
			out = append(out, el)
		}
	}
	return out
}

func (f textFinder) Description() string {
	if f.partial {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

type predicateFinder struct {
	pred func(*dom.Element) bool
	desc string
}

// ByPredicate finds elements for which pred returns true.
func ByPredicate(pred func(*dom.Element) bool, description string) Finder {
	return predicateFinder{pred: pred, desc: description}
}

func (f predicateFinder) Evaluate(root *dom.Element) []*dom.Element {
	var out []*dom.Element
	for _, el := range root.QuerySelectorAll("*") {
		if f.pred(el) {
			out = append(out, el)
		}
	}
	return out
}

func (f predicateFinder) Description() string {
	return fmt.Sprintf("ByPredicate(%s)", f.desc)
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

// Descendant finds elements matching matching under elements matching of.
func Descendant(of, matching Finder) Finder {
	return descendantFinder{of: of, matching: matching}
}

func (f descendantFinder) Evaluate(root *dom.Element) []*dom.Element {
	var out []*dom.Element
	seen := make(map[*dom.Element]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, el := range f.matching.Evaluate(ancestor) {
			if !seen[el] {
				seen[el] = true
				out = append(out, el)
			}
		}
	}
	return out
}

func (f descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}
