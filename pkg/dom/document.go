package dom

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"regexp"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-mtrl/mtrl/pkg/schedule"
)

var tagPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(-[A-Za-z0-9]+)*$`)

// Document owns a node tree, its window and its scheduler.
type Document struct {
	EventTarget

	root   *html.Node
	head   *html.Node
	body   *html.Node
	tree   *tree
	window *Window
	sched    schedule.Scheduler
	active   *Element
}

// Option configures a Document.
type Option func(*Document)

// WithScheduler sets the scheduler used for timers and frame callbacks.
func WithScheduler(s schedule.Scheduler) Option {
	return func(d *Document) { d.sched = s }
}

// WithTouch sets whether the window reports touch support.
func WithTouch(supported bool) Option {
	return func(d *Document) { d.window.touch = supported }
}

// WithViewport sets the window's inner size.
func WithViewport(width, height float64) Option {
	return func(d *Document) {
		d.window.width = width
		d.window.height = height
	}
}

// NewDocument creates an empty document with html, head and body elements.
// Without WithScheduler the document gets its own [schedule.Loop].
func NewDocument(opts ...Option) *Document {
	d := &Document{
		root: &html.Node{Type: html.DocumentNode},
		tree: newTree(),
	}
	d.window = &Window{doc: d, width: 1024, height: 768}

	d.root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	htmlNode := newElementNode("html")
	d.head = newElementNode("head")
	d.body = newElementNode("body")
	htmlNode.AppendChild(d.head)
	htmlNode.AppendChild(d.body)
	d.root.AppendChild(htmlNode)

	for _, opt := range opts {
		opt(d)
	}
	if d.sched == nil {
		d.sched = schedule.NewLoop(0)
	}
	return d
}

var defaultDocument = sync.OnceValue(func() *Document { return NewDocument() })

// Default returns the process-wide document, the equivalent of the browser's
// global document. Widgets use it when no document is configured.
func Default() *Document {
	return defaultDocument()
}

// ErrNotRunnable is returned by Run and RunUntilIdle when the document's
// scheduler is driven by someone else (a fake scheduler in tests, a host
// event loop).
var ErrNotRunnable = errors.New("dom: document scheduler cannot be run")

// runner is implemented by schedulers that execute their callbacks on the
// caller's goroutine, such as [schedule.Loop].
type runner interface {
	Run(ctx context.Context) error
	RunUntilIdle(ctx context.Context) error
	Dispatch(fn func()) bool
}

// Run executes the document's timer and frame callbacks on the calling
// goroutine until ctx is cancelled. Widget delays and transitions only
// happen while some goroutine runs the document.
func (d *Document) Run(ctx context.Context) error {
	r, ok := d.sched.(runner)
	if !ok {
		return ErrNotRunnable
	}
	return r.Run(ctx)
}

// RunUntilIdle executes callbacks until none are pending or ctx is
// cancelled.
func (d *Document) RunUntilIdle(ctx context.Context) error {
	r, ok := d.sched.(runner)
	if !ok {
		return ErrNotRunnable
	}
	return r.RunUntilIdle(ctx)
}

// Dispatch runs fn on the goroutine running the document. Use it to touch
// widgets from other goroutines while Run is active. It returns false when
// the scheduler cannot be run or fn is nil.
func (d *Document) Dispatch(fn func()) bool {
	r, ok := d.sched.(runner)
	return ok && r.Dispatch(fn)
}

// Run drives the Default document. Programs relying on the default document
// start it once, typically with go dom.Run(ctx).
func Run(ctx context.Context) error {
	return Default().Run(ctx)
}

// Parse builds a document from HTML source.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	d := NewDocument(opts...)
	d.root = root
	d.head, d.body = nil, nil
	for n := range descendants(root) {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.DataAtom {
		case atom.Head:
			if d.head == nil {
				d.head = n
			}
		case atom.Body:
			if d.body == nil {
				d.body = n
			}
		}
	}
	return d, nil
}

func newElementNode(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

// CreateElement creates a detached element. It fails with an
// InvalidCharacterError when tag is not a valid element name.
func (d *Document) CreateElement(tag string) (*Element, error) {
	if !tagPattern.MatchString(tag) {
		return nil, newError(InvalidCharacterError, "%q is not a valid tag name", tag)
	}
	return newTree().wrap(d, newElementNode(tag)), nil
}

// MustCreateElement is like CreateElement but panics on an invalid tag.
// Use it only with constant tag names.
func (d *Document) MustCreateElement(tag string) *Element {
	el, err := d.CreateElement(tag)
	if err != nil {
		panic(err)
	}
	return el
}

// Body returns the body element.
func (d *Document) Body() *Element { return d.wrap(d.body) }

// Head returns the head element.
func (d *Document) Head() *Element { return d.wrap(d.head) }

// Window returns the document's window.
func (d *Document) Window() *Window { return d.window }

// Scheduler returns the scheduler used for timers.
func (d *Document) Scheduler() schedule.Scheduler { return d.sched }

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Element { return d.active }

// QuerySelector returns the first element matching selector, or nil.
func (d *Document) QuerySelector(selector string) *Element {
	return d.first(goquery.NewDocumentFromNode(d.root).Find(selector))
}

// QuerySelectorAll returns all elements matching selector in document order.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	return d.all(goquery.NewDocumentFromNode(d.root).Find(selector))
}

// GetElementByID returns the element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	for n := range descendants(d.root) {
		if n.Type != html.ElementNode {
			continue
		}
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return d.wrap(n)
			}
		}
	}
	return nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// HTML returns the document serialized as HTML.
func (d *Document) HTML() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

// DispatchEvent dispatches ev on the document itself.
func (d *Document) DispatchEvent(ev *Event) bool {
	d.stamp(ev)
	d.invoke(ev)
	return !ev.defaultPrevented
}

func (d *Document) stamp(ev *Event) {
	if ev.Time.IsZero() {
		ev.Time = d.sched.Now()
	}
}

func (d *Document) wrap(n *html.Node) *Element {
	return d.tree.wrap(d, n)
}

func (d *Document) first(sel *goquery.Selection) *Element {
	return d.tree.first(d, sel)
}

func (d *Document) all(sel *goquery.Selection) []*Element {
	return d.tree.all(d, sel)
}

func (d *Document) setActive(el *Element) {
	d.active = el
}

// descendants yields every node below n in document order.
func descendants(n *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		var walk func(*html.Node) bool
		walk = func(p *html.Node) bool {
			for c := p.FirstChild; c != nil; c = c.NextSibling {
				if !yield(c) || !walk(c) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}
