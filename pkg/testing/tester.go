package testing

import (
	"testing"
	"time"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

const (
	// DefaultTestWidth is the default viewport width.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default viewport height.
	DefaultTestHeight = 600
)

// Tester owns an isolated document driven by a fake scheduler. Widgets
// created against Document() see deterministic time: timers only fire when
// the test calls Advance or Flush.
type Tester struct {
	doc   *dom.Document
	sched *FakeScheduler
}

// TesterOption configures a Tester.
type TesterOption func(*testerConfig)

type testerConfig struct {
	touch  bool
	width  float64
	height float64
}

// WithTouch makes the window report touch support, which enables tap and
// swipe synthesis on interactive widgets.
func WithTouch() TesterOption {
	return func(c *testerConfig) { c.touch = true }
}

// WithViewport sets the viewport size.
func WithViewport(width, height float64) TesterOption {
	return func(c *testerConfig) {
		c.width = width
		c.height = height
	}
}

// NewTester creates a tester with a fresh document and fake scheduler.
func NewTester(opts ...TesterOption) *Tester {
	cfg := testerConfig{width: DefaultTestWidth, height: DefaultTestHeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	sched := NewFakeScheduler(nil)
	doc := dom.NewDocument(
		dom.WithScheduler(sched),
		dom.WithTouch(cfg.touch),
		dom.WithViewport(cfg.width, cfg.height),
	)
	return &Tester{doc: doc, sched: sched}
}

// NewTesterWithT creates a tester whose pending callbacks are discarded when
// the test ends.
func NewTesterWithT(t testing.TB, opts ...TesterOption) *Tester {
	t.Helper()
	tester := NewTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops every pending callback.
func (t *Tester) Cleanup() {
	for _, timer := range append([]*fakeTimer(nil), t.sched.timers...) {
		timer.Stop()
	}
}

// Document returns the tester's document.
func (t *Tester) Document() *dom.Document { return t.doc }

// Scheduler returns the fake scheduler backing the document.
func (t *Tester) Scheduler() *FakeScheduler { return t.sched }

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock { return t.sched.Clock() }

// Advance moves time forward, running due callbacks.
func (t *Tester) Advance(d time.Duration) { t.sched.Advance(d) }

// Flush runs every pending callback.
func (t *Tester) Flush() { t.sched.Flush() }

// Mount appends el to the document body and returns it.
func (t *Tester) Mount(el *dom.Element) *dom.Element {
	t.doc.Body().AppendChild(el)
	return el
}

// Find evaluates finder against the document body.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{elements: finder.Evaluate(t.doc.Body()), finder: finder}
}

// FindIn evaluates finder against root.
func (t *Tester) FindIn(root *dom.Element, finder Finder) FinderResult {
	return FinderResult{elements: finder.Evaluate(root), finder: finder}
}

// HTML renders the whole document.
func (t *Tester) HTML() string { return t.doc.HTML() }
