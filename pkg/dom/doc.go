// Package dom is a small document object model for building widgets.
//
// It mirrors the subset of the browser DOM the widget library relies on:
// element creation, attributes and classes, tree mutation, selector queries,
// focus, inline styles and event dispatch with bubbling. Nodes are backed by
// golang.org/x/net/html, so a document can be rendered to HTML at any time,
// and selectors are evaluated with goquery.
//
// A Document is not safe for concurrent use. Callbacks scheduled through the
// document's [schedule.Scheduler] run on the scheduler's single goroutine,
// which is the only place widget code should touch the tree. A document
// created without WithScheduler owns a [schedule.Loop]; start it with
// [Document.Run] (or [Run] for the [Default] document) and hand work to it
// from other goroutines with [Document.Dispatch].
package dom
