// Package widgets provides Material Design widgets assembled from the
// enhancers in package core.
//
// Every widget has a factory of the form NewX(XConfig) (*X, error). The
// factory merges the config over the widget's defaults, runs the enhancer
// pipeline and wraps any failure as an *errors.CreateError whose message
// reads "Failed to create <widget>: <cause>". A widget either comes back
// fully built or not at all.
//
// All widgets share a small surface:
//
//	chip, err := widgets.NewChip(widgets.ChipConfig{Text: "Filter", Variant: widgets.ChipFilter})
//	if err != nil {
//	    return err
//	}
//	doc.Body().AppendChild(chip.Element())
//	chip.On(core.EventChange, func(any) { ... })
//	defer chip.Destroy()
//
// Methods that change state return the receiver so calls can be chained.
// Widgets are not safe for concurrent use: like the DOM they are driven from
// the document's scheduler goroutine.
package widgets
