// Package testing provides helpers for testing widgets against a headless
// document.
//
// # Quick Start
//
// Create a tester, build a widget against its document, and make assertions:
//
//	func TestChip(t *testing.T) {
//	    tester := mtrltest.NewTesterWithT(t, mtrltest.WithTouch())
//	    chip := widgets.NewChip(widgets.ChipConfig{Text: "Tag", Document: tester.Document()})
//	    tester.Mount(chip.Element())
//
//	    // Find elements
//	    label := tester.Find(mtrltest.ByText("Tag")).First()
//
//	    // Simulate gestures
//	    tester.Tap(label)
//	}
//
// # Time
//
// The document's scheduler is a [FakeScheduler]. Delayed callbacks (tooltip
// delays, ripple cleanup, sheet transitions) run only when the test moves
// time forward:
//
//	tester.Advance(300 * time.Millisecond)
//	tester.Flush()
//
// # Snapshot Testing
//
// Capture and compare element subtree snapshots:
//
//	mtrltest.CaptureSnapshot(card.Element()).MatchesFile(t, "testdata/card.snapshot")
//
// Update snapshots with:
//
//	MTRL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import mtrltest "github.com/go-mtrl/mtrl/pkg/testing"
package testing
