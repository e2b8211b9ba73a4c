package testing

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

type fakeT struct {
	errors []string
	fatals []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

func TestCaptureSnapshot_Format(t *testing.T) {
	tester := NewTesterWithT(t)
	doc := tester.Document()
	card := doc.MustCreateElement("div").AddClass("mtrl-card").SetAttribute("role", "region")
	card.AppendChild(doc.MustCreateElement("span").SetText("Title"))
	card.AppendChild(doc.MustCreateElement("input").SetAttribute("checked", ""))

	want := strings.Join([]string{
		`<div class="mtrl-card" role="region">`,
		`  <span>`,
		`    "Title"`,
		`  <input checked>`,
		``,
	}, "\n")
	if got := CaptureSnapshot(card).String(); got != want {
		t.Errorf("unexpected snapshot:\n%s", got)
	}
}

func TestSnapshot_MatchesFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	tester := NewTesterWithT(t)
	el := tester.Document().MustCreateElement("p").SetText("hello")
	snap := CaptureSnapshot(el)
	path := filepath.Join(t.TempDir(), "nested", "p.snapshot")

	ft := &fakeT{}
	snap.MatchesFile(ft, path)
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "snapshot file missing") {
		t.Fatalf("expected missing-file failure, got %v", ft.fatals)
	}

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	ft = &fakeT{}
	snap.MatchesFile(ft, path)
	if len(ft.errors)+len(ft.fatals) != 0 {
		t.Errorf("expected match, got %v %v", ft.errors, ft.fatals)
	}

	el.SetText("changed")
	ft = &fakeT{}
	CaptureSnapshot(el).MatchesFile(ft, path)
	if len(ft.errors) != 1 || !strings.Contains(ft.errors[0], `+  "changed"`) {
		t.Errorf("expected diff mentioning the new text, got %v", ft.errors)
	}
}
