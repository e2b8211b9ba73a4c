package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-mtrl/mtrl/pkg/dom"
)

// UpdateSnapshotsEnv rewrites snapshot files instead of comparing when set
// to "1".
const UpdateSnapshotsEnv = "MTRL_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is an indented rendering of an element subtree, one node per
// line, with attributes in source order.
type Snapshot struct {
	Text string
}

// CaptureSnapshot renders el and its descendants.
func CaptureSnapshot(el *dom.Element) *Snapshot {
	var b strings.Builder
	writeNode(&b, el.Node(), 0)
	return &Snapshot{Text: b.String()}
}

// String returns the snapshot text.
func (s *Snapshot) String() string { return s.Text }

// MatchesFile compares the snapshot against the file at path and
// reports a diff and instructions for updating. When MTRL_UPDATE_SNAPSHOTS=1
// is set the file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(&Snapshot{Text: string(data)}); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s.Text), 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot.
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	if s.Text == other.Text {
		return ""
	}
	return unifiedDiff(other.Text, s.Text)
}

func writeNode(b *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case html.ElementNode:
		b.WriteString(indent)
		b.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			if a.Val == "" {
				fmt.Fprintf(b, " %s", a.Key)
				continue
			}
			fmt.Fprintf(b, " %s=%q", a.Key, a.Val)
		}
		b.WriteString(">\n")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(b, c, depth+1)
		}
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			fmt.Fprintf(b, "%s%q\n", indent, text)
		}
	}
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := max(len(expectedLines), len(actualLines))
	for i := range maxLen {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
