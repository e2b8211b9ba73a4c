package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mtrl/mtrl/cmd/mtrl/internal/config"
	"github.com/go-mtrl/mtrl/pkg/logging"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(logging.Discard)

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestComponentsCommand(t *testing.T) {
	out, err := execute(t, "components")
	require.NoError(t, err)
	assert.Equal(t, config.WidgetTypes, strings.Fields(out))
}

func TestRenderCommand_Stdout(t *testing.T) {
	dir := t.TempDir()
	page := "page:\n  title: Hello\nwidgets:\n  - type: button\n    id: go\n    text: Go\n  - type: tooltip\n    target: go\n    text: Start\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mtrl.yaml"), []byte(page), 0o644))

	out, err := execute(t, "render", dir, "--settle", "50ms")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Hello</title>")
	assert.Contains(t, out, `id="go"`)
	assert.Contains(t, out, `role="tooltip"`)
}

func TestRenderCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mtrl.toml"), []byte("[[widgets]]\ntype = \"switch\"\nlabel = \"Wifi\"\n"), 0o644))
	target := filepath.Join(dir, "out.html")

	out, err := execute(t, "-v", "render", dir, "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), `role="switch"`)
}

func TestRenderCommand_Errors(t *testing.T) {
	_, err := execute(t, "render", t.TempDir())
	assert.ErrorIs(t, err, config.ErrNoPageFile)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mtrl.yaml"), []byte("widgets:\n  - type: slider\n"), 0o644))
	_, err = execute(t, "render", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widgets[0].type")

	_, err = execute(t, "render", "a", "b")
	assert.Error(t, err)
}
