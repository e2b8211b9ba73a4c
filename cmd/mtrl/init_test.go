package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-mtrl/mtrl/cmd/mtrl/internal/config"
)

func TestInitCommand_YAML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	out, err := execute(t, "init", dir, "--title", `Team "A"`)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "mtrl.yaml"))

	res, err := config.Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, `Team "A"`, res.Title)
	assert.Equal(t, "light", res.Config.Theme.Brightness)
	require.Len(t, res.Config.Widgets, 3)
	assert.Equal(t, `Team "A"`, res.Config.Widgets[0].Title)

	html, err := execute(t, "render", dir, "--settle", "50ms")
	require.NoError(t, err)
	assert.Contains(t, html, "Get started")
}

func TestInitCommand_TOMLDefaultsTitle(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "init", dir, "--format", "toml", "--brightness", "dark")
	require.NoError(t, err)

	res, err := config.Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mtrl.toml"), res.File)
	assert.Equal(t, "dark", res.Config.Theme.Brightness)
	assert.Equal(t, filepath.Base(dir), res.Title)
	assert.Equal(t, "Home", res.Config.Widgets[0].Title)
	require.Len(t, res.Config.Widgets[1].Children, 1)
}

func TestInitCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mtrl.toml"), []byte("bad"), 0o644))

	_, err := execute(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "init", t.TempDir(), "--format", "json")
	assert.Error(t, err)

	_, err = execute(t, "init", t.TempDir(), "--brightness", "dim")
	assert.Error(t, err)

	_, err = execute(t, "init", "~/site")
	assert.Error(t, err)
}
