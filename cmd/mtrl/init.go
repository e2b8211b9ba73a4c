package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/go-mtrl/mtrl/cmd/mtrl/internal/config"
	"github.com/go-mtrl/mtrl/pkg/logging"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type initFlags struct {
	format     string
	title      string
	brightness string
}

type initTemplateData struct {
	Title      string
	Heading    string
	Brightness string
}

func newInitCmd() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter page file",
		Long: `Write a starter mtrl.yaml (or mtrl.toml with --format toml) into dir.

The directory is created when missing. init refuses to run when dir
already holds a page file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path, err := scaffoldPage(dir, flags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Page file format (yaml or toml)")
	cmd.Flags().StringVar(&flags.title, "title", "", "Page title (defaults to the module name)")
	cmd.Flags().StringVar(&flags.brightness, "brightness", "light", "Theme brightness (light or dark)")

	return cmd
}

// scaffoldPage renders the starter template into dir and returns the path
// of the written file.
func scaffoldPage(dir string, flags *initFlags) (string, error) {
	if strings.HasPrefix(dir, "~") {
		return "", errors.New("tilde (~) is not expanded by mtrl; use an absolute path or $HOME instead")
	}
	switch flags.brightness {
	case "light", "dark":
	default:
		return "", fmt.Errorf("invalid brightness %q: want light or dark", flags.brightness)
	}

	var name string
	switch flags.format {
	case "yaml":
		name = "mtrl.yaml"
	case "toml":
		name = "mtrl.toml"
	default:
		return "", fmt.Errorf("invalid format %q: want yaml or toml", flags.format)
	}

	dir = filepath.Clean(dir)
	for _, existing := range config.FileNames {
		if _, err := os.Stat(filepath.Join(dir, existing)); err == nil {
			return "", fmt.Errorf("%s already exists in %s", existing, dir)
		}
	}

	heading := flags.title
	if heading == "" {
		heading = "Home"
	}
	content, err := renderTemplate(name+".tmpl", initTemplateData{
		Title:      flags.title,
		Heading:    heading,
		Brightness: flags.brightness,
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	log := logging.For("init")
	log.Info().Str("file", path).Msg("page file created")
	return path, nil
}

func renderTemplate(name string, data initTemplateData) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(template.FuncMap{"quote": strconv.Quote}).
		ParseFS(templatesFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return []byte(buf.String()), nil
}
