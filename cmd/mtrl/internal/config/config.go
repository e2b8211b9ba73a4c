package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Page file names, in lookup order.
var FileNames = []string{"mtrl.yaml", "mtrl.yml", "mtrl.toml"}

// ErrNoPageFile is returned when a directory holds none of FileNames.
var ErrNoPageFile = errors.New("no page file found")

// Config represents a page file.
type Config struct {
	Page    PageConfig  `yaml:"page" toml:"page"`
	Theme   ThemeConfig `yaml:"theme" toml:"theme"`
	Widgets []Widget    `yaml:"widgets" toml:"widgets" validate:"dive"`
}

// PageConfig contains document metadata.
type PageConfig struct {
	Title string `yaml:"title,omitempty" toml:"title,omitempty"`
	Lang  string `yaml:"lang,omitempty" toml:"lang,omitempty" validate:"omitempty,bcp47_language_tag"`
}

// ThemeConfig selects the theme injected into the page.
type ThemeConfig struct {
	Brightness string `yaml:"brightness,omitempty" toml:"brightness,omitempty" validate:"omitempty,oneof=light dark"`
	Prefix     string `yaml:"prefix,omitempty" toml:"prefix,omitempty" validate:"omitempty,class_prefix"`
	Primary    string `yaml:"primary,omitempty" toml:"primary,omitempty" validate:"omitempty,color"`
}

// Widget declares one widget. Fields a widget type does not use are ignored.
type Widget struct {
	Type     string `yaml:"type" toml:"type" validate:"required,widget_type"`
	ID       string `yaml:"id,omitempty" toml:"id,omitempty" validate:"omitempty,element_id"`
	Variant  string `yaml:"variant,omitempty" toml:"variant,omitempty"`
	Text     string `yaml:"text,omitempty" toml:"text,omitempty"`
	Icon     string `yaml:"icon,omitempty" toml:"icon,omitempty"`
	Label    string `yaml:"label,omitempty" toml:"label,omitempty"`
	Title    string `yaml:"title,omitempty" toml:"title,omitempty"`
	Subtitle string `yaml:"subtitle,omitempty" toml:"subtitle,omitempty"`
	Content  string `yaml:"content,omitempty" toml:"content,omitempty"`
	Value    string `yaml:"value,omitempty" toml:"value,omitempty"`
	// Target is the id of the element a tooltip describes.
	Target   string `yaml:"target,omitempty" toml:"target,omitempty" validate:"required_if=Type tooltip"`
	Position string `yaml:"position,omitempty" toml:"position,omitempty"`
	Active   string `yaml:"active,omitempty" toml:"active,omitempty"`
	Class    string `yaml:"class,omitempty" toml:"class,omitempty"`

	Disabled    bool `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Selected    bool `yaml:"selected,omitempty" toml:"selected,omitempty"`
	Checked     bool `yaml:"checked,omitempty" toml:"checked,omitempty"`
	Open        bool `yaml:"open,omitempty" toml:"open,omitempty"`
	MultiSelect bool `yaml:"multi_select,omitempty" toml:"multi_select,omitempty"`
	AutoHide    bool `yaml:"auto_hide,omitempty" toml:"auto_hide,omitempty"`

	// Items are navigation entries.
	Items []NavItem `yaml:"items,omitempty" toml:"items,omitempty" validate:"dive"`
	// Children are the chips of a chip set or the actions of a card or app bar.
	Children []Widget `yaml:"children,omitempty" toml:"children,omitempty" validate:"dive"`
}

// NavItem declares a navigation entry.
type NavItem struct {
	ID       string    `yaml:"id" toml:"id" validate:"required,element_id"`
	Label    string    `yaml:"label,omitempty" toml:"label,omitempty"`
	Icon     string    `yaml:"icon,omitempty" toml:"icon,omitempty"`
	Badge    string    `yaml:"badge,omitempty" toml:"badge,omitempty"`
	Disabled bool      `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Expanded bool      `yaml:"expanded,omitempty" toml:"expanded,omitempty"`
	Items    []NavItem `yaml:"items,omitempty" toml:"items,omitempty" validate:"dive"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Dir is the directory the page file was read from.
	Dir string
	// File is the page file path.
	File string
	// ModulePath is the enclosing Go module, empty outside a module.
	ModulePath string
	Title      string
	Lang       string
	Config     *Config
}

// Load reads the first page file found in dir.
func Load(dir string) (*Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", name, err)
		}
		cfg, err := Parse(name, data)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	return nil, "", fmt.Errorf("%w in %s (looked for %s)", ErrNoPageFile, dir, strings.Join(FileNames, ", "))
}

// Parse decodes a page file. The format follows the file extension. Unknown
// keys are rejected.
func Parse(name string, data []byte) (*Config, error) {
	var cfg Config
	switch filepath.Ext(name) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported page file %q", name)
	}
	return &cfg, nil
}

// Resolve loads and validates the page file in dir and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	cfg, file, err := Load(abs)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	modPath := ""
	if root, err := FindModuleRoot(abs); err == nil {
		if modPath, err = modulePath(root); err != nil {
			return nil, err
		}
	}

	title := strings.TrimSpace(cfg.Page.Title)
	if title == "" {
		title = defaultTitle(modPath, abs)
	}

	lang := strings.TrimSpace(cfg.Page.Lang)
	if lang == "" {
		lang = "en"
	}

	return &Resolved{
		Dir:        abs,
		File:       file,
		ModulePath: modPath,
		Title:      title,
		Lang:       lang,
		Config:     cfg,
	}, nil
}

// FindModuleRoot walks up from dir to the directory holding go.mod.
func FindModuleRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultTitle names the page after the last module path element, without a
// major version suffix, or after the directory outside a module.
func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "mtrl"
	}
	return base
}
