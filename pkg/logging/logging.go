// Package logging configures the zerolog logger shared by widgets and the CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options describes logger configuration.
type Options struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Empty means "warn", so library users see only problems by default.
	Level string
	// HumanReadable enables the console writer.
	HumanReadable bool
	// Writer receives log output. Defaults to stderr.
	Writer io.Writer
}

// The zerolog global logger has no level filter. Programs that never call
// Setup get the same warn-level logger Setup installs by default.
func init() {
	_ = Setup(Options{})
}

// Setup replaces the global logger.
func Setup(opts Options) error {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		output = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	return nil
}

// SetupVerbosity maps a -v count to a level, the way CLI flags express it.
func SetupVerbosity(verbosity int, w io.Writer) error {
	level := "warn"
	switch {
	case verbosity == 1:
		level = "info"
	case verbosity == 2:
		level = "debug"
	case verbosity > 2:
		level = "trace"
	}
	return Setup(Options{Level: level, HumanReadable: true, Writer: w})
}

// For returns a logger tagged with the component name.
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Discard silences the global logger. Tests call it to keep output clean.
func Discard() {
	log.Logger = zerolog.Nop()
}
