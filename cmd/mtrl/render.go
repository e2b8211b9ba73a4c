package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-mtrl/mtrl/cmd/mtrl/internal/config"
	"github.com/go-mtrl/mtrl/cmd/mtrl/internal/page"
	"github.com/go-mtrl/mtrl/pkg/logging"
)

type renderFlags struct {
	output string
	settle time.Duration
}

func newRenderCmd() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [dir]",
		Short: "Render the page file in dir (default: current directory) to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runRender(cmd, dir, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().DurationVar(&flags.settle, "settle", 2*time.Second, "How long to wait for pending widget timers before rendering")

	return cmd
}

func runRender(cmd *cobra.Command, dir string, flags *renderFlags) error {
	log := logging.For("render")

	res, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	log.Info().Str("file", res.File).Str("title", res.Title).Msg("page file loaded")

	p, err := page.Build(res)
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", filepath.Base(res.File), err)
	}
	defer p.Destroy()

	// Let show delays and transitions finish so the markup reflects the
	// settled state.
	ctx, cancel := context.WithTimeout(cmd.Context(), flags.settle)
	defer cancel()
	if err := p.Document.RunUntilIdle(ctx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		log.Warn().Dur("settle", flags.settle).Msg("timers still pending, rendering current state")
	}

	if flags.output == "" {
		return p.Render(cmd.OutOrStdout())
	}

	f, err := os.Create(flags.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", flags.output, err)
	}
	w := bufio.NewWriter(f)
	if err := p.Render(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("output", flags.output).Int("widgets", len(p.Widgets)).Msg("page rendered")
	return nil
}
