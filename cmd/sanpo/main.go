// Sanpo keeps four compass markers travelling around the border of the
// terminal, driven by a live heading.
//
// Run: GOWORK=off go run ./cmd/sanpo/ --source manual
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/wesen/sanpo/internal/compassui"
	"github.com/wesen/sanpo/internal/config"
	"github.com/wesen/sanpo/internal/heading"
	"github.com/wesen/sanpo/internal/logging"
	"github.com/wesen/sanpo/internal/overlay"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("sanpo", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	dir, _ := fs.GetString("config-dir")

	cfg, err := config.Load(dir, fs)
	if err != nil {
		return err
	}

	closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.Info().Str("config", config.File()).Str("source", cfg.Source.Type).Msg("starting")

	src, manual, err := newSource(cfg)
	if err != nil {
		return err
	}
	ease, err := overlay.ParseEasing(cfg.Overlay.Easing)
	if err != nil {
		return err
	}

	sub := heading.Subscribe(context.Background(), src)
	defer sub.Close()

	m := compassui.NewModel(compassui.Options{
		Padding:       cfg.Overlay.Padding,
		CornerRadius:  cfg.Overlay.CornerRadius,
		Duration:      cfg.Overlay.Duration(),
		Easing:        ease,
		FrameInterval: cfg.Overlay.FrameInterval(),
		Outline:       cfg.Overlay.Outline,
		Sub:           sub,
		Manual:        manual,
		Step:          cfg.Source.Step,
	})
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	log.Info().Msg("exiting")
	return nil
}
