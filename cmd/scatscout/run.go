package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samdwyer/scatscout/internal/board"
	"github.com/samdwyer/scatscout/internal/game"
	"github.com/samdwyer/scatscout/internal/gamedata"
	"github.com/samdwyer/scatscout/internal/logging"
	"github.com/samdwyer/scatscout/internal/telemetry"
	"github.com/samdwyer/scatscout/internal/ui"
)

// run wires logging, tracing, the chosen frontend and a session together and
// plays until the player is done.
func run(ctx context.Context, cfg game.Config, envErr error) error {
	// The full-screen frontend owns the terminal, so logs need a file there
	var fallback io.Writer
	if cfg.Frontend == game.FrontendScreen {
		fallback = io.Discard
	}
	log, closeLog, err := logging.New(logging.Options{
		Level:    cfg.LogLevel,
		Format:   cfg.LogFormat,
		File:     cfg.LogFile,
		Fallback: fallback,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	if telemetry.Configured() {
		shutdown, err := telemetry.Setup(ctx, log)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed; running without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Warn("telemetry shutdown failed")
				}
			}()
		}
	}

	themes, err := gamedata.LoadThemeRegistry()
	if err != nil {
		return err
	}
	theme, err := themes.Lookup(cfg.Theme)
	if err != nil {
		return err
	}

	frontend, err := newFrontend(cfg.Frontend, theme)
	if err != nil {
		return err
	}
	defer frontend.Close()

	session := game.NewSession(frontend, cfg.Seed, log)
	if cfg.Layout != "" {
		layout, err := loadLayout(cfg.Layout)
		if err != nil {
			return err
		}
		session.UseLayout(layout)
	}

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

func newFrontend(name string, theme *gamedata.ThemeDef) (game.Frontend, error) {
	switch name {
	case game.FrontendScreen:
		screen, err := ui.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("init screen: %w", err)
		}
		return ui.NewTerminal(screen, theme), nil
	default:
		return ui.NewConsole(os.Stdin, os.Stdout, theme), nil
	}
}

func loadLayout(path string) (*board.Layout, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	layout, err := board.ParseLayout(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}
