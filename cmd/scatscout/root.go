package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samdwyer/scatscout/internal/game"
)

// newRootCmd builds the command line. Flag defaults come from cfg, which was
// already populated from the environment; run receives the final values.
func newRootCmd(cfg *game.Config, run func(context.Context, game.Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scatscout [seed]",
		Short: "Minesweeper, but with scat",
		Long: `Scat Scout hides scat on a 10x10 field. Reveal cells by row and
column; numbers count the scat in the surrounding cells. Step in scat and you
lose, uncover every clean cell and you win.

Play in the terminal, one move per line
	scatscout

Replay the same field by passing a seed
	scatscout 42

Play full screen with cursor and mouse
	scatscout --frontend screen
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				seed, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("seed %q: %w", args[0], err)
				}
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), *cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random source (0 picks one)")
	flags.StringVarP(&cfg.Frontend, "frontend", "f", cfg.Frontend, `Frontend to play with.
console: print the board and read "row col" lines
screen: full-screen board with cursor and mouse`)
	flags.StringVar(&cfg.Theme, "theme", cfg.Theme, "Display theme (classic, meadow)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file")
	flags.StringVar(&cfg.Layout, "layout", cfg.Layout, "YAML board layout to play instead of a generated board")
	_ = flags.MarkHidden("layout")

	return cmd
}
