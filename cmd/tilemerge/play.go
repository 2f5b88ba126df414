package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (the configured default if omitted).

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  R                 - Restart
  Esc/B             - Back
  Q/Ctrl+C          - Quit

Examples:
  tilemerge play
  tilemerge play mini
  tilemerge play huge --seed 42
  tilemerge play classic --size 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	variant, err := resolveVariant(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := appCfg.RuntimeConfig(variant.Size, width, height)
	game := engine.New(cfg)
	logger.Debug("starting game", "variant", variant.ID, "size", game.Grid().Size, "seed", game.Seed())

	// Continue without storage if the database cannot be opened
	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	_, runErr := tui.Run(game, variant, store, cfg, playerName(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
