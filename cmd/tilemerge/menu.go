package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start tilemerge with a variant picker menu",
	Long: `Start tilemerge in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a board.
Esc during a game returns to the menu; Q quits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Leaderboard
  Q            - Quit

Examples:
  tilemerge menu
  tilemerge menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := terminalSize()
	cfg := appCfg.RuntimeConfig(0, width, height)
	lastID := appCfg.Game.Variant

	for {
		menuResult, err := tui.RunMenu(cfg, lastID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep any size changes from the menu
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastID)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		variant := menuResult.Variant
		if variant.ID == "" {
			return
		}
		lastID = variant.ID

		rc := appCfg.RuntimeConfig(variant.Size, cfg.ScreenW, cfg.ScreenH)
		// Fresh seed per game unless one was pinned
		if rc.Seed == 0 {
			rc.Seed = time.Now().UnixNano()
		}
		game := engine.New(rc)
		logger.Debug("starting game", "variant", variant.ID, "seed", game.Seed())

		backToMenu, err := tui.Run(game, variant, store, rc, playerName(), logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}
