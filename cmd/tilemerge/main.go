// tilemerge is a sliding-tile merge puzzle for the terminal.
//
// Usage:
//
//	tilemerge list                - List available board variants
//	tilemerge play [variant]      - Play a variant
//	tilemerge menu                - Pick variants interactively
//	tilemerge serve               - Serve games over SSH and websocket
//	tilemerge scores [variant]    - Show the leaderboard for a variant
//	tilemerge sim [variant]       - Replay moves headlessly and print the board
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.tilemerge/config.yaml)
//	--seed <value>      - RNG seed for reproducible games
//	--size <n>          - Override the board size of every variant
//	--db <path>         - Scores database (default: ~/.tilemerge/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/registry"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagSize     int
	flagDBPath   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	appCfg config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilemerge",
	Short: "tilemerge - slide and merge numbered tiles in your terminal",
	Long: `tilemerge is a sliding-tile puzzle: every move slides all tiles as far
as they go, equal neighbours merge into their sum, and a new 2 appears.
The run ends when the board is full and nothing can merge.

Available commands:
  list     - Show all board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Serve games over SSH and websocket
  scores   - View the leaderboard
  sim      - Replay moves headlessly

Examples:
  tilemerge list
  tilemerge play classic
  tilemerge menu
  tilemerge serve --ssh :2222 --http :8080
  tilemerge scores big
  tilemerge sim mini --seed 7 --moves lrud`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size override (0 = variant size)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig merges file, environment and flags into appCfg.
// Flags win over everything else.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("size") {
		cfg.Game.Size = flagSize
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appCfg = cfg
	logger = config.NewLogger(cfg.Log.Level)
	return nil
}

// resolveVariant picks the variant named in args, or the configured one.
func resolveVariant(args []string) (registry.Variant, error) {
	id := appCfg.Game.Variant
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" {
		id = engine.DefaultVariant
	}
	v, err := registry.Lookup(id)
	if err != nil {
		return registry.Variant{}, fmt.Errorf("unknown variant %q, run 'tilemerge list' to see available variants", id)
	}
	return v, nil
}

// terminalSize returns the stdout size, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// playerName tags locally recorded runs.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
