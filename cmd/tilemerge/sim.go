package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/engine"
)

var (
	flagMoves  string
	flagRandom int
	flagQuiet  bool
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Replay moves headlessly and print the board",
	Long: `Run a game without a terminal UI.

Moves are letters (l, r, u, d) or comma separated names (left,up,...).
With --random N, N random directions are played from the same seed.
The run stops early when the game ends.

Examples:
  tilemerge sim --seed 7 --moves lrud
  tilemerge sim mini --seed 1 --moves left,left,up
  tilemerge sim big --seed 3 --random 500 --quiet`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to play")
	simCmd.Flags().IntVar(&flagRandom, "random", 0, "Play N random moves")
	simCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print the final board")
}

func runSim(cmd *cobra.Command, args []string) {
	variant, err := resolveVariant(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	moves, err := parseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := engine.New(appCfg.RuntimeConfig(variant.Size, 0, 0))
	if flagRandom > 0 {
		rng := rand.New(rand.NewSource(game.Seed()))
		for i := 0; i < flagRandom; i++ {
			moves = append(moves, core.Directions[rng.Intn(len(core.Directions))])
		}
	}

	fmt.Printf("%s  seed %d\n\n", variant.Title, game.Seed())
	if !flagQuiet {
		fmt.Println(game.Snapshot().String())
		fmt.Println()
	}

	played := 0
	for _, dir := range moves {
		if game.Phase() == engine.PhaseGameOver {
			break
		}
		res := game.Apply(dir)
		played++
		if flagQuiet || !res.Changed {
			continue
		}
		fmt.Printf("%s  +%d\n", dir, res.ScoreDelta)
		fmt.Println(game.Snapshot().String())
		fmt.Println()
	}

	snap := game.Snapshot()
	if flagQuiet {
		fmt.Println(snap.String())
		fmt.Println()
	}
	fmt.Printf("inputs %d  moves %d  score %d  max tile %d  %s\n",
		played, snap.Moves, snap.Score, snap.MaxTile, snap.Phase)
}

// parseMoves accepts "lrud" or "left,right,up,down".
func parseMoves(s string) ([]core.Direction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var tokens []string
	if strings.ContainsAny(s, ", ") {
		tokens = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	} else {
		tokens = strings.Split(s, "")
	}

	moves := make([]core.Direction, 0, len(tokens))
	for _, tok := range tokens {
		dir, ok := core.ParseDirection(tok)
		if !ok {
			return nil, fmt.Errorf("unknown move %q", tok)
		}
		moves = append(moves, dir)
	}
	return moves, nil
}
