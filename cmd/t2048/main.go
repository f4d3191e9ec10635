// t2048 is a terminal 2048: slide and merge tiles until you build the
// winning tile or run out of moves.
//
// Usage:
//
//	t2048 play               - Play in a full-screen TUI
//	t2048 console            - Play in a plain line-oriented console
//	t2048 scores             - Show the high-score table
//	t2048 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.t2048/scores.db)
//	--config <path> - Set rules config YAML path
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the sliding-tile puzzle 2048 for the terminal.

Merge equal tiles by sliding the board; every merge doubles the tile
and adds its value to your score. Reach the 2048 tile to win, and keep
playing after that for a higher score.

Available commands:
  play     - Play in a full-screen TUI
  console  - Play in a plain line-oriented console
  scores   - View high scores and statistics
  serve    - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 console
  t2048 scores --tui
  t2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolveSeed turns the --seed flag into a concrete seed, using the
// wall clock when the flag was left at zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadConfig loads the rules config honoring the --config flag.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}
