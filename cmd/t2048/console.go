package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/console"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play 2048 in a plain line-oriented console",
	Long: `Start a game that reads commands from stdin, one per line.

Commands:
  w/a/s/d  - Slide the board up/left/down/right
  r        - Restart
  q        - Quit (EOF also ends the game)

This mode works over any dumb terminal or pipe, so it is handy for
scripted play:

  printf 'a\ns\nq\n' | t2048 console --seed 42`,
	Args: cobra.NoArgs,
	Run:  runConsole,
}

func runConsole(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	session := game.NewSession(cfg.GameRules(), resolveSeed())

	c := console.New(session, store, os.Stdin, os.Stdout, nil)
	runErr := c.Run()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
