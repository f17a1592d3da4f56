package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustysnake/rustysnake/pkg/config"
	"github.com/rustysnake/rustysnake/pkg/game"
)

// moveCmd represents the move command
var moveCmd = &cobra.Command{
	Use:   "move [file]",
	Short: "Compute the best move for a game state",
	Long: `Compute the best move for a Battlesnake game state.

Reads a Battlesnake API move request (JSON) from the given file, or from
stdin when no file is given, and prints the chosen move. Useful for
replaying positions from the game archive or from engine logs.

Example:
  snakectl move state.json
  cat state.json | snakectl move`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var in io.Reader = os.Stdin
		if len(args) > 0 {
			f, err := os.Open(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Unable to open state file: %v\n", err)
				os.Exit(1)
			}
			defer func() { _ = f.Close() }()
			in = f
		}

		var state game.GameState
		if err := json.NewDecoder(in).Decode(&state); err != nil {
			fmt.Fprintf(os.Stderr, "Bad game state: %v\n", err)
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad configuration: %v\n", err)
			os.Exit(1)
		}

		eng, err := cfg.NewEngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to build engine: %v\n", err)
			os.Exit(1)
		}

		dir, err := eng.BestMove(&state.Board, state.You.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Engine failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(dir.String())
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
