package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snakectl",
	Short: "Run and manage the rustysnake Battlesnake server",
	Long:  `snakectl runs the rustysnake Battlesnake server and its supporting tooling.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
