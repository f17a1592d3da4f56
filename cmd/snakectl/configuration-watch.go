package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustysnake/rustysnake/pkg/config"
)

// configurationWatchCmd represents the configuration watch command
var configurationWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config file and report reloads",
	Long: `Watch the config file and print the configuration each time it changes.

Useful for checking that edits to the config file parse and validate before
pointing a running server at them.

Example:
  snakectl configuration watch`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchConfiguration(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationWatchCmd)
}

func watchConfiguration() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", cfg.ConfigFilePath())

	stop := make(chan struct{})
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		close(stop)
	}()

	return config.Watch(cfg.ConfigFilePath(), func(cfg *config.Config) {
		fmt.Printf("Reloaded: engine=%s minimax_depth=%d monte_carlo_iterations=%d\n",
			cfg.Engine, cfg.MinimaxDepth, cfg.MonteCarloIterations)
	}, stop)
}
