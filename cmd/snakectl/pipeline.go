package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// pipelineCmd represents the pipeline command
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Inspect the Cloud Build pipeline",
	Long:  `Inspect and lint the Cloud Build deployment pipeline.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'pipeline' requires a subcommand (lint)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(pipelineCmd)
}
