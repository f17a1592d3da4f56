package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustysnake/rustysnake/pkg/pipeline"
)

// pipelineLintCmd represents the pipeline lint command
var pipelineLintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check the Cloud Build config for deployment mistakes",
	Long: `Check a Cloud Build config for deployment mistakes.

Verifies that the pushed image is one of the built tags, that every deploy
step deploys a pushed tag, that the cache pull cannot abort the build, and
that deploys stay in a single region.

Example:
  snakectl pipeline lint
  snakectl pipeline lint cloudbuild.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "cloudbuild.yaml"
		if len(args) > 0 {
			path = args[0]
		}

		p, err := pipeline.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to load pipeline: %v\n", err)
			os.Exit(1)
		}

		problems := p.Lint()
		if len(problems) == 0 {
			fmt.Printf("%s: ok (%d steps)\n", path, len(p.Steps))
			return
		}

		for _, problem := range problems {
			fmt.Println(problem.String())
		}
		os.Exit(1)
	},
}

func init() {
	pipelineCmd.AddCommand(pipelineLintCmd)
}
