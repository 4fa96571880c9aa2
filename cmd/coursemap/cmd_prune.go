package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/coursemap/internal/app/pipeline"
)

var (
	pruneInput  string
	pruneOutput string
	pruneIndent int
)

// pruneCmd merges duplicate rows of an already normalized catalog
var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Merge rows sharing a course code in a normalized catalog",
	Args:  cobra.NoArgs,
	RunE:  runPrune,
}

func init() {
	pruneCmd.Flags().StringVarP(&pruneInput, "input", "i", "", "normalized catalog (default: the pipeline output)")
	pruneCmd.Flags().StringVarP(&pruneOutput, "output", "o", "output.json", "file to write")
	pruneCmd.Flags().IntVar(&pruneIndent, "indent", 2, "spaces of JSON indentation")
}

func runPrune(cmd *cobra.Command, args []string) error {
	input := pruneInput
	if input == "" {
		input = cfg.Pipeline.Output
	}

	result, err := pipeline.New(pipelineOptions(), lgr).Prune(input, pruneOutput, pruneIndent)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d courses written to %s (%d rows merged)\n", result.Courses, pruneOutput, result.Merged)
	return nil
}
