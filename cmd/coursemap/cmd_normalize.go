package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/coursemap/internal/app/pipeline"
)

var (
	normalizeInputs  []string
	normalizeOutput  string
	normalizeWidth   int
	normalizeIndent  int
	normalizeNoMerge bool
)

// normalizeCmd runs the full pipeline over the raw exports
var normalizeCmd = &cobra.Command{
	Use:   "normalize [export.json...]",
	Short: "Build the normalized catalog from raw registrar exports",
	Long: `Reads the raw exports (positional arguments, --input or the configured
inputs), keeps their "general" sections and writes the normalized catalog.
A missing or malformed input, or a missing required column, aborts the run
and leaves the output untouched.`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringSliceVarP(&normalizeInputs, "input", "i", nil, "raw export files")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "catalog file to write")
	normalizeCmd.Flags().IntVar(&normalizeWidth, "code-width", 0, "digits of a course code")
	normalizeCmd.Flags().IntVar(&normalizeIndent, "indent", -1, "spaces of JSON indentation")
	normalizeCmd.Flags().BoolVar(&normalizeNoMerge, "no-merge", false, "keep rows sharing a code instead of merging them")
}

func pipelineOptions() pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.CodeWidth = cfg.Pipeline.CodeWidth
	opts.Indent = cfg.Pipeline.Indent
	opts.MergeDuplicates = cfg.Pipeline.MergeDuplicates

	if normalizeWidth > 0 {
		opts.CodeWidth = normalizeWidth
	}
	if normalizeIndent >= 0 {
		opts.Indent = normalizeIndent
	}
	if normalizeNoMerge {
		opts.MergeDuplicates = false
	}
	return opts
}

func runNormalize(cmd *cobra.Command, args []string) error {
	inputs := cfg.Pipeline.Inputs
	switch {
	case len(args) > 0:
		inputs = args
	case len(normalizeInputs) > 0:
		inputs = normalizeInputs
	}
	output := cfg.Pipeline.Output
	if normalizeOutput != "" {
		output = normalizeOutput
	}

	result, err := pipeline.New(pipelineOptions(), lgr).Run(inputs, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d courses written to %s (%d merged, %d unresolved references)\n",
		result.Courses, output, result.Merged, result.Unresolved)
	return nil
}
