package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/coursemap/internal/app/pipeline"
	"github.com/yigit/coursemap/internal/app/services"
)

var (
	exportInput  string
	exportOutput string
)

// exportCmd writes the catalog to a spreadsheet
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a normalized catalog to an .xlsx workbook",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "normalized catalog (default: the catalog path)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "courses.xlsx", "workbook to write")
}

func runExport(cmd *cobra.Command, args []string) error {
	input := exportInput
	if input == "" {
		input = cfg.Catalog.Path
	}

	table, err := pipeline.Read(input)
	if err != nil {
		return err
	}
	if err := services.NewExportService().WriteFile(table, exportOutput); err != nil {
		return err
	}

	lgr.Info().Int("courses", table.Len()).Str("output", exportOutput).Msg("Catalog exported")
	fmt.Fprintf(cmd.OutOrStdout(), "%d courses exported to %s\n", table.Len(), exportOutput)
	return nil
}
