package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/coursemap/internal/app/pipeline"
	"github.com/yigit/coursemap/internal/app/repositories"
	"github.com/yigit/coursemap/internal/bootstrap"
)

var importInput string

// importCmd loads a normalized catalog into PostgreSQL
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the catalog stored in PostgreSQL with a normalized file",
	Long: `Runs the embedded migrations, then replaces every stored course with the
rows of the given catalog in one transaction. Rows sharing a code are merged
first, since the course code is the primary key.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "normalized catalog (default: the catalog path)")
}

func runImport(cmd *cobra.Command, args []string) error {
	input := importInput
	if input == "" {
		input = cfg.Catalog.Path
	}

	table, err := pipeline.Read(input)
	if err != nil {
		return err
	}
	if merged := pipeline.MergeDuplicates(table); merged > 0 {
		lgr.Warn().Int("rows", merged).Msg("Merged rows sharing a course code before import")
	}

	pool, err := bootstrap.SetupDatabase(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repositories.NewRepositories(pool).CourseRepository
	if err := repo.ReplaceAll(cmd.Context(), input, table); err != nil {
		return err
	}

	stored, err := repo.Count(cmd.Context())
	if err != nil {
		return err
	}

	lgr.Info().Int("courses", table.Len()).Int("stored", stored).Str("input", input).Msg("Catalog imported")
	fmt.Fprintf(cmd.OutOrStdout(), "%d courses imported, %d stored\n", table.Len(), stored)
	return nil
}
