package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/coursemap/internal/app/models"
)

// Options controls a normalization run
type Options struct {
	// CodeWidth is the number of digits of a course code
	CodeWidth int
	// MergeDuplicates folds rows sharing a code before tags are resolved
	MergeDuplicates bool
	// Indent is the number of spaces used when writing the output
	Indent int
	// RequiredColumns must exist after projection, defaults to models.RequiredColumns
	RequiredColumns []string
}

// DefaultOptions returns the options used by the registrar exports
func DefaultOptions() Options {
	return Options{
		CodeWidth:       DefaultCodeWidth,
		MergeDuplicates: true,
		Indent:          DefaultIndent,
		RequiredColumns: models.RequiredColumns,
	}
}

// Result summarizes a run
type Result struct {
	Courses    int      `json:"courses"`
	Duplicates []string `json:"duplicates"`
	Merged     int      `json:"merged"`
	Unresolved int      `json:"unresolved"`
}

// Pipeline turns raw registrar exports into the normalized catalog
type Pipeline struct {
	opts      Options
	extractor *Extractor
	logger    zerolog.Logger
}

// New creates a Pipeline
func New(opts Options, logger zerolog.Logger) *Pipeline {
	if opts.CodeWidth <= 0 {
		opts.CodeWidth = DefaultCodeWidth
	}
	if opts.RequiredColumns == nil {
		opts.RequiredColumns = models.RequiredColumns
	}
	return &Pipeline{
		opts:      opts,
		extractor: NewExtractor(opts.CodeWidth),
		logger:    logger.With().Str("component", "pipeline").Logger(),
	}
}

// Run ingests inputs, normalizes them and writes the catalog to output.
// Nothing is written when any stage fails.
func (p *Pipeline) Run(inputs []string, output string) (*Result, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no input files given")
	}

	table, err := Ingest(inputs)
	if err != nil {
		return nil, err
	}
	p.logger.Debug().Int("rows", table.Len()).Strs("inputs", inputs).Msg("Ingested exports")

	result, err := p.Normalize(table)
	if err != nil {
		return nil, err
	}

	if err := Write(output, table, p.opts.Indent); err != nil {
		return nil, err
	}
	p.logger.Info().
		Int("courses", result.Courses).
		Int("duplicates", len(result.Duplicates)).
		Int("merged", result.Merged).
		Int("unresolved", result.Unresolved).
		Str("output", output).
		Msg("Catalog written")
	return result, nil
}

// Normalize runs every in-memory stage on table, mutating it in place
func (p *Pipeline) Normalize(table *models.Table) (*Result, error) {
	if err := Project(table, p.opts.RequiredColumns, p.opts.CodeWidth); err != nil {
		return nil, err
	}
	p.logger.Debug().Strs("columns", table.Columns).Msg("Projected columns")

	result := &Result{Duplicates: DetectDuplicates(table)}
	if len(result.Duplicates) > 0 {
		p.logger.Warn().Strs("codes", result.Duplicates).Msg("Duplicate courses found")
	}

	p.extractor.ExtractColumns(table, models.ExtractedColumns)
	BuildBlocked(table)
	CleanNames(table)

	if p.opts.MergeDuplicates {
		result.Merged = MergeDuplicates(table)
		if result.Merged > 0 {
			p.logger.Debug().Int("rows", result.Merged).Msg("Merged duplicate rows")
		}
	}

	AssignTags(table)
	result.Unresolved = Resolve(table)
	result.Courses = table.Len()
	return result, nil
}

// Prune merges rows sharing a code in an already normalized catalog
func (p *Pipeline) Prune(input, output string, indent int) (*Result, error) {
	table, err := Read(input)
	if err != nil {
		return nil, err
	}
	result := &Result{Duplicates: DetectDuplicates(table)}
	result.Merged = MergeDuplicates(table)
	result.Courses = table.Len()

	if err := Write(output, table, indent); err != nil {
		return nil, err
	}
	p.logger.Info().Int("courses", result.Courses).Int("merged", result.Merged).Str("output", output).Msg("Catalog pruned")
	return result, nil
}
