package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/coursemap/internal/app/models"
	"github.com/yigit/coursemap/internal/db"
	"github.com/yigit/coursemap/internal/pkg/dberrors"
	"github.com/yigit/coursemap/internal/pkg/logger"
)

// coursesPrimaryKey is the default name of the courses primary key constraint
const coursesPrimaryKey = "courses_pkey"

// insertBatchSize keeps multi-row inserts well under the bind parameter limit
const insertBatchSize = 1000

// ErrCatalogEmpty is returned when no catalog has been imported yet
var ErrCatalogEmpty = errors.New("no catalog has been imported")

// CourseRepository stores the normalized catalog, one document per course
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// insertCourses builds one multi-row insert for rows starting at offset
func (r *CourseRepository) insertCourses(rows []*models.Record, offset int) (string, []interface{}, error) {
	q := r.sb.Insert("courses").Columns("code", "position", "tag", "name", "document")
	for i, row := range rows {
		doc, err := json.Marshal(row)
		if err != nil {
			return "", nil, fmt.Errorf("failed to encode course %s: %w", row.String(models.ColumnCode), err)
		}
		q = q.Values(
			row.String(models.ColumnCode),
			offset+i,
			row.String(models.ColumnTag),
			row.String(models.ColumnName),
			string(doc),
		)
	}
	return q.ToSql()
}

func (r *CourseRepository) insertImport(source string, table *models.Table) (string, []interface{}, error) {
	columns, err := json.Marshal(table.Columns)
	if err != nil {
		return "", nil, err
	}
	return r.sb.Insert("catalog_imports").
		Columns("source", "courses", "column_names").
		Values(source, table.Len(), string(columns)).
		ToSql()
}

// ReplaceAll swaps the stored catalog for table in a single transaction.
// Codes must be unique; run the duplicate merge before importing.
func (r *CourseRepository) ReplaceAll(ctx context.Context, source string, table *models.Table) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Delete("courses").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete courses query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Msg("Error clearing courses")
			return fmt.Errorf("error clearing courses: %w", err)
		}

		for start := 0; start < table.Len(); start += insertBatchSize {
			end := min(start+insertBatchSize, table.Len())
			sql, args, err := r.insertCourses(table.Rows[start:end], start)
			if err != nil {
				return fmt.Errorf("failed to build insert courses query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				if dberrors.IsDuplicateConstraintError(err, coursesPrimaryKey) {
					return fmt.Errorf("catalog has duplicate course codes: %w", err)
				}
				logger.Error().Err(err).Int("offset", start).Msg("Error inserting courses")
				return fmt.Errorf("error inserting courses: %w", err)
			}
		}

		sql, args, err = r.insertImport(source, table)
		if err != nil {
			return fmt.Errorf("failed to build insert import query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error recording import: %w", err)
		}
		return nil
	})
}

// columns returns the column order of the latest import
func (r *CourseRepository) columns(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("column_names").
		From("catalog_imports").
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get columns query: %w", err)
	}

	var raw []byte
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCatalogEmpty
		}
		return nil, fmt.Errorf("error getting catalog columns: %w", err)
	}

	var columns []string
	if err := json.Unmarshal(raw, &columns); err != nil {
		return nil, fmt.Errorf("invalid catalog columns: %w", err)
	}
	return columns, nil
}

// List loads the stored catalog in its import order
func (r *CourseRepository) List(ctx context.Context) (*models.Table, error) {
	columns, err := r.columns(ctx)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Select("document").
		From("courses").
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		rec := models.NewRecord()
		if err := json.Unmarshal(raw, rec); err != nil {
			return nil, fmt.Errorf("invalid course document: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return tableWithColumns(columns, records), nil
}

// tableWithColumns restores the imported column order. JSONB does not keep
// object key order, so every record is rebuilt in that order.
func tableWithColumns(columns []string, records []*models.Record) *models.Table {
	ordered := make([]*models.Record, len(records))
	for i, rec := range records {
		out := models.NewRecord()
		for _, col := range columns {
			v, _ := rec.Get(col)
			out.Set(col, v)
		}
		for _, key := range rec.Keys() {
			if !out.Has(key) {
				v, _ := rec.Get(key)
				out.Set(key, v)
			}
		}
		ordered[i] = out
	}
	table := models.NewTable(ordered)
	if len(ordered) == 0 {
		table.Columns = append([]string(nil), columns...)
	}
	return table
}

func (r *CourseRepository) countCourses() (string, []interface{}, error) {
	return r.sb.Select("COUNT(*)").From("courses").ToSql()
}

// Count returns the number of stored courses
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	sql, args, err := r.countCourses()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}
	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return n, nil
}
