package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed sql/*.sql
var embedded embed.FS

// Files returns the migrations shipped with the binary
func Files() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migration is one versioned SQL file
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Migrator manages database migrations
type Migrator struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *pgxpool.Pool, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// Load reads every .sql file of fsys ordered by file name. The version is the
// file name prefix before the first underscore, e.g. "001_init.sql" => "001".
func Load(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		version, _, ok := strings.Cut(name, "_")
		if !ok || version == "" {
			return nil, fmt.Errorf("migration %s has no version prefix", name)
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migrations %s and %s share version %s", prev, name, version)
		}
		seen[version] = name

		content, err := fs.ReadFile(fsys, path.Clean(name))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file: %w", err)
		}
		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}
	return migrations, nil
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Apply runs one migration and records it in the same transaction
func (m *Migrator) Apply(ctx context.Context, migration Migration) error {
	applied, err := m.isMigrationApplied(ctx, migration.Version)
	if err != nil {
		return err
	}
	if applied {
		m.logger.Debug().Str("migration", migration.Name).Msg("Migration already applied, skipping")
		return nil
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, migration.SQL); err != nil {
		return fmt.Errorf("error occurred during SQL migration %s: %w", migration.Name, err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		migration.Version, time.Now()); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Str("migration", migration.Name).Msg("Migration applied")
	return nil
}

// Migrate applies every pending migration of fsys in order
func (m *Migrator) Migrate(ctx context.Context, fsys fs.FS) error {
	migrations, err := Load(fsys)
	if err != nil {
		return err
	}

	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	for _, migration := range migrations {
		if err := m.Apply(ctx, migration); err != nil {
			return err
		}
	}
	return nil
}
