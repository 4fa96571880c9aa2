package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrdersByFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"010_later.sql":  {Data: []byte("SELECT 10;")},
		"002_second.sql": {Data: []byte("SELECT 2;")},
		"001_first.sql":  {Data: []byte("SELECT 1;")},
		"README.md":      {Data: []byte("not a migration")},
	}

	migrations, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 3)
	assert.Equal(t, "001", migrations[0].Version)
	assert.Equal(t, "002_second.sql", migrations[1].Name)
	assert.Equal(t, "SELECT 10;", migrations[2].SQL)
}

func TestLoadRejectsBadNames(t *testing.T) {
	_, err := Load(fstest.MapFS{"init.sql": {Data: []byte("SELECT 1;")}})
	assert.Error(t, err)

	_, err = Load(fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"001_b.sql": {Data: []byte("SELECT 2;")},
	})
	assert.Error(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	migrations, err := Load(Files())
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, "001", migrations[0].Version)
	assert.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS courses")
}
