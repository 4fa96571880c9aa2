package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yigit/coursemap/internal/app/models"
)

// rawExport builds one registrar export element around a general section
func rawExport(general map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"general":  general,
		"schedule": []interface{}{},
	}
}

func writeJSON(t *testing.T, dir, name string, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// course builds a raw general section with every required column
func course(code, name, prereqs string) map[string]interface{} {
	return map[string]interface{}{
		models.ColumnCode:              code,
		models.ColumnName:              name,
		models.ColumnFaculty:           "מדעי המחשב",
		models.ColumnPoints:            "3.0",
		models.ColumnPrerequisites:     prereqs,
		models.ColumnNoCredit:          nil,
		models.ColumnNoCreditContained: nil,
		models.ColumnPaired:            nil,
	}
}

// row builds an in-memory record with columns in the given order
func row(pairs ...interface{}) *models.Record {
	r := models.NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1])
	}
	return r
}

func findRow(t *testing.T, table *models.Table, code string) *models.Record {
	t.Helper()
	for _, r := range table.Rows {
		if r.String(models.ColumnCode) == code {
			return r
		}
	}
	t.Fatalf("course %s not in table", code)
	return nil
}
