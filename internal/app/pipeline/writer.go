package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yigit/coursemap/internal/app/models"
	"github.com/yigit/coursemap/internal/pkg/apperrors"
)

// DefaultIndent is the indentation of normalized catalog files
const DefaultIndent = 4

// OutputMode is the permission of files produced by Write
const OutputMode fs.FileMode = 0o644

// Encode writes the table rows as an indented JSON array
func Encode(w io.Writer, table *models.Table, indent int) error {
	rows := table.Rows
	if rows == nil {
		rows = []*models.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc.Encode(rows)
}

// Write stores the table at path. The data goes to a temporary file in the
// same directory which is renamed over path once complete.
func Write(path string, table *models.Table, indent int) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Encode(tmp, table, indent); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	// CreateTemp opens the file owner-only and Rename keeps that mode
	if err := tmp.Chmod(OutputMode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set catalog permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush catalog: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move catalog into place: %w", err)
	}
	return nil
}

// Decode reads a normalized catalog
func Decode(data []byte) (*models.Table, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("expected a JSON array of courses")
	}
	var rows []*models.Record
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("element %d is null", i)
		}
	}
	return models.NewTable(rows), nil
}

// Read loads a normalized catalog written by Write
func Read(path string) (*models.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewMissingFileError(path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	table, err := Decode(data)
	if err != nil {
		return nil, apperrors.NewMalformedInputError(path, err.Error())
	}
	return table, nil
}
