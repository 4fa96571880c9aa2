package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/yigit/coursemap/internal/app/models"
	"github.com/yigit/coursemap/internal/pkg/apperrors"
)

// rawCourse is one element of a registrar export. Only the general section is used.
type rawCourse struct {
	General  *models.Record  `json:"general"`
	Schedule json.RawMessage `json:"schedule,omitempty"`
}

// Ingest reads every export file and concatenates their general sections in
// source order into one table.
func Ingest(paths []string) (*models.Table, error) {
	var rows []*models.Record
	for _, path := range paths {
		batch, err := readExport(path)
		if err != nil {
			return nil, err
		}
		rows = append(rows, batch...)
	}
	return models.NewTable(rows), nil
}

func readExport(path string) ([]*models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewMissingFileError(path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, apperrors.NewMalformedInputError(path, "expected a JSON array of courses")
	}

	var courses []rawCourse
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, apperrors.NewMalformedInputError(path, err.Error())
	}

	rows := make([]*models.Record, 0, len(courses))
	for i, course := range courses {
		if course.General == nil {
			return nil, apperrors.NewMalformedInputError(path, fmt.Sprintf("element %d has no general section", i))
		}
		rows = append(rows, course.General)
	}
	return rows, nil
}
