package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yigit/coursemap/internal/app/models"
)

// ExportSheet is the worksheet holding the catalog
const ExportSheet = "Courses"

// ExportService renders the catalog as a spreadsheet
type ExportService interface {
	Workbook(table *models.Table) (*excelize.File, error)
	WriteFile(table *models.Table, path string) error
}

type exportServiceImpl struct{}

// NewExportService creates an ExportService
func NewExportService() ExportService {
	return &exportServiceImpl{}
}

// Workbook builds a single sheet workbook: a header row with the catalog
// columns and one row per course. Lists are written one entry per line.
func (s *exportServiceImpl) Workbook(table *models.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(ExportSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	rtl := true
	if err := f.SetSheetView(ExportSheet, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set sheet direction: %w", err)
	}

	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(table.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(table.Columns), 1)
		_ = f.SetCellStyle(ExportSheet, "A1", last, bold)
	}

	for r, row := range table.Rows {
		values := make([]interface{}, len(table.Columns))
		for i, col := range table.Columns {
			v, _ := row.Get(col)
			values[i] = cellValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(ExportSheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	return f, nil
}

// WriteFile saves the workbook at path
func (s *exportServiceImpl) WriteFile(table *models.Table, path string) error {
	f, err := s.Workbook(table)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func cellValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case []string:
		return strings.Join(val, "\n")
	case []interface{}:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = cellValue(item)
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(val)
	}
}
