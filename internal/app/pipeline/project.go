package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yigit/coursemap/internal/app/models"
	"github.com/yigit/coursemap/internal/pkg/apperrors"
)

// Project restricts the table to the columns used downstream. Administrative
// columns are dropped, the alternate no-further-credit column is folded into
// the canonical one, required columns are checked and course codes are padded
// to width digits.
func Project(table *models.Table, required []string, width int) error {
	for _, col := range models.AdministrativeColumns {
		table.DropColumn(col)
	}

	if table.HasColumn(models.ColumnNoCreditContaining) {
		table.SetColumn(models.ColumnNoCreditContained, func(row *models.Record) interface{} {
			if v, _ := row.Get(models.ColumnNoCreditContained); v != nil {
				return v
			}
			v, _ := row.Get(models.ColumnNoCreditContaining)
			return v
		})
		table.DropColumn(models.ColumnNoCreditContaining)
	}

	for _, col := range required {
		if !table.HasColumn(col) {
			return apperrors.NewSchemaError(col)
		}
	}

	for i, row := range table.Rows {
		raw, _ := row.Get(models.ColumnCode)
		code := NormalizeCode(raw, width)
		if code == "" {
			return apperrors.NewMalformedInputError("merged table", fmt.Sprintf("course %d has no course code", i))
		}
		row.Set(models.ColumnCode, code)
	}
	return nil
}

// NormalizeCode renders a raw course number as a string, left padding digit
// strings shorter than width with zeros.
func NormalizeCode(raw interface{}, width int) string {
	var code string
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		code = v
	case json.Number:
		code = v.String()
	case float64:
		code = fmt.Sprintf("%.0f", v)
	default:
		code = fmt.Sprint(v)
	}
	code = strings.TrimSpace(code)
	if code == "" || !isDigits(code) || len(code) >= width {
		return code
	}
	return strings.Repeat("0", width-len(code)) + code
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
