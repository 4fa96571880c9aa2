package pipeline

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/yigit/coursemap/internal/app/models"
)

// DefaultCodeWidth is the number of digits in a course code
const DefaultCodeWidth = 8

// Extractor finds course codes inside free text
type Extractor struct {
	pattern *regexp.Regexp
}

// NewExtractor creates an Extractor matching runs of exactly width digits
func NewExtractor(width int) *Extractor {
	if width <= 0 {
		width = DefaultCodeWidth
	}
	return &Extractor{pattern: regexp.MustCompile(fmt.Sprintf(`\d{%d}`, width))}
}

// Codes returns every code in text, left to right, repeats included
func (e *Extractor) Codes(text string) []string {
	found := e.pattern.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// Extract scans a raw column value. Null yields an empty list, lists are
// scanned element by element and other scalars are scanned as text.
func (e *Extractor) Extract(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case string:
		return e.Codes(v)
	case json.Number:
		return e.Codes(v.String())
	case []string:
		out := []string{}
		for _, item := range v {
			out = append(out, e.Codes(item)...)
		}
		return out
	case []interface{}:
		out := []string{}
		for _, item := range v {
			out = append(out, e.Extract(item)...)
		}
		return out
	default:
		return e.Codes(fmt.Sprint(v))
	}
}

// ExtractColumns replaces each free-text column with its list of codes
func (e *Extractor) ExtractColumns(table *models.Table, columns []string) {
	for _, col := range columns {
		table.SetColumn(col, func(row *models.Record) interface{} {
			v, _ := row.Get(col)
			return e.Extract(v)
		})
	}
}
