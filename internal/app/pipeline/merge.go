package pipeline

import "github.com/yigit/coursemap/internal/app/models"

// Merge folds src into dst for two records sharing a course code. A string
// column keeps the first non-empty value, a list column becomes the union of
// both lists in first-seen order, anything else keeps dst's value. A column
// that is null in dst stays null when src holds a number or a bool.
func Merge(dst, src *models.Record) {
	for _, key := range src.Keys() {
		value, _ := src.Get(key)
		current, exists := dst.Get(key)

		switch v := value.(type) {
		case string:
			if isEmptyString(current, exists) && v != "" {
				dst.Set(key, v)
			}
		case []string, []interface{}:
			incoming := src.Strings(key)
			if !exists || current == nil {
				dst.Set(key, Unique(incoming))
				continue
			}
			if !isList(current) {
				continue
			}
			combined := append(append([]string{}, dst.Strings(key)...), incoming...)
			dst.Set(key, Unique(combined))
		default:
			if !exists {
				dst.Set(key, v)
			}
		}
	}
}

// MergeDuplicates collapses rows sharing a course code into the first
// occurrence and returns how many rows were folded away.
func MergeDuplicates(table *models.Table) int {
	first := make(map[string]*models.Record, table.Len())
	kept := make([]*models.Record, 0, table.Len())
	for _, row := range table.Rows {
		code := row.String(models.ColumnCode)
		if existing, ok := first[code]; ok {
			Merge(existing, row)
			continue
		}
		first[code] = row
		kept = append(kept, row)
	}
	merged := len(table.Rows) - len(kept)
	table.Rows = kept
	return merged
}

func isEmptyString(v interface{}, exists bool) bool {
	if !exists || v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func isList(v interface{}) bool {
	switch v.(type) {
	case []string, []interface{}:
		return true
	}
	return false
}
