package pipeline

import (
	"strings"

	"github.com/yigit/coursemap/internal/app/models"
)

var nameReplacer = strings.NewReplacer("'", "", ":", "", "^", "")

// CleanNames strips quote, colon and caret characters from course names
func CleanNames(table *models.Table) {
	table.SetColumn(models.ColumnName, func(row *models.Record) interface{} {
		v, _ := row.Get(models.ColumnName)
		if name, ok := v.(string); ok {
			return nameReplacer.Replace(name)
		}
		return v
	})
}

// AssignTags sets the tag column of every course to "{code} - {name}"
func AssignTags(table *models.Table) {
	table.SetColumn(models.ColumnTag, func(row *models.Record) interface{} {
		return models.Tag(row.String(models.ColumnCode), row.String(models.ColumnName))
	})
}

// TagIndex maps each course code of the table to its tag
func TagIndex(table *models.Table) map[string]string {
	tags := make(map[string]string, table.Len())
	for _, row := range table.Rows {
		code := row.String(models.ColumnCode)
		tag := row.String(models.ColumnTag)
		if tag == "" {
			tag = models.Tag(code, row.String(models.ColumnName))
		}
		tags[code] = tag
	}
	return tags
}

// Resolve de-duplicates every reference list and replaces each code by the
// tag of the course it names. Codes with no course in the table are kept
// as they are. It returns the number of unresolved references.
func Resolve(table *models.Table) int {
	tags := TagIndex(table)
	unresolved := 0
	for _, col := range models.ReferenceColumns {
		if !table.HasColumn(col) {
			continue
		}
		table.SetColumn(col, func(row *models.Record) interface{} {
			refs := Unique(row.Strings(col))
			for i, ref := range refs {
				if tag, ok := tags[ref]; ok {
					refs[i] = tag
				} else if !strings.Contains(ref, models.TagSeparator) {
					unresolved++
				}
			}
			return refs
		})
	}
	return unresolved
}
