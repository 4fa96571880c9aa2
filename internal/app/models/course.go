package models

// Catalog column names as they appear in the registrar exports.
const (
	ColumnCode     = "מספר מקצוע"
	ColumnName     = "שם מקצוע"
	ColumnFaculty  = "פקולטה"
	ColumnPoints   = "נקודות"
	ColumnSyllabus = "סילבוס"

	ColumnPrerequisites     = "מקצועות קדם"
	ColumnNoCredit          = "מקצועות ללא זיכוי נוסף"
	ColumnNoCreditContained = "מקצועות ללא זיכוי נוסף (מוכלים)"
	// ColumnNoCreditContaining is the name older exports use for ColumnNoCreditContained
	ColumnNoCreditContaining = "מקצועות ללא זיכוי נוסף (מכילים)"
	ColumnPaired             = "מקצועות צמודים"

	// ColumnBlocked and ColumnTag are derived by the pipeline
	ColumnBlocked = "מקצועות חסומים"
	ColumnTag     = "tag"
)

// TagSeparator joins code and name in a tag
const TagSeparator = " - "

// AdministrativeColumns are dropped from the raw exports
var AdministrativeColumns = []string{
	"מועד ב",
	"מועד א",
	"מסגרת לימודים",
	"אחראים",
	"הערות",
	"בוחן מועד א",
	"בוחן מועד ב",
}

// ExtractedColumns hold free text that is turned into lists of course codes
var ExtractedColumns = []string{
	ColumnPrerequisites,
	ColumnNoCredit,
	ColumnNoCreditContained,
	ColumnPaired,
}

// ReferenceColumns are every list of course references on a normalized record
var ReferenceColumns = []string{
	ColumnPrerequisites,
	ColumnNoCredit,
	ColumnNoCreditContained,
	ColumnPaired,
	ColumnBlocked,
}

// RequiredColumns must be present after ingest and column projection
var RequiredColumns = []string{
	ColumnCode,
	ColumnName,
	ColumnPrerequisites,
	ColumnNoCredit,
	ColumnNoCreditContained,
	ColumnPaired,
}

// Tag builds the display label of a course
func Tag(code, name string) string {
	return code + TagSeparator + name
}

// Table is an ordered collection of course records sharing one column order
type Table struct {
	Columns []string
	Rows    []*Record
}

// NewTable creates a table from rows. Columns are collected in order of first
// appearance and every row is aligned to them, missing values set to null.
func NewTable(rows []*Record) *Table {
	t := &Table{Rows: rows}
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, key := range row.keys {
			if !seen[key] {
				seen[key] = true
				t.Columns = append(t.Columns, key)
			}
		}
	}
	t.Align()
	return t
}

// Align rebuilds each row so that its columns follow the table column order
func (t *Table) Align() {
	for _, row := range t.Rows {
		values := make(map[string]interface{}, len(t.Columns))
		for _, col := range t.Columns {
			values[col] = row.values[col]
		}
		row.keys = append([]string(nil), t.Columns...)
		row.values = values
	}
}

// HasColumn reports whether the table has the column
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// SetColumn assigns a value to every row, appending the column when it is new
func (t *Table) SetColumn(name string, value func(row *Record) interface{}) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
	for _, row := range t.Rows {
		row.Set(name, value(row))
	}
}

// DropColumn removes a column from the table and from every row
func (t *Table) DropColumn(name string) bool {
	for i, col := range t.Columns {
		if col == name {
			t.Columns = append(t.Columns[:i], t.Columns[i+1:]...)
			for _, row := range t.Rows {
				row.Delete(name)
			}
			return true
		}
	}
	return false
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}
