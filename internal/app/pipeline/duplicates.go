package pipeline

import "github.com/yigit/coursemap/internal/app/models"

// DetectDuplicates returns every course code that appears more than once,
// in order of first appearance.
func DetectDuplicates(table *models.Table) []string {
	counts := make(map[string]int, table.Len())
	var order []string
	for _, row := range table.Rows {
		code := row.String(models.ColumnCode)
		if counts[code] == 0 {
			order = append(order, code)
		}
		counts[code]++
	}

	var dups []string
	for _, code := range order {
		if counts[code] > 1 {
			dups = append(dups, code)
		}
	}
	return dups
}
