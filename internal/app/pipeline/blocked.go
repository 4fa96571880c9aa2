package pipeline

import "github.com/yigit/coursemap/internal/app/models"

type prerequisiteLink struct {
	course       string
	prerequisite string
}

// BuildBlocked sets the blocked-by column of every course to the courses that
// list it as a prerequisite. All links are collected before any row is
// assigned, a course nobody depends on gets an empty list.
func BuildBlocked(table *models.Table) {
	var links []prerequisiteLink
	for _, row := range table.Rows {
		course := row.String(models.ColumnCode)
		for _, prereq := range row.Strings(models.ColumnPrerequisites) {
			links = append(links, prerequisiteLink{course: course, prerequisite: prereq})
		}
	}

	index := make(map[string][]string)
	for _, link := range links {
		index[link.prerequisite] = append(index[link.prerequisite], link.course)
	}

	table.SetColumn(models.ColumnBlocked, func(row *models.Record) interface{} {
		return Unique(index[row.String(models.ColumnCode)])
	})
}

// Unique removes repeated entries keeping the first occurrence. The result is never nil.
func Unique(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
