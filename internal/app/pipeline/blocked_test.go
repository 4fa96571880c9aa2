package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/coursemap/internal/app/models"
)

func prereqRow(code string, prereqs ...string) *models.Record {
	return row(models.ColumnCode, code, models.ColumnPrerequisites, prereqs)
}

func TestBuildBlocked(t *testing.T) {
	table := models.NewTable([]*models.Record{
		prereqRow("00104031"),
		prereqRow("00234114"),
		prereqRow("00234218", "00234114", "00234114", "00104031"),
		prereqRow("00234247", "00234218", "00234114"),
	})

	BuildBlocked(table)

	assert.Equal(t, []string{"00234218", "00234247"}, findRow(t, table, "00234114").Strings(models.ColumnBlocked))
	assert.Equal(t, []string{"00234218"}, findRow(t, table, "00104031").Strings(models.ColumnBlocked))
	assert.Equal(t, []string{"00234247"}, findRow(t, table, "00234218").Strings(models.ColumnBlocked))
	assert.Equal(t, []string{}, findRow(t, table, "00234247").Strings(models.ColumnBlocked))
	assert.Equal(t, models.ColumnBlocked, table.Columns[len(table.Columns)-1])
}

func TestBuildBlockedUnreferencedCourseIsEmpty(t *testing.T) {
	table := models.NewTable([]*models.Record{prereqRow("104031"), prereqRow("234114", "999999")})

	BuildBlocked(table)

	v, ok := findRow(t, table, "104031").Get(models.ColumnBlocked)
	assert.True(t, ok)
	assert.NotNil(t, v)
	assert.Equal(t, []string{}, v)
}

func TestBuildBlockedIsInverseOfPrerequisites(t *testing.T) {
	rows := []*models.Record{
		prereqRow("00000001"),
		prereqRow("00000002", "00000001"),
		prereqRow("00000003", "00000001", "00000002", "00000001"),
		prereqRow("00000004", "00000003", "00000002", "00000009"),
		prereqRow("00000005", "00000004", "00000004", "00000004"),
	}
	table := models.NewTable(rows)
	BuildBlocked(table)

	for _, b := range rows {
		for _, a := range Unique(b.Strings(models.ColumnPrerequisites)) {
			var target *models.Record
			for _, r := range rows {
				if r.String(models.ColumnCode) == a {
					target = r
				}
			}
			if target == nil {
				continue
			}
			count := 0
			for _, blocked := range target.Strings(models.ColumnBlocked) {
				if blocked == b.String(models.ColumnCode) {
					count++
				}
			}
			assert.Equal(t, 1, count, "%s should block %s exactly once", a, b.String(models.ColumnCode))
		}
	}

	for _, a := range rows {
		for _, blocked := range a.Strings(models.ColumnBlocked) {
			var b *models.Record
			for _, r := range rows {
				if r.String(models.ColumnCode) == blocked {
					b = r
				}
			}
			if assert.NotNil(t, b) {
				assert.Contains(t, b.Strings(models.ColumnPrerequisites), a.String(models.ColumnCode))
			}
		}
	}
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Unique([]string{"b", "a", "b", "c", "a"}))
	assert.Equal(t, []string{}, Unique(nil))
}
