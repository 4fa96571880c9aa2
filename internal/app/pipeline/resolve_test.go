package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursemap/internal/app/models"
)

func resolvableTable() *models.Table {
	rows := []*models.Record{
		row(models.ColumnCode, "00234114", models.ColumnName, "מבוא: למדעי^ המחשב'",
			models.ColumnPrerequisites, []string{}, models.ColumnNoCredit, []string{"00234117"},
			models.ColumnNoCreditContained, []string{}, models.ColumnPaired, []string{}),
		row(models.ColumnCode, "00234218", models.ColumnName, "מבני נתונים 1",
			models.ColumnPrerequisites, []string{"00234114", "00999999", "00234114"}, models.ColumnNoCredit, []string{},
			models.ColumnNoCreditContained, []string{}, models.ColumnPaired, []string{"00234114"}),
	}
	table := models.NewTable(rows)
	BuildBlocked(table)
	CleanNames(table)
	AssignTags(table)
	return table
}

func TestCleanNamesAndTags(t *testing.T) {
	table := resolvableTable()
	r := findRow(t, table, "00234114")

	assert.Equal(t, "מבוא למדעי המחשב", r.String(models.ColumnName))
	assert.Equal(t, "00234114 - מבוא למדעי המחשב", r.String(models.ColumnTag))
	assert.Equal(t, models.ColumnTag, table.Columns[len(table.Columns)-1])
}

func TestResolveReplacesKnownCodes(t *testing.T) {
	table := resolvableTable()

	unresolved := Resolve(table)

	r := findRow(t, table, "00234218")
	assert.Equal(t, []string{"00234114 - מבוא למדעי המחשב", "00999999"}, r.Strings(models.ColumnPrerequisites))
	assert.Equal(t, []string{"00234114 - מבוא למדעי המחשב"}, r.Strings(models.ColumnPaired))

	intro := findRow(t, table, "00234114")
	assert.Equal(t, []string{"00234218 - מבני נתונים 1"}, intro.Strings(models.ColumnBlocked))
	assert.Equal(t, []string{"00234117"}, intro.Strings(models.ColumnNoCredit))
	assert.Equal(t, 2, unresolved)
}

func TestResolveIsIdempotent(t *testing.T) {
	table := resolvableTable()
	Resolve(table)

	encoded := func() string {
		var b bytes.Buffer
		require.NoError(t, Encode(&b, table, 2))
		return b.String()
	}
	once := encoded()
	Resolve(table)
	assert.Equal(t, once, encoded())
}

func TestTagIndexFallsBackToName(t *testing.T) {
	table := models.NewTable([]*models.Record{row(models.ColumnCode, "1", models.ColumnName, "n")})
	assert.Equal(t, map[string]string{"1": "1 - n"}, TagIndex(table))
}
