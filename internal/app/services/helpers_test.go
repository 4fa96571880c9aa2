package services

import (
	"github.com/yigit/coursemap/internal/app/models"
)

// catalogRow builds a normalized course row
func catalogRow(code, name string, prereqs, blocked []string) *models.Record {
	r := models.NewRecord()
	r.Set(models.ColumnCode, code)
	r.Set(models.ColumnName, name)
	r.Set(models.ColumnFaculty, "מדעי המחשב")
	r.Set(models.ColumnPoints, "3.0")
	r.Set(models.ColumnSyllabus, "")
	r.Set(models.ColumnPrerequisites, prereqs)
	r.Set(models.ColumnNoCredit, []string{})
	r.Set(models.ColumnNoCreditContained, []string{})
	r.Set(models.ColumnPaired, []string{})
	r.Set(models.ColumnBlocked, blocked)
	r.Set(models.ColumnTag, models.Tag(code, name))
	return r
}

func sampleCatalog() *models.Table {
	return models.NewTable([]*models.Record{
		catalogRow("00234114", "מבוא למדעי המחשב מ", []string{}, []string{
			"00234218 - מבני נתונים 1",
		}),
		catalogRow("00234218", "מבני נתונים 1", []string{
			"00234114 - מבוא למדעי המחשב מ",
			"00104031",
		}, []string{
			"00234247 - אלגוריתמים 1",
		}),
		catalogRow("00234247", "אלגוריתמים 1", []string{
			"00234218 - מבני נתונים 1",
		}, []string{}),
	})
}
