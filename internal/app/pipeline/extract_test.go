package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/coursemap/internal/app/models"
)

func TestExtractorCodes(t *testing.T) {
	e := NewExtractor(8)
	cases := []struct {
		name string
		in   interface{}
		want []string
	}{
		{"null", nil, []string{}},
		{"empty", "", []string{}},
		{"no codes", "אין מקצועות קדם", []string{}},
		{"interleaved", "(00234114 או 00234117) ו-00104031", []string{"00234114", "00234117", "00104031"}},
		{"repeats kept", "00234114 00234114", []string{"00234114", "00234114"}},
		{"short run ignored", "234114 and 00234114", []string{"00234114"}},
		{"long run", "1234567890", []string{"12345678"}},
		{"number", json.Number("104031"), []string{}},
		{"list", []interface{}{"00234114", "00104031 - חשבון"}, []string{"00234114", "00104031"}},
		{"string list", []string{"00234114"}, []string{"00234114"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.Extract(tc.in))
		})
	}
}

func TestExtractorFindsEveryEmbeddedCode(t *testing.T) {
	e := NewExtractor(8)
	codes := []string{"00234114", "00104031", "00094412", "00234218", "00104031"}
	separators := []string{" או ", ", ", " ו-", "|", "\n"}

	var b strings.Builder
	b.WriteString("prefix ")
	for i, code := range codes {
		b.WriteString(code)
		b.WriteString(separators[i%len(separators)])
	}

	assert.Equal(t, codes, e.Extract(b.String()))
	assert.Equal(t, []string{"00234114", "00104031", "00094412", "00234218"}, Unique(e.Extract(b.String())))
}

func TestExtractorWidth(t *testing.T) {
	assert.Equal(t, []string{"234114", "234141"}, NewExtractor(6).Extract("234114, 234141"))
	assert.Equal(t, []string{"00234114"}, NewExtractor(0).Extract("00234114"))
}

func TestExtractColumnsReplacesText(t *testing.T) {
	r := row(models.ColumnCode, "00234218", models.ColumnPrerequisites, "00234114 ו-00104031", models.ColumnPaired, nil)
	table := models.NewTable([]*models.Record{r})

	NewExtractor(8).ExtractColumns(table, []string{models.ColumnPrerequisites, models.ColumnPaired})

	assert.Equal(t, []string{"00234114", "00104031"}, r.Strings(models.ColumnPrerequisites))
	assert.Equal(t, []string{}, r.Strings(models.ColumnPaired))
}
