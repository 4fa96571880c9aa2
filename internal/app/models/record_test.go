package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordKeepsKeyOrder(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"z": 1, "a": "x", "m": null}`), &r))

	assert.Equal(t, []string{"z", "a", "m"}, r.Keys())
	v, ok := r.Get("z")
	require.True(t, ok)
	assert.Equal(t, json.Number("1"), v)
	assert.True(t, r.Has("m"))

	out, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"x","m":null}`, string(out))
}

func TestRecordMarshalKeepsNonASCIIAndHTML(t *testing.T) {
	r := NewRecord()
	r.Set(ColumnName, "מבוא <לתכנות> & עוד")
	r.Set(ColumnPrerequisites, []string{})

	out, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"שם מקצוע":"מבוא <לתכנות> & עוד","מקצועות קדם":[]}`, string(out))

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(r))
	assert.Equal(t, `{"שם מקצוע":"מבוא <לתכנות> & עוד","מקצועות קדם":[]}`+"\n", buf.String())

	escaped, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(escaped), `\u003cלתכנות\u003e \u0026 עוד`)
}

func TestRecordStringLists(t *testing.T) {
	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"a": ["1", "2"], "b": [1, "2"], "c": []}`), &r))

	assert.Equal(t, []string{"1", "2"}, r.Strings("a"))
	v, _ := r.Get("b")
	assert.IsType(t, []interface{}{}, v)
	assert.Equal(t, []string{"2"}, r.Strings("b"))
	assert.Equal(t, []string{}, r.Strings("c"))
	assert.Nil(t, r.Strings("missing"))
}

func TestRecordDeleteAndSet(t *testing.T) {
	r := NewRecord()
	r.Set("a", 1)
	r.Set("b", 2)
	r.Set("c", 3)
	r.Delete("b")
	r.Set("a", 10)
	r.Set("b", 20)

	assert.Equal(t, []string{"a", "c", "b"}, r.Keys())
	v, _ := r.Get("a")
	assert.Equal(t, 10, v)
}

func TestRecordRejectsNonObject(t *testing.T) {
	var r Record
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &r))
}

func TestRecordCloneCopiesLists(t *testing.T) {
	r := NewRecord()
	r.Set("list", []string{"a"})
	c := r.Clone()
	c.Strings("list")[0] = "b"

	assert.Equal(t, []string{"a"}, r.Strings("list"))
}

func TestNewTableAlignsColumns(t *testing.T) {
	a := NewRecord()
	a.Set("code", "1")
	a.Set("name", "A")
	b := NewRecord()
	b.Set("extra", true)
	b.Set("code", "2")

	table := NewTable([]*Record{a, b})

	assert.Equal(t, []string{"code", "name", "extra"}, table.Columns)
	assert.Equal(t, table.Columns, a.Keys())
	assert.Equal(t, table.Columns, b.Keys())
	v, ok := b.Get("name")
	assert.True(t, ok)
	assert.Nil(t, v)

	table.SetColumn("tag", func(row *Record) interface{} { return row.String("code") })
	assert.Equal(t, "2", b.String("tag"))
	assert.True(t, table.DropColumn("extra"))
	assert.False(t, table.DropColumn("extra"))
	assert.Equal(t, []string{"code", "name", "tag"}, a.Keys())
}

func TestStatAcceptsStringsAndNumbers(t *testing.T) {
	var stats ExamStats
	require.NoError(t, json.Unmarshal([]byte(`{"Students": "120", "Average": 71.5, "PassPercent": "88%", "Median": null}`), &stats))

	assert.Equal(t, Stat(120), stats.Students)
	assert.Equal(t, Stat(71.5), stats.Average)
	assert.Equal(t, Stat(88), stats.PassPercent)
	assert.Equal(t, Stat(0), stats.Median)

	assert.Error(t, json.Unmarshal([]byte(`{"average": "n/a"}`), &stats))
}
