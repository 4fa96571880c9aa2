package fuzzy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	assert.Equal(t, "data structures 1", Process("  Data-Structures (1) "))
	assert.Equal(t, "00234218 מבני נתונים", Process("00234218 - מבני נתונים"))
	assert.Equal(t, "", Process(" - "))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 100.0, Ratio("abc", "abc"))
	assert.Equal(t, 0.0, Ratio("abc", "xyz"))
	assert.Equal(t, 67.0, Ratio("ab", "abcd"))
	assert.Equal(t, 0.0, Ratio("", "abc"))
	assert.Equal(t, 100.0, Ratio("", ""))
}

func TestPartialRatio(t *testing.T) {
	assert.Equal(t, 100.0, PartialRatio("234218", "00234218 signals"))
	assert.Equal(t, 100.0, PartialRatio("00234218 signals", "234218"))
	assert.Equal(t, 0.0, PartialRatio("", "abc"))
	assert.Less(t, PartialRatio("xyz", "00234218"), 50.0)
}

func TestTokenRatios(t *testing.T) {
	assert.Equal(t, 100.0, TokenSortRatio("structures data", "data structures"))
	assert.Equal(t, 100.0, TokenSetRatio("data structures", "data structures and algorithms"))
	assert.Equal(t, 100.0, PartialTokenRatio("data", "data structures"))
	assert.Less(t, TokenSetRatio("calculus", "physics"), 60.0)
}

func TestWRatio(t *testing.T) {
	assert.Equal(t, 0.0, WRatio("", "abc"))
	assert.Equal(t, 100.0, WRatio("signals", "signals"))
	assert.InDelta(t, 90.0, WRatio("234218", "00234218 signals and systems"), 0.01)
	assert.InDelta(t, 95.0, WRatio("systems signals", "signals systems"), 0.01)
	assert.Less(t, WRatio("quantum", "00104031 calculus 1"), 60.0)
}

func TestHebrewScoresAreNotStripped(t *testing.T) {
	assert.Equal(t, 100.0, WRatio(Process("מבני נתונים"), Process("מבני נתונים")))
	assert.Greater(t, WRatio(Process("מבני נתונים"), Process("00234218 - מבני נתונים 1")), 80.0)
}

func TestExtract(t *testing.T) {
	choices := []string{
		"00104031 - חשבון אינפיניטסימלי 1מ",
		"00234114 - מבוא למדעי המחשב מ",
		"00234218 - מבני נתונים 1",
		"00234247 - אלגוריתמים 1",
	}

	matches := Extract("234218", choices, 10, 60)
	require.NotEmpty(t, matches)
	assert.Equal(t, "00234218 - מבני נתונים 1", matches[0].Choice)
	assert.Equal(t, 2, matches[0].Index)

	matches = Extract("מבני נתונים", choices, 10, 60)
	require.NotEmpty(t, matches)
	assert.Equal(t, "00234218 - מבני נתונים 1", matches[0].Choice)

	assert.Empty(t, Extract("zzzzzz", choices, 10, 60))
	assert.Nil(t, Extract("  ", choices, 10, 60))
}

func TestExtractLimit(t *testing.T) {
	var choices []string
	for i := 0; i < 25; i++ {
		choices = append(choices, fmt.Sprintf("0023%04d - course", i))
	}
	matches := Extract("course", choices, 10, 60)
	assert.Len(t, matches, 10)
	assert.Equal(t, 0, matches[0].Index)
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.Score, 60.0)
	}
}
