// Package fuzzy scores how well a query matches a candidate string on a
// 0-100 scale. Base ratios come from go-fuzzywuzzy; the weighting and the
// preprocessing keep non-ASCII letters, which the library's default
// processing strips.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	unbaseScale   = 0.95
	partialScale  = 0.9
	longLenScale  = 0.6
	longLenCutoff = 8.0
	shortLenRatio = 1.5
)

// Process lower-cases s, replaces everything that is not a letter or a digit
// with a space and trims the result.
func Process(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// Ratio is the similarity of a and b. Two empty strings are identical.
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	return float64(fuzzywuzzy.Ratio(a, b))
}

// PartialRatio is the best Ratio of the shorter string against any window
// of the longer one.
func PartialRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	return float64(fuzzywuzzy.PartialRatio(a, b))
}

func tokens(s string) []string {
	return strings.Fields(s)
}

func sortedJoin(words []string) string {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

// TokenSortRatio compares a and b after sorting their words
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedJoin(tokens(a)), sortedJoin(tokens(b)))
}

type tokenSets struct {
	common, onlyA, onlyB []string
}

func splitTokens(a, b string) tokenSets {
	inA := make(map[string]bool)
	for _, w := range tokens(a) {
		inA[w] = true
	}
	inB := make(map[string]bool)
	for _, w := range tokens(b) {
		inB[w] = true
	}

	var sets tokenSets
	for w := range inA {
		if inB[w] {
			sets.common = append(sets.common, w)
		} else {
			sets.onlyA = append(sets.onlyA, w)
		}
	}
	for w := range inB {
		if !inA[w] {
			sets.onlyB = append(sets.onlyB, w)
		}
	}
	return sets
}

// TokenSetRatio compares the shared words of a and b with each side's remainder
func TokenSetRatio(a, b string) float64 {
	sets := splitTokens(a, b)
	if len(sets.common) > 0 && (len(sets.onlyA) == 0 || len(sets.onlyB) == 0) {
		return 100
	}

	common := sortedJoin(sets.common)
	withA := strings.TrimSpace(common + " " + sortedJoin(sets.onlyA))
	withB := strings.TrimSpace(common + " " + sortedJoin(sets.onlyB))
	if common == "" {
		return Ratio(withA, withB)
	}
	return math.Max(Ratio(common, withA), math.Max(Ratio(common, withB), Ratio(withA, withB)))
}

// PartialTokenRatio is 100 when a and b share a word, otherwise the partial
// ratio of their sorted words.
func PartialTokenRatio(a, b string) float64 {
	sets := splitTokens(a, b)
	if len(sets.common) > 0 {
		return 100
	}
	return PartialRatio(sortedJoin(tokens(a)), sortedJoin(tokens(b)))
}

// WRatio combines the ratios above, weighting partial matches by how much
// the lengths of the two strings differ.
func WRatio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}

	lenRatio := float64(la) / float64(lb)
	if la < lb {
		lenRatio = float64(lb) / float64(la)
	}

	end := Ratio(a, b)
	if lenRatio < shortLenRatio {
		token := math.Max(TokenSortRatio(a, b), TokenSetRatio(a, b))
		return math.Max(end, token*unbaseScale)
	}

	scale := partialScale
	if lenRatio >= longLenCutoff {
		scale = longLenScale
	}
	end = math.Max(end, PartialRatio(a, b)*scale)
	return math.Max(end, PartialTokenRatio(a, b)*unbaseScale*scale)
}

// Match is a scored candidate
type Match struct {
	Choice string
	Score  float64
	Index  int
}

// Extract scores every choice against query after Process, keeps the best
// limit matches and drops those scoring below cutoff. Ties keep choice order.
func Extract(query string, choices []string, limit int, cutoff float64) []Match {
	q := Process(query)
	if q == "" {
		return nil
	}

	matches := make([]Match, 0, len(choices))
	for i, choice := range choices {
		matches = append(matches, Match{Choice: choice, Score: WRatio(q, Process(choice)), Index: i})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := matches[:0]
	for _, m := range matches {
		if m.Score >= cutoff {
			out = append(out, m)
		}
	}
	return out
}
