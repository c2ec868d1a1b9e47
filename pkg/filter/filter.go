package filter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"ytguide/pkg/models"
)

type FilterMode int

const (
	FilterModeNone FilterMode = iota
	FilterModeExact
	FilterModeContains
	FilterModeRegex
	FilterModeFuzzy
)

type StringFilter struct {
	Pattern string
	Mode    FilterMode
	regex   *regexp.Regexp
}

func NewStringFilter(pattern string, mode FilterMode) (*StringFilter, error) {
	f := &StringFilter{
		Pattern: pattern,
		Mode:    mode,
	}

	if mode == FilterModeRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern '%s': %w", pattern, err)
		}
		f.regex = re
	}

	return f, nil
}

func (f *StringFilter) Match(s string) bool {
	switch f.Mode {
	case FilterModeExact:
		return strings.EqualFold(s, f.Pattern)
	case FilterModeContains:
		return strings.Contains(strings.ToLower(s), strings.ToLower(f.Pattern))
	case FilterModeRegex:
		return f.regex != nil && f.regex.MatchString(s)
	case FilterModeFuzzy:
		return FuzzyMatch(f.Pattern, s)
	default:
		return true
	}
}

// FuzzyMatch reports whether pattern is a case-insensitive subsequence of
// text.
func FuzzyMatch(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	if text == "" {
		return false
	}

	p := []rune(strings.ToLower(pattern))
	i := 0
	for _, r := range strings.ToLower(text) {
		if r == p[i] {
			i++
			if i == len(p) {
				return true
			}
		}
	}
	return false
}

func LevenshteinDistance(s1, s2 string) int {
	a := []rune(s1)
	b := []rune(s2)
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previousRow := make([]int, len(b)+1)
	currentRow := make([]int, len(b)+1)

	for i := 0; i <= len(b); i++ {
		previousRow[i] = i
	}

	for i := 0; i < len(a); i++ {
		currentRow[0] = i + 1

		for j := 0; j < len(b); j++ {
			cost := 1
			if unicode.ToLower(a[i]) == unicode.ToLower(b[j]) {
				cost = 0
			}

			deletion := currentRow[j] + 1
			insertion := previousRow[j+1] + 1
			substitution := previousRow[j] + cost

			currentRow[j+1] = min(deletion, insertion, substitution)
		}

		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(b)]
}

// MatchSteps returns the steps a query names, using the strictest rule that
// matches anything: ordinal, exact title, title substring, then title
// subsequence. Order of steps is preserved.
func MatchSteps(query string, steps []models.Step) []models.Step {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	for _, s := range steps {
		if s.Ordinal == query {
			return []models.Step{s}
		}
	}

	for _, mode := range []FilterMode{FilterModeExact, FilterModeContains, FilterModeFuzzy} {
		f, _ := NewStringFilter(query, mode)
		var out []models.Step
		for _, s := range steps {
			if f.Match(s.Title) {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// Suggest lists up to limit "ordinal (title)" entries ordered by how close
// their title is to query.
func Suggest(query string, steps []models.Step, limit int) []string {
	type scored struct {
		label    string
		distance int
		index    int
	}

	candidates := make([]scored, 0, len(steps))
	for i, s := range steps {
		candidates = append(candidates, scored{
			label:    fmt.Sprintf("%s (%s)", s.Ordinal, s.Title),
			distance: LevenshteinDistance(strings.ToLower(query), strings.ToLower(s.Title)),
			index:    i,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.label)
	}
	return out
}
