package util

import (
	"github.com/sahilm/fuzzy"

	"github.com/mithrel/gyani/pkg/models"
)

// ScoreCompletions returns the top N matches for the input string from the candidates list.
func ScoreCompletions(input string, candidates []string, n int) []string {
	if input == "" {
		return candidates
	}
	return top(fuzzy.Find(input, candidates), n, func(m fuzzy.Match) string { return m.Str })
}

// modelSource lets fuzzy match on the id and the display name together.
type modelSource []models.Model

func (s modelSource) String(i int) string { return s[i].ID + " " + s[i].Name }
func (s modelSource) Len() int            { return len(s) }

// ScoreModels ranks catalog entries against input, best first. An empty
// input keeps catalog order.
func ScoreModels(input string, ms []models.Model, n int) []models.Model {
	if input == "" {
		return ms
	}
	src := modelSource(ms)
	return top(fuzzy.FindFrom(input, src), n, func(m fuzzy.Match) models.Model { return src[m.Index] })
}

func top[T any](matches fuzzy.Matches, n int, pick func(fuzzy.Match) T) []T {
	if len(matches) == 0 {
		return nil
	}
	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}
	out := make([]T, limit)
	for i := 0; i < limit; i++ {
		out[i] = pick(matches[i])
	}
	return out
}
