package match

import (
	"sort"
)

// DefaultMinScore is the minimum normalized similarity for a suggestion.
const DefaultMinScore = 0.6

// Suggest returns up to max known names similar to name, best first, as
// rated by Score.
// Candidates scoring below minScore are dropped; ties are ordered by name
// so the result is deterministic.
func Suggest(name string, known []string, max int, minScore float64) []string {
	type scored struct {
		name  string
		score float64
	}

	seen := make(map[string]struct{}, len(known))

	var ranked []scored

	for _, k := range known {
		if k == name {
			continue
		}

		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}

		if s := Score(name, k); s >= minScore {
			ranked = append(ranked, scored{name: k, score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if max > 0 && len(ranked) > max {
		ranked = ranked[:max]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
