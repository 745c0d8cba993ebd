// Package diagnostics offers best-effort, human-facing hints for the CLI's
// verbose mode. Nothing here affects diff or overlay semantics.
package diagnostics

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/dimelords/xmldiff/pkg/overlay"
)

// SuggestColorableTag returns the colorable tag names closest to the given
// unrecognized tag, ordered nearest first, for use in a "did you mean"
// hint when a token's element doesn't land on any colorable ancestor. At
// most limit suggestions are returned.
func SuggestColorableTag(tag string, limit int) []string {
	type scored struct {
		tag  string
		dist int
	}

	candidates := overlay.ColorableTags()
	scores := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		scores = append(scores, scored{tag: c, dist: levenshtein.ComputeDistance(tag, c)})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].dist < scores[j].dist
	})

	if limit > len(scores) {
		limit = len(scores)
	}

	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = scores[i].tag
	}
	return out
}
