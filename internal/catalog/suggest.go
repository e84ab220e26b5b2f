package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the section ID closest to id, or "" when none is close
// enough to be a plausible typo.
func (c *Catalog) Suggest(id string) string {
	want := strings.ToLower(id)
	if want == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, s := range c.sections {
		d := levenshtein.ComputeDistance(want, strings.ToLower(s.ID))
		if bestDist < 0 || d < bestDist {
			best, bestDist = s.ID, d
		}
	}
	limit := len(want) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist > limit {
		return ""
	}
	return best
}
