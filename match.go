package deltamd

import "sort"

// matchKind tags a pattern detection within one span.
type matchKind uint8

const (
	matchStyle matchKind = iota
	matchLink
	matchHashtag
	matchReference
)

// match is a transient pattern detection: half-open [start,end) offsets
// into the span plus kind-specific payload. Matches are discarded once the
// span has been replayed.
type match struct {
	start, end int
	text       string // full matched source text
	kind       matchKind
	priority   int

	attr    Attribute // attribute to merge under the outer style
	content string    // inner content to recurse on
	literal bool      // insert content verbatim, no re-tokenizing
}

// mergeMatches linearizes independently collected match groups into one
// ordered stream. Start offset is the primary key; ties fall back to the
// order the groups were passed in, so earlier groups take priority.
func mergeMatches(groups ...[]match) []match {
	var out []match
	for p, g := range groups {
		for _, m := range g {
			m.priority = p
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].start != out[j].start {
			return out[i].start < out[j].start
		}
		return out[i].priority < out[j].priority
	})
	return out
}
