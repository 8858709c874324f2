package deltamd

import "testing"

func TestMergeMatchesOrdersByStart(t *testing.T) {
	got := mergeMatches(
		[]match{{start: 5, end: 8}},
		[]match{{start: 0, end: 3}},
	)
	if len(got) != 2 || got[0].start != 0 || got[1].start != 5 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestMergeMatchesTiesFallToGroupPriority(t *testing.T) {
	got := mergeMatches(
		[]match{{start: 2, end: 9, kind: matchStyle}},
		[]match{{start: 2, end: 6, kind: matchLink}},
	)
	if got[0].kind != matchStyle || got[1].kind != matchLink {
		t.Fatalf("expected earlier group to win the tie: %+v", got)
	}
}

func TestMergeMatchesKeepsWithinGroupOrder(t *testing.T) {
	got := mergeMatches([]match{
		{start: 1, end: 2},
		{start: 1, end: 4},
	})
	if got[0].end != 2 || got[1].end != 4 {
		t.Fatalf("stable sort violated: %+v", got)
	}
}
