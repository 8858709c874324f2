package deltamd

import "testing"

func TestStylePutOverwritesSameKey(t *testing.T) {
	s := NewStyle(Heading(1), Bold())
	s = s.Put(Heading(2))
	if s.Len() != 2 {
		t.Fatalf("expected 2 attributes, got %d", s.Len())
	}
	a, ok := s.Get(KeyHeading)
	if !ok || a.IntValue() != 2 {
		t.Fatalf("expected heading overwritten to 2, got %+v", a)
	}
	// Acquisition position survives the overwrite.
	if s.Attributes()[0].Key != KeyHeading {
		t.Fatalf("expected heading to keep first position: %+v", s.Attributes())
	}
}

func TestStylePutDoesNotMutateReceiver(t *testing.T) {
	base := NewStyle(Bold())
	_ = base.Put(Italic())
	if base.Len() != 1 {
		t.Fatalf("receiver mutated: %+v", base.Attributes())
	}
}

func TestStyleMergeOuterWins(t *testing.T) {
	inner := NewStyle(Link("http://inner"), Italic())
	outer := NewStyle(Link("http://outer"), Bold())
	merged := inner.Merge(outer)
	if a, _ := merged.Get(KeyLink); a.StringValue() != "http://outer" {
		t.Fatalf("outer operand must win, got %q", a.StringValue())
	}
	for _, key := range []AttrKey{KeyItalic, KeyBold} {
		if !merged.Contains(key) {
			t.Fatalf("merge lost %s: %+v", key, merged.Attributes())
		}
	}
}

func TestStylePartition(t *testing.T) {
	s := NewStyle(Bold(), Heading(2), Link("http://x"), BlockQuote(), Indent(1))
	inline := s.InlineAttributes()
	if inline.Len() != 2 || !inline.Contains(KeyBold) || !inline.Contains(KeyLink) {
		t.Fatalf("unexpected inline partition: %+v", inline.Attributes())
	}
	line := s.LineAttributes()
	if line.Len() != 3 || !line.Contains(KeyHeading) || !line.Contains(KeyQuote) || !line.Contains(KeyIndent) {
		t.Fatalf("unexpected line partition: %+v", line.Attributes())
	}
}

func TestStyleContainsSame(t *testing.T) {
	s := NewStyle(Heading(2))
	if !s.ContainsSame(Heading(2)) {
		t.Fatalf("expected ContainsSame true for equal value")
	}
	if s.ContainsSame(Heading(3)) {
		t.Fatalf("expected ContainsSame false for different value")
	}
}

func TestStyleEqualIgnoresOrder(t *testing.T) {
	a := NewStyle(Bold(), Italic())
	b := NewStyle(Italic(), Bold())
	if !a.Equal(b) {
		t.Fatalf("expected order-insensitive equality")
	}
	if a.Equal(NewStyle(Bold())) {
		t.Fatalf("expected inequality on different sizes")
	}
}

func TestAttributeBlockCategory(t *testing.T) {
	for _, a := range []Attribute{BlockQuote(), OrderedList(), BulletList(), CheckList(), CodeBlock()} {
		if !a.IsBlock() {
			t.Fatalf("expected %s to be block category", a.Key)
		}
	}
	for _, a := range []Attribute{Bold(), Heading(1), Indent(1), Checked(true)} {
		if a.IsBlock() {
			t.Fatalf("expected %s not to be block category", a.Key)
		}
	}
}
