package deltamd

// AttrKey identifies a formatting attribute.
type AttrKey string

// Attribute keys understood by the codec.
const (
	KeyBold          AttrKey = "bold"
	KeyItalic        AttrKey = "italic"
	KeyStrikethrough AttrKey = "strike"
	KeyInlineCode    AttrKey = "code"
	KeyLink          AttrKey = "link"
	KeyUnderline     AttrKey = "underline"
	KeyHeading       AttrKey = "heading"
	KeyQuote         AttrKey = "quote"
	KeyBlock         AttrKey = "block"
	KeyIndent        AttrKey = "indent"
	KeyChecked       AttrKey = "checked"
)

// Values of the block attribute.
const (
	BlockOrdered = "ol"
	BlockBullet  = "ul"
	BlockCheck   = "cl"
	BlockCode    = "code"
)

// AttrScope partitions attributes into inline (per text run) and line
// (per line terminator) categories.
type AttrScope uint8

// Attribute scopes.
const (
	ScopeInline AttrScope = iota
	ScopeLine
)

// Attribute is a single key/value formatting pair.
type Attribute struct {
	Key   AttrKey
	Scope AttrScope
	Value any
}

// Bold marks a run bold.
func Bold() Attribute { return Attribute{Key: KeyBold, Scope: ScopeInline, Value: true} }

// Italic marks a run italic.
func Italic() Attribute { return Attribute{Key: KeyItalic, Scope: ScopeInline, Value: true} }

// Strikethrough marks a run struck through.
func Strikethrough() Attribute {
	return Attribute{Key: KeyStrikethrough, Scope: ScopeInline, Value: true}
}

// InlineCode marks a run as inline code.
func InlineCode() Attribute { return Attribute{Key: KeyInlineCode, Scope: ScopeInline, Value: true} }

// Underline marks a run underlined. Markdown has no native form for it;
// see Encode.
func Underline() Attribute { return Attribute{Key: KeyUnderline, Scope: ScopeInline, Value: true} }

// Link attaches a hyperlink target to a run.
func Link(href string) Attribute { return Attribute{Key: KeyLink, Scope: ScopeInline, Value: href} }

// Heading marks a line as a heading of the given level (1..6).
func Heading(level int) Attribute {
	return Attribute{Key: KeyHeading, Scope: ScopeLine, Value: level}
}

// BlockQuote marks a line as quoted. Unlike the block attribute it may
// wrap any other block kind.
func BlockQuote() Attribute { return Attribute{Key: KeyQuote, Scope: ScopeLine, Value: true} }

// OrderedList marks a line as an ordered list item.
func OrderedList() Attribute {
	return Attribute{Key: KeyBlock, Scope: ScopeLine, Value: BlockOrdered}
}

// BulletList marks a line as an unordered list item.
func BulletList() Attribute { return Attribute{Key: KeyBlock, Scope: ScopeLine, Value: BlockBullet} }

// CheckList marks a line as a check list item.
func CheckList() Attribute { return Attribute{Key: KeyBlock, Scope: ScopeLine, Value: BlockCheck} }

// CodeBlock marks a line as part of a fenced code block.
func CodeBlock() Attribute { return Attribute{Key: KeyBlock, Scope: ScopeLine, Value: BlockCode} }

// Indent sets the list indent level of a line.
func Indent(level int) Attribute { return Attribute{Key: KeyIndent, Scope: ScopeLine, Value: level} }

// Checked sets the checked state of a check list line.
func Checked(done bool) Attribute { return Attribute{Key: KeyChecked, Scope: ScopeLine, Value: done} }

// IsBlock reports whether the attribute opens a vertical block grouping.
func (a Attribute) IsBlock() bool { return a.Key == KeyQuote || a.Key == KeyBlock }

// IntValue returns the attribute value as an int, or zero.
func (a Attribute) IntValue() int {
	v, _ := a.Value.(int)
	return v
}

// StringValue returns the attribute value as a string, or empty.
func (a Attribute) StringValue() string {
	v, _ := a.Value.(string)
	return v
}

// BoolValue returns the attribute value as a bool, or false.
func (a Attribute) BoolValue() bool {
	v, _ := a.Value.(bool)
	return v
}

// Style is an ordered, immutable set of attributes. The zero value is the
// empty style. Mutating methods return a new Style; the receiver is never
// changed, so styles may be shared freely across recursive tokenizer calls.
type Style struct {
	attrs []Attribute
}

// NewStyle returns a style holding the given attributes in order. Later
// duplicates of a key overwrite earlier ones.
func NewStyle(attrs ...Attribute) Style {
	var s Style
	return s.PutAll(attrs...)
}

// Len returns the number of attributes in the style.
func (s Style) Len() int { return len(s.attrs) }

// IsEmpty reports whether the style has no attributes.
func (s Style) IsEmpty() bool { return len(s.attrs) == 0 }

// Attributes returns the attributes in acquisition order. The returned
// slice must not be modified.
func (s Style) Attributes() []Attribute { return s.attrs }

// Put returns a style with the attribute added. An attribute with the same
// key is overwritten in place, keeping its acquisition position.
func (s Style) Put(a Attribute) Style {
	out := make([]Attribute, len(s.attrs), len(s.attrs)+1)
	copy(out, s.attrs)
	for i := range out {
		if out[i].Key == a.Key {
			out[i] = a
			return Style{attrs: out}
		}
	}
	return Style{attrs: append(out, a)}
}

// PutAll returns a style with all given attributes added in order.
func (s Style) PutAll(attrs ...Attribute) Style {
	out := s
	for _, a := range attrs {
		out = out.Put(a)
	}
	return out
}

// Merge unions the receiver with outer. On key conflicts the outer
// operand wins; the receiver's acquisition order is preserved and outer's
// new keys follow in outer's order.
func (s Style) Merge(outer Style) Style {
	out := s
	for _, a := range outer.attrs {
		out = out.Put(a)
	}
	return out
}

// MergeAll unions the receiver with each outer style in turn.
func (s Style) MergeAll(outers ...Style) Style {
	out := s
	for _, o := range outers {
		out = out.Merge(o)
	}
	return out
}

// Contains reports whether the style holds an attribute with the key.
func (s Style) Contains(key AttrKey) bool {
	_, ok := s.Get(key)
	return ok
}

// ContainsSame reports whether the style holds the attribute with the same
// key and value.
func (s Style) ContainsSame(a Attribute) bool {
	got, ok := s.Get(a.Key)
	return ok && got.Value == a.Value
}

// Get returns the attribute stored under key.
func (s Style) Get(key AttrKey) (Attribute, bool) {
	for _, a := range s.attrs {
		if a.Key == key {
			return a, true
		}
	}
	return Attribute{}, false
}

// InlineAttributes returns the inline-scope subset of the style.
func (s Style) InlineAttributes() Style { return s.scoped(ScopeInline) }

// LineAttributes returns the line-scope subset of the style.
func (s Style) LineAttributes() Style { return s.scoped(ScopeLine) }

func (s Style) scoped(scope AttrScope) Style {
	var out []Attribute
	for _, a := range s.attrs {
		if a.Scope == scope {
			out = append(out, a)
		}
	}
	return Style{attrs: out}
}

// blockAttributes returns the block-category subset (quote plus block kind),
// the signature the encoder tracks across lines.
func (s Style) blockAttributes() Style {
	var out []Attribute
	for _, a := range s.attrs {
		if a.IsBlock() {
			out = append(out, a)
		}
	}
	return Style{attrs: out}
}

// Equal reports whether two styles hold the same attributes, ignoring
// acquisition order.
func (s Style) Equal(other Style) bool {
	if len(s.attrs) != len(other.attrs) {
		return false
	}
	for _, a := range s.attrs {
		if !other.ContainsSame(a) {
			return false
		}
	}
	return true
}
