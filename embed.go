package deltamd

// EmbedKind distinguishes the non-text inserts the codec understands.
type EmbedKind uint8

// Embed kinds.
const (
	// EmbedRule is a horizontal rule.
	EmbedRule EmbedKind = iota
	// EmbedHashtag is a #tag token.
	EmbedHashtag
	// EmbedReference is an @reference token.
	EmbedReference
	// EmbedObject is any other opaque embed.
	EmbedObject
)

// String returns the wire name of the kind.
func (k EmbedKind) String() string {
	switch k {
	case EmbedRule:
		return "rule"
	case EmbedHashtag:
		return "hashtag"
	case EmbedReference:
		return "reference"
	default:
		return "object"
	}
}

// Embed is an atomic non-text insert occupying one delta position. Text
// carries the payload: for hashtags and references it is the full matched
// token including the sigil, so re-encoding reproduces the source.
type Embed struct {
	Kind EmbedKind
	Text string
}
