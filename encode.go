package deltamd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedAttribute reports an attribute or embed with no native
// Markdown form during strict encoding. The wrapped message names it.
var ErrUnsupportedAttribute = errors.New("no markdown representation")

// Encode renders a Document back to Markdown text. In strict mode any
// attribute or embed without a native Markdown form fails with
// ErrUnsupportedAttribute and no partial output is returned; otherwise a
// fallback is substituted.
func Encode(doc *Document, opts ...EncodeOption) (string, error) {
	cfg := encodeConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	e := &encoder{strict: cfg.strict}
	return e.encode(doc)
}

// encoder walks the line/block tree, diffing inline attribute sets between
// consecutive runs and tracking list numbering per indent level.
type encoder struct {
	buf    strings.Builder
	strict bool

	active     []Attribute // open inline attributes, acquisition order
	ordinals   map[int]int // ordered item counter per indent level
	prevIndent int
}

func (e *encoder) encode(doc *Document) (string, error) {
	for i, child := range doc.Children() {
		if i > 0 {
			// Top-level siblings are separated by a blank line.
			e.buf.WriteByte('\n')
		}
		switch c := child.(type) {
		case *Line:
			if err := e.writeLine(c); err != nil {
				return "", err
			}
		case *Block:
			if err := e.writeBlock(c); err != nil {
				return "", err
			}
		}
	}
	return e.buf.String(), nil
}

func (e *encoder) writeBlock(b *Block) error {
	code := blockValue(b.style) == BlockCode
	e.ordinals = map[int]int{}
	e.prevIndent = 0
	if code {
		// The fence opens once per block, not per line.
		e.buf.WriteString("```\n")
	}
	for _, line := range b.lines {
		if err := e.writeLine(line); err != nil {
			return err
		}
	}
	if code {
		e.buf.WriteString("```\n")
	}
	return nil
}

func (e *encoder) writeLine(l *Line) error {
	style := l.Style()
	if err := e.checkLineStyle(style); err != nil {
		return err
	}
	if blockValue(style) == BlockCode {
		for _, leaf := range l.leaves {
			if t, ok := leaf.(*TextNode); ok {
				e.buf.WriteString(t.text)
			}
		}
		e.buf.WriteByte('\n')
		return nil
	}
	if emb, ok := l.BlockEmbed(); ok {
		return e.writeBlockEmbed(emb)
	}

	if style.Contains(KeyQuote) {
		e.buf.WriteString("> ")
	}
	indent := 0
	if a, ok := style.Get(KeyIndent); ok {
		indent = a.IntValue()
	}
	for i := 0; i < indent; i++ {
		e.buf.WriteString("  ")
	}
	switch blockValue(style) {
	case BlockOrdered:
		e.buf.WriteString(strconv.Itoa(e.nextOrdinal(indent)))
		e.buf.WriteString(". ")
	case BlockBullet:
		e.buf.WriteString("* ")
	case BlockCheck:
		if a, ok := style.Get(KeyChecked); ok && a.BoolValue() {
			e.buf.WriteString("- [X] ")
		} else {
			e.buf.WriteString("- [ ] ")
		}
	}
	if a, ok := style.Get(KeyHeading); ok {
		for i := 0; i < a.IntValue(); i++ {
			e.buf.WriteByte('#')
		}
		e.buf.WriteByte(' ')
	}

	e.active = e.active[:0]
	for _, leaf := range l.leaves {
		switch n := leaf.(type) {
		case *TextNode:
			if err := e.writeText(n); err != nil {
				return err
			}
		case *EmbedNode:
			if err := e.writeInlineEmbed(n.embed); err != nil {
				return err
			}
		}
	}
	if err := e.closeAllInline(); err != nil {
		return err
	}
	// An inline rule already terminated the line; an empty line still
	// needs its terminator.
	if !strings.HasSuffix(e.buf.String(), "\n") || len(l.leaves) == 0 {
		e.buf.WriteByte('\n')
	}
	return nil
}

// writeText diffs the run's inline attributes against the open set:
// attributes no longer present close in reverse acquisition order, new ones
// open in acquisition order. Leading whitespace trimmed from the run is
// re-emitted between the close and open tags so emphasis stays well formed.
func (e *encoder) writeText(n *TextNode) error {
	for i := len(e.active) - 1; i >= 0; i-- {
		if !n.style.ContainsSame(e.active[i]) {
			if err := e.writeCloseTag(e.active[i]); err != nil {
				return err
			}
			e.active = append(e.active[:i], e.active[i+1:]...)
		}
	}
	text := n.text
	trimmed := strings.TrimLeft(text, " \t")
	if pad := len(text) - len(trimmed); pad > 0 {
		e.buf.WriteString(text[:pad])
	}
	for _, a := range n.style.Attributes() {
		if !e.activeContains(a) {
			if err := e.writeOpenTag(a); err != nil {
				return err
			}
			e.active = append(e.active, a)
		}
	}
	e.buf.WriteString(trimmed)
	return nil
}

func (e *encoder) closeAllInline() error {
	for i := len(e.active) - 1; i >= 0; i-- {
		if err := e.writeCloseTag(e.active[i]); err != nil {
			return err
		}
	}
	e.active = e.active[:0]
	return nil
}

func (e *encoder) activeContains(a Attribute) bool {
	for _, got := range e.active {
		if got.Key == a.Key && got.Value == a.Value {
			return true
		}
	}
	return false
}

func (e *encoder) writeOpenTag(a Attribute) error {
	switch a.Key {
	case KeyBold:
		e.buf.WriteString("**")
	case KeyItalic:
		e.buf.WriteString("_")
	case KeyStrikethrough:
		e.buf.WriteString("~~")
	case KeyInlineCode:
		e.buf.WriteString("`")
	case KeyLink:
		e.buf.WriteString("[")
	case KeyUnderline:
		if e.strict {
			return unsupportedAttr(a.Key)
		}
		e.buf.WriteString("<u>")
	default:
		if e.strict {
			return unsupportedAttr(a.Key)
		}
	}
	return nil
}

func (e *encoder) writeCloseTag(a Attribute) error {
	switch a.Key {
	case KeyBold:
		e.buf.WriteString("**")
	case KeyItalic:
		e.buf.WriteString("_")
	case KeyStrikethrough:
		e.buf.WriteString("~~")
	case KeyInlineCode:
		e.buf.WriteString("`")
	case KeyLink:
		e.buf.WriteString("](")
		e.buf.WriteString(a.StringValue())
		e.buf.WriteString(")")
	case KeyUnderline:
		if e.strict {
			return unsupportedAttr(a.Key)
		}
		e.buf.WriteString("</u>")
	default:
		if e.strict {
			return unsupportedAttr(a.Key)
		}
	}
	return nil
}

func (e *encoder) writeBlockEmbed(emb Embed) error {
	switch emb.Kind {
	case EmbedRule:
		e.buf.WriteString("---\n")
		return nil
	default:
		if e.strict {
			return unsupportedEmbed(emb.Kind)
		}
		e.buf.WriteString("[object]\n")
		return nil
	}
}

func (e *encoder) writeInlineEmbed(emb Embed) error {
	switch emb.Kind {
	case EmbedHashtag, EmbedReference:
		e.buf.WriteString(emb.Text)
		return nil
	case EmbedRule:
		// A rule forces newlines on both sides.
		if out := e.buf.String(); out != "" && !strings.HasSuffix(out, "\n") {
			e.buf.WriteByte('\n')
		}
		e.buf.WriteString("---\n")
		return nil
	default:
		if e.strict {
			return unsupportedEmbed(emb.Kind)
		}
		e.buf.WriteString("[object]")
		return nil
	}
}

// checkLineStyle rejects unknown line attributes in strict mode.
func (e *encoder) checkLineStyle(style Style) error {
	if !e.strict {
		return nil
	}
	for _, a := range style.Attributes() {
		switch a.Key {
		case KeyHeading, KeyQuote, KeyBlock, KeyIndent, KeyChecked:
		default:
			return unsupportedAttr(a.Key)
		}
	}
	return nil
}

func (e *encoder) nextOrdinal(indent int) int {
	if e.ordinals == nil {
		e.ordinals = map[int]int{}
	}
	if indent > e.prevIndent {
		e.ordinals[indent] = 0
	}
	e.prevIndent = indent
	e.ordinals[indent]++
	return e.ordinals[indent]
}

func blockValue(style Style) string {
	a, ok := style.Get(KeyBlock)
	if !ok {
		return ""
	}
	return a.StringValue()
}

func unsupportedAttr(key AttrKey) error {
	return fmt.Errorf("%w: attribute %q", ErrUnsupportedAttribute, string(key))
}

func unsupportedEmbed(kind EmbedKind) error {
	return fmt.Errorf("%w: embed %q", ErrUnsupportedAttribute, kind.String())
}
