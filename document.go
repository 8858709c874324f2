package deltamd

import "strings"

// Node is a top-level document child: a standalone *Line or a *Block of
// lines sharing one block signature.
type Node interface {
	node()
}

// LeafNode is a line child: a *TextNode or an *EmbedNode.
type LeafNode interface {
	leaf()
}

// TextNode is a literal text run with inline attributes.
type TextNode struct {
	text  string
	style Style
}

func (n *TextNode) leaf() {}

// Text returns the run's literal text.
func (n *TextNode) Text() string { return n.text }

// Style returns the run's inline attributes.
func (n *TextNode) Style() Style { return n.style }

// EmbedNode is an embed insert positioned within a line.
type EmbedNode struct {
	embed Embed
	style Style
}

func (n *EmbedNode) leaf() {}

// Embed returns the embedded value.
func (n *EmbedNode) Embed() Embed { return n.embed }

// Style returns the embed's inline attributes.
func (n *EmbedNode) Style() Style { return n.style }

// Line is one document line: ordered leaves plus the line-scope style its
// terminator carried.
type Line struct {
	style  Style
	leaves []LeafNode
}

func (l *Line) node() {}

// Style returns the line's composed line-scope attributes.
func (l *Line) Style() Style { return l.style }

// Leaves returns the line's children in order.
func (l *Line) Leaves() []LeafNode { return l.leaves }

// BlockEmbed returns the line's block-level embed when the line carries one
// instead of text, such as a horizontal rule.
func (l *Line) BlockEmbed() (Embed, bool) {
	if len(l.leaves) != 1 {
		return Embed{}, false
	}
	n, ok := l.leaves[0].(*EmbedNode)
	if !ok {
		return Embed{}, false
	}
	if n.embed.Kind == EmbedRule || n.embed.Kind == EmbedObject {
		return n.embed, true
	}
	return Embed{}, false
}

// Block is a vertical grouping of consecutive lines that share one block
// signature (quote and/or block kind).
type Block struct {
	style Style
	lines []*Line
}

func (b *Block) node() {}

// Style returns the shared block signature.
func (b *Block) Style() Style { return b.style }

// Lines returns the block's lines in order.
func (b *Block) Lines() []*Line { return b.lines }

// Document is the line/block tree over a decoded delta.
type Document struct {
	children []Node
	delta    *Delta
}

// Children returns the top-level lines and blocks in order.
func (d *Document) Children() []Node { return d.children }

// Delta returns the op sequence the document was built from, after
// trailing-terminator trimming.
func (d *Document) Delta() *Delta { return d.delta }

// FromDelta builds a Document from an op sequence. A trailing unattributed
// terminator-only op following an already-terminated line is redundant and
// trimmed before building.
func FromDelta(d *Delta) *Document {
	ops := d.Ops()
	if n := len(ops); n >= 2 {
		last, prev := ops[n-1], ops[n-2]
		if !last.IsEmbed() && last.Text == "\n" && last.Attributes.IsEmpty() &&
			!prev.IsEmbed() && strings.HasSuffix(prev.Text, "\n") {
			ops = ops[:n-1]
		}
	}

	var (
		children []Node
		leaves   []LeafNode
	)
	closeLine := func(style Style) {
		children = appendLine(children, &Line{style: style.LineAttributes(), leaves: leaves})
		leaves = nil
	}
	for _, op := range ops {
		if op.IsEmbed() {
			leaves = append(leaves, &EmbedNode{embed: *op.Embed, style: op.Attributes.InlineAttributes()})
			continue
		}
		text := op.Text
		for {
			i := strings.IndexByte(text, '\n')
			if i < 0 {
				break
			}
			if i > 0 {
				leaves = append(leaves, &TextNode{text: text[:i], style: op.Attributes.InlineAttributes()})
			}
			closeLine(op.Attributes)
			text = text[i+1:]
		}
		if text != "" {
			leaves = append(leaves, &TextNode{text: text, style: op.Attributes.InlineAttributes()})
		}
	}
	if len(leaves) > 0 {
		closeLine(Style{})
	}
	return &Document{children: children, delta: &Delta{ops: ops}}
}

// appendLine attaches a line to the previous block when their block
// signatures match, otherwise starts a new top-level child.
func appendLine(children []Node, line *Line) []Node {
	sig := line.style.blockAttributes()
	if sig.IsEmpty() {
		return append(children, line)
	}
	if len(children) > 0 {
		if b, ok := children[len(children)-1].(*Block); ok && b.style.Equal(sig) {
			b.lines = append(b.lines, line)
			return children
		}
	}
	return append(children, &Block{style: sig, lines: []*Line{line}})
}
