package deltamd

import (
	"regexp"
	"strings"
)

// Block patterns, tried in priority order per line.
var (
	reHorizontalRule = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})[ \t]*$`)
	reCodeFence      = regexp.MustCompile("^ *```")
	reOrderedItem    = regexp.MustCompile(`^( *)(\d+)[.)] +(.*)$`)
	reBulletItem     = regexp.MustCompile(`^( *)\* +(.*)$`)
	reCheckItem      = regexp.MustCompile(`^( *)- \[( |[xX])\] +(.*)$`)
	reHeading        = regexp.MustCompile(`^(#{1,6}) +(.*)$`)
)

// decoder classifies input lines and feeds the span tokenizer. All state,
// including the fenced-code flag, lives on the per-call value so concurrent
// Decode calls on independent inputs stay independent.
type decoder struct {
	delta  *Delta
	tok    tokenizer
	inCode bool
}

// Decode converts Markdown text into a Document. It is total: malformed or
// unmatched constructs degrade to literal text, never errors.
func Decode(source string, opts ...DecodeOption) *Document {
	cfg := decodeConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.skipFrontmatter {
		source = stripFrontmatter(source)
	}
	d := &decoder{delta: &Delta{}}
	d.tok = tokenizer{delta: d.delta, validRef: cfg.referenceValidator}
	for _, line := range strings.Split(source, "\n") {
		d.handleLine(strings.TrimSuffix(line, "\r"), Style{})
	}
	return FromDelta(d.delta)
}

// handleLine applies the block rules to one line under an inherited style.
// Blockquote recursion re-enters with the quote attribute added.
func (d *decoder) handleLine(line string, style Style) {
	// Inside a fence every line is verbatim code until the next fence.
	if d.inCode {
		if reCodeFence.MatchString(line) {
			d.inCode = false
			return
		}
		d.delta.InsertText(line, Style{})
		d.delta.InsertText("\n", style.Put(CodeBlock()).LineAttributes())
		return
	}

	if strings.TrimSpace(line) == "" {
		// A leading blank line is a bare terminator; later blank lines
		// only separate paragraphs.
		if d.delta.IsEmpty() {
			d.delta.InsertText("\n", Style{})
		}
		return
	}

	if reHorizontalRule.MatchString(line) {
		if !d.delta.IsEmpty() && !d.delta.endsWithTerminator() {
			d.delta.InsertText("\n", Style{})
		}
		d.delta.InsertEmbed(Embed{Kind: EmbedRule, Text: "---"}, Style{})
		d.delta.InsertText("\n", style.LineAttributes())
		return
	}

	if strings.HasPrefix(line, "> ") && !style.Contains(KeyBlock) {
		d.handleLine(line[2:], style.Put(BlockQuote()))
		return
	}

	if reCodeFence.MatchString(line) {
		d.inCode = true
		return
	}

	if !style.Contains(KeyBlock) {
		if m := reOrderedItem.FindStringSubmatch(line); m != nil {
			d.handleListItem(m[1], m[3], style.Put(OrderedList()))
			return
		}
		if m := reCheckItem.FindStringSubmatch(line); m != nil {
			checked := m[2] == "x" || m[2] == "X"
			d.handleListItem(m[1], m[3], style.Put(CheckList()).Put(Checked(checked)))
			return
		}
		if m := reBulletItem.FindStringSubmatch(line); m != nil {
			d.handleListItem(m[1], m[2], style.Put(BulletList()))
			return
		}
	}

	if m := reHeading.FindStringSubmatch(line); m != nil {
		d.tok.emitSpan(m[2], style.Put(Heading(len(m[1]))), true)
		return
	}

	d.tok.emitSpan(line, style, true)
}

// handleListItem tokenizes an item body; the terminator carries the block
// kind plus the indent level derived from the leading spaces.
func (d *decoder) handleListItem(leading, text string, style Style) {
	if indent := len(leading) / 2; indent > 0 {
		style = style.Put(Indent(indent))
	}
	d.tok.emitSpan(text, style, true)
}
