package deltamd

import "strings"

// Op is one insert operation: either a text run or an embed, with an
// attribute set. A text op whose text is "\n" terminates a line and its
// line-scope attributes describe that line.
type Op struct {
	Text       string
	Embed      *Embed
	Attributes Style
}

// IsEmbed reports whether the op inserts an embed rather than text.
func (o Op) IsEmbed() bool { return o.Embed != nil }

// Delta is an ordered sequence of insert operations. The decoder builds one
// incrementally; FromDelta consumes it whole. The zero value is empty.
type Delta struct {
	ops []Op
}

// Ops returns the operations in order. The returned slice must not be
// modified.
func (d *Delta) Ops() []Op { return d.ops }

// Len returns the number of operations.
func (d *Delta) Len() int { return len(d.ops) }

// IsEmpty reports whether no operation has been inserted yet.
func (d *Delta) IsEmpty() bool { return len(d.ops) == 0 }

// InsertText appends a text run. Empty text is dropped.
func (d *Delta) InsertText(text string, style Style) {
	if text == "" {
		return
	}
	d.ops = append(d.ops, Op{Text: text, Attributes: style})
}

// InsertEmbed appends an embed insert.
func (d *Delta) InsertEmbed(e Embed, style Style) {
	d.ops = append(d.ops, Op{Embed: &e, Attributes: style})
}

// endsWithTerminator reports whether the last op closes a line.
func (d *Delta) endsWithTerminator() bool {
	if len(d.ops) == 0 {
		return false
	}
	last := d.ops[len(d.ops)-1]
	return !last.IsEmbed() && strings.HasSuffix(last.Text, "\n")
}
