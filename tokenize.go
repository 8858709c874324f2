package deltamd

import "regexp"

// ReferenceValidator decides whether an @token names a known reference.
// The token is passed without its sigil.
type ReferenceValidator func(token string) bool

// Inline patterns. RE2 has no backreferences, so the heterogeneous triple
// delimiters (_**x**_ and **_x_**) get their own alternatives ahead of the
// plain forms; pairing is then settled by collection priority.
var (
	reItalicBold = regexp.MustCompile(`_(\*\*.+?\*\*)_`)
	reBoldItalic = regexp.MustCompile(`\*\*(_.+?_)\*\*`)
	reBold       = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
	reItalic     = regexp.MustCompile(`\*(.+?)\*|_(.+?)_`)
	reStrike     = regexp.MustCompile(`~~(.+?)~~`)
	reCode       = regexp.MustCompile("`(.+?)`")
	reLink       = regexp.MustCompile(`\[(.+?)\]\(([^)\s]+)\)`)
	reHashtag    = regexp.MustCompile(`#[^\s#]+`)
	reReference  = regexp.MustCompile(`@[^\s@]+`)
)

// tokenizer scans span text for inline constructs and appends the
// resulting fragments to the delta.
type tokenizer struct {
	delta    *Delta
	validRef ReferenceValidator
}

// emitSpan tokenizes one top-level span: inline styles, links, hashtags and
// references. If terminator is set, a line terminator carrying the outer
// line attributes is appended, even for an empty span.
func (t *tokenizer) emitSpan(text string, style Style, terminator bool) {
	groups := t.collectInline(text)
	groups = append(groups,
		collectEmbeds(text, reHashtag, matchHashtag, nil),
		collectEmbeds(text, reReference, matchReference, t.validRef),
	)
	t.replay(text, style, mergeMatches(groups...))
	if terminator {
		t.delta.InsertText("\n", style.LineAttributes())
	}
}

// emitInline tokenizes recursed content: styles and links only.
func (t *tokenizer) emitInline(text string, style Style) {
	t.replay(text, style, mergeMatches(t.collectInline(text)...))
}

// collectInline gathers style and link matches in priority order.
func (t *tokenizer) collectInline(text string) [][]match {
	return [][]match{
		collectStyled(text, reItalicBold, Italic(), false),
		collectStyled(text, reBoldItalic, Bold(), false),
		collectStyled(text, reBold, Bold(), false),
		collectStyled(text, reItalic, Italic(), false),
		collectStyled(text, reStrike, Strikethrough(), false),
		collectStyled(text, reCode, InlineCode(), true),
		collectLinks(text),
	}
}

// replay walks the merged matches left to right, filling gaps with literal
// text under the outer inline attributes. A match starting inside an
// already-consumed span is dropped.
func (t *tokenizer) replay(text string, style Style, matches []match) {
	inline := style.InlineAttributes()
	pos := 0
	for _, m := range matches {
		if m.start < pos {
			continue
		}
		if m.start > pos {
			t.delta.InsertText(text[pos:m.start], inline)
		}
		switch m.kind {
		case matchStyle, matchLink:
			// Enclosing attributes come first so the encoder re-nests the
			// tags the way the source nested them.
			if m.literal {
				t.delta.InsertText(m.content, inline.Merge(NewStyle(m.attr)))
			} else {
				t.emitInline(m.content, style.Merge(NewStyle(m.attr)))
			}
		case matchHashtag:
			t.delta.InsertEmbed(Embed{Kind: EmbedHashtag, Text: m.text}, inline)
		case matchReference:
			t.delta.InsertEmbed(Embed{Kind: EmbedReference, Text: m.text}, inline)
		}
		pos = m.end
	}
	if pos < len(text) {
		t.delta.InsertText(text[pos:], inline)
	}
}

// collectStyled gathers matches of one emphasis pattern. The delimiter
// character is the first byte of the match; content ending in that
// delimiter, or in a space just before the closing delimiter, is rejected
// so empty emphasis never matches. A rejected candidate may shadow a real
// match beginning inside it, so scanning resumes one byte past the
// rejected start rather than past its end.
func collectStyled(text string, re *regexp.Regexp, attr Attribute, literal bool) []match {
	var out []match
	for offset := 0; offset < len(text); {
		idx := re.FindStringSubmatchIndex(text[offset:])
		if idx == nil {
			break
		}
		for i := range idx {
			if idx[i] >= 0 {
				idx[i] += offset
			}
		}
		full := text[idx[0]:idx[1]]
		content, ok := firstGroup(text, idx)
		if !ok || !validEmphasis(content, full[0]) {
			offset = idx[0] + 1
			continue
		}
		out = append(out, match{
			start:   idx[0],
			end:     idx[1],
			text:    full,
			kind:    matchStyle,
			attr:    attr,
			content: content,
			literal: literal,
		})
		offset = idx[1]
	}
	return out
}

func collectLinks(text string) []match {
	var out []match
	for _, idx := range reLink.FindAllStringSubmatchIndex(text, -1) {
		label := text[idx[2]:idx[3]]
		target := text[idx[4]:idx[5]]
		out = append(out, match{
			start:   idx[0],
			end:     idx[1],
			text:    text[idx[0]:idx[1]],
			kind:    matchLink,
			attr:    Link(target),
			content: label,
		})
	}
	return out
}

func collectEmbeds(text string, re *regexp.Regexp, kind matchKind, accept ReferenceValidator) []match {
	var out []match
	for _, idx := range re.FindAllStringIndex(text, -1) {
		token := text[idx[0]:idx[1]]
		if accept != nil && !accept(token[1:]) {
			continue
		}
		out = append(out, match{start: idx[0], end: idx[1], text: token, kind: kind})
	}
	return out
}

func firstGroup(text string, idx []int) (string, bool) {
	for g := 2; g+1 < len(idx); g += 2 {
		if idx[g] >= 0 {
			return text[idx[g]:idx[g+1]], true
		}
	}
	return "", false
}

func validEmphasis(content string, delim byte) bool {
	if content == "" {
		return false
	}
	last := content[len(content)-1]
	return last != delim && last != ' '
}
