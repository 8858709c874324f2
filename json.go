package deltamd

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Wire form of a delta:
//
//	{"ops":[{"insert":"Title"},{"insert":"\n","attributes":{"heading":1}}]}
//
// Embeds insert an object instead of a string:
//
//	{"insert":{"type":"rule","text":"---"}}
//
// Attribute acquisition order is not preserved across the wire; maps come
// back in key order.

type deltaJSON struct {
	Ops []opJSON `json:"ops"`
}

type opJSON struct {
	Insert     json.RawMessage `json:"insert"`
	Attributes map[string]any  `json:"attributes,omitempty"`
}

type embedJSON struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// MarshalJSON renders the delta in its wire form.
func (d *Delta) MarshalJSON() ([]byte, error) {
	out := deltaJSON{Ops: make([]opJSON, 0, len(d.ops))}
	for _, op := range d.ops {
		var insert any = op.Text
		if op.IsEmbed() {
			insert = embedJSON{Type: op.Embed.Kind.String(), Text: op.Embed.Text}
		}
		raw, err := json.Marshal(insert)
		if err != nil {
			return nil, err
		}
		out.Ops = append(out.Ops, opJSON{Insert: raw, Attributes: styleWireMap(op.Attributes)})
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds a delta from its wire form.
func (d *Delta) UnmarshalJSON(data []byte) error {
	var in deltaJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	ops := make([]Op, 0, len(in.Ops))
	for i, op := range in.Ops {
		style := styleFromWireMap(op.Attributes)
		var text string
		if err := json.Unmarshal(op.Insert, &text); err == nil {
			ops = append(ops, Op{Text: text, Attributes: style})
			continue
		}
		var emb embedJSON
		if err := json.Unmarshal(op.Insert, &emb); err != nil {
			return fmt.Errorf("op %d: unsupported insert: %w", i, err)
		}
		ops = append(ops, Op{Embed: &Embed{Kind: embedKindFromWire(emb.Type), Text: emb.Text}, Attributes: style})
	}
	d.ops = ops
	return nil
}

func styleWireMap(s Style) map[string]any {
	if s.IsEmpty() {
		return nil
	}
	m := make(map[string]any, s.Len())
	for _, a := range s.Attributes() {
		m[string(a.Key)] = a.Value
	}
	return m
}

func styleFromWireMap(m map[string]any) Style {
	if len(m) == 0 {
		return Style{}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var s Style
	for _, k := range keys {
		s = s.Put(attrFromWire(k, m[k]))
	}
	return s
}

func attrFromWire(key string, value any) Attribute {
	k := AttrKey(key)
	switch k {
	case KeyHeading, KeyIndent:
		return Attribute{Key: k, Scope: ScopeLine, Value: wireInt(value)}
	case KeyQuote, KeyChecked:
		return Attribute{Key: k, Scope: ScopeLine, Value: value == true}
	case KeyBlock:
		v, _ := value.(string)
		return Attribute{Key: k, Scope: ScopeLine, Value: v}
	case KeyLink:
		v, _ := value.(string)
		return Attribute{Key: k, Scope: ScopeInline, Value: v}
	case KeyBold, KeyItalic, KeyStrikethrough, KeyInlineCode, KeyUnderline:
		return Attribute{Key: k, Scope: ScopeInline, Value: value == true}
	default:
		return Attribute{Key: k, Scope: ScopeInline, Value: value}
	}
}

func wireInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func embedKindFromWire(name string) EmbedKind {
	switch name {
	case "rule":
		return EmbedRule
	case "hashtag":
		return EmbedHashtag
	case "reference":
		return EmbedReference
	default:
		return EmbedObject
	}
}
