// Package deltamd converts between Markdown text and a rich-document delta:
// an ordered sequence of insert operations, each carrying an attribute set.
//
// Decode classifies input line by line (rules, quotes, fences, lists,
// headings), tokenizes spans for inline styles, links, hashtags and
// references, and builds a Document over the resulting delta. Encode walks
// the document's line/block tree back to Markdown, diffing attribute sets
// between runs to place opening and closing tags.
//
// Core properties:
//   - Decode is total; ambiguous Markdown degrades to literal text
//   - Strict-representable documents round-trip through Encode and Decode
//   - No state is shared between conversions; concurrent calls on
//     independent inputs are safe
//
// Example:
//
//	doc := deltamd.Decode("# Title\n\nSome **bold** text.\n")
//	out, err := deltamd.Encode(doc, deltamd.WithStrict(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(out)
package deltamd
