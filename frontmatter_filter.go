package deltamd

import "strings"

// stripFrontmatter drops a leading frontmatter block from the source. The
// block must open with ---, +++ or ;;; on the first line, look like
// metadata on the second, and close with the same delimiter; anything else
// passes through untouched.
func stripFrontmatter(source string) string {
	rest := source
	open, rest, ok := cutLine(rest)
	if !ok {
		return source
	}
	delim, isFrontmatter := frontmatterDelimiter(open)
	if !isFrontmatter {
		return source
	}
	second, afterSecond, ok := cutLine(rest)
	if !ok || !frontmatterMetadataLikely(second) {
		return source
	}
	for body := afterSecond; ; {
		line, after, ok := cutLine(body)
		if !ok {
			return source
		}
		if strings.TrimSpace(line) == delim {
			return after
		}
		if after == body {
			return source
		}
		body = after
	}
}

// cutLine splits off the first line, without its terminator or trailing CR.
func cutLine(s string) (line, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return strings.TrimSuffix(s, "\r"), "", true
	}
	return strings.TrimSuffix(s[:i], "\r"), s[i+1:], true
}

func frontmatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\uFEFF"))
	switch trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontmatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
