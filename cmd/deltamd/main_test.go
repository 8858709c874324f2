package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/deltamd"
)

func TestReadInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.md")
	second := filepath.Join(dir, "b.md")
	if err := os.WriteFile(first, []byte("one\n"), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("two\n"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	buf, err := readInputs([]string{first, second})
	if err != nil {
		t.Fatalf("readInputs concat: %v", err)
	}
	if string(buf) != "one\ntwo\n" {
		t.Fatalf("unexpected concatenated content: %q", string(buf))
	}
}

func TestReadInputsRejectsEmptyArgument(t *testing.T) {
	if _, err := readInputs([]string{"  "}); err == nil {
		t.Fatalf("expected error for blank input argument")
	}
}

func TestResolveWrap(t *testing.T) {
	cases := map[string]int{
		"off": 0,
		"":    0,
		"0":   0,
		"no":  0,
		"72":  72,
	}
	for input, want := range cases {
		got, err := resolveWrap(input)
		if err != nil {
			t.Fatalf("resolveWrap(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("resolveWrap(%q)=%d want %d", input, got, want)
		}
	}
	if _, err := resolveWrap("-1"); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := resolveWrap("wide"); err == nil {
		t.Fatalf("expected error for junk width")
	}
}

func TestResolveWrapAutoFallsBack(t *testing.T) {
	t.Setenv("COLUMNS", "")
	width, err := resolveWrap("auto")
	if err != nil {
		t.Fatalf("resolveWrap(auto): %v", err)
	}
	if width < 1 {
		t.Fatalf("auto must yield a positive width, got %d", width)
	}
}

func TestResolvePretty(t *testing.T) {
	cases := []struct {
		mode string
		tty  bool
		want bool
	}{
		{"auto", true, true},
		{"auto", false, false},
		{"", false, false},
		{"on", false, true},
		{"off", true, false},
		{"1", false, true},
	}
	for _, tc := range cases {
		got, err := resolvePretty(tc.mode, tc.tty)
		if err != nil {
			t.Fatalf("resolvePretty(%q): %v", tc.mode, err)
		}
		if got != tc.want {
			t.Fatalf("resolvePretty(%q, tty=%v)=%v want %v", tc.mode, tc.tty, got, tc.want)
		}
	}
	if _, err := resolvePretty("nope", false); err == nil {
		t.Fatalf("expected error for invalid pretty value")
	}
}

func TestEmitDeltaAndMarkdownRoundTrip(t *testing.T) {
	source := "# Notes\n\n* item **bold**\n"
	var wire bytes.Buffer
	if err := emitDelta(&wire, []byte(source), false, false); err != nil {
		t.Fatalf("emitDelta: %v", err)
	}

	var delta deltamd.Delta
	if err := json.Unmarshal(wire.Bytes(), &delta); err != nil {
		t.Fatalf("emitted delta is not valid JSON: %v", err)
	}

	var md bytes.Buffer
	if err := emitMarkdown(&md, wire.Bytes(), true, 0); err != nil {
		t.Fatalf("emitMarkdown: %v", err)
	}
	if md.String() != source {
		t.Fatalf("round trip changed %q into %q", source, md.String())
	}
}

func TestEmitDeltaRejectsBinary(t *testing.T) {
	var out bytes.Buffer
	if err := emitDelta(&out, []byte("bad\x00input"), false, false); err == nil {
		t.Fatalf("expected validation error for binary input")
	}
	if out.Len() != 0 {
		t.Fatalf("no output expected on validation failure, got %q", out.String())
	}
}

func TestEmitDeltaSkipsFrontmatter(t *testing.T) {
	var out bytes.Buffer
	src := []byte("---\ntitle: x\n---\nbody\n")
	if err := emitDelta(&out, src, true, false); err != nil {
		t.Fatalf("emitDelta: %v", err)
	}
	if strings.Contains(out.String(), "title") {
		t.Fatalf("frontmatter leaked into delta: %q", out.String())
	}
}

func TestEmitMarkdownWraps(t *testing.T) {
	doc := deltamd.Decode("one two three four five six seven eight nine ten\n")
	wire, err := json.Marshal(doc.Delta())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out bytes.Buffer
	if err := emitMarkdown(&out, wire, false, 20); err != nil {
		t.Fatalf("emitMarkdown: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		if len(line) > 20 {
			t.Fatalf("line exceeds wrap width: %q", line)
		}
	}
}

func TestNormalizePathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got := normalizePath("~/notes.md")
	if got != filepath.Join(home, "notes.md") {
		t.Fatalf("unexpected expansion %q", got)
	}
}
