package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/deltamd"
	"pkt.systems/version"
)

const defaultWrapWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/deltamd")
}

func main() {
	var (
		fromDelta       bool
		strict          bool
		wrapMode        string
		prettyMode      string
		outPath         string
		skipFrontmatter bool
	)

	flags := pflag.NewFlagSet("deltamd", pflag.ExitOnError)
	flags.BoolVar(&fromDelta, "from-delta", false, "Read delta JSON and emit Markdown")
	flags.BoolVar(&strict, "strict", false, "Fail on attributes without a Markdown form")
	flags.StringVarP(&wrapMode, "wrap", "w", "off", "Wrap emitted Markdown: off|auto|<width>")
	flags.StringVarP(&prettyMode, "pretty", "p", "auto", "Indent delta JSON: auto|on|off")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&skipFrontmatter, "skip-frontmatter", false, "Drop a leading frontmatter block before decoding")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: deltamd [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nConverts Markdown to delta JSON; --from-delta converts back.")
		fmt.Fprintln(os.Stderr, "If no input is provided, data is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	src, err := readInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if fromDelta {
		width, err := resolveWrap(wrapMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --wrap %q: %v\n", wrapMode, err)
			os.Exit(2)
		}
		if err := emitMarkdown(writer, src, strict, width); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	pretty, err := resolvePretty(prettyMode, isTerminal(writer))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --pretty %q: %v\n", prettyMode, err)
		os.Exit(2)
	}
	if err := emitDelta(writer, src, skipFrontmatter, pretty); err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(1)
	}
}

func emitDelta(w io.Writer, src []byte, skipFrontmatter, pretty bool) error {
	if err := deltamd.ValidateInput(src); err != nil {
		return err
	}
	var opts []deltamd.DecodeOption
	if skipFrontmatter {
		opts = append(opts, deltamd.WithoutFrontmatter())
	}
	doc := deltamd.Decode(string(src), opts...)

	var buf []byte
	var err error
	if pretty {
		buf, err = json.MarshalIndent(doc.Delta(), "", "  ")
	} else {
		buf, err = json.Marshal(doc.Delta())
	}
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}

func emitMarkdown(w io.Writer, src []byte, strict bool, width int) error {
	var delta deltamd.Delta
	if err := json.Unmarshal(src, &delta); err != nil {
		return err
	}
	out, err := deltamd.Encode(deltamd.FromDelta(&delta), deltamd.WithStrict(strict))
	if err != nil {
		return err
	}
	if width > 0 {
		out = wordwrap.String(out, width)
	}
	_, err = io.WriteString(w, out)
	return err
}

func resolveWrap(mode string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "off", "0", "no", "false":
		return 0, nil
	case "auto":
		return terminalWidth(defaultWrapWidth), nil
	default:
		width, err := strconv.Atoi(mode)
		if err != nil || width < 1 {
			return 0, fmt.Errorf("expected off|auto|positive width")
		}
		return width, nil
	}
}

func resolvePretty(mode string, tty bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return tty, nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func readInputs(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	var buf []byte
	for _, raw := range args {
		path := strings.TrimSpace(raw)
		if path == "" {
			return nil, fmt.Errorf("empty input argument")
		}
		data, err := os.ReadFile(normalizePath(path))
		if err != nil {
			return nil, err
		}
		buf = append(buf, data...)
	}
	return buf, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
