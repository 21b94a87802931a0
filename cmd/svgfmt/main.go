// Command svgfmt canonicalizes SVG files by parsing them and composing them
// back: attributes sorted by name, one event per line, deterministic quote
// choice. Without flags it prints the canonical form to stdout.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	svg "github.com/KimNorgaard/go-svg"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: svgfmt [flags] [files...]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Rewrites SVG files into their canonical form. With no files,")
		_, _ = fmt.Fprintln(os.Stderr, "reads standard input and writes to standard output.")
		flag.PrintDefaults()
	}
	listFlag := flag.Bool("l", false, "list files whose canonical form differs from the source")
	writeFlag := flag.Bool("w", false, "write the canonical form back to the source file")
	diffFlag := flag.Bool("d", false, "print a colored character diff instead of the result")
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if flag.NArg() == 0 {
		if *listFlag || *writeFlag {
			fatal(errors.New("svgfmt: cannot use -l or -w with standard input"))
		}
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatal(err)
		}
		out, err := canonical(src)
		if err != nil {
			fatal(err)
		}
		if *diffFlag {
			fmt.Print(renderDiff(string(src), string(out)))
			return
		}
		fmt.Print(string(out))
		return
	}

	differs := false
	for _, path := range flag.Args() {
		changed, err := processFile(path, *listFlag, *writeFlag, *diffFlag)
		if err != nil {
			fatal(err)
		}
		differs = differs || changed
	}
	if differs && (*listFlag || *diffFlag) {
		os.Exit(1)
	}
}

func processFile(path string, list, write, diff bool) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	out, err := canonical(src)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	changed := !bytes.Equal(src, out)

	switch {
	case list:
		if changed {
			fmt.Println(path)
		}
	case diff:
		if changed {
			fmt.Printf("--- %s\n", path)
			fmt.Print(renderDiff(string(src), string(out)))
			fmt.Println()
		}
	case write:
		if changed {
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return false, err
			}
		}
	default:
		fmt.Print(string(out))
	}
	return changed, nil
}

// canonical round-trips src through parse and compose. The output always
// ends in a newline so it behaves as a text file.
func canonical(src []byte) ([]byte, error) {
	document, err := svg.Parse(src)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := svg.Write(&buf, document); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "svgfmt: %v\n", err)
	os.Exit(2)
}
