// Package render turns resolved parse errors into compiler-style
// reports: a path:line:col header, a source excerpt with a caret under
// the failure, and the cause chain as notes.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"parc"
)

// Options controls report appearance.
type Options struct {
	// Color enables ANSI styling.
	Color bool
	// Context is the number of source lines shown before the failing line.
	Context int
	// TabWidth is the visual width used when expanding tabs (default 4).
	TabWidth int
}

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	noteLabel  = color.New(color.FgCyan)
	caretMark  = color.New(color.FgRed, color.Bold)
	gutterMark = color.New(color.FgHiBlack)
)

// Print writes a report for err, which must have been produced by
// parsing input. It never fails: out-of-range positions clamp to the
// input bounds. A nil error prints nothing.
func Print(w io.Writer, path string, input []byte, err *parc.Error[string], opts Options) {
	if err == nil {
		return
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	ix := newLineIndex(input)

	primary := primaryOffset(err, len(input))
	line, col := ix.lineCol(primary)

	fmt.Fprintf(w, "%s:%d:%d: %s %s\n",
		path, line, col,
		paint(errorLabel, opts.Color, "error:"),
		headline(err))

	printExcerpt(w, ix, line, col, opts)

	for node := err.Inner; node != nil; node = node.Inner {
		nl, nc := ix.lineCol(offsetOf(node, len(input)))
		fmt.Fprintf(w, "%s:%d:%d: %s %s\n",
			path, nl, nc,
			paint(noteLabel, opts.Color, "note:"),
			notePhrase(node))
	}
}

// primaryOffset picks the most precise failure offset in the tree: the
// deepest node that carries a position. Incomplete failures point at the
// end of input.
func primaryOffset(e *parc.Error[string], inputLen int) int {
	off := 0
	found := false
	for n := e; n != nil; n = n.Inner {
		if n.Kind == parc.KindIncomplete {
			continue
		}
		off = n.Position
		found = true
	}
	if !found {
		return inputLen
	}
	return off
}

func offsetOf(e *parc.Error[string], inputLen int) int {
	if e.Kind == parc.KindIncomplete {
		return inputLen
	}
	return e.Position
}

func headline(e *parc.Error[string]) string {
	switch e.Kind {
	case parc.KindIncomplete:
		return "incomplete input"
	case parc.KindConversion:
		return "conversion failed: " + e.Message
	default:
		return e.Message
	}
}

func notePhrase(e *parc.Error[string]) string {
	switch e.Kind {
	case parc.KindIncomplete:
		return "input ended here"
	case parc.KindConversion:
		return "conversion failed: " + e.Message
	default:
		return e.Message
	}
}

func printExcerpt(w io.Writer, ix *lineIndex, line, col int, opts Options) {
	first := line - opts.Context
	if first < 1 {
		first = 1
	}
	for l := first; l <= line; l++ {
		text := expandTabs(ix.lineText(l), opts.TabWidth)
		fmt.Fprintf(w, "%s%s\n", paint(gutterMark, opts.Color, fmt.Sprintf("%5d | ", l)), text)
	}

	// The caret column is the display width of everything left of the
	// failure byte, not its byte offset.
	prefix := ix.lineText(line)
	if col-1 < len(prefix) {
		prefix = prefix[:col-1]
	}
	pad := runewidth.StringWidth(expandTabs(prefix, opts.TabWidth))
	fmt.Fprintf(w, "%s%s%s\n",
		paint(gutterMark, opts.Color, "      | "),
		strings.Repeat(" ", pad),
		paint(caretMark, opts.Color, "^"))
}

func expandTabs(s string, width int) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}
