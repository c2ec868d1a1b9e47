package render

import (
	"fmt"
	"io"
	"strings"

	"ytguide/pkg/copycontrol"
	"ytguide/pkg/models"

	"github.com/fatih/color"
)

// LabelFunc returns the copy button label for a code sample id.
type LabelFunc func(id string) string

// TextOptions controls terminal rendering.
type TextOptions struct {
	// Label supplies live button labels; nil renders every button idle.
	Label LabelFunc
	// Hints prints the interactive shortcut for each code sample.
	Hints bool
}

var (
	titleColor   = color.New(color.FgHiWhite, color.Bold)
	taglineColor = color.New(color.FgHiBlack)
	sectionColor = color.New(color.FgCyan, color.Bold)
	ordinalColor = color.New(color.FgCyan, color.Bold)
	stepColor    = color.New(color.FgHiWhite, color.Bold)
	codeColor    = color.New(color.FgHiWhite)
	gutterColor  = color.New(color.FgHiBlack)
	noteColor    = color.New(color.FgHiBlack, color.Italic)
	copyColor    = color.New(color.FgHiBlack)
	copiedColor  = color.New(color.FgGreen, color.Bold)
)

// WriteText renders a whole page for a terminal.
func WriteText(w io.Writer, page models.Page, blocks []Block, opts TextOptions) error {
	tw := &textWriter{w: w}

	tw.line(titleColor.Sprint(page.Title))
	if page.Tagline != "" {
		tw.line(taglineColor.Sprint(page.Tagline))
	}
	tw.line("")
	if page.Section != "" {
		tw.line(sectionColor.Sprint("▌ " + page.Section))
		tw.line("")
	}

	writeBlocks(tw, blocks, opts)

	if page.Footer != "" {
		tw.line("")
		tw.line(taglineColor.Sprint(page.Footer))
	}
	return tw.err
}

func writeBlocks(tw *textWriter, blocks []Block, opts TextOptions) {
	for i, b := range blocks {
		if i > 0 {
			tw.line("")
		}
		writeBlock(tw, b, opts)
	}
}

// ButtonLabel renders a copy button label the way the terminal view shows
// it.
func ButtonLabel(label string) string {
	if label == copycontrol.LabelCopied {
		return copiedColor.Sprint("✓ " + label)
	}
	return copyColor.Sprint("⧉ " + label)
}

func writeBlock(tw *textWriter, b Block, opts TextOptions) {
	tw.line(fmt.Sprintf("%s %s", ordinalColor.Sprintf("(%s)", b.Ordinal), stepColor.Sprint(b.Title)))
	tw.line("    " + b.Description)

	if b.Code != nil {
		writeCode(tw, *b.Code, opts, b.Ordinal)
	}
	if b.Nested != nil && b.Nested.Code != nil {
		writeCode(tw, *b.Nested.Code, opts, "s "+b.Ordinal)
	}
	if b.Note != "" {
		tw.line("    " + noteColor.Sprint(b.Note))
	}
}

func writeCode(tw *textWriter, code CodeBlock, opts TextOptions, shortcut string) {
	label := copycontrol.LabelCopy
	if opts.Label != nil {
		label = opts.Label(code.ID)
	}

	header := fmt.Sprintf("    %s %s", gutterColor.Sprintf("┌─ %s", code.Language), ButtonLabel(label))
	if opts.Hints {
		header += gutterColor.Sprintf("  (type %q to copy)", shortcut)
	}
	tw.line(header)

	for _, l := range strings.Split(strings.TrimRight(code.Text, "\n"), "\n") {
		tw.line("    " + gutterColor.Sprint("│ ") + codeColor.Sprint(l))
	}
	tw.line("    " + gutterColor.Sprint("└─"))
}

// textWriter keeps the first write error so callers check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, s)
}
