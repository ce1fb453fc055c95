package changelog

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatEntries writes extracted entries to the writer with terminal
// styling. Entries are separated by blank lines and keep document order.
func FormatEntries(entries []Entry, w io.Writer, opts FormatOptions) error {
	for i := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := FormatEntry(&entries[i], w, opts); err != nil {
			return fmt.Errorf("formatting version %s: %w", entries[i].Version.Label(), err)
		}
	}
	return nil
}

// FormatEntry writes a single entry: a styled version header followed by the
// entry's content blocks as markdown.
func FormatEntry(e *Entry, w io.Writer, opts FormatOptions) error {
	if err := writeVersionHeader(e.Version, w, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, block := range e.Content {
		src, ok := block.(SourceBlock)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", src.Markdown()); err != nil {
			return err
		}
	}

	return nil
}

// writeVersionHeader writes the version header line. Unreleased sections are
// highlighted so pending changes stand out in long output.
func writeVersionHeader(v Version, w io.Writer, opts FormatOptions) error {
	header := v.String()

	if opts.Plain {
		_, err := fmt.Fprintf(w, "## %s\n", header)
		return err
	}

	style := color.New(color.Bold)
	if v.IsUnreleased() {
		style = color.New(color.Bold, color.FgYellow)
	}
	_, err := fmt.Fprintf(w, "## %s\n", style.Sprint(header))
	return err
}

// FormatEntrySummary returns a one-line summary of an entry, truncated to
// the terminal width: the version identifier plus a content block count.
func FormatEntrySummary(e *Entry, opts FormatOptions) string {
	width := resolveWidth(opts.MaxWidth)

	noun := "blocks"
	if len(e.Content) == 1 {
		noun = "block"
	}
	summary := fmt.Sprintf("%s (%d content %s)", e.Version, len(e.Content), noun)
	summary = truncateText(summary, width)

	if opts.Plain {
		return summary
	}
	if e.Version.IsUnreleased() {
		return color.New(color.FgYellow).Sprint(summary)
	}
	return summary
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// truncateText truncates text to maxLen, adding ellipsis if needed.
func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen || maxLen < 4 {
		return text
	}
	return text[:maxLen-3] + "..."
}
