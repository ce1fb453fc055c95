package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/kacl/internal/changelog"
)

var extractCmd = &cobra.Command{
	Use:   "extract <version>",
	Short: "Extract release notes for a specific version",
	Long: `Extract release notes for a specific version in markdown format.

The entry's content blocks are written to stdout exactly as they appear in
the source document, without the version heading. This is useful for CI/CD
pipelines that create GitHub releases with notes taken from the changelog.

Examples:
  kacl extract v0.6.0            # notes for version 0.6.0
  kacl extract 0.6.0             # same (v prefix optional)
  kacl extract unreleased        # pending changes
  kacl extract 1.0.0 --ref v1.0.0`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, version string) error {
	entries, err := loadEntries(cmd)
	if err != nil {
		return err
	}

	entry, err := findEntry(entries, version)
	if err != nil {
		return err
	}

	return writeEntryMarkdown(entry, cmd.OutOrStdout())
}

// writeEntryMarkdown emits the entry's content blocks as source markdown
// with blank lines between blocks.
func writeEntryMarkdown(entry *changelog.Entry, w io.Writer) error {
	first := true
	for _, block := range entry.Content {
		src, ok := block.(changelog.SourceBlock)
		if !ok {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		if _, err := fmt.Fprintf(w, "%s\n", src.Markdown()); err != nil {
			return err
		}
	}
	return nil
}
