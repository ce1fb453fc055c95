package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/kacl/internal/changelog"
	clierrors "github.com/ariel-frischer/kacl/internal/errors"
)

var listFormatFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List versions found in the changelog",
	Long: `List every version the changelog contains, in document order
(newest first under the Keep a Changelog convention).

Output formats:
  text  one summary line per version (default)
  yaml  machine-readable listing with dates and block counts

Examples:
  kacl list
  kacl list --format yaml
  kacl list --ref v1.0.0     # versions as of a git tag`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFormatFlag, "format", "text", "Output format: text or yaml")
}

func runList(cmd *cobra.Command) error {
	entries, err := loadEntries(cmd)
	if err != nil {
		return err
	}

	switch listFormatFlag {
	case "text":
		return listText(cmd.OutOrStdout(), entries)
	case "yaml":
		return listYAML(cmd.OutOrStdout(), entries)
	default:
		return clierrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("unknown format %q", listFormatFlag),
			"kacl list --format <text|yaml>",
			"Valid formats are text and yaml",
		)
	}
}

func listText(w io.Writer, entries []changelog.Entry) error {
	opts := formatOptions()
	for i := range entries {
		fmt.Fprintln(w, changelog.FormatEntrySummary(&entries[i], opts))
	}
	return nil
}

// listedVersion is the YAML shape of one listed version.
type listedVersion struct {
	Version string `yaml:"version"`
	Date    string `yaml:"date,omitempty"`
	Blocks  int    `yaml:"blocks"`
}

func listYAML(w io.Writer, entries []changelog.Entry) error {
	listing := make([]listedVersion, len(entries))
	for i, e := range entries {
		lv := listedVersion{Version: e.Version.Label(), Blocks: len(e.Content)}
		if _, date, ok := e.Version.Released(); ok && date != nil {
			lv.Date = date.String()
		}
		listing[i] = lv
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(listing); err != nil {
		return fmt.Errorf("encoding listing: %w", err)
	}
	return nil
}
