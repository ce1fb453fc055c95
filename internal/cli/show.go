package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/kacl/internal/changelog"
	clierrors "github.com/ariel-frischer/kacl/internal/errors"
)

var showCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Show extracted changelog entries",
	Long: `Show changelog entries with their content.

Without arguments every entry is shown in document order. With a version
argument only that entry is shown; "unreleased" selects the pending section.

Examples:
  kacl show                 # whole changelog
  kacl show v0.6.0          # one version
  kacl show 0.6.0           # same (v prefix optional)
  kacl show unreleased      # pending changes
  kacl show --plain         # no colors`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	entries, err := loadEntries(cmd)
	if err != nil {
		return err
	}

	opts := formatOptions()

	if len(args) == 0 {
		return changelog.FormatEntries(entries, cmd.OutOrStdout(), opts)
	}

	entry, err := findEntry(entries, args[0])
	if err != nil {
		return err
	}
	return changelog.FormatEntry(entry, cmd.OutOrStdout(), opts)
}

// findEntry looks up one entry, turning a lookup miss into an argument error
// that lists what the document actually contains.
func findEntry(entries []changelog.Entry, version string) (*changelog.Entry, error) {
	entry, err := changelog.FindVersion(entries, version)
	if err == nil {
		return entry, nil
	}

	var notFound *changelog.VersionNotFoundError
	if errors.As(err, &notFound) {
		return nil, clierrors.NewArgumentError(
			fmt.Sprintf("version %q not found in changelog", version),
			"Available versions: "+strings.Join(notFound.AvailableVersions, ", "),
			"Run 'kacl list' to see every version with its date",
		)
	}
	return nil, fmt.Errorf("looking up version: %w", err)
}
