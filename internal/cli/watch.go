package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/kacl/internal/changelog"
	clierrors "github.com/ariel-frischer/kacl/internal/errors"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-extract the changelog whenever it changes",
	Long: `Watch the changelog file and print a fresh version listing on every
write. Useful while editing a changelog by hand to confirm headings still
parse as versions.

Only file sources can be watched; --ref and --url are rejected.

Example:
  kacl watch --file CHANGELOG.md`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command) error {
	if refFlag != "" || urlFlag != "" {
		return clierrors.NewArgumentError(
			"watch only works with file sources",
			"Drop --ref/--url and point --file at a local changelog",
		)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors typically replace the file
	// on save, which would drop a watch on the file itself.
	dir := filepath.Dir(fileFlag)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target, err := filepath.Abs(fileFlag)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", fileFlag, err)
	}

	printListing(cmd)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evPath, err := filepath.Abs(event.Name)
			if err != nil || evPath != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			printListing(cmd)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", werr)
		}
	}
}

// printListing extracts the current document and prints a one-line summary
// per version. Extraction failures are reported and watching continues.
func printListing(cmd *cobra.Command) {
	entries, err := loadEntries(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "extraction failed: %v\n", err)
		return
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %d versions\n", fileFlag, len(entries))
	opts := formatOptions()
	for i := range entries {
		fmt.Fprintf(w, "  %s\n", changelog.FormatEntrySummary(&entries[i], opts))
	}
}
