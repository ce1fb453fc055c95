// Package cli implements the kacl command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/kacl/internal/changelog"
	"github.com/ariel-frischer/kacl/internal/config"
	clierrors "github.com/ariel-frischer/kacl/internal/errors"
	"github.com/ariel-frischer/kacl/internal/version"
)

var (
	fileFlag  string
	refFlag   string
	urlFlag   string
	plainFlag bool

	cfg *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "kacl",
	Short: "Extract structured release history from Keep a Changelog documents",
	Long: `kacl reads a CHANGELOG.md written in the Keep a Changelog convention
and extracts its releases: every level-2 heading naming a version (or
"Unreleased") starts an entry, and everything up to the next such heading is
that entry's content.

The document can come from the working tree (--file), from git history
(--ref), or from a URL (--url).

Examples:
  kacl list                      # versions in ./CHANGELOG.md
  kacl show unreleased           # pending changes
  kacl extract v1.2.0            # release notes for a version
  kacl list --ref v1.0.0         # versions as of the v1.0.0 tag`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = loaded

		// Flags win over config values.
		if !cmd.Flags().Changed("file") && cfg.Changelog != "" {
			fileFlag = cfg.Changelog
		}
		if !cmd.Flags().Changed("plain") {
			plainFlag = cfg.Plain
		}
		return nil
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.PersistentFlags().StringVar(&fileFlag, "file", "CHANGELOG.md", "Changelog document to read")
	rootCmd.PersistentFlags().StringVar(&refFlag, "ref", "", "Read the changelog from this git revision instead of the working tree")
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "Fetch the changelog from this URL")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Plain text output (no colors)")
}

// Execute runs the root command. Structured CLI errors are printed with
// their remediation guidance; everything else gets the standard prefix.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var cliErr *clierrors.CLIError
	if errors.As(err, &cliErr) {
		if plainFlag {
			fmt.Fprint(os.Stderr, clierrors.FormatErrorPlain(cliErr))
		} else {
			fmt.Fprint(os.Stderr, clierrors.FormatError(cliErr))
		}
		return err
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}

// formatOptions builds display options from the plain flag and config.
func formatOptions() changelog.FormatOptions {
	opts := changelog.FormatOptions{Plain: plainFlag}
	if cfg != nil {
		opts.MaxWidth = cfg.MaxWidth
	}
	return opts
}
