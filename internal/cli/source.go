package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ariel-frischer/kacl/internal/changelog"
	clierrors "github.com/ariel-frischer/kacl/internal/errors"
	"github.com/ariel-frischer/kacl/internal/git"
	"github.com/ariel-frischer/kacl/internal/markdown"
)

// resolveSource obtains the raw changelog document for the shared source
// flags. Exactly one source wins: --url, then --ref, then the file path.
func resolveSource(cmd *cobra.Command) ([]byte, error) {
	if urlFlag != "" {
		return fetchRemote(cmd, urlFlag)
	}

	if refFlag != "" {
		data, err := git.ReadFileAtRef(".", refFlag, fileFlag)
		if err != nil {
			return nil, clierrors.NewSourceError(
				fmt.Sprintf("cannot read %s at %q: %v", fileFlag, refFlag, err),
				fmt.Sprintf("Check that the revision exists: git rev-parse %s", refFlag),
				"Check that the changelog path is tracked at that revision",
			)
		}
		return data, nil
	}

	data, err := os.ReadFile(fileFlag)
	if err != nil {
		return nil, clierrors.NewSourceError(
			fmt.Sprintf("cannot read %s: %v", fileFlag, err),
			"Pass --file to point at your changelog document",
			"Or set changelog: in .kacl.yml",
		)
	}
	return data, nil
}

// fetchRemote downloads the document, showing a spinner on stderr when it is
// a terminal so piped stdout stays clean.
func fetchRemote(cmd *cobra.Command, url string) ([]byte, error) {
	timeout := changelog.DefaultRemoteTimeout
	if cfg != nil && cfg.RemoteTimeout > 0 {
		timeout = time.Duration(cfg.RemoteTimeout) * time.Second
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var spin *spinner.Spinner
	if !plainFlag && term.IsTerminal(int(os.Stderr.Fd())) {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Suffix = " fetching " + url
		spin.Start()
	}

	data, err := changelog.FetchRemote(ctx, url)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return nil, clierrors.NewSourceError(
			fmt.Sprintf("cannot fetch %s: %v", url, err),
			"Check the URL points at a raw changelog document",
			"Raise remote_timeout in .kacl.yml for slow hosts",
		)
	}
	return data, nil
}

// loadEntries resolves the document source, tokenizes it, and extracts every
// entry. Returns changelog.ErrNoChangelog (wrapped) when the document has no
// recognizable version headings.
func loadEntries(cmd *cobra.Command) ([]changelog.Entry, error) {
	source, err := resolveSource(cmd)
	if err != nil {
		return nil, err
	}

	seg, err := changelog.Segment(markdown.Parse(source))
	if err != nil {
		return nil, fmt.Errorf("extracting changelog: %w", err)
	}
	return changelog.Collect(seg), nil
}
