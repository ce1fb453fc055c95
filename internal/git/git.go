// Package git reads changelog documents out of git history without a
// checkout. It uses the go-git library so extraction from a tag or branch
// works even when the git CLI is not installed.
package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ReadFileAtRef returns the contents of file at the given revision. The
// repository is discovered from path (or the current directory when path is
// empty) by walking up to the nearest .git. The revision may be anything
// go-git can resolve: a tag, branch, commit hash, or expressions like
// "HEAD~2".
func ReadFileAtRef(path, ref, file string) ([]byte, error) {
	if path == "" {
		path = "."
	}
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", ref, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", hash, err)
	}

	f, err := commit.File(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s at %q: %w", file, ref, err)
	}

	contents, err := f.Contents()
	if err != nil {
		return nil, fmt.Errorf("reading blob for %s: %w", file, err)
	}

	return []byte(contents), nil
}
