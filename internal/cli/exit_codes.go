package cli

import (
	"errors"

	"github.com/ariel-frischer/kacl/internal/changelog"
	clierrors "github.com/ariel-frischer/kacl/internal/errors"
)

// Exit codes for the kacl CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a general execution failure
	ExitFailure = 1

	// ExitNoChangelog indicates the document contained no version headings
	ExitNoChangelog = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, changelog.ErrNoChangelog) {
		return ExitNoChangelog
	}
	var cliErr *clierrors.CLIError
	if errors.As(err, &cliErr) && cliErr.Category == clierrors.Argument {
		return ExitInvalidArguments
	}
	return ExitFailure
}
