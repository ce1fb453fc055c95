package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/kacl/internal/changelog"
	clierrors "github.com/ariel-frischer/kacl/internal/errors"
)

const testChangelog = `# Changelog

## [Unreleased]

### Added

- Pending feature

## [1.1.0] - 2024-06-01

### Changed

- Faster extraction

## [1.0.0] - 2024-01-15

Initial release.
`

// runCommand executes the root command against a temp changelog and returns
// its stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte(testChangelog), 0o644))

	return runRaw(t, append(args, "--file", path)...)
}

// runRaw executes the root command with the given args plus --plain.
// Persistent flag state is reset afterwards so tests stay independent.
func runRaw(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Isolate from any real user config.
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--plain"))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		fileFlag = "CHANGELOG.md"
		refFlag = ""
		urlFlag = ""
		plainFlag = false
		listFormatFlag = "text"
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand_Text(t *testing.T) {
	out, err := runCommand(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Unreleased")
	assert.Contains(t, lines[1], "1.1.0 - 2024-06-01")
	assert.Contains(t, lines[2], "1.0.0 - 2024-01-15")
}

func TestListCommand_YAML(t *testing.T) {
	out, err := runCommand(t, "list", "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "version: unreleased")
	assert.Contains(t, out, "version: 1.1.0")
	assert.Contains(t, out, "2024-06-01")
	assert.Contains(t, out, "blocks: 2")
}

func TestListCommand_NoChangelogData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# Readme\n\nNo releases here.\n"), 0o644))

	_, err := runRaw(t, "list", "--file", path)
	require.Error(t, err)
	assert.Equal(t, ExitNoChangelog, ExitCode(err))
}

func TestExtractCommand(t *testing.T) {
	out, err := runCommand(t, "extract", "v1.0.0")
	require.NoError(t, err)

	assert.Contains(t, out, "Initial release.")
	assert.NotContains(t, out, "## 1.0.0", "the version heading is not part of the notes")
	assert.NotContains(t, out, "Faster extraction")
}

func TestExtractCommand_Unreleased(t *testing.T) {
	out, err := runCommand(t, "extract", "unreleased")
	require.NoError(t, err)

	assert.Contains(t, out, "### Added")
	assert.Contains(t, out, "- Pending feature")
}

func TestExtractCommand_UnknownVersion(t *testing.T) {
	_, err := runCommand(t, "extract", "9.9.9")
	require.Error(t, err)

	var cliErr *clierrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, clierrors.Argument, cliErr.Category)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestShowCommand_SingleVersion(t *testing.T) {
	out, err := runCommand(t, "show", "1.1.0")
	require.NoError(t, err)

	assert.Contains(t, out, "## 1.1.0 - 2024-06-01")
	assert.Contains(t, out, "- Faster extraction")
	assert.NotContains(t, out, "Initial release.")
}

func TestShowCommand_WholeDocument(t *testing.T) {
	out, err := runCommand(t, "show")
	require.NoError(t, err)

	assert.Contains(t, out, "## Unreleased")
	assert.Contains(t, out, "## 1.1.0 - 2024-06-01")
	assert.Contains(t, out, "## 1.0.0 - 2024-01-15")
}

func TestListCommand_UnknownFormat(t *testing.T) {
	_, err := runCommand(t, "list", "--format", "csv")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitNoChangelog, ExitCode(changelog.ErrNoChangelog))
	assert.Equal(t, ExitInvalidArguments, ExitCode(clierrors.NewArgumentError("bad")))
	assert.Equal(t, ExitFailure, ExitCode(clierrors.NewSourceError("missing")))
	assert.Equal(t, ExitFailure, ExitCode(assert.AnError))
}

func TestResolveSource_MissingFile(t *testing.T) {
	_, err := runRaw(t, "list", "--file", filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)

	var cliErr *clierrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, clierrors.Source, cliErr.Category)
}
