package changelog

import (
	"fmt"
	"strings"
)

// VersionNotFoundError is returned when a requested version doesn't exist.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// FindVersion retrieves the entry for a specific version from extracted
// entries. Accepts both "v1.2.3" and "1.2.3" forms, plus "unreleased".
// Returns VersionNotFoundError if no entry matches.
func FindVersion(entries []Entry, version string) (*Entry, error) {
	normalized := NormalizeVersion(version)

	for i := range entries {
		if NormalizeVersion(entries[i].Version.Label()) == normalized {
			return &entries[i], nil
		}
	}

	return nil, &VersionNotFoundError{
		Version:           version,
		AvailableVersions: ListVersions(entries),
	}
}

// FindUnreleased retrieves the unreleased entry. Returns nil if the document
// has no unreleased section.
func FindUnreleased(entries []Entry) *Entry {
	for i := range entries {
		if entries[i].Version.IsUnreleased() {
			return &entries[i]
		}
	}
	return nil
}

// LatestRelease returns the first released (not unreleased) entry in
// document order, which by Keep a Changelog convention is the most recent
// release. Returns nil if there are no released entries.
func LatestRelease(entries []Entry) *Entry {
	for i := range entries {
		if !entries[i].Version.IsUnreleased() {
			return &entries[i]
		}
	}
	return nil
}

// ListVersions returns the identifiers of all entries in document order.
func ListVersions(entries []Entry) []string {
	versions := make([]string, len(entries))
	for i, e := range entries {
		versions[i] = e.Version.Label()
	}
	return versions
}
