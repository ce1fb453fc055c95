package changelog

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version identifies one release section of a changelog: either the special
// "Unreleased" section or a released semantic version with an optional date.
// The zero value is the unreleased variant; a value never carries both a
// version and the unreleased marker.
type Version struct {
	version *semver.Version // nil for the unreleased section
	date    *Date
}

// Unreleased returns the Version for the "Unreleased" section.
func Unreleased() Version {
	return Version{}
}

// Released returns the Version for a released semantic version. The date may
// be nil; a release with no explicit date is legal.
func Released(v *semver.Version, d *Date) Version {
	return Version{version: v, date: d}
}

// IsUnreleased returns true if this is the unreleased section.
func (v Version) IsUnreleased() bool {
	return v.version == nil
}

// Released returns the semantic version and optional date of a released
// section. The bool is false for the unreleased section.
func (v Version) Released() (*semver.Version, *Date, bool) {
	if v.version == nil {
		return nil, nil, false
	}
	return v.version, v.date, true
}

// String renders the version as canonical heading text: "Unreleased",
// "1.2.3", or "1.2.3 - 2023-04-05".
func (v Version) String() string {
	if v.version == nil {
		return "Unreleased"
	}
	if v.date == nil {
		return v.version.String()
	}
	return v.version.String() + " - " + v.date.String()
}

// Label returns the identifier used for CLI lookups: "unreleased" or the
// bare semver string.
func (v Version) Label() string {
	if v.version == nil {
		return "unreleased"
	}
	return v.version.String()
}

const unreleasedMarker = "unreleased"

// ClassifyVersion parses the plain text of a level-2 heading into a Version.
// The grammar, tried in order and case-insensitively for the literal:
//
//	[ "[" ] "unreleased" [ "]" ] ...
//	[ "[" ] semver [ "]" ] [ ws "-" ws YYYY-MM-DD ] ...
//
// Text past a successful match is ignored. The unreleased form is tried
// strictly first. A failure means the heading is not a version boundary, not
// that the document is malformed; callers other than the segmenter receive a
// ClassifyError of kind KindFormat.
func ClassifyVersion(text string) (Version, error) {
	if matchUnreleased(text) {
		return Unreleased(), nil
	}
	ver, rest, err := matchReleased(text)
	if err != nil {
		return Version{}, err
	}
	if d, ok := matchTrailingDate(rest); ok {
		return Released(ver, &d), nil
	}
	return Released(ver, nil), nil
}

// matchUnreleased recognizes the "unreleased" marker, bare or wrapped in one
// exactly-adjacent bracket pair.
func matchUnreleased(text string) bool {
	if len(text) >= len(unreleasedMarker) &&
		strings.EqualFold(text[:len(unreleasedMarker)], unreleasedMarker) {
		return true
	}
	return len(text) >= len(unreleasedMarker)+2 &&
		text[0] == '[' &&
		strings.EqualFold(text[1:1+len(unreleasedMarker)], unreleasedMarker) &&
		text[1+len(unreleasedMarker)] == ']'
}

// matchReleased locates the semver literal at the front of text, bare or
// bracket wrapped, and returns the validated version plus the remaining
// text. The literal itself is validated by the semver package; this grammar
// only decides where it starts and ends.
func matchReleased(text string) (*semver.Version, string, error) {
	if strings.HasPrefix(text, "[") {
		end := strings.IndexByte(text, ']')
		if end < 0 {
			return nil, "", &ClassifyError{Kind: KindFormat, Input: text, Offset: len(text), Expected: `"]"`}
		}
		ver, err := semver.StrictNewVersion(text[1:end])
		if err != nil {
			return nil, "", &ClassifyError{Kind: KindFormat, Input: text, Offset: 1, Expected: "semantic version"}
		}
		return ver, text[end+1:], nil
	}

	// Bare form: the literal runs to the first whitespace or bracket.
	lit := text
	if i := strings.IndexAny(text, " \t]"); i >= 0 {
		lit = text[:i]
	}
	ver, err := semver.StrictNewVersion(lit)
	if err != nil {
		return nil, "", &ClassifyError{Kind: KindFormat, Input: text, Offset: 0, Expected: "semantic version"}
	}
	return ver, text[len(lit):], nil
}

// matchTrailingDate attempts the optional " - YYYY-MM-DD" suffix after a
// released version. Any failure abandons the whole attempt with no date: a
// release without a date is legal, so this sub-match never errors.
func matchTrailingDate(rest string) (Date, bool) {
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, "-") {
		return Date{}, false
	}
	rest = strings.TrimLeft(rest[1:], " \t")
	d, _, err := ParseDate(rest)
	if err != nil {
		return Date{}, false
	}
	return d, true
}

// NormalizeVersion normalizes a version identifier for lookups: lowercase
// with any "v" prefix removed, so "v1.2.3", "1.2.3", and "Unreleased" all
// match their canonical forms.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(version), "v")
}
