// Package changelog extracts structured release history from documents
// written in the Keep a Changelog convention.
//
// This package implements:
//   - The version heading grammar ("Unreleased" or a semantic version,
//     optionally bracketed, optionally followed by " - YYYY-MM-DD")
//   - Fixed-width date parsing with no calendar validation
//   - Single-pass segmentation of a block sequence into (Version, content)
//     entries
//   - Terminal formatting of extracted entries for CLI display
//
// The document layer is external: the segmenter consumes the Block and
// BlockSource abstractions, implemented for goldmark documents by the
// internal/markdown package. Semantic version literals are validated by
// github.com/Masterminds/semver.
package changelog
