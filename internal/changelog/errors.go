package changelog

import (
	"errors"
	"fmt"
)

// ClassifyKind identifies why a single block failed to classify as a version
// heading.
type ClassifyKind int

const (
	// KindHeader means the block is not a heading at level 2.
	KindHeader ClassifyKind = iota
	// KindSingleSpan means the heading does not contain exactly one inline
	// text run.
	KindSingleSpan
	// KindFormat means the heading text does not match the version grammar.
	KindFormat
	// KindUtf8 means the rendered heading bytes are not valid UTF-8.
	KindUtf8
)

// String returns a human-readable name for the classification failure kind.
func (k ClassifyKind) String() string {
	switch k {
	case KindHeader:
		return "not a level-2 heading"
	case KindSingleSpan:
		return "heading is not a single text run"
	case KindFormat:
		return "heading text does not match version grammar"
	case KindUtf8:
		return "heading text is not valid UTF-8"
	default:
		return "classification failure"
	}
}

// ClassifyError reports why one block is not a version boundary. The
// segmenter never surfaces these; they are only visible through direct use
// of ClassifyVersion or Block.HeadingText.
type ClassifyError struct {
	// Kind is the failure category.
	Kind ClassifyKind
	// Input is the offending text, when text was available at all.
	Input string
	// Offset is the byte offset into Input where matching stopped.
	Offset int
	// Expected describes what the grammar wanted at Offset (Format kind only).
	Expected string
}

// Error implements the error interface.
func (e *ClassifyError) Error() string {
	switch {
	case e.Expected != "":
		return fmt.Sprintf("%s: expected %s at offset %d in %q", e.Kind, e.Expected, e.Offset, e.Input)
	case e.Input != "":
		return fmt.Sprintf("%s: %q", e.Kind, e.Input)
	default:
		return e.Kind.String()
	}
}

// IsClassifyError returns true if err is a ClassifyError of the given kind.
func IsClassifyError(err error, kind ClassifyKind) bool {
	var ce *ClassifyError
	return errors.As(err, &ce) && ce.Kind == kind
}
