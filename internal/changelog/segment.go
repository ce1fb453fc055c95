package changelog

import "errors"

// ErrNoChangelog is returned by Segment when the document contains no block
// that classifies as a version heading.
var ErrNoChangelog = errors.New("no version headings found")

// Entry is one extracted release: the version from its heading and every
// content block between that heading and the next recognized one, in
// document order. The heading block itself is not part of the content.
type Entry struct {
	Version Version
	Content []Block
}

// Segmenter groups a block sequence into version entries. It is a one-shot,
// forward-only producer: each Next call scans exactly far enough to find the
// next boundary, so only the current entry's content is ever buffered. A
// Segmenter abandoned mid-stream holds no resources beyond its source.
type Segmenter struct {
	src     BlockSource
	pending Version
	done    bool
}

// Segment scans src for the first version heading and returns a Segmenter
// positioned on it. Blocks before the first heading (titles, notices,
// badges) are discarded, and classification failures of any kind are treated
// as ordinary content, never surfaced as errors. Returns ErrNoChangelog when
// the source exhausts without a single valid heading.
func Segment(src BlockSource) (*Segmenter, error) {
	for {
		block, ok := src.Next()
		if !ok {
			return nil, ErrNoChangelog
		}
		version, ok := classifyBlock(block)
		if !ok {
			continue
		}
		return &Segmenter{src: src, pending: version}, nil
	}
}

// Next returns the next entry, or false when the document is exhausted.
// Entries come back in document order; once Next reports false it reports
// false forever.
func (s *Segmenter) Next() (Entry, bool) {
	if s.done {
		return Entry{}, false
	}
	entry := Entry{Version: s.pending}
	for {
		block, ok := s.src.Next()
		if !ok {
			s.done = true
			return entry, true
		}
		version, ok := classifyBlock(block)
		if !ok {
			entry.Content = append(entry.Content, block)
			continue
		}
		s.pending = version
		return entry, true
	}
}

// classifyBlock reports whether block is a version boundary. Every failure
// mode, from wrong heading level to malformed text, means "not a boundary".
func classifyBlock(block Block) (Version, bool) {
	text, err := block.HeadingText()
	if err != nil {
		return Version{}, false
	}
	version, err := ClassifyVersion(text)
	if err != nil {
		return Version{}, false
	}
	return version, true
}

// Collect drains a segmenter into a slice, for callers that need random
// access by version rather than streaming.
func Collect(s *Segmenter) []Entry {
	var entries []Entry
	for {
		e, ok := s.Next()
		if !ok {
			return entries
		}
		entries = append(entries, e)
	}
}
