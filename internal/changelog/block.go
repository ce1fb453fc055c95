package changelog

// Block is one top-level unit of a parsed document. The segmenter only needs
// to know whether a block is a level-2 heading and, if so, what its text
// says; every other block passes through unmodified as content.
type Block interface {
	// HeadingText returns the rendered plain text of the block when it is a
	// level-2 heading containing a single inline text run. Any other block
	// returns a ClassifyError: KindHeader for non-headings and headings at
	// other levels, KindSingleSpan or KindUtf8 for structurally unusable
	// headings.
	HeadingText() (string, error)
}

// SourceBlock is implemented by blocks that can reproduce their original
// document text. Formatting and extraction fall back to an empty string for
// blocks that cannot.
type SourceBlock interface {
	Block
	// Markdown returns the block's source text without trailing newlines.
	Markdown() string
}

// BlockSource produces blocks in document order. Sources are forward-only
// and consumed destructively: Next reports false once the document is
// exhausted and keeps reporting false afterwards.
type BlockSource interface {
	Next() (Block, bool)
}

// SliceSource adapts an in-memory block slice to BlockSource. Used by tests
// and by callers that already hold the whole document.
type SliceSource struct {
	blocks []Block
}

// NewSliceSource returns a SliceSource over blocks.
func NewSliceSource(blocks []Block) *SliceSource {
	return &SliceSource{blocks: blocks}
}

// Next implements BlockSource.
func (s *SliceSource) Next() (Block, bool) {
	if len(s.blocks) == 0 {
		return nil, false
	}
	b := s.blocks[0]
	s.blocks = s.blocks[1:]
	return b, true
}
