// Package markdown adapts goldmark documents to the block abstraction the
// changelog segmenter consumes. It owns tokenization and the two rendering
// concerns the segmenter delegates: extracting a heading's plain text and
// reproducing a content block's source markdown.
package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ariel-frischer/kacl/internal/changelog"
)

// Document is a parsed markdown document acting as a lazy block source over
// its top-level children. It implements changelog.BlockSource.
type Document struct {
	source []byte
	next   ast.Node
}

// Parse tokenizes source and positions the document at its first top-level
// block. Parsing itself never fails; a document with no recognizable version
// headings is reported later by the segmenter, not here.
func Parse(source []byte) *Document {
	root := goldmark.New().Parser().Parse(text.NewReader(source))
	return &Document{source: source, next: root.FirstChild()}
}

// Next implements changelog.BlockSource. The cursor is forward-only; each
// call hands out one top-level block and advances past it.
func (d *Document) Next() (changelog.Block, bool) {
	if d.next == nil {
		return nil, false
	}
	node := d.next
	d.next = node.NextSibling()
	return &Block{node: node, source: d.source}, true
}

// Block wraps one top-level goldmark node. It implements
// changelog.SourceBlock.
type Block struct {
	node   ast.Node
	source []byte
}

// HeadingText implements changelog.Block. Only level-2 headings qualify;
// headings at any other level fail exactly like non-headings, so a "##"
// nested inside release notes never becomes a boundary.
func (b *Block) HeadingText() (string, error) {
	heading, ok := b.node.(*ast.Heading)
	if !ok || heading.Level != 2 {
		return "", &changelog.ClassifyError{Kind: changelog.KindHeader}
	}
	if heading.ChildCount() == 0 {
		return "", &changelog.ClassifyError{Kind: changelog.KindSingleSpan}
	}
	txt, err := inlineText(heading, b.source)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(txt) {
		return "", &changelog.ClassifyError{Kind: changelog.KindUtf8, Input: txt}
	}
	return txt, nil
}

// inlineText renders a heading's inline content to plain text. The heading
// must hold a single text run: plain text segments (goldmark splits one run
// into several Text nodes around brackets) or one reference-style link, the
// conventional linked "[1.2.3]" form. Emphasis, code spans, images, and
// other inline structure fail with KindSingleSpan.
func inlineText(heading ast.Node, source []byte) (string, error) {
	var sb strings.Builder
	links := 0
	for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(source))
		case *ast.String:
			sb.Write(n.Value)
		case *ast.Link:
			links++
			if links > 1 {
				return "", &changelog.ClassifyError{Kind: changelog.KindSingleSpan}
			}
			for t := n.FirstChild(); t != nil; t = t.NextSibling() {
				tn, ok := t.(*ast.Text)
				if !ok {
					return "", &changelog.ClassifyError{Kind: changelog.KindSingleSpan}
				}
				sb.Write(tn.Segment.Value(source))
			}
		default:
			return "", &changelog.ClassifyError{Kind: changelog.KindSingleSpan}
		}
	}
	return sb.String(), nil
}

// Markdown implements changelog.SourceBlock: the block's original source
// text, reconstructed from the line spans goldmark records, widened to whole
// lines so list markers and heading hashes survive.
func (b *Block) Markdown() string {
	switch n := b.node.(type) {
	case *ast.FencedCodeBlock:
		return b.fencedMarkdown(n)
	case *ast.ThematicBreak:
		// Thematic breaks record no source lines.
		return "---"
	}

	start, stop := b.span()
	if start < 0 {
		return ""
	}
	start, stop = wholeLines(b.source, start, stop)
	return strings.TrimRight(string(b.source[start:stop]), "\n")
}

// fencedMarkdown rebuilds a fenced code block. The fence lines themselves
// are not part of the recorded content lines, so they are re-emitted.
func (b *Block) fencedMarkdown(fc *ast.FencedCodeBlock) string {
	var sb strings.Builder
	sb.WriteString("```")
	if fc.Info != nil {
		sb.Write(fc.Info.Segment.Value(b.source))
	}
	sb.WriteByte('\n')
	lines := fc.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(b.source))
	}
	sb.WriteString("```")
	return sb.String()
}

// span returns the byte range covered by the block's leaf segments, or
// (-1, -1) when the block records no source positions.
func (b *Block) span() (int, int) {
	start, stop := -1, -1
	extend := func(s, e int) {
		if start < 0 || s < start {
			start = s
		}
		if e > stop {
			stop = e
		}
	}

	_ = ast.Walk(b.node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			if lines := n.Lines(); lines != nil && lines.Len() > 0 {
				extend(lines.At(0).Start, lines.At(lines.Len()-1).Stop)
			}
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			extend(t.Segment.Start, t.Segment.Stop)
		}
		return ast.WalkContinue, nil
	})

	return start, stop
}

// wholeLines widens [start, stop) to full source lines.
func wholeLines(source []byte, start, stop int) (int, int) {
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	for stop < len(source) && source[stop] != '\n' {
		stop++
	}
	return start, stop
}
