package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sourceBlock is a fake content block that can reproduce its markdown.
type sourceBlock struct {
	contentBlock
	markdown string
}

func (b *sourceBlock) Markdown() string {
	return b.markdown
}

func source(markdown string) *sourceBlock {
	return &sourceBlock{contentBlock: contentBlock{kind: KindHeader}, markdown: markdown}
}

func TestFormatEntry_Plain(t *testing.T) {
	v, err := ClassifyVersion("[1.2.0] - 2024-06-01")
	require.NoError(t, err)

	entry := Entry{
		Version: v,
		Content: []Block{
			source("### Added"),
			source("- New extract command"),
		},
	}

	var sb strings.Builder
	err = FormatEntry(&entry, &sb, FormatOptions{Plain: true})
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "## 1.2.0 - 2024-06-01\n")
	assert.Contains(t, out, "### Added\n")
	assert.Contains(t, out, "- New extract command\n")
}

func TestFormatEntries_SeparatesEntries(t *testing.T) {
	unreleased, err := ClassifyVersion("[Unreleased]")
	require.NoError(t, err)
	released, err := ClassifyVersion("[1.0.0] - 2024-01-15")
	require.NoError(t, err)

	entries := []Entry{
		{Version: unreleased, Content: []Block{source("- pending")}},
		{Version: released, Content: []Block{source("- shipped")}},
	}

	var sb strings.Builder
	err = FormatEntries(entries, &sb, FormatOptions{Plain: true})
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "## Unreleased\n")
	assert.Contains(t, out, "## 1.0.0 - 2024-01-15\n")
	assert.Less(t, strings.Index(out, "Unreleased"), strings.Index(out, "1.0.0"),
		"entries must keep document order")
}

func TestFormatEntry_SkipsNonSourceBlocks(t *testing.T) {
	v, err := ClassifyVersion("[1.0.0]")
	require.NoError(t, err)

	entry := Entry{
		Version: v,
		Content: []Block{content("opaque"), source("- visible")},
	}

	var sb strings.Builder
	err = FormatEntry(&entry, &sb, FormatOptions{Plain: true})
	require.NoError(t, err)

	assert.Contains(t, sb.String(), "- visible")
	assert.NotContains(t, sb.String(), "opaque")
}

func TestFormatEntrySummary(t *testing.T) {
	v, err := ClassifyVersion("[1.0.0] - 2024-01-15")
	require.NoError(t, err)

	entry := Entry{Version: v, Content: []Block{source("a"), source("b")}}
	summary := FormatEntrySummary(&entry, FormatOptions{Plain: true, MaxWidth: 80})
	assert.Equal(t, "1.0.0 - 2024-01-15 (2 content blocks)", summary)

	single := Entry{Version: v, Content: []Block{source("a")}}
	assert.Contains(t, FormatEntrySummary(&single, FormatOptions{Plain: true, MaxWidth: 80}), "1 content block)")
}

func TestFormatEntrySummary_Truncates(t *testing.T) {
	v, err := ClassifyVersion("[1.0.0] - 2024-01-15")
	require.NoError(t, err)

	entry := Entry{Version: v}
	summary := FormatEntrySummary(&entry, FormatOptions{Plain: true, MaxWidth: 12})
	assert.Len(t, summary, 12)
	assert.True(t, strings.HasSuffix(summary, "..."))
}
