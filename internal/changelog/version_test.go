package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyVersion_Unreleased(t *testing.T) {
	tests := map[string]string{
		"bare lowercase":     "unreleased",
		"bare capitalized":   "Unreleased",
		"bare uppercase":     "UNRELEASED",
		"bracketed":          "[Unreleased]",
		"bracketed lower":    "[unreleased]",
		"trailing text":      "Unreleased (next)",
		"bracketed trailing": "[Unreleased] - soon",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := ClassifyVersion(input)
			require.NoError(t, err)
			assert.True(t, v.IsUnreleased())

			_, _, released := v.Released()
			assert.False(t, released)
		})
	}
}

func TestClassifyVersion_Released(t *testing.T) {
	tests := map[string]struct {
		input    string
		wantVer  string
		wantDate string // empty means no date
	}{
		"bare version no date": {
			input:   "1.2.3",
			wantVer: "1.2.3",
		},
		"bracketed version no date": {
			input:   "[1.2.3]",
			wantVer: "1.2.3",
		},
		"version with date": {
			input:    "1.2.3 - 2023-04-05",
			wantVer:  "1.2.3",
			wantDate: "2023-04-05",
		},
		"bracketed version with date": {
			input:    "[0.6.0] - 2025-01-01",
			wantVer:  "0.6.0",
			wantDate: "2025-01-01",
		},
		"date without range validation": {
			input:    "1.2.3 - 2023-99-99",
			wantVer:  "1.2.3",
			wantDate: "2023-99-99",
		},
		"prerelease": {
			input:    "1.0.0-beta.1 - 2024-01-10",
			wantVer:  "1.0.0-beta.1",
			wantDate: "2024-01-10",
		},
		"build metadata": {
			input:   "1.0.0+build.5",
			wantVer: "1.0.0+build.5",
		},
		"malformed trailing date is dropped": {
			input:   "1.2.3 - 2023-4-5",
			wantVer: "1.2.3",
		},
		"dash without date is dropped": {
			input:   "1.2.3 -",
			wantVer: "1.2.3",
		},
		"no space around dash": {
			input:    "1.2.3 -2023-04-05",
			wantVer:  "1.2.3",
			wantDate: "2023-04-05",
		},
		"text after the date is ignored": {
			input:    "[2.0.0] - 2024-02-20 [YANKED]",
			wantVer:  "2.0.0",
			wantDate: "2024-02-20",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := ClassifyVersion(tt.input)
			require.NoError(t, err)
			require.False(t, v.IsUnreleased())

			ver, date, released := v.Released()
			require.True(t, released)
			assert.Equal(t, tt.wantVer, ver.String())

			if tt.wantDate == "" {
				assert.Nil(t, date)
			} else {
				require.NotNil(t, date)
				assert.Equal(t, tt.wantDate, date.String())
			}
		})
	}
}

func TestClassifyVersion_Rejected(t *testing.T) {
	tests := map[string]string{
		"prose":                "Changelog",
		"empty":                "",
		"v prefix":             "v1.2.3",
		"incomplete triple":    "1.2",
		"unclosed bracket":     "[1.2.3",
		"bracket on garbage":   "[not a version]",
		"date without version": "2023-04-05",
		"version after text":   "Release 1.2.3",
		"marker after text":    "Not unreleased",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ClassifyVersion(input)
			require.Error(t, err)
			assert.True(t, IsClassifyError(err, KindFormat), "want a Format classification failure, got %v", err)
		})
	}
}

func TestClassifyVersion_UnreleasedTriedFirst(t *testing.T) {
	// A bracketed marker with trailing garbage still resolves as unreleased
	// and never reaches the released branch.
	v, err := ClassifyVersion("[unreleased] - 2023-04-05")
	require.NoError(t, err)
	assert.True(t, v.IsUnreleased())
}

func TestClassifyVersion_Idempotent(t *testing.T) {
	inputs := []string{"[Unreleased]", "1.2.3 - 2023-04-05", "[0.6.0]"}

	for _, input := range inputs {
		first, err1 := ClassifyVersion(input)
		second, err2 := ClassifyVersion(input)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first.String(), second.String())
	}
}

func TestVersionString(t *testing.T) {
	unreleased, err := ClassifyVersion("[Unreleased]")
	require.NoError(t, err)
	assert.Equal(t, "Unreleased", unreleased.String())
	assert.Equal(t, "unreleased", unreleased.Label())

	dated, err := ClassifyVersion("[1.2.3] - 2023-04-05")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3 - 2023-04-05", dated.String())
	assert.Equal(t, "1.2.3", dated.Label())

	bare, err := ClassifyVersion("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", bare.String())
}

func TestNormalizeVersion(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"plain":       {input: "0.6.0", want: "0.6.0"},
		"v prefix":    {input: "v0.6.0", want: "0.6.0"},
		"uppercase V": {input: "V0.6.0", want: "0.6.0"},
		"unreleased":  {input: "Unreleased", want: "unreleased"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeVersion(tt.input))
		})
	}
}
