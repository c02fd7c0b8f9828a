package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading separator", `\A\b`, `A\b`},
		{"trailing separator", `A\b\`, `A\b`},
		{"both separators", `\A\b\`, `A\b`},
		{"empty string", "", ""},
		{"root separator", `\`, ""},
		{"root alias", "root", ""},
		{"simple", "A", "A"},
		{"nested path", `\A\b\c`, `A\b\c`},
		// Multiple separators
		{"multiple leading separators", `\\\A\b`, `A\b`},
		{"only separators", `\\\`, ""},
		{"internal double separators", `A\\b`, `A\b`},
		{"mixed separators everywhere", `\\A\\b\\`, `A\b`},
		// The alias only applies to the whole path
		{"alias as first segment", `root\b`, `root\b`},
		{"alias with separators", `\root\`, ""},
		// Forward slashes are ordinary name characters
		{"forward slash", "A/b", "A/b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePath(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitPath(t *testing.T) {
	assert.Empty(t, SplitPath(""))
	assert.Empty(t, SplitPath("root"))
	assert.Empty(t, SplitPath(`\\`))
	assert.Equal(t, []string{"A", "z", "t"}, SplitPath(`\A\\z\t\`))
}
