package contract

import (
	"testing"

	"github.com/fatih/color"
	"github.com/huangsam/gad/schema"
	"github.com/stretchr/testify/assert"
)

func TestColorizeBlockClampsLevels(t *testing.T) {
	color.NoColor = true

	assert.Equal(t, BlockGlyph, ColorizeBlock(-1))
	assert.Equal(t, BlockGlyph, ColorizeBlock(0))
	assert.Equal(t, BlockGlyph, ColorizeBlock(schema.MaxLevel+5))
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		maxLen int
		want   string
	}{
		{"short label untouched", "ana", 10, "ana"},
		{"exact length untouched", "abcdefghij", 10, "abcdefghij"},
		{"long label keeps prefix", "abcdefghijk", 10, "abcdefghi…"},
		{"unicode safe", "日本語テスト", 4, "日本語…"},
		{"zero width disables truncation", "abcdefghijk", 0, "abcdefghijk"},
		{"width one keeps one rune", "abc", 1, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateLabel(tt.label, tt.maxLen))
		})
	}
}
