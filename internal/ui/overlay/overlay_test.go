package overlay

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPlaceLine(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		segment string
		x       int
		width   int
		want    string
	}{
		{"middle", "abcdefgh", "XY", 3, 8, "abcXYfgh"},
		{"start", "abcdefgh", "XY", 0, 8, "XYcdefgh"},
		{"clipped left", "abcdefgh", "XYZ", -2, 8, "Zbcdefgh"},
		{"clipped right", "abcdefgh", "XYZ", 6, 8, "abcdefXY"},
		{"fully outside", "abcdefgh", "XY", 9, 8, "abcdefgh"},
		{"short base padded", "ab", "XY", 4, 8, "ab  XY  "},
		{"spaces replace", "abcdefgh", "  ", 2, 8, "ab  efgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(PlaceLine(tt.base, tt.segment, tt.x, tt.width))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlaceLine_KeepsWidthAcrossWideCharacters(t *testing.T) {
	got := ansi.Strip(PlaceLine("日本語", "X", 1, 6))
	assert.Equal(t, 6, ansi.StringWidth(got))
	assert.Contains(t, got, "X")
}

func TestPlaceLine_StyledBase(t *testing.T) {
	base := "\x1b[31mredredred\x1b[0m"
	got := PlaceLine(base, "X", 3, 9)
	assert.Equal(t, "redXedred", ansi.Strip(got))
}

func TestPlace(t *testing.T) {
	base := "aaaa\nbbbb\ncccc"
	got := ansi.Strip(Place(base, "XX\nYY", 1, 1, 4))
	assert.Equal(t, "aaaa\nbXXb\ncYYc", got)
}

func TestPlace_DropsRowsOutside(t *testing.T) {
	base := "aaaa\nbbbb"
	got := ansi.Strip(Place(base, "11\n22\n33", 0, -1, 4))
	assert.Equal(t, "22aa\n33bb", got)
}

func TestFill(t *testing.T) {
	assert.Equal(t, "   \n   ", Fill(3, 2))
	assert.Empty(t, Fill(0, 2))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a\nb\n", Normalize("a\nb", 3))
	assert.Equal(t, "a", Normalize("a\nb", 1))
}
