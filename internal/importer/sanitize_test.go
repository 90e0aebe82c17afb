package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "Fight Club", "Fight Club"},
		{"slashes", "a/b\\c", "a b c"},
		{"illegal chars", `a<b>c:d"e|f?g*h`, "a b c d e f g h"},
		{"traversal", "../../etc/passwd", "etc passwd"},
		{"dots collapsed", "a...b", "a.b"},
		{"trimmed", "  .name.  ", "name"},
		{"null bytes", "a\x00b", "ab"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestValidatePath(t *testing.T) {
	require.NoError(t, ValidatePath("/movies/Film (2020)/f.mkv", "/movies"))
	require.NoError(t, ValidatePath("/movies", "/movies"))
	require.ErrorIs(t, ValidatePath("/movies/../etc/passwd", "/movies"), ErrPathTraversal)
	require.ErrorIs(t, ValidatePath("/outside/f.mkv", "/movies"), ErrPathTraversal)
	require.ErrorIs(t, ValidatePath("/movies-other/f.mkv", "/movies"), ErrPathTraversal)
}
