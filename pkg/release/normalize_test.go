package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Fight Club", "fight club"},
		{"accents", "Léon", "leon"},
		{"subtitle article", "Léon: The Professional", "leon professional"},
		{"ampersand", "Fast & Furious", "fast and furious"},
		{"apostrophe", "Ocean's Eleven", "oceans eleven"},
		{"roman numeral", "Rocky II", "rocky 2"},
		{"leading article", "The Matrix", "matrix"},
		{"dots", "Blade.Runner", "blade runner"},
		{"whitespace collapse", "  Spirited   Away ", "spirited away"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.in))
		})
	}
}

func TestNormalizeRomanNumerals(t *testing.T) {
	assert.Equal(t, "rocky 3", NormalizeRomanNumerals("rocky iii"))
	// Standalone I and X stay untouched.
	assert.Equal(t, "american history x", NormalizeRomanNumerals("american history x"))
	assert.Equal(t, "i robot", NormalizeRomanNumerals("i robot"))
}
