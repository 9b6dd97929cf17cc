package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickColor(t *testing.T) {
	assert.Equal(t, Palette[0], PickColor(nil, 0))
	assert.Equal(t, Palette[1], PickColor([]string{Palette[0], "#123456"}, 2))
	assert.Equal(t, Palette[2], PickColor([]string{Palette[0], Palette[1], Palette[3]}, 3))
}

func TestPickColor_FallbackWhenExhausted(t *testing.T) {
	used := Palette[:]
	assert.Equal(t, Palette[0], PickColor(used, 20))
	assert.Equal(t, Palette[5], PickColor(used, 25))
}

func TestPalette_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Palette {
		assert.False(t, seen[c], "duplicate colour %s", c)
		seen[c] = true
	}
	assert.Len(t, Palette, 20)
}
