package ui

import (
	"testing"

	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/retrogolib/assert"
)

func TestKeyMapCoversAllKeys(t *testing.T) {
	assert.Equal(t, 16, len(keyMap))

	seen := map[byte]bool{}
	for _, key := range keyMap {
		assert.True(t, key < 16)
		assert.False(t, seen[key])
		seen[key] = true
	}
}

func TestFrameToRGBA(t *testing.T) {
	frame := make([]byte, display.Width*display.Height)
	frame[0] = 0xFF
	frame[1] = 0x01 // any nonzero value counts as set

	pixels := make([]byte, len(frame)*4)
	frameToRGBA(frame, pixels)

	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, pixels[0:4])
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, pixels[4:8])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xFF}, pixels[8:12])
}
