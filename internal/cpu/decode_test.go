package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMnemonic(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		known  bool
	}{
		{"cls", 0x00E0, true},
		{"jp", 0x1234, true},
		{"drw", 0xD015, true},
		{"masked 5 group mismatch", 0x5013, false},
		{"unknown f group", 0xF0FF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := mnemonic(tt.opcode)
			assert.Equal(t, tt.known, name != "")
		})
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Opcode: 0x8F08, PC: 0x320}
	assert.ErrorContains(t, err, "0x8F08")
	assert.ErrorContains(t, err, "0x0320")
}
