package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "pong.ch8"},
			want: options.Program{Input: "pong.ch8", Scale: 10, InstructionsPerFrame: 8, Cycles: 10000},
		},
		{
			name: "custom speed and scale",
			args: []string{"prog", "-ipf", "20", "-scale", "4", "pong.ch8"},
			want: options.Program{Input: "pong.ch8", Scale: 4, InstructionsPerFrame: 20, Cycles: 10000},
		},
		{
			name: "headless run",
			args: []string{"prog", "-headless", "-cycles", "500", "-q", "pong.ch8"},
			want: options.Program{Input: "pong.ch8", Scale: 10, InstructionsPerFrame: 8, Headless: true, Cycles: 500, Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsMissingROM(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog"}

	_, err := ParseFlags()
	assert.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestParseFlagsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero instructions per frame", []string{"prog", "-ipf", "0", "pong.ch8"}},
		{"zero scale", []string{"prog", "-scale", "0", "pong.ch8"}},
		{"headless without budget", []string{"prog", "-headless", "-cycles", "0", "pong.ch8"}},
		{"flag after rom file", []string{"prog", "pong.ch8", "-debug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)
		})
	}
}
