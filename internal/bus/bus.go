// Package bus wires the memory, display, timers and keypad of the
// CHIP-8 machine together and exposes them to the CPU.
package bus

import (
	"fmt"

	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/chip8emu/internal/keypad"
	"github.com/retroenv/chip8emu/internal/memory"
	"github.com/retroenv/chip8emu/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout constants.
const (
	// FontAddr is the address the built-in font is loaded at.
	FontAddr = 0x50

	// GlyphSize is the height of a font glyph in bytes.
	GlyphSize = 5

	// ProgramStart is the address programs are loaded at and begin
	// execution from.
	ProgramStart = 0x200

	// MaxROMSize is the largest program that fits into the memory
	// space above ProgramStart.
	MaxROMSize = memory.Size - ProgramStart
)

// ResourceError is returned when a ROM does not fit into the available
// program space.
type ResourceError struct {
	Size  int
	Limit int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("ROM size of %d bytes exceeds the %d byte program space", e.Size, e.Limit)
}

// Bus is the composition root of the machine. It owns the shared state
// the CPU operates on and forwards fetches, sprite draws and timer
// ticks to the owning component.
type Bus struct {
	logger *log.Logger

	memory  *memory.Memory
	display *display.Display
	timers  *timer.Timers
	keypad  *keypad.Keypad
}

// New returns a bus with zeroed components and the font loaded.
func New(logger *log.Logger) *Bus {
	b := &Bus{
		logger:  logger,
		memory:  memory.New(),
		display: display.New(),
		timers:  timer.New(),
		keypad:  keypad.New(),
	}

	// the font always fits below ProgramStart
	_ = b.memory.LoadAt(FontAddr, fontSprites[:])

	return b
}

// LoadROM copies a program into memory at ProgramStart.
func (b *Bus) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return &ResourceError{Size: len(rom), Limit: MaxROMSize}
	}
	if err := b.memory.LoadAt(ProgramStart, rom); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	b.logger.Debug("ROM loaded",
		log.Int("bytes", len(rom)),
		log.Hex("address", uint16(ProgramStart)))
	return nil
}

// FetchInstruction reads the big-endian 16-bit opcode at pc.
func (b *Bus) FetchInstruction(pc uint16) (uint16, error) {
	return b.memory.FetchInstruction(pc)
}

// DrawSprite draws the sprite stored at addr with the given height at
// display coordinates (x, y) and reports whether a collision occurred.
func (b *Bus) DrawSprite(addr uint16, x, y, height byte) (bool, error) {
	sprite, err := b.memory.Sprite(addr, height)
	if err != nil {
		return false, fmt.Errorf("reading sprite data: %w", err)
	}
	return b.display.DrawSprite(x, y, sprite), nil
}

// Tick advances both countdown timers. It is driven at 60Hz by the
// front end, decoupled from the CPU instruction cadence.
func (b *Bus) Tick() {
	b.timers.Tick()
}

// Memory returns the machine memory.
func (b *Bus) Memory() *memory.Memory {
	return b.memory
}

// Display returns the machine display.
func (b *Bus) Display() *display.Display {
	return b.display
}

// Timers returns the machine timers.
func (b *Bus) Timers() *timer.Timers {
	return b.timers
}

// Keypad returns the machine keypad.
func (b *Bus) Keypad() *keypad.Keypad {
	return b.keypad
}
