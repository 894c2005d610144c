// Package emulator provides the assembled CHIP-8 machine.
package emulator

import (
	"fmt"

	"github.com/retroenv/chip8emu/internal/bus"
	"github.com/retroenv/chip8emu/internal/cpu"
	"github.com/retroenv/retrogolib/log"
)

// DefaultCyclesPerFrame is the number of instructions executed per 60Hz
// frame, approximating the commonly cited 500 instructions per second
// of the original interpreter.
const DefaultCyclesPerFrame = 8

// Machine bundles the CPU and the bus into a runnable CHIP-8 machine.
// The front end drives it one frame at a time: poll keys, run a batch
// of instructions, tick the timers, render the display if dirty.
type Machine struct {
	logger *log.Logger

	cpu *cpu.CPU
	bus *bus.Bus

	rom            []byte
	cyclesPerFrame int
}

// New returns a machine with the given ROM loaded and the CPU ready at
// the program start address.
func New(logger *log.Logger, rom []byte, cyclesPerFrame int) (*Machine, error) {
	if cyclesPerFrame < 1 {
		return nil, fmt.Errorf("invalid cycles per frame value %d", cyclesPerFrame)
	}

	m := &Machine{
		logger:         logger,
		rom:            rom,
		cyclesPerFrame: cyclesPerFrame,
	}
	if err := m.Reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset discards all machine state and reloads the ROM.
func (m *Machine) Reset() error {
	b := bus.New(m.logger)
	if err := b.LoadROM(m.rom); err != nil {
		return err
	}

	m.bus = b
	m.cpu = cpu.New(m.logger)
	return nil
}

// Step executes a single instruction cycle.
func (m *Machine) Step() error {
	return m.cpu.Step(m.bus)
}

// RunFrame executes one frame worth of instructions and ticks the
// timers once. A CPU stalled on a key wait still consumes its cycles,
// the timers keep counting down regardless.
func (m *Machine) RunFrame() error {
	for range m.cyclesPerFrame {
		if err := m.cpu.Step(m.bus); err != nil {
			return err
		}
	}
	m.bus.Tick()
	return nil
}

// FrameDirty reports whether the display changed since the last Frame
// call.
func (m *Machine) FrameDirty() bool {
	return m.bus.Display().Dirty()
}

// Frame returns the 64x32 pixel buffer and clears the dirty flag.
func (m *Machine) Frame() []byte {
	return m.bus.Display().Frame()
}

// Press marks a keypad key as pressed.
func (m *Machine) Press(key byte) {
	m.bus.Keypad().Press(key)
}

// Release marks a keypad key as released.
func (m *Machine) Release(key byte) {
	m.bus.Keypad().Release(key)
}

// SoundActive reports whether the sound timer is running and a tone
// should sound.
func (m *Machine) SoundActive() bool {
	return m.bus.Timers().SoundActive()
}
