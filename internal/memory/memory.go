// Package memory implements the 4KB byte-addressable memory of the CHIP-8 machine.
package memory

import "fmt"

// Size is the total amount of addressable memory in bytes.
const Size = 0x1000

// BoundsError is returned for any access outside the valid address range.
type BoundsError struct {
	Addr   uint16
	Length int
}

func (e *BoundsError) Error() string {
	if e.Length > 1 {
		return fmt.Sprintf("memory access of %d bytes at address 0x%04X out of bounds", e.Length, e.Addr)
	}
	return fmt.Sprintf("memory access at address 0x%04X out of bounds", e.Addr)
}

// Memory is a flat byte store addressable with 16-bit addresses.
// All accesses are bounds-checked against the 4KB address space.
type Memory struct {
	data [Size]byte
}

// New returns a new zeroed memory.
func New() *Memory {
	return &Memory{}
}

// LoadAt copies data into memory starting at the given address.
func (m *Memory) LoadAt(addr uint16, data []byte) error {
	if int(addr)+len(data) > Size {
		return &BoundsError{Addr: addr, Length: len(data)}
	}
	copy(m.data[addr:], data)
	return nil
}

// Read returns the byte at the given address.
func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= Size {
		return 0, &BoundsError{Addr: addr, Length: 1}
	}
	return m.data[addr], nil
}

// Write stores a byte at the given address.
func (m *Memory) Write(addr uint16, value byte) error {
	if int(addr) >= Size {
		return &BoundsError{Addr: addr, Length: 1}
	}
	m.data[addr] = value
	return nil
}

// Sprite returns a view of height consecutive bytes starting at addr,
// one byte per sprite row. The returned slice aliases the underlying
// memory and must not be modified.
func (m *Memory) Sprite(addr uint16, height byte) ([]byte, error) {
	if int(addr)+int(height) > Size {
		return nil, &BoundsError{Addr: addr, Length: int(height)}
	}
	return m.data[addr : addr+uint16(height)], nil
}

// FetchInstruction reads the two bytes at pc and pc+1 and composes them
// into a big-endian 16-bit opcode.
func (m *Memory) FetchInstruction(pc uint16) (uint16, error) {
	if int(pc)+1 >= Size {
		return 0, &BoundsError{Addr: pc, Length: 2}
	}
	return uint16(m.data[pc])<<8 | uint16(m.data[pc+1]), nil
}
