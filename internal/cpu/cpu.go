// Package cpu implements the CHIP-8 fetch-decode-execute core.
package cpu

import (
	"fmt"

	"github.com/retroenv/chip8emu/internal/bus"
	"github.com/retroenv/retrogolib/log"
)

// CPU decodes and executes instructions fetched from memory through the
// bus. It owns the register file and the call stack, all other machine
// state is reached through the bus.
type CPU struct {
	logger *log.Logger

	regs  Registers
	stack Stack
}

// New returns a CPU with the program counter at the program start.
func New(logger *log.Logger) *CPU {
	c := &CPU{
		logger: logger,
	}
	c.regs.SetPC(bus.ProgramStart)
	return c
}

// Registers returns the register file.
func (c *CPU) Registers() *Registers {
	return &c.regs
}

// Step executes a single instruction cycle: fetch the opcode at PC,
// decode and execute it, and advance PC unless the instruction set it
// explicitly or withheld advancement (key wait).
//
// Any returned error is fatal for the machine, CHIP-8 defines no fault
// handling the program could recover with.
func (c *CPU) Step(b *bus.Bus) error {
	pc := c.regs.PC()
	opcode, err := b.FetchInstruction(pc)
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}

	c.logger.Debug("executing",
		log.String("mnemonic", mnemonic(opcode)),
		log.Hex("opcode", opcode),
		log.Hex("pc", pc))

	// operand fields
	nnn := opcode & 0x0FFF
	nn := byte(opcode)
	n := byte(opcode & 0xF)
	x := byte(opcode >> 8 & 0xF)
	y := byte(opcode >> 4 & 0xF)

	next := pc + 2

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0: // CLS
			b.Display().Clear()

		case 0x00EE: // RET
			addr, err := c.stack.Pop()
			if err != nil {
				return fmt.Errorf("returning from subroutine: %w", err)
			}
			next = addr + 2

		default: // 0NNN machine code call
			return &DecodeError{Opcode: opcode, PC: pc}
		}

	case 0x1000: // JP addr
		next = nnn

	case 0x2000: // CALL addr
		if err := c.stack.Push(pc); err != nil {
			return fmt.Errorf("calling subroutine at 0x%04X: %w", nnn, err)
		}
		next = nnn

	case 0x3000: // SE Vx, byte
		if c.regs.V(x) == nn {
			next += 2
		}

	case 0x4000: // SNE Vx, byte
		if c.regs.V(x) != nn {
			next += 2
		}

	case 0x5000: // SE Vx, Vy
		if n != 0 {
			return &DecodeError{Opcode: opcode, PC: pc}
		}
		if c.regs.V(x) == c.regs.V(y) {
			next += 2
		}

	case 0x6000: // LD Vx, byte
		c.regs.SetV(x, nn)

	case 0x7000: // ADD Vx, byte - wraps, no flag
		c.regs.SetV(x, c.regs.V(x)+nn)

	case 0x8000:
		if err := c.stepALU(opcode, x, y, n); err != nil {
			return err
		}

	case 0x9000: // SNE Vx, Vy
		if n != 0 {
			return &DecodeError{Opcode: opcode, PC: pc}
		}
		if c.regs.V(x) != c.regs.V(y) {
			next += 2
		}

	case 0xA000: // LD I, addr
		c.regs.SetI(nnn)

	case 0xD000: // DRW Vx, Vy, nibble
		collision, err := b.DrawSprite(c.regs.I(), c.regs.V(x), c.regs.V(y), n)
		if err != nil {
			return fmt.Errorf("drawing sprite: %w", err)
		}
		c.regs.SetCarry(collision)

	case 0xE000:
		switch byte(opcode) {
		case 0x9E: // SKP Vx
			if b.Keypad().Pressed(c.regs.V(x)) {
				next += 2
			}
		case 0xA1: // SKNP Vx
			if !b.Keypad().Pressed(c.regs.V(x)) {
				next += 2
			}
		default:
			return &DecodeError{Opcode: opcode, PC: pc}
		}

	case 0xF000:
		stay, err := c.stepMisc(b, opcode, x)
		if err != nil {
			return err
		}
		if stay {
			next = pc
		}

	default:
		return &DecodeError{Opcode: opcode, PC: pc}
	}

	c.regs.SetPC(next)
	return nil
}

// stepALU executes the 8XYN register-to-register operations.
func (c *CPU) stepALU(opcode uint16, x, y, n byte) error {
	vx := c.regs.V(x)
	vy := c.regs.V(y)

	switch n {
	case 0x0: // LD Vx, Vy
		c.regs.SetV(x, vy)

	case 0x1: // OR Vx, Vy
		c.regs.SetV(x, vx|vy)

	case 0x2: // AND Vx, Vy
		c.regs.SetV(x, vx&vy)

	case 0x3: // XOR Vx, Vy
		c.regs.SetV(x, vx^vy)

	case 0x4: // ADD Vx, Vy - VF set on overflow
		sum := vx + vy
		c.regs.SetV(x, sum)
		c.regs.SetCarry(sum < vx)

	case 0x5: // SUB Vx, Vy - VF set when a borrow occurred
		c.regs.SetV(x, vx-vy)
		c.regs.SetCarry(vy > vx)

	case 0x6: // SHR - Vx = Vy >> 1, VF = pre-shift LSB of Vx
		c.regs.SetV(x, vy>>1)
		c.regs.SetCarry(vx&0x01 != 0)

	case 0x7: // SUBN Vx, Vy - VF set when a borrow occurred
		c.regs.SetV(x, vy-vx)
		c.regs.SetCarry(vx > vy)

	case 0xE: // SHL - Vx = Vy << 1, VF = pre-shift MSB of Vx
		c.regs.SetV(x, vy<<1)
		c.regs.SetCarry(vx&0x80 != 0)

	default:
		return &DecodeError{Opcode: opcode, PC: c.regs.PC()}
	}
	return nil
}

// stepMisc executes the FXNN operations. It reports whether the program
// counter must stay on the current instruction (key wait with no key
// down).
func (c *CPU) stepMisc(b *bus.Bus, opcode uint16, x byte) (bool, error) {
	switch byte(opcode) {
	case 0x07: // LD Vx, DT
		c.regs.SetV(x, b.Timers().Delay())

	case 0x0A: // LD Vx, K - blocks until a key is down
		key, ok := b.Keypad().FirstPressed()
		if !ok {
			return true, nil
		}
		c.regs.SetV(x, key)

	case 0x15: // LD DT, Vx
		b.Timers().SetDelay(c.regs.V(x))

	case 0x18: // LD ST, Vx
		b.Timers().SetSound(c.regs.V(x))

	case 0x1E: // ADD I, Vx
		c.regs.SetI(c.regs.I() + uint16(c.regs.V(x)))

	case 0x29: // LD F, Vx
		c.regs.SetI(bus.FontAddr + uint16(c.regs.V(x))*bus.GlyphSize)

	case 0x33: // LD B, Vx - BCD of Vx into memory at I
		vx := c.regs.V(x)
		i := c.regs.I()
		for offset, digit := range []byte{vx / 100, vx / 10 % 10, vx % 10} {
			if err := b.Memory().Write(i+uint16(offset), digit); err != nil {
				return false, fmt.Errorf("storing BCD digits: %w", err)
			}
		}

	case 0x55: // LD [I], Vx - dump V0..Vx, I advances per register
		for reg := byte(0); reg <= x; reg++ {
			if err := b.Memory().Write(c.regs.I(), c.regs.V(reg)); err != nil {
				return false, fmt.Errorf("dumping registers: %w", err)
			}
			c.regs.SetI(c.regs.I() + 1)
		}

	case 0x65: // LD Vx, [I] - restore V0..Vx, I advances per register
		for reg := byte(0); reg <= x; reg++ {
			value, err := b.Memory().Read(c.regs.I())
			if err != nil {
				return false, fmt.Errorf("restoring registers: %w", err)
			}
			c.regs.SetV(reg, value)
			c.regs.SetI(c.regs.I() + 1)
		}

	default:
		return false, &DecodeError{Opcode: opcode, PC: c.regs.PC()}
	}
	return false, nil
}
