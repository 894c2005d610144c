package cpu

// Registers is the CHIP-8 register file: 16 general purpose 8-bit
// registers V0-VF, the 16-bit address register I and the program
// counter. VF doubles as the carry, borrow and collision flag.
type Registers struct {
	v  [16]byte
	i  uint16
	pc uint16
}

// V returns the value of register VX. Register selectors come from
// 4-bit opcode fields, the index is masked accordingly.
func (r *Registers) V(x byte) byte {
	return r.v[x&0xF]
}

// SetV sets register VX to the given value.
func (r *Registers) SetV(x, value byte) {
	r.v[x&0xF] = value
}

// I returns the address register.
func (r *Registers) I() uint16 {
	return r.i
}

// SetI sets the address register.
func (r *Registers) SetI(addr uint16) {
	r.i = addr
}

// PC returns the program counter.
func (r *Registers) PC() uint16 {
	return r.pc
}

// SetPC sets the program counter.
func (r *Registers) SetPC(addr uint16) {
	r.pc = addr
}

// SetCarry sets VF to 1 or 0. It is the single path used by every
// ALU and draw operation that reports overflow, borrow, a shifted-out
// bit or a sprite collision.
func (r *Registers) SetCarry(flag bool) {
	if flag {
		r.v[0xF] = 1
	} else {
		r.v[0xF] = 0
	}
}
