package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// DecodeError is returned for opcodes the machine does not implement,
// including 0NNN machine code calls.
type DecodeError struct {
	Opcode uint16
	PC     uint16
}

func (e *DecodeError) Error() string {
	if name := mnemonic(e.Opcode); name != "" {
		return fmt.Sprintf("unsupported opcode 0x%04X (%s) at address 0x%04X", e.Opcode, name, e.PC)
	}
	return fmt.Sprintf("invalid opcode 0x%04X at address 0x%04X", e.Opcode, e.PC)
}

// mnemonic resolves the instruction name of an opcode through the
// canonical CHIP-8 opcode table, matching on mask and value within the
// high-nibble group. It returns an empty string for opcodes that are
// not part of the instruction set.
func mnemonic(opcode uint16) string {
	group := chip8.Opcodes[int(opcode>>12)]
	for _, op := range group {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name
		}
	}
	return ""
}
