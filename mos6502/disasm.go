package mos6502

import (
	"fmt"
)

// Disassemble decodes the instruction at addr without executing it. It
// returns the text and the address of the following instruction.
func Disassemble(mem Memory, addr uint16) (string, uint16) {
	op := opcodes[mem.Read(addr)]
	next := addr + 1 + uint16(operandBytes[op.mode])

	lo := mem.Read(addr + 1)
	hi := mem.Read(addr + 2)
	word := uint16(hi)<<8 | uint16(lo)

	var arg string
	switch op.mode {
	case IMPLICIT:
		switch op.inst {
		case ASL, LSR, ROL, ROR:
			arg = " A"
		}
	case IMMEDIATE:
		arg = fmt.Sprintf(" #$%02X", lo)
	case ZERO_PAGE:
		arg = fmt.Sprintf(" $%02X", lo)
	case ZERO_PAGE_X:
		arg = fmt.Sprintf(" $%02X,X", lo)
	case ZERO_PAGE_Y:
		arg = fmt.Sprintf(" $%02X,Y", lo)
	case RELATIVE:
		target := next + uint16(int16(int8(lo)))
		arg = fmt.Sprintf(" $%04X", target)
	case ABSOLUTE:
		arg = fmt.Sprintf(" $%04X", word)
	case ABSOLUTE_X:
		arg = fmt.Sprintf(" $%04X,X", word)
	case ABSOLUTE_Y:
		arg = fmt.Sprintf(" $%04X,Y", word)
	case INDIRECT:
		arg = fmt.Sprintf(" ($%04X)", word)
	case INDIRECT_X:
		arg = fmt.Sprintf(" ($%02X,X)", lo)
	case INDIRECT_Y:
		arg = fmt.Sprintf(" ($%02X),Y", lo)
	}

	// BRK is decoded as IMMEDIATE only to skip its padding byte.
	if op.inst == BRK {
		arg = ""
	}

	return fmt.Sprintf("$%04X: %s%s", addr, op.name, arg), next
}
