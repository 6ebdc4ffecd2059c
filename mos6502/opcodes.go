package mos6502

import (
	"fmt"
)

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	IMPLICIT = iota // also covers the accumulator forms of ASL/LSR/ROL/ROR
	IMMEDIATE
	ZERO_PAGE
	ZERO_PAGE_X
	ZERO_PAGE_Y
	RELATIVE
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X // Indexed Indirect
	INDIRECT_Y // Indirect Indexed
	NUM_MODES
)

var modenames = [NUM_MODES]string{IMPLICIT: "IMPLICIT", IMMEDIATE: "IMMEDIATE", ZERO_PAGE: "ZERO_PAGE", ZERO_PAGE_X: "ZERO_PAGE_X", ZERO_PAGE_Y: "ZERO_PAGE_Y", RELATIVE: "RELATIVE", ABSOLUTE: "ABSOLUTE", ABSOLUTE_X: "ABSOLUTE_X", ABSOLUTE_Y: "ABSOLUTE_Y", INDIRECT: "INDIRECT", INDIRECT_X: "INDIRECT_X", INDIRECT_Y: "INDIRECT_Y"}

// operandBytes is the number of bytes following the opcode for each
// addressing mode.
var operandBytes = [NUM_MODES]uint8{IMPLICIT: 0, IMMEDIATE: 1, ZERO_PAGE: 1, ZERO_PAGE_X: 1, ZERO_PAGE_Y: 1, RELATIVE: 1, ABSOLUTE: 2, ABSOLUTE_X: 2, ABSOLUTE_Y: 2, INDIRECT: 2, INDIRECT_X: 1, INDIRECT_Y: 1}

// 6502 Instructions
// https://www.nesdev.org/obelisk-6502-guide/instructions.html
// https://www.nesdev.org/obelisk-6502-guide/reference.html
const (
	ADC = iota // ADD with Carry
	AND        // Logical AND
	ASL        // Arithmetic Shift Left
	BCC        // Branch if Carry Clear
	BCS        // Branch if Carry Set
	BEQ        // Branch if Equal
	BIT        // Bit Test
	BMI        // Branch if Minus
	BNE        // Branch if Not Equal
	BPL        // Branch if Positive
	BRK        // Force Interrupt
	BVC        // Branch if Overflow Clear
	BVS        // Branch if Overflow Set
	CLC        // Clear Carry Flag
	CLD        // Clear Decimal Mode
	CLI        // Clear Interrupt Disable
	CLV        // Clear Overflow Flag
	CMP        // Compare
	CPX        // Compare X Register
	CPY        // compare Y Regsiter
	DEC        // Decrement Memory
	DEX        // Decrement X Register
	DEY        // Decrement Y Register
	EOR        // Exclusive OR
	INC        // Increment Memory
	INX        // Increment X Register
	INY        // Increment Y Register
	JMP        // Jump
	JSR        // Jump to Subroutine
	LDA        // Load Accumulator
	LDX        // Load X Register
	LDY        // Load Y Register
	LSR        // Logical Shift Right
	NOP        // No Operation
	ORA        // Logical Inclusive OR
	PHA        // Push Accumulator
	PHP        // Push Processor Status
	PLA        // Pull Accumulator
	PLP        // Pull Processor Status
	ROL        // Rotate Left
	ROR        // Rotate Right
	RTI        // Return from Interrupt
	RTS        // Return from Subroutine
	SBC        // Subtract With Carry
	SEC        // Set Carry Flag
	SED        // Set Decimal Flag
	SEI        // Set Interrupt Disable
	STA        // Store Accumulator
	STX        // Store X Register
	STY        // Store Y Register
	TAX        // Transfer Accumulator to X
	TAY        // Transfer Accumulator to Y
	TSX        // Transfer Stack Pointer to X
	TXA        // Transfer X to Accumulator
	TXS        // Transfer X to Stack Pointer
	TYA        // Transfer Y to Accumulator

	// Undocumented; https://www.nesdev.org/wiki/CPU_unofficial_opcodes
	AHX // mem = acc & x & (high byte + 1), unstable
	ALR // acc &= m; LSR acc
	ANC // acc &= m; carry = bit 7
	ARR // acc &= m; ROR acc, odd carry/overflow
	AXS // x = (acc & x) - m, no borrow
	DCP // m--; cmp acc w/m
	ISC // m++; acc - m
	KIL // halts the real chip
	LAS // acc, x, sp = m & sp, unstable
	LAX // Load ACC and X from memory
	RLA // ROL m; acc &= m
	RRA // ROR m; acc += m
	SAX // m = acc & x
	SHX // m = x & (high byte + 1), unstable
	SHY // m = y & (high byte + 1), unstable
	SLO // ASL m; acc |= m
	SRE // LSR m; acc ^= m
	TAS // sp = acc & x; m = sp & (high byte + 1), unstable
	XAA // acc = x & m, unstable
	NUM_OPS
)

type opcode struct {
	inst   uint8  // The instruction id
	name   string // mnemonic
	mode   uint8  // The memory addressing mode to use
	cycles uint8  // The number of cycles consumed by the instruction, before page and branch penalties
}

func (o opcode) String() string {
	return fmt.Sprintf("{%s, %s}", o.name, modenames[o.mode])
}

// Lookup returns the mnemonic, addressing mode and base cycle count
// for op.
func Lookup(op uint8) (name string, mode uint8, cycles uint8) {
	o := opcodes[op]
	return o.name, o.mode, o.cycles
}

// ModeName returns a printable name for an addressing mode.
func ModeName(mode uint8) string {
	if int(mode) >= len(modenames) {
		return fmt.Sprintf("MODE(%d)", mode)
	}
	return modenames[mode]
}

// opcodes is the full decode table. Every byte has an entry; the
// undocumented ones carry their own instruction ids rather than being
// folded into NOP.
var opcodes = [256]opcode{
	0x00: {BRK, "BRK", IMMEDIATE, 7},
	0x01: {ORA, "ORA", INDIRECT_X, 6},
	0x02: {KIL, "KIL", IMPLICIT, 2},
	0x03: {SLO, "SLO", INDIRECT_X, 8},
	0x04: {NOP, "NOP", ZERO_PAGE, 3},
	0x05: {ORA, "ORA", ZERO_PAGE, 3},
	0x06: {ASL, "ASL", ZERO_PAGE, 5},
	0x07: {SLO, "SLO", ZERO_PAGE, 5},
	0x08: {PHP, "PHP", IMPLICIT, 3},
	0x09: {ORA, "ORA", IMMEDIATE, 2},
	0x0A: {ASL, "ASL", IMPLICIT, 2},
	0x0B: {ANC, "ANC", IMMEDIATE, 2},
	0x0C: {NOP, "NOP", ABSOLUTE, 4},
	0x0D: {ORA, "ORA", ABSOLUTE, 4},
	0x0E: {ASL, "ASL", ABSOLUTE, 6},
	0x0F: {SLO, "SLO", ABSOLUTE, 6},
	0x10: {BPL, "BPL", RELATIVE, 2},
	0x11: {ORA, "ORA", INDIRECT_Y, 5},
	0x12: {KIL, "KIL", IMPLICIT, 2},
	0x13: {SLO, "SLO", INDIRECT_Y, 8},
	0x14: {NOP, "NOP", ZERO_PAGE_X, 4},
	0x15: {ORA, "ORA", ZERO_PAGE_X, 4},
	0x16: {ASL, "ASL", ZERO_PAGE_X, 6},
	0x17: {SLO, "SLO", ZERO_PAGE_X, 6},
	0x18: {CLC, "CLC", IMPLICIT, 2},
	0x19: {ORA, "ORA", ABSOLUTE_Y, 4},
	0x1A: {NOP, "NOP", IMPLICIT, 2},
	0x1B: {SLO, "SLO", ABSOLUTE_Y, 7},
	0x1C: {NOP, "NOP", ABSOLUTE_X, 4},
	0x1D: {ORA, "ORA", ABSOLUTE_X, 4},
	0x1E: {ASL, "ASL", ABSOLUTE_X, 7},
	0x1F: {SLO, "SLO", ABSOLUTE_X, 7},
	0x20: {JSR, "JSR", ABSOLUTE, 6},
	0x21: {AND, "AND", INDIRECT_X, 6},
	0x22: {KIL, "KIL", IMPLICIT, 2},
	0x23: {RLA, "RLA", INDIRECT_X, 8},
	0x24: {BIT, "BIT", ZERO_PAGE, 3},
	0x25: {AND, "AND", ZERO_PAGE, 3},
	0x26: {ROL, "ROL", ZERO_PAGE, 5},
	0x27: {RLA, "RLA", ZERO_PAGE, 5},
	0x28: {PLP, "PLP", IMPLICIT, 4},
	0x29: {AND, "AND", IMMEDIATE, 2},
	0x2A: {ROL, "ROL", IMPLICIT, 2},
	0x2B: {ANC, "ANC", IMMEDIATE, 2},
	0x2C: {BIT, "BIT", ABSOLUTE, 4},
	0x2D: {AND, "AND", ABSOLUTE, 4},
	0x2E: {ROL, "ROL", ABSOLUTE, 6},
	0x2F: {RLA, "RLA", ABSOLUTE, 6},
	0x30: {BMI, "BMI", RELATIVE, 2},
	0x31: {AND, "AND", INDIRECT_Y, 5},
	0x32: {KIL, "KIL", IMPLICIT, 2},
	0x33: {RLA, "RLA", INDIRECT_Y, 8},
	0x34: {NOP, "NOP", ZERO_PAGE_X, 4},
	0x35: {AND, "AND", ZERO_PAGE_X, 4},
	0x36: {ROL, "ROL", ZERO_PAGE_X, 6},
	0x37: {RLA, "RLA", ZERO_PAGE_X, 6},
	0x38: {SEC, "SEC", IMPLICIT, 2},
	0x39: {AND, "AND", ABSOLUTE_Y, 4},
	0x3A: {NOP, "NOP", IMPLICIT, 2},
	0x3B: {RLA, "RLA", ABSOLUTE_Y, 7},
	0x3C: {NOP, "NOP", ABSOLUTE_X, 4},
	0x3D: {AND, "AND", ABSOLUTE_X, 4},
	0x3E: {ROL, "ROL", ABSOLUTE_X, 7},
	0x3F: {RLA, "RLA", ABSOLUTE_X, 7},
	0x40: {RTI, "RTI", IMPLICIT, 6},
	0x41: {EOR, "EOR", INDIRECT_X, 6},
	0x42: {KIL, "KIL", IMPLICIT, 2},
	0x43: {SRE, "SRE", INDIRECT_X, 8},
	0x44: {NOP, "NOP", ZERO_PAGE, 3},
	0x45: {EOR, "EOR", ZERO_PAGE, 3},
	0x46: {LSR, "LSR", ZERO_PAGE, 5},
	0x47: {SRE, "SRE", ZERO_PAGE, 5},
	0x48: {PHA, "PHA", IMPLICIT, 3},
	0x49: {EOR, "EOR", IMMEDIATE, 2},
	0x4A: {LSR, "LSR", IMPLICIT, 2},
	0x4B: {ALR, "ALR", IMMEDIATE, 2},
	0x4C: {JMP, "JMP", ABSOLUTE, 3},
	0x4D: {EOR, "EOR", ABSOLUTE, 4},
	0x4E: {LSR, "LSR", ABSOLUTE, 6},
	0x4F: {SRE, "SRE", ABSOLUTE, 6},
	0x50: {BVC, "BVC", RELATIVE, 2},
	0x51: {EOR, "EOR", INDIRECT_Y, 5},
	0x52: {KIL, "KIL", IMPLICIT, 2},
	0x53: {SRE, "SRE", INDIRECT_Y, 8},
	0x54: {NOP, "NOP", ZERO_PAGE_X, 4},
	0x55: {EOR, "EOR", ZERO_PAGE_X, 4},
	0x56: {LSR, "LSR", ZERO_PAGE_X, 6},
	0x57: {SRE, "SRE", ZERO_PAGE_X, 6},
	0x58: {CLI, "CLI", IMPLICIT, 2},
	0x59: {EOR, "EOR", ABSOLUTE_Y, 4},
	0x5A: {NOP, "NOP", IMPLICIT, 2},
	0x5B: {SRE, "SRE", ABSOLUTE_Y, 7},
	0x5C: {NOP, "NOP", ABSOLUTE_X, 4},
	0x5D: {EOR, "EOR", ABSOLUTE_X, 4},
	0x5E: {LSR, "LSR", ABSOLUTE_X, 7},
	0x5F: {SRE, "SRE", ABSOLUTE_X, 7},
	0x60: {RTS, "RTS", IMPLICIT, 6},
	0x61: {ADC, "ADC", INDIRECT_X, 6},
	0x62: {KIL, "KIL", IMPLICIT, 2},
	0x63: {RRA, "RRA", INDIRECT_X, 8},
	0x64: {NOP, "NOP", ZERO_PAGE, 3},
	0x65: {ADC, "ADC", ZERO_PAGE, 3},
	0x66: {ROR, "ROR", ZERO_PAGE, 5},
	0x67: {RRA, "RRA", ZERO_PAGE, 5},
	0x68: {PLA, "PLA", IMPLICIT, 4},
	0x69: {ADC, "ADC", IMMEDIATE, 2},
	0x6A: {ROR, "ROR", IMPLICIT, 2},
	0x6B: {ARR, "ARR", IMMEDIATE, 2},
	0x6C: {JMP, "JMP", INDIRECT, 5},
	0x6D: {ADC, "ADC", ABSOLUTE, 4},
	0x6E: {ROR, "ROR", ABSOLUTE, 6},
	0x6F: {RRA, "RRA", ABSOLUTE, 6},
	0x70: {BVS, "BVS", RELATIVE, 2},
	0x71: {ADC, "ADC", INDIRECT_Y, 5},
	0x72: {KIL, "KIL", IMPLICIT, 2},
	0x73: {RRA, "RRA", INDIRECT_Y, 8},
	0x74: {NOP, "NOP", ZERO_PAGE_X, 4},
	0x75: {ADC, "ADC", ZERO_PAGE_X, 4},
	0x76: {ROR, "ROR", ZERO_PAGE_X, 6},
	0x77: {RRA, "RRA", ZERO_PAGE_X, 6},
	0x78: {SEI, "SEI", IMPLICIT, 2},
	0x79: {ADC, "ADC", ABSOLUTE_Y, 4},
	0x7A: {NOP, "NOP", IMPLICIT, 2},
	0x7B: {RRA, "RRA", ABSOLUTE_Y, 7},
	0x7C: {NOP, "NOP", ABSOLUTE_X, 4},
	0x7D: {ADC, "ADC", ABSOLUTE_X, 4},
	0x7E: {ROR, "ROR", ABSOLUTE_X, 7},
	0x7F: {RRA, "RRA", ABSOLUTE_X, 7},
	0x80: {NOP, "NOP", IMMEDIATE, 2},
	0x81: {STA, "STA", INDIRECT_X, 6},
	0x82: {NOP, "NOP", IMMEDIATE, 2},
	0x83: {SAX, "SAX", INDIRECT_X, 6},
	0x84: {STY, "STY", ZERO_PAGE, 3},
	0x85: {STA, "STA", ZERO_PAGE, 3},
	0x86: {STX, "STX", ZERO_PAGE, 3},
	0x87: {SAX, "SAX", ZERO_PAGE, 3},
	0x88: {DEY, "DEY", IMPLICIT, 2},
	0x89: {NOP, "NOP", IMMEDIATE, 2},
	0x8A: {TXA, "TXA", IMPLICIT, 2},
	0x8B: {XAA, "XAA", IMMEDIATE, 2},
	0x8C: {STY, "STY", ABSOLUTE, 4},
	0x8D: {STA, "STA", ABSOLUTE, 4},
	0x8E: {STX, "STX", ABSOLUTE, 4},
	0x8F: {SAX, "SAX", ABSOLUTE, 4},
	0x90: {BCC, "BCC", RELATIVE, 2},
	0x91: {STA, "STA", INDIRECT_Y, 6},
	0x92: {KIL, "KIL", IMPLICIT, 2},
	0x93: {AHX, "AHX", INDIRECT_Y, 6},
	0x94: {STY, "STY", ZERO_PAGE_X, 4},
	0x95: {STA, "STA", ZERO_PAGE_X, 4},
	0x96: {STX, "STX", ZERO_PAGE_Y, 4},
	0x97: {SAX, "SAX", ZERO_PAGE_Y, 4},
	0x98: {TYA, "TYA", IMPLICIT, 2},
	0x99: {STA, "STA", ABSOLUTE_Y, 5},
	0x9A: {TXS, "TXS", IMPLICIT, 2},
	0x9B: {TAS, "TAS", ABSOLUTE_Y, 5},
	0x9C: {SHY, "SHY", ABSOLUTE_X, 5},
	0x9D: {STA, "STA", ABSOLUTE_X, 5},
	0x9E: {SHX, "SHX", ABSOLUTE_Y, 5},
	0x9F: {AHX, "AHX", ABSOLUTE_Y, 5},
	0xA0: {LDY, "LDY", IMMEDIATE, 2},
	0xA1: {LDA, "LDA", INDIRECT_X, 6},
	0xA2: {LDX, "LDX", IMMEDIATE, 2},
	0xA3: {LAX, "LAX", INDIRECT_X, 6},
	0xA4: {LDY, "LDY", ZERO_PAGE, 3},
	0xA5: {LDA, "LDA", ZERO_PAGE, 3},
	0xA6: {LDX, "LDX", ZERO_PAGE, 3},
	0xA7: {LAX, "LAX", ZERO_PAGE, 3},
	0xA8: {TAY, "TAY", IMPLICIT, 2},
	0xA9: {LDA, "LDA", IMMEDIATE, 2},
	0xAA: {TAX, "TAX", IMPLICIT, 2},
	0xAB: {LAX, "LAX", IMMEDIATE, 2},
	0xAC: {LDY, "LDY", ABSOLUTE, 4},
	0xAD: {LDA, "LDA", ABSOLUTE, 4},
	0xAE: {LDX, "LDX", ABSOLUTE, 4},
	0xAF: {LAX, "LAX", ABSOLUTE, 4},
	0xB0: {BCS, "BCS", RELATIVE, 2},
	0xB1: {LDA, "LDA", INDIRECT_Y, 5},
	0xB2: {KIL, "KIL", IMPLICIT, 2},
	0xB3: {LAX, "LAX", INDIRECT_Y, 5},
	0xB4: {LDY, "LDY", ZERO_PAGE_X, 4},
	0xB5: {LDA, "LDA", ZERO_PAGE_X, 4},
	0xB6: {LDX, "LDX", ZERO_PAGE_Y, 4},
	0xB7: {LAX, "LAX", ZERO_PAGE_Y, 4},
	0xB8: {CLV, "CLV", IMPLICIT, 2},
	0xB9: {LDA, "LDA", ABSOLUTE_Y, 4},
	0xBA: {TSX, "TSX", IMPLICIT, 2},
	0xBB: {LAS, "LAS", ABSOLUTE_Y, 4},
	0xBC: {LDY, "LDY", ABSOLUTE_X, 4},
	0xBD: {LDA, "LDA", ABSOLUTE_X, 4},
	0xBE: {LDX, "LDX", ABSOLUTE_Y, 4},
	0xBF: {LAX, "LAX", ABSOLUTE_Y, 4},
	0xC0: {CPY, "CPY", IMMEDIATE, 2},
	0xC1: {CMP, "CMP", INDIRECT_X, 6},
	0xC2: {NOP, "NOP", IMMEDIATE, 2},
	0xC3: {DCP, "DCP", INDIRECT_X, 8},
	0xC4: {CPY, "CPY", ZERO_PAGE, 3},
	0xC5: {CMP, "CMP", ZERO_PAGE, 3},
	0xC6: {DEC, "DEC", ZERO_PAGE, 5},
	0xC7: {DCP, "DCP", ZERO_PAGE, 5},
	0xC8: {INY, "INY", IMPLICIT, 2},
	0xC9: {CMP, "CMP", IMMEDIATE, 2},
	0xCA: {DEX, "DEX", IMPLICIT, 2},
	0xCB: {AXS, "AXS", IMMEDIATE, 2},
	0xCC: {CPY, "CPY", ABSOLUTE, 4},
	0xCD: {CMP, "CMP", ABSOLUTE, 4},
	0xCE: {DEC, "DEC", ABSOLUTE, 6},
	0xCF: {DCP, "DCP", ABSOLUTE, 6},
	0xD0: {BNE, "BNE", RELATIVE, 2},
	0xD1: {CMP, "CMP", INDIRECT_Y, 5},
	0xD2: {KIL, "KIL", IMPLICIT, 2},
	0xD3: {DCP, "DCP", INDIRECT_Y, 8},
	0xD4: {NOP, "NOP", ZERO_PAGE_X, 4},
	0xD5: {CMP, "CMP", ZERO_PAGE_X, 4},
	0xD6: {DEC, "DEC", ZERO_PAGE_X, 6},
	0xD7: {DCP, "DCP", ZERO_PAGE_X, 6},
	0xD8: {CLD, "CLD", IMPLICIT, 2},
	0xD9: {CMP, "CMP", ABSOLUTE_Y, 4},
	0xDA: {NOP, "NOP", IMPLICIT, 2},
	0xDB: {DCP, "DCP", ABSOLUTE_Y, 7},
	0xDC: {NOP, "NOP", ABSOLUTE_X, 4},
	0xDD: {CMP, "CMP", ABSOLUTE_X, 4},
	0xDE: {DEC, "DEC", ABSOLUTE_X, 7},
	0xDF: {DCP, "DCP", ABSOLUTE_X, 7},
	0xE0: {CPX, "CPX", IMMEDIATE, 2},
	0xE1: {SBC, "SBC", INDIRECT_X, 6},
	0xE2: {NOP, "NOP", IMMEDIATE, 2},
	0xE3: {ISC, "ISC", INDIRECT_X, 8},
	0xE4: {CPX, "CPX", ZERO_PAGE, 3},
	0xE5: {SBC, "SBC", ZERO_PAGE, 3},
	0xE6: {INC, "INC", ZERO_PAGE, 5},
	0xE7: {ISC, "ISC", ZERO_PAGE, 5},
	0xE8: {INX, "INX", IMPLICIT, 2},
	0xE9: {SBC, "SBC", IMMEDIATE, 2},
	0xEA: {NOP, "NOP", IMPLICIT, 2},
	0xEB: {SBC, "SBC", IMMEDIATE, 2},
	0xEC: {CPX, "CPX", ABSOLUTE, 4},
	0xED: {SBC, "SBC", ABSOLUTE, 4},
	0xEE: {INC, "INC", ABSOLUTE, 6},
	0xEF: {ISC, "ISC", ABSOLUTE, 6},
	0xF0: {BEQ, "BEQ", RELATIVE, 2},
	0xF1: {SBC, "SBC", INDIRECT_Y, 5},
	0xF2: {KIL, "KIL", IMPLICIT, 2},
	0xF3: {ISC, "ISC", INDIRECT_Y, 8},
	0xF4: {NOP, "NOP", ZERO_PAGE_X, 4},
	0xF5: {SBC, "SBC", ZERO_PAGE_X, 4},
	0xF6: {INC, "INC", ZERO_PAGE_X, 6},
	0xF7: {ISC, "ISC", ZERO_PAGE_X, 6},
	0xF8: {SED, "SED", IMPLICIT, 2},
	0xF9: {SBC, "SBC", ABSOLUTE_Y, 4},
	0xFA: {NOP, "NOP", IMPLICIT, 2},
	0xFB: {ISC, "ISC", ABSOLUTE_Y, 7},
	0xFC: {NOP, "NOP", ABSOLUTE_X, 4},
	0xFD: {SBC, "SBC", ABSOLUTE_X, 4},
	0xFE: {INC, "INC", ABSOLUTE_X, 7},
	0xFF: {ISC, "ISC", ABSOLUTE_X, 7},
}
