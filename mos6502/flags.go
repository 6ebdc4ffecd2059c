package mos6502

import "strings"

// Flags is the processor status register.
//
// 7  bit  0
// ---- ----
// NVUB DIZC
// |||| ||||
// |||| |||+- Carry
// |||| ||+-- Zero
// |||| |+--- Interrupt disable
// |||| +---- Decimal (settable, no effect on arithmetic)
// |||+------ Break (only meaningful in pushed copies)
// ||+------- Unused, always reads back as 1
// |+-------- Overflow
// +--------- Negative
type Flags uint8

const (
	FLAG_CARRY Flags = 1 << iota
	FLAG_ZERO
	FLAG_INTERRUPT_DISABLE
	FLAG_DECIMAL
	FLAG_BREAK
	FLAG_UNUSED
	FLAG_OVERFLOW
	FLAG_NEGATIVE
)

// Has reports whether every bit in f is set.
func (p Flags) Has(f Flags) bool {
	return p&f == f
}

func (p Flags) String() string {
	const names = "CZIDBUVN"

	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		if p&(1<<i) != 0 {
			sb.WriteByte(names[i])
		} else {
			sb.WriteByte('-')
		}
	}

	return sb.String()
}

func (c *CPU) setFlag(f Flags, on bool) {
	if on {
		c.status |= f
	} else {
		c.status &^= f
	}
}

func (c *CPU) flagBit(f Flags) uint8 {
	if c.status&f != 0 {
		return 1
	}
	return 0
}

// setNegativeAndZeroFlags derives N and Z from the low byte of val.
func (c *CPU) setNegativeAndZeroFlags(val uint8) {
	c.setFlag(FLAG_ZERO, val == 0)
	c.setFlag(FLAG_NEGATIVE, val&0x80 != 0)
}
