package mos6502

// addressModes resolves the operand for each addressing mode. Every
// resolver leaves pc just past the operand bytes and returns 1 when
// indexing crossed a page, which may cost the instruction a cycle.
var addressModes = [NUM_MODES]func(*CPU) uint8{
	IMPLICIT:    (*CPU).modeImplicit,
	IMMEDIATE:   (*CPU).modeImmediate,
	ZERO_PAGE:   (*CPU).modeZeroPage,
	ZERO_PAGE_X: (*CPU).modeZeroPageX,
	ZERO_PAGE_Y: (*CPU).modeZeroPageY,
	RELATIVE:    (*CPU).modeRelative,
	ABSOLUTE:    (*CPU).modeAbsolute,
	ABSOLUTE_X:  (*CPU).modeAbsoluteX,
	ABSOLUTE_Y:  (*CPU).modeAbsoluteY,
	INDIRECT:    (*CPU).modeIndirect,
	INDIRECT_X:  (*CPU).modeIndirectX,
	INDIRECT_Y:  (*CPU).modeIndirectY,
}

func pageCrossed(a, b uint16) uint8 {
	if a&0xFF00 != b&0xFF00 {
		return 1
	}
	return 0
}

// operand reads the byte at pc and moves past it.
func (c *CPU) operand() uint8 {
	v := c.read(c.pc)
	c.pc++
	return v
}

func (c *CPU) operand16() uint16 {
	lsb := uint16(c.operand())
	msb := uint16(c.operand())
	return (msb << 8) | lsb
}

// The operand is the accumulator, or nothing at all.
func (c *CPU) modeImplicit() uint8 {
	c.fetched = c.acc
	return 0
}

func (c *CPU) modeImmediate() uint8 {
	c.addrAbs = c.pc
	c.pc++
	return 0
}

func (c *CPU) modeZeroPage() uint8 {
	c.addrAbs = uint16(c.operand())
	return 0
}

// Indexed zero page addresses never leave page zero.
func (c *CPU) modeZeroPageX() uint8 {
	c.addrAbs = uint16(c.operand() + c.x)
	return 0
}

func (c *CPU) modeZeroPageY() uint8 {
	c.addrAbs = uint16(c.operand() + c.y)
	return 0
}

func (c *CPU) modeRelative() uint8 {
	c.addrRel = uint16(c.operand())
	if c.addrRel&0x80 != 0 {
		c.addrRel |= 0xFF00
	}
	return 0
}

func (c *CPU) modeAbsolute() uint8 {
	c.addrAbs = c.operand16()
	return 0
}

func (c *CPU) modeAbsoluteX() uint8 {
	base := c.operand16()
	c.addrAbs = base + uint16(c.x)
	return pageCrossed(base, c.addrAbs)
}

func (c *CPU) modeAbsoluteY() uint8 {
	base := c.operand16()
	c.addrAbs = base + uint16(c.y)
	return pageCrossed(base, c.addrAbs)
}

// modeIndirect is only used by JMP. The chip never carries into the
// high byte of the pointer, so a pointer at $xxFF takes its high byte
// from $xx00.
func (c *CPU) modeIndirect() uint8 {
	ptr := c.operand16()

	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	}

	c.addrAbs = uint16(c.read(hiAddr))<<8 | uint16(c.read(ptr))
	return 0
}

// modeIndirectX reads the target from the zero page pointer at
// operand+x, wrapping within page zero.
func (c *CPU) modeIndirectX() uint8 {
	zp := c.operand() + c.x

	lsb := uint16(c.read(uint16(zp)))
	msb := uint16(c.read(uint16(zp + 1)))
	c.addrAbs = (msb << 8) | lsb
	return 0
}

// modeIndirectY reads a base address from the zero page pointer at
// operand and then adds y.
func (c *CPU) modeIndirectY() uint8 {
	zp := c.operand()

	lsb := uint16(c.read(uint16(zp)))
	msb := uint16(c.read(uint16(zp + 1)))
	base := (msb << 8) | lsb
	c.addrAbs = base + uint16(c.y)
	return pageCrossed(base, c.addrAbs)
}
