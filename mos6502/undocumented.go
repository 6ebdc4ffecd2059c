package mos6502

// The stable undocumented instructions. Most are a documented
// read-modify-write followed by a documented ALU operation on the
// result, and behave exactly like that pair.
// https://www.nesdev.org/wiki/Programming_with_unofficial_opcodes

func (c *CPU) opLAX() uint8 {
	c.acc = c.fetch()
	c.x = c.acc
	c.setNegativeAndZeroFlags(c.acc)
	return 1
}

func (c *CPU) opSAX() uint8 {
	c.write(c.addrAbs, c.acc&c.x)
	return 0
}

func (c *CPU) opDCP() uint8 {
	v := c.fetch() - 1
	c.write(c.addrAbs, v)
	c.compare(c.acc, v)
	return 0
}

func (c *CPU) opISC() uint8 {
	v := c.fetch() + 1
	c.write(c.addrAbs, v)
	c.addWithCarry(v ^ 0xFF)
	return 0
}

func (c *CPU) opSLO() uint8 {
	c.acc |= c.shiftLeft(0)
	c.setNegativeAndZeroFlags(c.acc)
	return 0
}

func (c *CPU) opRLA() uint8 {
	c.acc &= c.shiftLeft(c.flagBit(FLAG_CARRY))
	c.setNegativeAndZeroFlags(c.acc)
	return 0
}

func (c *CPU) opSRE() uint8 {
	c.acc ^= c.shiftRight(0)
	c.setNegativeAndZeroFlags(c.acc)
	return 0
}

func (c *CPU) opRRA() uint8 {
	c.addWithCarry(c.shiftRight(c.flagBit(FLAG_CARRY)))
	return 0
}

// opANC copies bit 7 of the result into carry as well as negative.
func (c *CPU) opANC() uint8 {
	c.acc &= c.fetch()
	c.setNegativeAndZeroFlags(c.acc)
	c.setFlag(FLAG_CARRY, c.acc&0x80 != 0)
	return 0
}

func (c *CPU) opALR() uint8 {
	v := c.acc & c.fetch()

	c.setFlag(FLAG_CARRY, v&0x01 != 0)
	c.acc = v >> 1
	c.setNegativeAndZeroFlags(c.acc)
	return 0
}

// opARR rotates acc & m right; carry comes from bit 6 of the result
// and overflow from bit 6 xor bit 5.
func (c *CPU) opARR() uint8 {
	v := c.acc & c.fetch()

	c.acc = c.flagBit(FLAG_CARRY)<<7 | v>>1
	c.setNegativeAndZeroFlags(c.acc)
	c.setFlag(FLAG_CARRY, c.acc&0x40 != 0)
	c.setFlag(FLAG_OVERFLOW, (c.acc>>6^c.acc>>5)&0x01 != 0)
	return 0
}

// opAXS subtracts without borrow, setting carry like CMP.
func (c *CPU) opAXS() uint8 {
	ax := c.acc & c.x
	v := c.fetch()

	c.setFlag(FLAG_CARRY, ax >= v)
	c.x = ax - v
	c.setNegativeAndZeroFlags(c.x)
	return 0
}

// opUnstable stands in for the instructions whose results depend on
// the particular chip (and KIL, which locks it up). They run as a NOP
// of the declared length and cycle count. LAS is a load and pays the
// page crossing cycle like one; the stores never do.
func (c *CPU) opUnstable() uint8 {
	if c.logger != nil {
		c.logger.Printf("unimplemented opcode 0x%02x (%s) at 0x%04x", c.opcode, opcodes[c.opcode].name, c.pc-1-uint16(operandBytes[c.mode]))
	}
	if opcodes[c.opcode].inst == LAS {
		return 1
	}
	return 0
}
