package mos6502

// operations maps each instruction id to its implementation. An
// operation returns 1 if it is one that pays the page crossing penalty
// reported by its addressing mode.
var operations = [NUM_OPS]func(*CPU) uint8{
	ADC: (*CPU).opADC, AND: (*CPU).opAND, ASL: (*CPU).opASL, BCC: (*CPU).opBCC,
	BCS: (*CPU).opBCS, BEQ: (*CPU).opBEQ, BIT: (*CPU).opBIT, BMI: (*CPU).opBMI,
	BNE: (*CPU).opBNE, BPL: (*CPU).opBPL, BRK: (*CPU).opBRK, BVC: (*CPU).opBVC,
	BVS: (*CPU).opBVS, CLC: (*CPU).opCLC, CLD: (*CPU).opCLD, CLI: (*CPU).opCLI,
	CLV: (*CPU).opCLV, CMP: (*CPU).opCMP, CPX: (*CPU).opCPX, CPY: (*CPU).opCPY,
	DEC: (*CPU).opDEC, DEX: (*CPU).opDEX, DEY: (*CPU).opDEY, EOR: (*CPU).opEOR,
	INC: (*CPU).opINC, INX: (*CPU).opINX, INY: (*CPU).opINY, JMP: (*CPU).opJMP,
	JSR: (*CPU).opJSR, LDA: (*CPU).opLDA, LDX: (*CPU).opLDX, LDY: (*CPU).opLDY,
	LSR: (*CPU).opLSR, NOP: (*CPU).opNOP, ORA: (*CPU).opORA, PHA: (*CPU).opPHA,
	PHP: (*CPU).opPHP, PLA: (*CPU).opPLA, PLP: (*CPU).opPLP, ROL: (*CPU).opROL,
	ROR: (*CPU).opROR, RTI: (*CPU).opRTI, RTS: (*CPU).opRTS, SBC: (*CPU).opSBC,
	SEC: (*CPU).opSEC, SED: (*CPU).opSED, SEI: (*CPU).opSEI, STA: (*CPU).opSTA,
	STX: (*CPU).opSTX, STY: (*CPU).opSTY, TAX: (*CPU).opTAX, TAY: (*CPU).opTAY,
	TSX: (*CPU).opTSX, TXA: (*CPU).opTXA, TXS: (*CPU).opTXS, TYA: (*CPU).opTYA,

	AHX: (*CPU).opUnstable, ALR: (*CPU).opALR, ANC: (*CPU).opANC, ARR: (*CPU).opARR,
	AXS: (*CPU).opAXS, DCP: (*CPU).opDCP, ISC: (*CPU).opISC, KIL: (*CPU).opUnstable,
	LAS: (*CPU).opUnstable, LAX: (*CPU).opLAX, RLA: (*CPU).opRLA, RRA: (*CPU).opRRA,
	SAX: (*CPU).opSAX, SHX: (*CPU).opUnstable, SHY: (*CPU).opUnstable, SLO: (*CPU).opSLO,
	SRE: (*CPU).opSRE, TAS: (*CPU).opUnstable, XAA: (*CPU).opUnstable,
}

// fetch loads the operand from the effective address. For IMPLICIT
// instructions the addressing mode already put the accumulator there.
func (c *CPU) fetch() uint8 {
	if c.mode != IMPLICIT {
		c.fetched = c.read(c.addrAbs)
	}
	return c.fetched
}

// store puts the result of a read-modify-write instruction back where
// its operand came from: the accumulator for IMPLICIT, else memory.
func (c *CPU) store(val uint8) {
	if c.mode == IMPLICIT {
		c.acc = val
		return
	}
	c.write(c.addrAbs, val)
}

// addWithCarry adds val and the carry to the accumulator. Overflow is
// set when both inputs share a sign that the result does not.
func (c *CPU) addWithCarry(val uint8) {
	c.temp = uint16(c.acc) + uint16(val) + uint16(c.flagBit(FLAG_CARRY))

	c.setFlag(FLAG_CARRY, c.temp > 0xFF)
	c.setFlag(FLAG_OVERFLOW, (^(uint16(c.acc)^uint16(val))&(uint16(c.acc)^c.temp))&0x0080 != 0)
	c.acc = uint8(c.temp & 0x00FF)
	c.setNegativeAndZeroFlags(c.acc)
}

// compare sets the flags as though val were subtracted from reg.
func (c *CPU) compare(reg, val uint8) {
	c.temp = uint16(reg) - uint16(val)

	c.setFlag(FLAG_CARRY, reg >= val)
	c.setNegativeAndZeroFlags(uint8(c.temp & 0x00FF))
}

func (c *CPU) branch(taken bool) {
	if !taken {
		return
	}

	c.remaining++
	c.addrAbs = c.pc + c.addrRel
	if pageCrossed(c.addrAbs, c.pc) == 1 {
		c.remaining++
	}
	c.pc = c.addrAbs
}

func (c *CPU) shiftLeft(in uint8) uint8 {
	c.temp = uint16(c.fetch()) << 1
	c.temp |= uint16(in)

	c.setFlag(FLAG_CARRY, c.temp&0xFF00 != 0)
	res := uint8(c.temp & 0x00FF)
	c.setNegativeAndZeroFlags(res)
	c.store(res)
	return res
}

func (c *CPU) shiftRight(in uint8) uint8 {
	v := c.fetch()
	c.temp = uint16(in)<<7 | uint16(v>>1)

	c.setFlag(FLAG_CARRY, v&0x01 != 0)
	res := uint8(c.temp & 0x00FF)
	c.setNegativeAndZeroFlags(res)
	c.store(res)
	return res
}

func (c *CPU) opADC() uint8 {
	c.addWithCarry(c.fetch())
	return 1
}

// opSBC is ADC of the operand's ones' complement, which gives the
// borrow semantics of the carry for free.
func (c *CPU) opSBC() uint8 {
	c.addWithCarry(c.fetch() ^ 0xFF)
	return 1
}

func (c *CPU) opAND() uint8 {
	c.acc &= c.fetch()
	c.setNegativeAndZeroFlags(c.acc)
	return 1
}

func (c *CPU) opEOR() uint8 {
	c.acc ^= c.fetch()
	c.setNegativeAndZeroFlags(c.acc)
	return 1
}

func (c *CPU) opORA() uint8 {
	c.acc |= c.fetch()
	c.setNegativeAndZeroFlags(c.acc)
	return 1
}

func (c *CPU) opASL() uint8 {
	c.shiftLeft(0)
	return 0
}

func (c *CPU) opLSR() uint8 {
	c.shiftRight(0)
	return 0
}

func (c *CPU) opROL() uint8 {
	c.shiftLeft(c.flagBit(FLAG_CARRY))
	return 0
}

func (c *CPU) opROR() uint8 {
	c.shiftRight(c.flagBit(FLAG_CARRY))
	return 0
}

func (c *CPU) opBCC() uint8 {
	c.branch(!c.status.Has(FLAG_CARRY))
	return 0
}

func (c *CPU) opBCS() uint8 {
	c.branch(c.status.Has(FLAG_CARRY))
	return 0
}

func (c *CPU) opBEQ() uint8 {
	c.branch(c.status.Has(FLAG_ZERO))
	return 0
}

func (c *CPU) opBNE() uint8 {
	c.branch(!c.status.Has(FLAG_ZERO))
	return 0
}

func (c *CPU) opBMI() uint8 {
	c.branch(c.status.Has(FLAG_NEGATIVE))
	return 0
}

func (c *CPU) opBPL() uint8 {
	c.branch(!c.status.Has(FLAG_NEGATIVE))
	return 0
}

func (c *CPU) opBVC() uint8 {
	c.branch(!c.status.Has(FLAG_OVERFLOW))
	return 0
}

func (c *CPU) opBVS() uint8 {
	c.branch(c.status.Has(FLAG_OVERFLOW))
	return 0
}

func (c *CPU) opBIT() uint8 {
	v := c.fetch()
	c.temp = uint16(c.acc & v)

	c.setFlag(FLAG_ZERO, c.temp&0x00FF == 0)
	c.setFlag(FLAG_NEGATIVE, v&0x80 != 0)
	c.setFlag(FLAG_OVERFLOW, v&0x40 != 0)
	return 0
}

// opBRK runs as IMMEDIATE, so pc already skips the padding byte after
// the opcode when it is pushed.
func (c *CPU) opBRK() uint8 {
	c.pushAddress(c.pc)
	c.pushStack(uint8(c.status | FLAG_BREAK | FLAG_UNUSED))
	c.setFlag(FLAG_INTERRUPT_DISABLE, true)
	c.pc = c.read16(IRQ_VECTOR)
	return 0
}

func (c *CPU) opCLC() uint8 {
	c.setFlag(FLAG_CARRY, false)
	return 0
}

func (c *CPU) opCLD() uint8 {
	c.setFlag(FLAG_DECIMAL, false)
	return 0
}

func (c *CPU) opCLI() uint8 {
	c.setFlag(FLAG_INTERRUPT_DISABLE, false)
	return 0
}

func (c *CPU) opCLV() uint8 {
	c.setFlag(FLAG_OVERFLOW, false)
	return 0
}

func (c *CPU) opSEC() uint8 {
	c.setFlag(FLAG_CARRY, true)
	return 0
}

func (c *CPU) opSED() uint8 {
	c.setFlag(FLAG_DECIMAL, true)
	return 0
}

func (c *CPU) opSEI() uint8 {
	c.setFlag(FLAG_INTERRUPT_DISABLE, true)
	return 0
}

func (c *CPU) opCMP() uint8 {
	c.compare(c.acc, c.fetch())
	return 1
}

func (c *CPU) opCPX() uint8 {
	c.compare(c.x, c.fetch())
	return 0
}

func (c *CPU) opCPY() uint8 {
	c.compare(c.y, c.fetch())
	return 0
}

func (c *CPU) opDEC() uint8 {
	v := c.fetch() - 1
	c.write(c.addrAbs, v)
	c.setNegativeAndZeroFlags(v)
	return 0
}

func (c *CPU) opINC() uint8 {
	v := c.fetch() + 1
	c.write(c.addrAbs, v)
	c.setNegativeAndZeroFlags(v)
	return 0
}

func (c *CPU) opDEX() uint8 {
	c.x--
	c.setNegativeAndZeroFlags(c.x)
	return 0
}

func (c *CPU) opDEY() uint8 {
	c.y--
	c.setNegativeAndZeroFlags(c.y)
	return 0
}

func (c *CPU) opINX() uint8 {
	c.x++
	c.setNegativeAndZeroFlags(c.x)
	return 0
}

func (c *CPU) opINY() uint8 {
	c.y++
	c.setNegativeAndZeroFlags(c.y)
	return 0
}

func (c *CPU) opJMP() uint8 {
	c.pc = c.addrAbs
	return 0
}

// opJSR pushes the address of the last byte of the JSR itself; RTS
// adds the missing one.
func (c *CPU) opJSR() uint8 {
	c.pushAddress(c.pc - 1)
	c.pc = c.addrAbs
	return 0
}

func (c *CPU) opRTS() uint8 {
	c.pc = c.popAddress() + 1
	return 0
}

func (c *CPU) opRTI() uint8 {
	c.status = Flags(c.popStack())
	c.status &^= FLAG_BREAK
	c.status |= FLAG_UNUSED
	c.pc = c.popAddress()
	return 0
}

func (c *CPU) opLDA() uint8 {
	c.acc = c.fetch()
	c.setNegativeAndZeroFlags(c.acc)
	return 1
}

func (c *CPU) opLDX() uint8 {
	c.x = c.fetch()
	c.setNegativeAndZeroFlags(c.x)
	return 1
}

func (c *CPU) opLDY() uint8 {
	c.y = c.fetch()
	c.setNegativeAndZeroFlags(c.y)
	return 1
}

// opNOP covers the official NOP and the undocumented multi-byte ones.
// The absolute,X forms read their operand and pay for crossing a page.
func (c *CPU) opNOP() uint8 {
	return 1
}

func (c *CPU) opPHA() uint8 {
	c.pushStack(c.acc)
	return 0
}

func (c *CPU) opPHP() uint8 {
	c.pushStack(uint8(c.status | FLAG_BREAK | FLAG_UNUSED))
	return 0
}

func (c *CPU) opPLA() uint8 {
	c.acc = c.popStack()
	c.setNegativeAndZeroFlags(c.acc)
	return 0
}

func (c *CPU) opPLP() uint8 {
	c.status = Flags(c.popStack())
	c.status &^= FLAG_BREAK
	c.status |= FLAG_UNUSED
	return 0
}

func (c *CPU) opSTA() uint8 {
	c.write(c.addrAbs, c.acc)
	return 0
}

func (c *CPU) opSTX() uint8 {
	c.write(c.addrAbs, c.x)
	return 0
}

func (c *CPU) opSTY() uint8 {
	c.write(c.addrAbs, c.y)
	return 0
}

func (c *CPU) opTAX() uint8 {
	c.x = c.acc
	c.setNegativeAndZeroFlags(c.x)
	return 0
}

func (c *CPU) opTAY() uint8 {
	c.y = c.acc
	c.setNegativeAndZeroFlags(c.y)
	return 0
}

func (c *CPU) opTSX() uint8 {
	c.x = c.sp
	c.setNegativeAndZeroFlags(c.x)
	return 0
}

func (c *CPU) opTXA() uint8 {
	c.acc = c.x
	c.setNegativeAndZeroFlags(c.acc)
	return 0
}

// TXS is the one transfer that leaves the flags alone.
func (c *CPU) opTXS() uint8 {
	c.sp = c.x
	return 0
}

func (c *CPU) opTYA() uint8 {
	c.acc = c.y
	c.setNegativeAndZeroFlags(c.acc)
	return 0
}
