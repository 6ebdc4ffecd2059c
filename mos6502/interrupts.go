package mos6502

// Reset puts the CPU into a known state and loads the program counter
// from the reset vector. The sequence costs 8 cycles.
func (c *CPU) Reset() {
	c.pc = c.read16(RESET_VECTOR)

	c.acc, c.x, c.y = 0, 0, 0
	c.sp = STACK_POINTER_RESET
	c.status = FLAG_UNUSED

	c.addrAbs, c.addrRel, c.fetched = 0, 0, 0
	c.pendingNMI, c.pendingIRQ = false, false

	c.remaining = RESET_CYCLES
}

// IRQ requests a maskable interrupt. It is dropped if interrupts are
// disabled when it would be serviced. A request made mid-instruction
// waits for the instruction to finish.
func (c *CPU) IRQ() {
	if c.remaining > 0 {
		c.pendingIRQ = true
		return
	}
	c.irq()
}

// NMI requests a non-maskable interrupt. A request made
// mid-instruction waits for the instruction to finish.
func (c *CPU) NMI() {
	if c.remaining > 0 {
		c.pendingNMI = true
		return
	}
	c.nmi()
}

func (c *CPU) irq() {
	if c.status.Has(FLAG_INTERRUPT_DISABLE) {
		return
	}
	c.interrupt(IRQ_VECTOR)
	c.remaining = IRQ_CYCLES
}

func (c *CPU) nmi() {
	c.interrupt(NMI_VECTOR)
	c.remaining = NMI_CYCLES
}

// interrupt saves pc and the status (with break clear) and jumps
// through vector.
func (c *CPU) interrupt(vector uint16) {
	c.pushAddress(c.pc)

	c.setFlag(FLAG_BREAK, false)
	c.setFlag(FLAG_UNUSED, true)
	c.pushStack(uint8(c.status))
	c.setFlag(FLAG_INTERRUPT_DISABLE, true)

	c.pc = c.read16(vector)
}
