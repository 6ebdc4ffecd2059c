package mos6502

const (
	STACK_PAGE = 0x0100

	NMI_VECTOR   = 0xFFFA
	RESET_VECTOR = 0xFFFC
	IRQ_VECTOR   = 0xFFFE
)

// Memory is the bus the CPU is attached to. The CPU does no mirroring
// or bounds checking of its own; every address in the 16 bit space is
// passed straight through.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

func (c *CPU) read(addr uint16) uint8 {
	return c.mem.Read(addr)
}

func (c *CPU) write(addr uint16, val uint8) {
	c.mem.Write(addr, val)
}

// read16 returns the two bytes from memory at addr (lower byte is
// first).
func (c *CPU) read16(addr uint16) uint16 {
	lsb := uint16(c.read(addr))
	msb := uint16(c.read(addr + 1))

	return (msb << 8) | lsb
}

func (c *CPU) getStackAddr() uint16 {
	return STACK_PAGE + uint16(c.sp)
}

func (c *CPU) pushStack(val uint8) {
	c.write(c.getStackAddr(), val)
	c.sp--
}

func (c *CPU) popStack() uint8 {
	c.sp++
	return c.read(c.getStackAddr())
}

// pushAddress puts addr on the stack high byte first, so the low byte
// comes off first.
func (c *CPU) pushAddress(addr uint16) {
	c.pushStack(uint8(addr >> 8))
	c.pushStack(uint8(addr & 0x00FF))
}

func (c *CPU) popAddress() uint16 {
	lsb := uint16(c.popStack())
	msb := uint16(c.popStack())

	return (msb << 8) | lsb
}
