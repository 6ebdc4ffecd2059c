// package mos6502 implements the MOS Technologies 6502 processor, as
// found in the NES 2A03 (no decimal mode arithmetic).
//
// The CPU is driven one clock tick at a time by its owner. Each
// instruction is executed in full on the first tick of its budget and
// the remaining ticks are spent idling, so interrupts are only ever
// serviced between instructions.
package mos6502

import (
	"fmt"
	"log"
	"os"
	"strings"
)

const (
	STACK_POINTER_RESET = 0xFD
	RESET_CYCLES        = 8
	IRQ_CYCLES          = 7
	NMI_CYCLES          = 8
)

// type CPU implements all of the machine state for the 6502
type CPU struct {
	mem Memory // the bus; owned by the caller

	acc    uint8  // main register
	x, y   uint8  // index registers
	status Flags  // a register for storing various status bits
	sp     uint8  // stack pointer - stack is 0x0100-0x01FF so only 8 bits needed
	pc     uint16 // the program counter

	opcode  uint8  // the instruction being executed
	mode    uint8  // addressing mode of the instruction being executed
	fetched uint8  // operand value, or the accumulator for IMPLICIT
	addrAbs uint16 // effective address
	addrRel uint16 // sign extended branch offset
	temp    uint16 // scratch for carry/overflow

	remaining uint8  // cycles left before the next instruction is fetched
	clocks    uint64 // total ticks since creation

	pendingNMI, pendingIRQ bool

	logger *log.Logger
}

// New returns a CPU attached to mem with power-on register values.
// Call Reset before clocking it to load the program counter.
func New(mem Memory) *CPU {
	return &CPU{
		mem:    mem,
		sp:     STACK_POINTER_RESET,
		status: FLAG_UNUSED | FLAG_INTERRUPT_DISABLE,
		logger: log.New(os.Stderr, "mos6502: ", log.LstdFlags),
	}
}

// SetLogger replaces the diagnostic logger used to report
// unimplemented undocumented opcodes.
func (c *CPU) SetLogger(l *log.Logger) {
	c.logger = l
}

func (c *CPU) A() uint8          { return c.acc }
func (c *CPU) X() uint8          { return c.x }
func (c *CPU) Y() uint8          { return c.y }
func (c *CPU) SP() uint8         { return c.sp }
func (c *CPU) PC() uint16        { return c.pc }
func (c *CPU) Status() Flags     { return c.status }
func (c *CPU) Flag(f Flags) bool { return c.status.Has(f) }

// Opcode returns the most recently fetched instruction byte.
func (c *CPU) Opcode() uint8 { return c.opcode }

// Cycles returns the number of clock ticks since the CPU was created.
func (c *CPU) Cycles() uint64 { return c.clocks }

// Remaining returns the ticks left before the next instruction fetch.
func (c *CPU) Remaining() uint8 { return c.remaining }

// Complete reports whether the CPU is between instructions.
func (c *CPU) Complete() bool { return c.remaining == 0 }

// SetPC moves the program counter, for loaders and debuggers that
// start execution somewhere other than the reset vector.
func (c *CPU) SetPC(pc uint16) {
	c.pc = pc
}

// Clock advances the CPU by one cycle.
func (c *CPU) Clock() {
	if c.remaining == 0 {
		switch {
		case c.pendingNMI:
			c.pendingNMI, c.pendingIRQ = false, false
			c.nmi()
		case c.pendingIRQ && !c.status.Has(FLAG_INTERRUPT_DISABLE):
			c.pendingIRQ = false
			c.irq()
		default:
			// A masked IRQ is a level, not an event; it is not kept.
			c.pendingIRQ = false
			c.execute()
		}
	}

	c.clocks++
	c.remaining--
}

// execute fetches, decodes and runs the instruction at pc, leaving
// its cycle cost in remaining.
func (c *CPU) execute() {
	c.opcode = c.read(c.pc)
	c.pc++
	c.setFlag(FLAG_UNUSED, true)

	op := opcodes[c.opcode]
	c.mode = op.mode
	c.remaining = op.cycles

	extraMode := addressModes[op.mode](c)
	extraOp := operations[op.inst](c)
	c.remaining += extraMode & extraOp

	c.setFlag(FLAG_UNUSED, true)
}

// Step finishes any cycles still owed and then runs exactly one
// instruction (or pending interrupt) to completion. It returns the
// number of ticks that instruction took.
func (c *CPU) Step() int {
	for c.remaining > 0 {
		c.Clock()
	}

	start := c.clocks
	c.Clock()
	for c.remaining > 0 {
		c.Clock()
	}

	return int(c.clocks - start)
}

func (c *CPU) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("PC: 0x%04x  SP: 0x%02x  A: 0x%02x  X: 0x%02x  Y: 0x%02x\n", c.pc, c.sp, c.acc, c.x, c.y))
	sb.WriteString(fmt.Sprintf("P: 0x%02x [%s]  OP: 0x%02x %s  CYC: %d", uint8(c.status), c.status, c.opcode, opcodes[c.opcode], c.clocks))

	return sb.String()
}
