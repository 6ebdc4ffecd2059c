// Package console wires a mos6502 CPU to an NES style bus and
// provides the tools to drive it: a run loop with breakpoints, a text
// monitor, an image loader and a debug window.
package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bdwalton/gincore/mappers"
	"github.com/bdwalton/gincore/mos6502"
)

var (
	ErrBreakpoint = errors.New("hit breakpoint")
	ErrTrapped    = errors.New("cpu trapped")
)

// CPU clock ticks per 60Hz NTSC frame.
const CYCLES_PER_FRAME = 29781

type machine struct {
	cpu *mos6502.CPU
	mem *cpuMemory
}

func New(m mappers.Mapper, mode uint8) *machine {
	mach := &machine{mem: newCPUMemory(mode, m)}
	mach.cpu = mos6502.New(mach.mem)

	return mach
}

func (mach *machine) CPU() *mos6502.CPU {
	return mach.cpu
}

func (mach *machine) Read(addr uint16) uint8 {
	return mach.mem.Read(addr)
}

func (mach *machine) Write(addr uint16, val uint8) {
	mach.mem.Write(addr, val)
}

// Reset runs the reset sequence to completion.
func (mach *machine) Reset() {
	mach.cpu.Reset()
	for !mach.cpu.Complete() {
		mach.cpu.Clock()
	}
}

// step runs one instruction and reports whether the CPU is stuck or
// has landed on a breakpoint.
func (mach *machine) step(breaks map[uint16]struct{}) (int, error) {
	pc := mach.cpu.PC()
	n := mach.cpu.Step()

	npc := mach.cpu.PC()
	if npc == pc {
		return n, fmt.Errorf("0x%04x: %w", pc, ErrTrapped)
	}
	if _, ok := breaks[npc]; ok {
		return n, fmt.Errorf("0x%04x: %w", npc, ErrBreakpoint)
	}

	return n, nil
}

// Run executes instructions until ctx is done, the CPU reaches an
// address in breaks or an instruction leaves the program counter
// where it was.
func (mach *machine) Run(ctx context.Context, breaks map[uint16]struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := mach.step(breaks); err != nil {
			return err
		}
	}
}

// RunCycles executes whole instructions until at least cycles ticks
// have passed, stopping early under the same conditions as Run.
func (mach *machine) RunCycles(cycles int, breaks map[uint16]struct{}) error {
	for spent := 0; spent < cycles; {
		n, err := mach.step(breaks)
		spent += n
		if err != nil {
			return err
		}
	}
	return nil
}

// stack returns up to n of the bytes most recently pushed.
func (mach *machine) stack(n int) []uint16 {
	var addrs []uint16
	for sp := int(mach.cpu.SP()) + 1; sp <= 0xFF && len(addrs) < n; sp++ {
		addrs = append(addrs, mos6502.STACK_PAGE+uint16(sp))
	}
	return addrs
}

// dump formats memory from low to high inclusive, width bytes a line.
func (mach *machine) dump(low, high uint16, width int) string {
	var sb strings.Builder

	x := 1
	i := low
	for {
		if x%width == 1 || width == 1 {
			sb.WriteString(fmt.Sprintf("0x%04x:", i))
		}
		sb.WriteString(fmt.Sprintf(" %02x", mach.Read(i)))
		if x%width == 0 {
			sb.WriteString("\n")
		}
		if i == high || i == MAX_ADDRESS {
			break
		}
		x += 1
		i += 1
	}
	if x%width != 0 {
		sb.WriteString("\n")
	}

	return sb.String()
}

// disassemble returns n instructions starting at the program counter.
func (mach *machine) disassemble(n int) []string {
	var out []string
	addr := mach.cpu.PC()
	for i := 0; i < n; i++ {
		var s string
		s, addr = mos6502.Disassemble(mach.mem, addr)
		out = append(out, s)
	}
	return out
}

func (mach *machine) String() string {
	var sb strings.Builder

	sb.WriteString(mach.cpu.String())
	sb.WriteString("\n\nStack:")
	for _, a := range mach.stack(3) {
		sb.WriteString(fmt.Sprintf(" 0x%04x: 0x%02x", a, mach.Read(a)))
	}
	sb.WriteString("\n\n")
	for _, s := range mach.disassemble(4) {
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	return sb.String()
}
