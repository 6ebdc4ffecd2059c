package mos6502

import (
	"io"
	"log"
	"testing"
)

// flatMemory is 64KB of plain RAM with no mirroring.
type flatMemory [0x10000]uint8

func (m *flatMemory) Read(addr uint16) uint8 {
	return m[addr]
}

func (m *flatMemory) Write(addr uint16, val uint8) {
	m[addr] = val
}

// newTestCPU loads prog at start, points the reset vector at it and
// runs the reset sequence to completion.
func newTestCPU(start uint16, prog ...uint8) (*CPU, *flatMemory) {
	mem := &flatMemory{}
	copy(mem[start:], prog)
	mem[RESET_VECTOR] = uint8(start & 0x00FF)
	mem[RESET_VECTOR+1] = uint8(start >> 8)

	cpu := New(mem)
	cpu.SetLogger(log.New(io.Discard, "", 0))
	cpu.Reset()
	for !cpu.Complete() {
		cpu.Clock()
	}

	return cpu, mem
}

func TestMemRead16(t *testing.T) {
	cpu, mem := newTestCPU(0x0400)
	cases := []struct {
		addr       uint16
		mem1, mem2 uint8
		want       uint16
	}{
		{0x0000, 0xFF, 0x11, 0x11FF},
		{0x2000, 0x34, 0x12, 0x1234},
		{0xFFFF, 0xCD, 0xAB, 0xABCD}, // wraps to 0x0000 for the high byte
	}

	for i, tc := range cases {
		mem[tc.addr] = tc.mem1
		mem[tc.addr+1] = tc.mem2
		if got := cpu.read16(tc.addr); got != tc.want {
			t.Errorf("%d: Got 0x%04x, want 0x%04x", i, got, tc.want)
		}
	}
}

func TestStackWraps(t *testing.T) {
	cpu, mem := newTestCPU(0x0400)
	cases := []struct {
		sp     uint8
		val    uint8
		wantSP uint8
		addr   uint16
	}{
		{0xFD, 0x11, 0xFC, 0x01FD},
		{0x00, 0x22, 0xFF, 0x0100},
		{0xFF, 0x33, 0xFE, 0x01FF},
	}

	for i, tc := range cases {
		cpu.sp = tc.sp
		cpu.pushStack(tc.val)
		if cpu.sp != tc.wantSP || mem[tc.addr] != tc.val {
			t.Errorf("%d: sp = 0x%02x (want 0x%02x), mem[0x%04x] = 0x%02x (want 0x%02x)", i, cpu.sp, tc.wantSP, tc.addr, mem[tc.addr], tc.val)
		}
		if got := cpu.popStack(); got != tc.val || cpu.sp != tc.sp {
			t.Errorf("%d: popped 0x%02x (want 0x%02x), sp = 0x%02x (want 0x%02x)", i, got, tc.val, cpu.sp, tc.sp)
		}
	}
}

func TestPushAddressOrder(t *testing.T) {
	cpu, mem := newTestCPU(0x0400)
	cpu.pushAddress(0xBEEF)

	if mem[0x01FD] != 0xBE || mem[0x01FC] != 0xEF {
		t.Errorf("stack = (0x%02x, 0x%02x), want (0xbe, 0xef)", mem[0x01FD], mem[0x01FC])
	}

	if got := cpu.popAddress(); got != 0xBEEF || cpu.sp != STACK_POINTER_RESET {
		t.Errorf("popAddress() = 0x%04x, sp 0x%02x; want 0xbeef, sp 0x%02x", got, cpu.sp, STACK_POINTER_RESET)
	}
}
