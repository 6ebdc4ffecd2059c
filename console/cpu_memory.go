package console

import (
	"math"

	"github.com/bdwalton/gincore/mappers"
)

const (
	MAX_ADDRESS         = math.MaxUint16
	MAX_RAM_MIRRORED    = 0x2000
	MAX_IO_REG_MIRRORED = 0x4000
	MAX_IO_REG          = 0x4020
	RAM_SIZE            = 0x0800 // 2KB built in RAM
)

// Bus layouts
const (
	NES_MODE  = iota // 2KB mirrored RAM, open I/O registers and a cartridge mapper
	FLAT_MODE        // 64KB of plain RAM
)

var modeNames = map[string]uint8{"nes": NES_MODE, "flat": FLAT_MODE}

// ParseMode maps a bus layout name ("nes" or "flat") to its constant.
func ParseMode(s string) (uint8, bool) {
	m, ok := modeNames[s]
	return m, ok
}

// cpuMemory is the CPU side of the bus. It satisfies mos6502.Memory.
type cpuMemory struct {
	mode   uint8
	ram    []uint8        // The actual memory
	mapper mappers.Mapper // Access to "virtualized" memory via the mapper
}

func newCPUMemory(mode uint8, m mappers.Mapper) *cpuMemory {
	size := RAM_SIZE
	if mode == FLAT_MODE {
		size = MAX_ADDRESS + 1
	}

	return &cpuMemory{
		mode:   mode,
		ram:    make([]uint8, size),
		mapper: m,
	}
}

func (m *cpuMemory) Read(addr uint16) uint8 {
	if m.mode == FLAT_MODE {
		return m.ram[addr]
	}

	// https://www.nesdev.org/wiki/CPU_memory_map
	switch {
	case addr < MAX_RAM_MIRRORED:
		// 0x800-0x1FFF mirrors 0x0000-0x07FF
		return m.ram[addr%RAM_SIZE]
	case addr < MAX_IO_REG:
		// PPU, APU and joystick registers aren't wired up; the bus
		// floats low.
		return 0
	case m.mapper != nil:
		return m.mapper.PrgRead(addr)
	}

	return 0
}

func (m *cpuMemory) Write(addr uint16, val uint8) {
	if m.mode == FLAT_MODE {
		m.ram[addr] = val
		return
	}

	// https://www.nesdev.org/wiki/CPU_memory_map
	switch {
	case addr < MAX_RAM_MIRRORED:
		// 0x800-0x1FFF mirrors 0x0000-0x07FF
		m.ram[addr%RAM_SIZE] = val
	case addr < MAX_IO_REG:
		// dropped
	case m.mapper != nil:
		m.mapper.PrgWrite(addr, val)
	}
}
