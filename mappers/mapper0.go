package mappers

import (
	"errors"

	"github.com/bdwalton/gincore/nesrom"
)

func init() {
	RegisterMapper(0, func() Mapper { return newMapper0() })
}

const (
	PRG_RAM_START = 0x6000
	PRG_RAM_SIZE  = 0x2000
	PRG_ROM_START = 0x8000
	TRAINER_START = 0x7000
)

// mapper0 is NROM: 16KB or 32KB of PRG ROM at 0x8000 (a 16KB image
// is mirrored into 0xC000) and 8KB of PRG RAM at 0x6000, with any
// trainer preloaded at 0x7000.
type mapper0 struct {
	*baseMapper
	prgRAM []uint8
}

func newMapper0() *mapper0 {
	return &mapper0{baseMapper: newBaseMapper(0, "NROM"), prgRAM: make([]uint8, PRG_RAM_SIZE)}
}

func (m *mapper0) Init(r *nesrom.ROM) error {
	if r.PrgSize() == 0 {
		return errors.New("NROM image has no PRG ROM")
	}
	copy(m.prgRAM[TRAINER_START-PRG_RAM_START:], r.Trainer())
	return m.baseMapper.Init(r)
}

func (m *mapper0) PrgRead(addr uint16) uint8 {
	switch {
	case addr >= PRG_ROM_START:
		if m.rom == nil {
			return 0
		}
		return m.rom.PrgRead(uint16(int(addr-PRG_ROM_START) % m.rom.PrgSize()))
	case addr >= PRG_RAM_START:
		return m.prgRAM[addr-PRG_RAM_START]
	}
	return 0
}

// PrgWrite ignores writes into ROM.
func (m *mapper0) PrgWrite(addr uint16, val uint8) {
	if PRG_RAM_START <= addr && addr < PRG_ROM_START {
		m.prgRAM[addr-PRG_RAM_START] = val
	}
}
