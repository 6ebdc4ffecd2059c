package mappers

import (
	"math"

	"github.com/bdwalton/gincore/nesrom"
)

// dummyMapper backs the whole cartridge space with plain RAM.
type dummyMapper struct {
	memory []uint8
}

func NewDummy() *dummyMapper {
	return &dummyMapper{memory: make([]uint8, math.MaxUint16+1)}
}

func (dm *dummyMapper) ID() uint16 {
	return 0xFFFF
}

func (dm *dummyMapper) Init(r *nesrom.ROM) error {
	return nil
}

func (dm *dummyMapper) Name() string {
	return "dummy mapper"
}

func (dm *dummyMapper) PrgRead(addr uint16) uint8 {
	return dm.memory[addr]
}

func (dm *dummyMapper) PrgWrite(addr uint16, val uint8) {
	dm.memory[addr] = val
}

func (dm *dummyMapper) LoadMem(start uint16, mem []uint8) {
	for i, m := range mem {
		dm.memory[uint16(int(start)+i)] = m
	}
}

func (dm *dummyMapper) ClearMem() {
	dm.memory = make([]uint8, math.MaxUint16+1)
}

// For testing
var Dummy *dummyMapper = NewDummy()
