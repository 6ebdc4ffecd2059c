// Package mappers implements and registers mappers that are
// referenced numerically by iNES and NES2.0 ROM files.
package mappers

import (
	"errors"
	"fmt"

	"github.com/bdwalton/gincore/nesrom"
)

var ErrUnsupportedMapper = errors.New("unsupported mapper")

// A global registry of mapper constructors, keyed by mapper id
var AllMappers map[uint16]func() Mapper = map[uint16]func() Mapper{}

// RegisterMapper makes a mapper constructor available to Get.
func RegisterMapper(id uint16, f func() Mapper) {
	AllMappers[id] = f
}

// Get returns a fresh instance of the mapper registered under id.
func Get(id uint16) (Mapper, error) {
	f, ok := AllMappers[id]
	if !ok {
		return nil, fmt.Errorf("mapper %d: %w", id, ErrUnsupportedMapper)
	}
	return f(), nil
}

// ForROM returns the mapper the ROM asks for, initialized with it.
func ForROM(r *nesrom.ROM) (Mapper, error) {
	m, err := Get(r.MapperNum())
	if err != nil {
		return nil, err
	}
	if err := m.Init(r); err != nil {
		return nil, fmt.Errorf("couldn't initialize %s: %w", m.Name(), err)
	}
	return m, nil
}

// Mapper handles the cartridge address space, 0x4020 to 0xFFFF.
type Mapper interface {
	ID() uint16
	Name() string
	Init(*nesrom.ROM) error
	PrgRead(uint16) uint8   // Read uint8 from address uint16
	PrgWrite(uint16, uint8) // Write to uint8 to address uint16
}

type baseMapper struct {
	id   uint16
	name string
	rom  *nesrom.ROM
}

func newBaseMapper(id uint16, name string) *baseMapper {
	return &baseMapper{id: id, name: name}
}

func (bm *baseMapper) ID() uint16 {
	return bm.id
}

func (bm *baseMapper) Name() string {
	return bm.name
}

func (bm *baseMapper) String() string {
	return fmt.Sprintf("%s (%d)", bm.name, bm.id)
}

func (bm *baseMapper) Init(r *nesrom.ROM) error {
	bm.rom = r
	return nil
}
