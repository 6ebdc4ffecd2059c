// package nesrom implements support for the NES (iNES, NES2) ROM
// format. https://www.nesdev.org/wiki/INES
package nesrom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

var ErrBadMagic = errors.New("not an iNES image")

// ROM holds what the CPU can see of a cartridge. CHR and PlayChoice
// data belong to the PPU and are skipped.
type ROM struct {
	path    string
	h       *header
	trainer []byte // if present
	prg     []byte // 16384 * x bytes; x from header
	chrSize int    // 8192 * y bytes; y from header
}

const (
	TRAINER_SIZE   = 512
	PRG_BLOCK_SIZE = 16384
	CHR_BLOCK_SIZE = 8192
	PC_INST_SIZE   = 8192
	PC_PROM_SIZE   = 32
)

// New opens path on fs and parses it as an iNES or NES 2.0 image.
func New(fs afero.Fs, path string) (*ROM, error) {
	rf, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open ROM file %q: %w", path, err)
	}
	defer rf.Close()

	r, err := Parse(rf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.path = path

	return r, nil
}

// Parse reads a complete ROM image from rd.
func Parse(rd io.Reader) (*ROM, error) {
	hbytes := make([]byte, HEADER_SIZE)
	if _, err := io.ReadFull(rd, hbytes); err != nil {
		return nil, fmt.Errorf("couldn't read header: %w", err)
	}

	i := &ROM{h: parseHeader(hbytes)}
	if !i.h.isINesFormat() {
		return nil, fmt.Errorf("bad magic %q: %w", i.h.constant, ErrBadMagic)
	}

	if i.h.hasTrainer() {
		i.trainer = make([]byte, TRAINER_SIZE)
		if _, err := io.ReadFull(rd, i.trainer); err != nil {
			return nil, fmt.Errorf("error reading trainer data: %w", err)
		}
	}

	s := PRG_BLOCK_SIZE * int(i.h.prgSize)
	i.prg = make([]byte, s)
	if n, err := io.ReadFull(rd, i.prg); err != nil {
		return nil, fmt.Errorf("error reading PRG ROM (read %d, wanted %d): %w", n, s, err)
	}

	s = CHR_BLOCK_SIZE * int(i.h.chrSize)
	if n, err := io.CopyN(io.Discard, rd, int64(s)); err != nil {
		return nil, fmt.Errorf("error reading CHR ROM (read %d, wanted %d): %w", n, s, err)
	}
	i.chrSize = s

	// Some old ROMs may not have the PROM, so bailing might be
	// bad. But these should be rare, so we'll do the technically
	// correct thing for now.
	if i.h.hasPlayChoice() {
		if n, err := io.CopyN(io.Discard, rd, PC_INST_SIZE+PC_PROM_SIZE); err != nil {
			return nil, fmt.Errorf("error reading PlayChoice data (n=%d; wanted %d): %w", n, PC_INST_SIZE+PC_PROM_SIZE, err)
		}
	}

	return i, nil
}

func (r *ROM) Path() string {
	return r.path
}

func (r *ROM) NumPrgBlocks() uint8 {
	return r.h.prgSize
}

func (r *ROM) PrgSize() int {
	return len(r.prg)
}

func (r *ROM) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", r.h))
	if r.h.hasTrainer() {
		sb.WriteString(fmt.Sprintf("Trainer: %d bytes\n", len(r.trainer)))
	}

	sb.WriteString(fmt.Sprintf("PRG: %d bytes\n", len(r.prg)))
	sb.WriteString(fmt.Sprintf("CHR: %d bytes\n", r.chrSize))

	return sb.String()
}

func (r *ROM) PrgRead(addr uint16) uint8 {
	return r.prg[addr]
}

func (r *ROM) ChrSize() int {
	return r.chrSize
}

// Trainer returns the 512 byte block meant for 0x7000, or nil.
func (r *ROM) Trainer() []byte {
	return r.trainer
}

func (r *ROM) MapperNum() uint16 {
	return uint16(r.h.mapperNum())
}
