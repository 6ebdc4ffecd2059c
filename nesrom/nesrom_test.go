package nesrom

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

// image builds a raw iNES file with prg 16KB PRG banks and chr 8KB
// CHR banks. The first PRG byte of each bank holds the bank number.
func image(flags6 uint8, prg, chr int) []byte {
	b := []byte{'N', 'E', 'S', 0x1A, uint8(prg), uint8(chr), flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if flags6&TRAINER > 0 {
		tr := make([]byte, TRAINER_SIZE)
		tr[0] = 0x7E
		b = append(b, tr...)
	}
	for i := 0; i < prg; i++ {
		bank := make([]byte, PRG_BLOCK_SIZE)
		bank[0] = uint8(i)
		b = append(b, bank...)
	}
	return append(b, make([]byte, CHR_BLOCK_SIZE*chr)...)
}

func TestNew(t *testing.T) {
	fs := afero.NewMemMapFs()
	cases := []struct {
		data     []byte
		wantPrg  int
		wantChr  int
		wantMap  uint16
		wantErr  bool
		wantTrap bool
	}{
		{image(0x01, 1, 1), PRG_BLOCK_SIZE, CHR_BLOCK_SIZE, 0, false, false},
		{image(0x10, 2, 0), 2 * PRG_BLOCK_SIZE, 0, 1, false, false},
		{image(TRAINER, 1, 1), PRG_BLOCK_SIZE, CHR_BLOCK_SIZE, 0, false, true},
		{image(0x00, 2, 1)[:HEADER_SIZE+100], 0, 0, 0, true, false},               // truncated PRG
		{image(0x00, 1, 2)[:HEADER_SIZE+PRG_BLOCK_SIZE+10], 0, 0, 0, true, false}, // truncated CHR
		{[]byte("NES"), 0, 0, 0, true, false},                                     // truncated header
	}

	for i, tc := range cases {
		if err := afero.WriteFile(fs, "/rom.nes", tc.data, 0644); err != nil {
			t.Fatalf("%d: couldn't write test image: %v", i, err)
		}

		r, err := New(fs, "/rom.nes")
		if (err != nil) != tc.wantErr {
			t.Errorf("%d: Got error %v, wantErr = %t", i, err, tc.wantErr)
			continue
		}
		if err != nil {
			continue
		}

		if r.PrgSize() != tc.wantPrg || r.ChrSize() != tc.wantChr || r.MapperNum() != tc.wantMap {
			t.Errorf("%d: Got prg %d, chr %d, mapper %d; want prg %d, chr %d, mapper %d", i, r.PrgSize(), r.ChrSize(), r.MapperNum(), tc.wantPrg, tc.wantChr, tc.wantMap)
		}
		if tr := r.Trainer(); (tr != nil) != tc.wantTrap || (tr != nil && tr[0] != 0x7E) {
			t.Errorf("%d: Got trainer %v, want present = %t", i, tr != nil, tc.wantTrap)
		}
		if r.Path() != "/rom.nes" {
			t.Errorf("%d: Got path %q, want /rom.nes", i, r.Path())
		}
	}
}

func TestNewBadMagic(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := image(0, 1, 0)
	copy(data, "BOB")
	if err := afero.WriteFile(fs, "/bad.nes", data, 0644); err != nil {
		t.Fatalf("couldn't write test image: %v", err)
	}

	if _, err := New(fs, "/bad.nes"); !errors.Is(err, ErrBadMagic) {
		t.Errorf("Got %v, want %v", err, ErrBadMagic)
	}
}

func TestNewMissingFile(t *testing.T) {
	if _, err := New(afero.NewMemMapFs(), "/nope.nes"); err == nil {
		t.Errorf("Got nil error for missing file")
	}
}

func TestPrgBanks(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/rom.nes", image(0, 2, 0), 0644); err != nil {
		t.Fatalf("couldn't write test image: %v", err)
	}

	r, err := New(fs, "/rom.nes")
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if r.NumPrgBlocks() != 2 || r.PrgRead(0) != 0 || r.PrgRead(PRG_BLOCK_SIZE) != 1 {
		t.Errorf("Got %d banks, bank bytes (%d, %d); want 2 banks, (0, 1)", r.NumPrgBlocks(), r.PrgRead(0), r.PrgRead(PRG_BLOCK_SIZE))
	}
}

func TestPlayChoiceSkipped(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := image(0, 1, 1)
	data[7] = PLAYCHOICE_10

	if err := afero.WriteFile(fs, "/short.nes", data, 0644); err != nil {
		t.Fatalf("couldn't write test image: %v", err)
	}
	if _, err := New(fs, "/short.nes"); err == nil {
		t.Errorf("Got nil error for missing PlayChoice data")
	}

	data = append(data, make([]byte, PC_INST_SIZE+PC_PROM_SIZE)...)
	if err := afero.WriteFile(fs, "/full.nes", data, 0644); err != nil {
		t.Fatalf("couldn't write test image: %v", err)
	}
	r, err := New(fs, "/full.nes")
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if r.ChrSize() != CHR_BLOCK_SIZE || r.PrgRead(0) != 0 {
		t.Errorf("Got chr %d, want %d", r.ChrSize(), CHR_BLOCK_SIZE)
	}
}
