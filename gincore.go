package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/bdwalton/gincore/console"
	"github.com/bdwalton/gincore/display"
	"github.com/bdwalton/gincore/mappers"
	"github.com/bdwalton/gincore/nesrom"
	"github.com/spf13/afero"
)

var (
	romFile  = flag.String("nes_rom", "", "Path to NES ROM to run.")
	binFile  = flag.String("bin", "", "Path to a raw binary image to load instead of a ROM.")
	loadAddr = flag.String("load_addr", "0000", "Hex address to load -bin at.")
	startPC  = flag.String("start_pc", "", "Hex address to start at instead of the reset vector.")
	mode     = flag.String("mode", "", "Bus layout: nes or flat. Defaults to nes for ROMs and flat for binaries.")
	window   = flag.Bool("display", false, "Show the machine in a window instead of the text monitor.")
)

func parseHex(name, s string) uint16 {
	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		log.Fatalf("Invalid -%s %q: %v", name, s, err)
	}
	return uint16(a)
}

func main() {
	flag.Parse()
	log.SetPrefix("gincore: ")

	if (*romFile == "") == (*binFile == "") {
		log.Fatalf("Exactly one of -nes_rom and -bin is required.")
	}

	busMode := console.NES_MODE
	if *binFile != "" {
		busMode = console.FLAT_MODE
	}
	if *mode != "" {
		bm, ok := console.ParseMode(*mode)
		if !ok {
			log.Fatalf("Unknown -mode %q", *mode)
		}
		busMode = int(bm)
	}

	fs := afero.NewOsFs()

	var m mappers.Mapper
	if *romFile != "" {
		rom, err := nesrom.New(fs, *romFile)
		if err != nil {
			log.Fatalf("Invalid ROM: %v", err)
		}
		fmt.Print(rom)

		if m, err = mappers.ForROM(rom); err != nil {
			log.Fatalf("Couldn't set up cartridge: %v", err)
		}
	}

	mach := console.New(m, uint8(busMode))
	if *binFile != "" {
		n, err := mach.LoadImage(fs, *binFile, parseHex("load_addr", *loadAddr))
		if err != nil {
			log.Fatalf("Couldn't load %q: %v", *binFile, err)
		}
		log.Printf("Loaded %d bytes from %q", n, *binFile)
	}

	mach.Reset()
	if *startPC != "" {
		mach.CPU().SetPC(parseHex("start_pc", *startPC))
	}

	if *window {
		d := display.New(mach, map[uint16]struct{}{}, console.CYCLES_PER_FRAME)
		if err := d.Run("gincore"); err != nil {
			log.Fatalf("Display failed: %v", err)
		}
		return
	}

	t, restore, err := console.OpenTerminal()
	if err != nil {
		log.Fatalf("Couldn't open terminal: %v", err)
	}
	defer restore()

	if err := mach.BIOS(context.Background(), t); err != nil {
		restore()
		log.Fatalf("Monitor failed: %v", err)
	}
}
