package console

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

var ErrImageTooLarge = errors.New("image doesn't fit in the address space")

// LoadImage copies the raw contents of path into memory starting at
// addr, through the bus. It returns the number of bytes loaded.
func (mach *machine) LoadImage(fs afero.Fs, path string, addr uint16) (int, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, fmt.Errorf("couldn't read image: %w", err)
	}

	if len(data) > MAX_ADDRESS+1-int(addr) {
		return 0, fmt.Errorf("%s: %d bytes at 0x%04x: %w", path, len(data), addr, ErrImageTooLarge)
	}

	for i, b := range data {
		mach.Write(addr+uint16(i), b)
	}

	return len(data), nil
}
