package console

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestLoadImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/small.bin", []byte{0xA9, 0x42, 0xEA}, 0644); err != nil {
		t.Fatalf("couldn't write image: %v", err)
	}
	if err := afero.WriteFile(fs, "/eight.bin", make([]byte, 8), 0644); err != nil {
		t.Fatalf("couldn't write image: %v", err)
	}

	cases := []struct {
		path    string
		addr    uint16
		want    int
		wantErr error
	}{
		{"/small.bin", 0x0400, 3, nil},
		{"/eight.bin", 0xFFF8, 8, nil},
		{"/eight.bin", 0xFFF9, 0, ErrImageTooLarge},
	}

	for i, tc := range cases {
		mach := New(nil, FLAT_MODE)
		n, err := mach.LoadImage(fs, tc.path, tc.addr)
		if n != tc.want || !errors.Is(err, tc.wantErr) {
			t.Errorf("%d: Got (%d, %v), want (%d, %v)", i, n, err, tc.want, tc.wantErr)
		}
	}

	mach := New(nil, FLAT_MODE)
	if _, err := mach.LoadImage(fs, "/small.bin", 0x0400); err != nil {
		t.Fatalf("LoadImage() = %v", err)
	}
	if mach.Read(0x0400) != 0xA9 || mach.Read(0x0401) != 0x42 || mach.Read(0x0402) != 0xEA {
		t.Errorf("image not in memory: %02x %02x %02x", mach.Read(0x0400), mach.Read(0x0401), mach.Read(0x0402))
	}

	if _, err := mach.LoadImage(fs, "/missing.bin", 0); err == nil {
		t.Errorf("Got nil error for missing image")
	}
}
