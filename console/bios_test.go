package console

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"strings"
	"testing"
	"time"
)

func runBIOS(t *testing.T, mach *machine, input string) string {
	t.Helper()

	var out bytes.Buffer
	if err := mach.BIOS(context.Background(), NewPlainTerminal(strings.NewReader(input), &out, false)); err != nil {
		t.Fatalf("BIOS() = %v", err)
	}
	return out.String()
}

func TestBIOSBreakpoint(t *testing.T) {
	mach := newTestMachine(t, countdown)

	out := runBIOS(t, mach, "s\nb\n0403\nr\nq\n")
	if pc := mach.CPU().PC(); pc != 0x0403 {
		t.Errorf("PC = 0x%04x, want 0x0403", pc)
	}
	if !strings.Contains(out, "Stopped: 0x0403: hit breakpoint") {
		t.Errorf("output missing breakpoint report:\n%s", out)
	}
}

func TestBIOSClearBreakpoints(t *testing.T) {
	mach := newTestMachine(t, countdown)

	out := runBIOS(t, mach, "b\n0403\nc\nr\n")
	if pc := mach.CPU().PC(); pc != 0x0405 {
		t.Errorf("PC = 0x%04x, want 0x0405", pc)
	}
	if !strings.Contains(out, "cpu trapped") {
		t.Errorf("output missing trap report:\n%s", out)
	}
}

func TestBIOSSetPC(t *testing.T) {
	mach := newTestMachine(t, countdown)

	out := runBIOS(t, mach, "p\nzz\n$0402\n")
	if pc := mach.CPU().PC(); pc != 0x0402 {
		t.Errorf("PC = 0x%04x, want 0x0402", pc)
	}
	if !strings.Contains(out, `Invalid address "zz"`) {
		t.Errorf("output missing invalid address complaint:\n%s", out)
	}
}

func TestBIOSMemoryAndStack(t *testing.T) {
	mach := newTestMachine(t, countdown)

	out := runBIOS(t, mach, "m\n0400\n0407\nt\ni\n")
	for _, want := range []string{"0x0400: a2 05 ca d0 fd 4c 05 04", "0x01fe: 0x00", "0x0400: 0xa2 0x0401: 0x05"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBIOSInterrupts(t *testing.T) {
	prog := make([]uint8, 0x20)
	prog[0x00] = 0x58 // CLI
	prog[0x01] = 0xEA // NOP
	prog[0x10] = 0x40 // RTI
	mach := newTestMachine(t, prog)
	mach.Write(0xFFFA, 0x10) // NMI -> 0x0410
	mach.Write(0xFFFB, 0x04)
	mach.Write(0xFFFE, 0x10) // IRQ -> 0x0410
	mach.Write(0xFFFF, 0x04)

	runBIOS(t, mach, "n\n")
	if pc := mach.CPU().PC(); pc != 0x0410 {
		t.Errorf("after NMI PC = 0x%04x, want 0x0410", pc)
	}

	mach.Reset()
	runBIOS(t, mach, "s\nk\n")
	if pc := mach.CPU().PC(); pc != 0x0410 {
		t.Errorf("after IRQ PC = 0x%04x, want 0x0410", pc)
	}
}

func TestBIOSReset(t *testing.T) {
	mach := newTestMachine(t, countdown)

	runBIOS(t, mach, "s\ns\ne\n")
	if pc := mach.CPU().PC(); pc != 0x0400 {
		t.Errorf("PC = 0x%04x, want 0x0400", pc)
	}
}

func TestParseAddress(t *testing.T) {
	cases := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{"ff15", 0xFF15, false},
		{"$0400", 0x0400, false},
		{"0xBEEF", 0xBEEF, false},
		{" 10 ", 0x0010, false},
		{"10000", 0, true},
		{"", 0, true},
		{"xyz", 0, true},
	}

	for i, tc := range cases {
		got, err := parseAddress(tc.in)
		if got != tc.want || (err != nil) != tc.wantErr {
			t.Errorf("%d: Got (0x%04x, %v), want (0x%04x, wantErr=%t)", i, got, err, tc.want, tc.wantErr)
		}
	}
}

// suspendingTerminal stands in for a raw mode tty. While suspended it
// keeps sending SIGINT to the process, as a user pressing ^C would.
type suspendingTerminal struct {
	Terminal
	suspended, resumed int
}

func (st *suspendingTerminal) Suspend() (func() error, error) {
	st.suspended++

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		p, _ := os.FindProcess(os.Getpid())
		for {
			select {
			case <-stop:
				return
			case <-time.After(10 * time.Millisecond):
				p.Signal(os.Interrupt)
			}
		}
	}()

	return func() error {
		st.resumed++
		close(stop)
		<-done
		return nil
	}, nil
}

func TestBIOSRunInterrupted(t *testing.T) {
	// Keep stray interrupts from killing the test binary. Never
	// stopped, since a signal may still be in flight after Run.
	signal.Notify(make(chan os.Signal, 1), os.Interrupt)

	mach := newTestMachine(t, []uint8{0xEA, 0x4C, 0x00, 0x04}) // NOP; JMP $0400

	var out bytes.Buffer
	st := &suspendingTerminal{Terminal: NewPlainTerminal(strings.NewReader("r\ns\n"), &out, false)}
	if err := mach.BIOS(context.Background(), st); err != nil {
		t.Fatalf("BIOS() = %v", err)
	}

	if st.suspended != 1 || st.resumed != 1 {
		t.Errorf("suspended %d times, resumed %d, want 1 and 1", st.suspended, st.resumed)
	}
	if !strings.Contains(out.String(), "Stopped: context canceled") {
		t.Errorf("output missing cancellation report:\n%s", out.String())
	}
}
