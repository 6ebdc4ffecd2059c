package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/bdwalton/gincore/mos6502"
)

const menu = `(B)reak - add breakpoint
(C)lear - clear breakpoints
(R)un - run until a breakpoint, trap or ^C
(S)tep - step the cpu one instruction
R(e)set - hit the reset button
(M)emory - select a memory range to display
S(t)ack - show last 3 items on the stack
(I)nstruction - show instruction memory locations
(P)C - set program counter
(N)MI - raise a non-maskable interrupt
Interrupt (K) - raise an interrupt request
(Q)uit - leave the monitor
`

var errQuit = errors.New("quit")

// BIOS is an interactive monitor for the machine. It returns nil when
// the user quits or input runs out.
func (mach *machine) BIOS(ctx context.Context, t Terminal) error {
	breaks := make(map[uint16]struct{})

	for {
		fmt.Fprintf(t, "%s\n%s", mach, menu)
		t.SetPrompt("Choice: ")
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := mach.command(ctx, t, strings.TrimSpace(line), breaks); err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (mach *machine) command(ctx context.Context, t Terminal, in string, breaks map[uint16]struct{}) error {
	if in == "" {
		return nil
	}

	switch in[0] {
	case 'b', 'B':
		a, err := readAddress(t, "Breakpoint (eg: ff15): ")
		if err != nil {
			return err
		}
		breaks[a] = struct{}{}
	case 'c', 'C':
		for a := range breaks {
			delete(breaks, a)
		}
	case 'p', 'P':
		a, err := readAddress(t, "Set PC to what address (eg: 0400)?: ")
		if err != nil {
			return err
		}
		mach.cpu.SetPC(a)
	case 'q', 'Q':
		return errQuit
	case 'r', 'R':
		err := mach.runInterruptible(ctx, t, breaks)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, ErrBreakpoint) && !errors.Is(err, ErrTrapped) {
			return err
		}
		fmt.Fprintf(t, "\nStopped: %v\n\n", err)
	case 's', 'S':
		if _, err := mach.step(nil); err != nil {
			fmt.Fprintf(t, "\n%v\n\n", err)
		}
	case 't', 'T':
		fmt.Fprintln(t)
		for _, a := range mach.stack(3) {
			fmt.Fprintf(t, "0x%04x: 0x%02x ", a, mach.Read(a))
		}
		fmt.Fprintf(t, "\n\n")
	case 'i', 'I':
		fmt.Fprintln(t)
		_, next := mos6502.Disassemble(mach.mem, mach.cpu.PC())
		for m := mach.cpu.PC(); m != next; m++ {
			fmt.Fprintf(t, "0x%04x: 0x%02x ", m, mach.Read(m))
		}
		fmt.Fprintf(t, "\n\n")
	case 'e', 'E':
		mach.Reset()
	case 'n', 'N':
		mach.cpu.NMI()
	case 'k', 'K':
		mach.cpu.IRQ()
	case 'm', 'M':
		low, err := readAddress(t, "Low address (eg f00d): ")
		if err != nil {
			return err
		}
		high, err := readAddress(t, "High address (eg beef): ")
		if err != nil {
			return err
		}
		fmt.Fprintf(t, "\n%s\n", mach.dump(low, high, 8))
	default:
		fmt.Fprintf(t, "Unknown command %q\n\n", in)
	}

	return nil
}

// readAddress prompts until it gets a hex address. Only read errors
// are returned.
func readAddress(t Terminal, prompt string) (uint16, error) {
	t.SetPrompt(prompt)
	for {
		line, err := t.ReadLine()
		if err != nil {
			return 0, err
		}

		a, err := parseAddress(line)
		if err == nil {
			return a, nil
		}
		fmt.Fprintf(t, "Invalid address %q: %v\n", line, err)
	}
}

// parseAddress accepts 1 to 4 hex digits with an optional $ or 0x
// prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")

	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(a), nil
}

// runInterruptible runs the machine until a breakpoint, a trap or
// SIGINT. A raw mode terminal is put back in cooked mode for the
// duration so the tty turns ^C into a signal.
func (mach *machine) runInterruptible(ctx context.Context, t Terminal, breaks map[uint16]struct{}) error {
	if s, ok := t.(suspender); ok {
		resume, err := s.Suspend()
		if err != nil {
			return err
		}
		defer func() {
			if err := resume(); err != nil {
				fmt.Fprintf(t, "%v\n", err)
			}
		}()
	}

	cctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return mach.Run(cctx, breaks)
}
