package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is what the BIOS monitor talks to. *term.Terminal
// satisfies it.
type Terminal interface {
	io.Writer
	ReadLine() (string, error)
	SetPrompt(string)
}

// plainTerminal reads whole lines from a reader with no editing.
type plainTerminal struct {
	io.Writer
	s      *bufio.Scanner
	prompt string
	echo   bool
}

// NewPlainTerminal returns a Terminal reading from in. The prompt is
// only written when echo is set.
func NewPlainTerminal(in io.Reader, out io.Writer, echo bool) Terminal {
	return &plainTerminal{Writer: out, s: bufio.NewScanner(in), echo: echo}
}

func (pt *plainTerminal) SetPrompt(p string) {
	pt.prompt = p
}

func (pt *plainTerminal) ReadLine() (string, error) {
	if pt.echo {
		fmt.Fprint(pt.Writer, pt.prompt)
	}
	if !pt.s.Scan() {
		if err := pt.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return pt.s.Text(), nil
}

// suspender is a Terminal that can give the tty back to cooked mode
// while the machine runs, so ^C arrives as SIGINT.
type suspender interface {
	Suspend() (resume func() error, err error)
}

// rawTerminal is a line editing terminal on a tty in raw mode.
type rawTerminal struct {
	*term.Terminal
	fd     int
	cooked *term.State
}

func (rt *rawTerminal) Suspend() (func() error, error) {
	if err := term.Restore(rt.fd, rt.cooked); err != nil {
		return nil, fmt.Errorf("couldn't restore terminal: %w", err)
	}

	return func() error {
		if _, err := term.MakeRaw(rt.fd); err != nil {
			return fmt.Errorf("couldn't set raw mode: %w", err)
		}
		return nil
	}, nil
}

// OpenTerminal returns a line editing Terminal on stdin/stdout when
// stdin is a tty, and a plain one otherwise. The returned function
// restores the tty and must always be called.
func OpenTerminal() (Terminal, func(), error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return NewPlainTerminal(os.Stdin, os.Stdout, false), func() {}, nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't set raw mode: %w", err)
	}

	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}

	rt := &rawTerminal{Terminal: term.NewTerminal(rw, ""), fd: fd, cooked: oldState}
	return rt, func() { _ = term.Restore(fd, oldState) }, nil
}
