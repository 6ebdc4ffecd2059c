// Package display shows a running machine's state in a window.
//
// Keys: Space run/pause, S step, R reset, I IRQ, N NMI, Esc quit.
package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bdwalton/gincore/mos6502"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	WIDTH  = 480
	HEIGHT = 360
)

type Machine interface {
	CPU() *mos6502.CPU
	Reset()
	RunCycles(int, map[uint16]struct{}) error
	fmt.Stringer
}

type Display struct {
	mach    Machine
	breaks  map[uint16]struct{}
	frame   int // cycles run per Update while running
	running bool
	stopped error
}

func New(m Machine, breaks map[uint16]struct{}, cyclesPerFrame int) *Display {
	return &Display{mach: m, breaks: breaks, frame: cyclesPerFrame}
}

// Run opens the window and blocks until it is closed.
func (d *Display) Run(title string) error {
	ebiten.SetWindowSize(WIDTH*2, HEIGHT*2)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (d *Display) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		d.running = !d.running
		d.stopped = nil
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		d.running = false
		d.mach.CPU().Step()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		d.mach.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		d.mach.CPU().IRQ()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		d.mach.CPU().NMI()
	}

	if d.running {
		if err := d.mach.RunCycles(d.frame, d.breaks); err != nil {
			d.running = false
			d.stopped = err
		}
	}

	return nil
}

func (d *Display) Draw(screen *ebiten.Image) {
	var sb strings.Builder

	state := "paused"
	if d.running {
		state = "running"
	}
	sb.WriteString(fmt.Sprintf("%s  %.0f fps\n", state, ebiten.ActualFPS()))
	if d.stopped != nil {
		sb.WriteString(fmt.Sprintf("stopped: %v\n", d.stopped))
	}
	sb.WriteString("\n")
	sb.WriteString(d.mach.String())

	ebitenutil.DebugPrint(screen, sb.String())
}

func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WIDTH, HEIGHT
}
