// Package ui implements the ebiten front end that drives the machine.
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/chip8emu/internal/emulator"
	"github.com/retroenv/retrogolib/log"
)

// keyMap maps the host keyboard onto the hexadecimal keypad using the
// common COSMAC VIP layout:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = map[ebiten.Key]byte{
	ebiten.KeyDigit1: 0x1, ebiten.KeyDigit2: 0x2, ebiten.KeyDigit3: 0x3, ebiten.KeyDigit4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

// Game runs the machine inside the ebiten loop. Update is called at a
// fixed 60 TPS, which doubles as the 60Hz timer cadence: every call
// polls the keypad, runs one frame worth of instructions and ticks the
// timers. Draw repaints the scaled framebuffer, refreshing the pixel
// data only when the display is dirty.
type Game struct {
	machine *emulator.Machine
	logger  *log.Logger

	scale  int
	frame  *ebiten.Image
	pixels []byte

	paused bool
}

// NewGame returns a game driving the given machine.
func NewGame(logger *log.Logger, machine *emulator.Machine, scale int) *Game {
	return &Game{
		machine: machine,
		logger:  logger,
		scale:   scale,
		pixels:  make([]byte, display.Width*display.Height*4),
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.logger.Info("resetting machine")
		if err := g.machine.Reset(); err != nil {
			return fmt.Errorf("resetting machine: %w", err)
		}
	}

	for hostKey, key := range keyMap {
		if ebiten.IsKeyPressed(hostKey) {
			g.machine.Press(key)
		} else {
			g.machine.Release(key)
		}
	}

	if g.paused {
		return nil
	}
	if err := g.machine.RunFrame(); err != nil {
		return fmt.Errorf("running frame: %w", err)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(display.Width, display.Height)
	}

	if g.machine.FrameDirty() {
		frameToRGBA(g.machine.Frame(), g.pixels)
		g.frame.WritePixels(g.pixels)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, op)

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", 4, 4)
	}
	if g.machine.SoundActive() {
		ebitenutil.DebugPrintAt(screen, "BEEP", 4, display.Height*g.scale-20)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return display.Width * g.scale, display.Height * g.scale
}

// frameToRGBA expands the one-byte-per-pixel frame into the RGBA buffer,
// white for set pixels, black for unset ones.
func frameToRGBA(frame, pixels []byte) {
	for i, pixel := range frame {
		value := byte(0)
		if pixel != 0 {
			value = 0xFF
		}
		pixels[i*4+0] = value
		pixels[i*4+1] = value
		pixels[i*4+2] = value
		pixels[i*4+3] = 0xFF
	}
}

// Run opens the window and drives the machine until the window is
// closed or the machine dies.
func Run(logger *log.Logger, machine *emulator.Machine, scale int, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(display.Width*scale, display.Height*scale)

	if err := ebiten.RunGame(NewGame(logger, machine, scale)); err != nil {
		return fmt.Errorf("running game loop: %w", err)
	}
	return nil
}
