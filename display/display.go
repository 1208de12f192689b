// Package display provides an optional ebiten-backed windowed PixelSink.
// Nothing in the core depends on it; the CLI wires it in only behind
// --display.
package display

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hejops/gone-dmg/ppu"
)

const (
	screenWidth  = 160
	screenHeight = 144
)

// dmgPalette maps the PPU's 2-bit color index to the classic four-shade
// green palette.
var dmgPalette = [4]color.RGBA{
	{0xE0, 0xF8, 0xD0, 0xFF},
	{0x88, 0xC0, 0x70, 0xFF},
	{0x34, 0x68, 0x56, 0xFF},
	{0x08, 0x18, 0x20, 0xFF},
}

// Window is an ebiten.Game that also implements ppu.PixelSink: the driver
// calls EmitScanline once per completed Mode 3, ebiten's own loop calls
// Update/Draw/Layout independently on its own goroutine.
type Window struct {
	mu     sync.Mutex
	frame  [screenHeight][screenWidth]byte
	img    *ebiten.Image
	closed bool
}

var _ ppu.PixelSink = (*Window)(nil)

// New constructs a Window that is not yet open; Run opens it.
func New() *Window {
	return &Window{}
}

// EmitScanline records one composed scanline. Safe to call from the
// driver's goroutine while ebiten's loop runs on its own.
func (w *Window) EmitScanline(ly byte, pixels [160]byte) {
	if int(ly) >= screenHeight {
		return
	}
	w.mu.Lock()
	w.frame[ly] = pixels
	w.mu.Unlock()
}

// Run opens the window and blocks until it is closed. Call from its own
// goroutine; the system driver keeps stepping independently.
func (w *Window) Run(title string, scale int) error {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(screenWidth*scale, screenHeight*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if w.closed {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImage(screenWidth, screenHeight)
	}

	w.mu.Lock()
	buf := make([]byte, screenWidth*screenHeight*4)
	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			c := dmgPalette[w.frame[y][x]&0b11]
			off := (y*screenWidth + x) * 4
			buf[off] = c.R
			buf[off+1] = c.G
			buf[off+2] = c.B
			buf[off+3] = c.A
		}
	}
	w.mu.Unlock()

	w.img.WritePixels(buf)
	screen.DrawImage(w.img, nil)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// Close requests the window's Update loop terminate on its next tick.
func (w *Window) Close() { w.closed = true }
