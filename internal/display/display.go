// Package display implements the 64x32 monochrome framebuffer of the CHIP-8 machine.
package display

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Display is a 64x32 grid of 1-bit pixels, stored as one byte per pixel
// (0 = off, nonzero = on). Sprites are composited with XOR. A dirty flag
// tracks whether the buffer changed since it was last read.
type Display struct {
	buf   [Width * Height]byte
	dirty bool
}

// New returns a cleared display. It starts out dirty so that the first
// frame is always rendered.
func New() *Display {
	return &Display{dirty: true}
}

// Clear sets every pixel to off.
func (d *Display) Clear() {
	d.buf = [Width * Height]byte{}
	d.dirty = true
}

// DrawSprite composites an 8-pixel-wide sprite with its top-left corner
// at (x, y), one byte per row, most significant bit first. The origin
// wraps around the screen edges, pixels extending past the edges are
// clipped. Each pixel is XORed onto the buffer.
//
// It reports whether any pixel that was already set received a set
// sprite bit. The collision check uses the pre-XOR pixel state.
func (d *Display) DrawSprite(x, y byte, sprite []byte) bool {
	x %= Width
	y %= Height

	collision := false

	for dy, row := range sprite {
		for dx := range 8 {
			bit := row & (0x80 >> dx)
			if bit == 0 {
				continue
			}
			if d.flipPixel(int(x)+dx, int(y)+dy) {
				collision = true
			}
		}
	}
	d.dirty = true

	return collision
}

// flipPixel XORs a set bit into the pixel at (x, y) and reports whether
// the pixel was set before the flip. Out of range coordinates are ignored.
func (d *Display) flipPixel(x, y int) bool {
	if x >= Width || y >= Height {
		return false
	}
	i := y*Width + x
	old := d.buf[i]
	d.buf[i] ^= 0xFF
	return old != 0
}

// Frame returns the pixel buffer and clears the dirty flag. Callers must
// read it exactly once per frame they intend to render.
func (d *Display) Frame() []byte {
	d.dirty = false
	return d.buf[:]
}

// Dirty reports whether the buffer changed since the last Frame call.
func (d *Display) Dirty() bool {
	return d.dirty
}
