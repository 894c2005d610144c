// Package timer implements the delay and sound countdown timers of the CHIP-8 machine.
package timer

// Timers holds the two 8-bit countdown registers. Both are decremented
// at a fixed external cadence of 60Hz, independent of the CPU
// instruction rate.
type Timers struct {
	delay byte
	sound byte
}

// New returns timers with both registers at zero.
func New() *Timers {
	return &Timers{}
}

// Tick decrements both timers by one, stopping at zero.
func (t *Timers) Tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

// Delay returns the delay timer value.
func (t *Timers) Delay() byte {
	return t.delay
}

// SetDelay sets the delay timer value.
func (t *Timers) SetDelay(value byte) {
	t.delay = value
}

// Sound returns the sound timer value.
func (t *Timers) Sound() byte {
	return t.sound
}

// SetSound sets the sound timer value.
func (t *Timers) SetSound(value byte) {
	t.sound = value
}

// SoundActive reports whether a tone should currently sound.
func (t *Timers) SoundActive() bool {
	return t.sound > 0
}
