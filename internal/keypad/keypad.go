// Package keypad implements the 16-key hexadecimal keypad of the CHIP-8 machine.
package keypad

// Keys is the number of keys on the pad, indexed 0x0-0xF.
const Keys = 16

// Keypad holds the pressed state of the 16 keys. The state is written by
// the input-polling front end once per driver loop iteration and only
// read by the CPU.
type Keypad struct {
	keys [Keys]bool
}

// New returns a keypad with no keys pressed.
func New() *Keypad {
	return &Keypad{}
}

// Press marks a key as pressed. Keys outside 0-15 are ignored.
func (k *Keypad) Press(key byte) {
	if key < Keys {
		k.keys[key] = true
	}
}

// Release marks a key as released. Keys outside 0-15 are ignored.
func (k *Keypad) Release(key byte) {
	if key < Keys {
		k.keys[key] = false
	}
}

// Pressed reports whether the given key is down.
func (k *Keypad) Pressed(key byte) bool {
	return key < Keys && k.keys[key]
}

// FirstPressed returns the lowest-indexed key that is currently down.
func (k *Keypad) FirstPressed() (byte, bool) {
	for key, down := range k.keys {
		if down {
			return byte(key), true
		}
	}
	return 0, false
}
