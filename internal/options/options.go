// Package options contains the program options.
package options

// Program options of the emulator.
type Program struct {
	Input string // ROM file to run

	Scale                int // window scale factor
	InstructionsPerFrame int // CPU instructions executed per 60Hz frame

	Headless bool // run without a window
	Cycles   int  // instruction budget in headless mode

	Debug bool
	Quiet bool
}
