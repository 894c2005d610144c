// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks option values for consistency
func validateOptions(opts options.Program) error {
	if opts.InstructionsPerFrame < 1 {
		return fmt.Errorf("instructions per frame must be at least 1, got %d", opts.InstructionsPerFrame)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("window scale must be at least 1, got %d", opts.Scale)
	}
	if opts.Headless && opts.Cycles < 1 {
		return fmt.Errorf("headless cycle budget must be at least 1, got %d", opts.Cycles)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.Scale, "scale", 10, "window scale factor for the 64x32 display")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", 8, "CPU instructions executed per 60Hz frame")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window for ROM smoke testing")
	flags.IntVar(&opts.Cycles, "cycles", 10000, "instruction budget in headless mode")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
