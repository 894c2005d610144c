// Package main implements a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/chip8emu/internal/cli"
	"github.com/retroenv/chip8emu/internal/config"
	"github.com/retroenv/chip8emu/internal/emulator"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/ui"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(opts)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func printBanner(opts options.Program) {
	if !opts.Quiet {
		fmt.Println("[----------------------------]")
		fmt.Println("[ chip8emu - CHIP-8 emulator ]")
		fmt.Printf("[----------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading ROM file '%s': %w", opts.Input, err)
	}

	machine, err := emulator.New(logger, rom, opts.InstructionsPerFrame)
	if err != nil {
		return fmt.Errorf("initializing machine: %w", err)
	}

	logger.Info("running ROM",
		log.String("file", opts.Input),
		log.Int("bytes", len(rom)),
		log.Int("ipf", opts.InstructionsPerFrame))

	if opts.Headless {
		return runHeadless(ctx, logger, machine, opts)
	}

	title := "chip8emu - " + filepath.Base(opts.Input)
	return ui.Run(logger, machine, opts.Scale, title)
}

// runHeadless drives the machine without a window until the instruction
// budget is used up, the context is cancelled or the machine dies.
// Timers still tick once per frame batch.
func runHeadless(ctx context.Context, logger *log.Logger, machine *emulator.Machine, opts options.Program) error {
	for executed := 0; executed < opts.Cycles; executed += opts.InstructionsPerFrame {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := machine.RunFrame(); err != nil {
			return err
		}
	}

	logger.Info("headless run finished", log.Int("cycles", opts.Cycles))
	return nil
}
