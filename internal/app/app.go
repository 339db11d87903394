// Package app provides the helpers that assemble the machine and its frontend
// from the program options.
package app

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// PrintInfo prints the information about the loaded program.
func PrintInfo(logger *log.Logger, opts options.Program, program []byte) {
	if opts.Quiet {
		return
	}

	sum := sha1.Sum(program)
	logger.Info("Loaded CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("sha1", hex.EncodeToString(sum[:])),
	)
	if len(program) == 0 {
		logger.Warn("Program is empty")
	}
	if len(program)%2 != 0 {
		logger.Warn("Program size is odd, the last instruction is incomplete")
	}
}

// NewMachine creates a machine configured by the options and loads the program.
func NewMachine(opts options.Program, program []byte) (*chip8.Machine, error) {
	machine := chip8.New(
		chip8.WithRandom(chip8.NewRandom(opts.Seed)),
		chip8.WithTimersWhileWaiting(opts.WaitTimers),
	)
	if err := machine.Load(program); err != nil {
		return nil, fmt.Errorf("loading program into memory: %w", err)
	}
	return machine, nil
}

// Keymap returns the host key layout selected by the options.
func Keymap(opts options.Program) host.Keymap {
	if opts.Keymap == options.KeymapHex {
		return host.HexKeymap()
	}
	return host.CosmacKeymap()
}

// NewFrontend creates the frontend for the given renderer name.
func NewFrontend(logger *log.Logger, opts options.Program, renderer string) (host.Frontend, error) {
	switch renderer {
	case options.RendererWindow:
		window, err := host.NewWindow(logger, opts.Palette(), Keymap(opts), opts.Scale)
		if err != nil {
			return nil, fmt.Errorf("creating window frontend: %w", err)
		}
		return window, nil

	case options.RendererTerminal:
		terminal, err := host.NewTerminal(logger, opts.Palette(), Keymap(opts), opts.KeyHold)
		if err != nil {
			return nil, fmt.Errorf("creating terminal frontend: %w", err)
		}
		return terminal, nil

	default:
		return nil, fmt.Errorf("unsupported renderer '%s'", renderer)
	}
}
