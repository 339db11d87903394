// Package host drives a CHIP-8 machine: it polls input, runs one machine
// cycle per tick, renders the display and paces the loop.
package host

import (
	"context"
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

// Frontend is the host side of the machine: input, video and sound output.
type Frontend interface {
	// Poll processes pending host events and updates the keypad state.
	// It returns true when the user requested to quit.
	Poll(keypad *chip8.Keypad) (quit bool, err error)
	// Render outputs the display buffer.
	Render(display *chip8.Display) error
	// Beep signals that the sound timer expired.
	Beep()
	// Close releases all frontend resources.
	Close() error
}

// Config contains the host loop options.
type Config struct {
	CyclesPerSecond int  // machine cycles and timer ticks per second
	Trace           bool // log every executed instruction
}

// Host runs the machine loop.
type Host struct {
	logger   *log.Logger
	machine  *chip8.Machine
	frontend Frontend
	config   Config

	cycles  uint64
	unknown uint64
}

// New returns a new host for the machine and frontend.
func New(logger *log.Logger, machine *chip8.Machine, frontend Frontend, cfg Config) (*Host, error) {
	if cfg.CyclesPerSecond <= 0 {
		return nil, fmt.Errorf("invalid cycles per second %d", cfg.CyclesPerSecond)
	}
	return &Host{
		logger:   logger,
		machine:  machine,
		frontend: frontend,
		config:   cfg,
	}, nil
}

// Run executes the machine until the user quits, the context is canceled or
// a fatal machine error occurs. Quitting is not an error.
func (h *Host) Run(ctx context.Context) error {
	limiter, err := NewLimiter(h.config.CyclesPerSecond)
	if err != nil {
		return err
	}
	defer limiter.Stop()

	h.logger.Debug("Starting machine",
		log.Int("cycles_per_second", h.config.CyclesPerSecond),
		log.Hex("pc", h.machine.PC()))

	for {
		quit, err := h.frontend.Poll(h.machine.Keypad())
		if err != nil {
			return fmt.Errorf("polling frontend: %w", err)
		}
		if quit {
			h.logger.Debug("Quit requested", log.Int("cycles", int(h.cycles)))
			return nil
		}

		if err := h.cycle(); err != nil {
			return err
		}

		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for next cycle: %w", err)
		}
	}
}

// Cycles returns the number of executed machine cycles.
func (h *Host) Cycles() uint64 {
	return h.cycles
}

// UnknownOpcodes returns the number of cycles that hit an unknown opcode.
func (h *Host) UnknownOpcodes() uint64 {
	return h.unknown
}

func (h *Host) cycle() error {
	cycle, err := h.machine.Step()
	h.cycles++
	if err != nil {
		h.logger.Error("Machine error",
			log.Hex("address", cycle.Address),
			log.Hex("opcode", cycle.Opcode),
			log.Err(err))
		return fmt.Errorf("running cycle %d: %w", h.cycles, err)
	}

	switch {
	case cycle.Unknown:
		h.unknown++
		h.logger.Warn("Unknown opcode",
			log.Hex("address", cycle.Address),
			log.Hex("opcode", cycle.Opcode))

	case h.config.Trace && !cycle.Waiting:
		h.logger.Debug("Executed",
			log.Hex("address", cycle.Address),
			log.String("instruction", disasm.String(cycle.Opcode)))
	}

	if cycle.Beep {
		h.frontend.Beep()
	}

	if err := h.frontend.Render(h.machine.Display()); err != nil {
		return fmt.Errorf("rendering display: %w", err)
	}
	return nil
}
