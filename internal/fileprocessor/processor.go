// Package fileprocessor handles program loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete program workflow: it loads the program
// and either writes a disassembly listing to output or runs it.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, output io.Writer) error {
	program, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	app.PrintInfo(logger, opts, program)

	if opts.List {
		if err := disasm.WriteListing(output, program, chip8.ProgramStart, opts.Listing()); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		return nil
	}

	return runProgram(ctx, logger, opts, program)
}

func runProgram(ctx context.Context, logger *log.Logger, opts options.Program, program []byte) error {
	machine, err := app.NewMachine(opts, program)
	if err != nil {
		return err
	}

	renderer := detector.New(logger).Detect(opts)
	frontend, err := app.NewFrontend(logger, opts, renderer)
	if err != nil {
		return err
	}
	defer func() {
		if err := frontend.Close(); err != nil {
			logger.Error("Closing frontend failed", log.Err(err))
		}
	}()

	h, err := host.New(logger, machine, frontend, host.Config{
		CyclesPerSecond: opts.CyclesPerSecond,
		Trace:           opts.Trace,
	})
	if err != nil {
		return fmt.Errorf("creating host: %w", err)
	}

	if err := h.Run(ctx); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	logger.Debug("Program stopped",
		log.Int("cycles", int(h.Cycles())),
		log.Int("unknown_opcodes", int(h.UnknownOpcodes())))
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}
