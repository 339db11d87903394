// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses the command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, args []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.Usage = func() {} // usage is printed by UsageError.ShowUsage
	opts := options.New()
	var foreground, background string
	readOptionFlags(flags, &opts, &foreground, &background)

	err := flags.Parse(args)
	rest := flags.Args()
	if err != nil || (len(rest) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(rest); err != nil {
		return opts, err
	}
	if len(rest) > 0 {
		opts.Input = rest[0]
	}

	if err := parseColors(&opts, foreground, background); err != nil {
		return opts, err
	}
	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
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
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Renderer = strings.ToLower(opts.Renderer)
	if !slices.Contains(options.Renderers, opts.Renderer) {
		return fmt.Errorf("unsupported renderer: %s. Valid options: %s",
			opts.Renderer, strings.Join(options.Renderers, ", "))
	}

	opts.Keymap = strings.ToLower(opts.Keymap)
	if !slices.Contains(options.Keymaps, opts.Keymap) {
		return fmt.Errorf("unsupported keymap: %s. Valid options: %s",
			opts.Keymap, strings.Join(options.Keymaps, ", "))
	}

	if opts.Scale < options.MinScale || opts.Scale > options.MaxScale {
		return fmt.Errorf("invalid scale %d, valid range is %d-%d",
			opts.Scale, options.MinScale, options.MaxScale)
	}

	if opts.CyclesPerSecond < options.MinCyclesPerSecond || opts.CyclesPerSecond > options.MaxCyclesPerSecond {
		return fmt.Errorf("invalid cycles per second %d, valid range is %d-%d",
			opts.CyclesPerSecond, options.MinCyclesPerSecond, options.MaxCyclesPerSecond)
	}

	if opts.KeyHold < 1 {
		return fmt.Errorf("invalid key hold %d, must be at least 1", opts.KeyHold)
	}
	return nil
}

// parseColors converts the RRGGBB color flag values.
func parseColors(opts *options.Program, foreground, background string) error {
	var err error
	if opts.Foreground, err = parseColor(foreground); err != nil {
		return fmt.Errorf("parsing foreground color: %w", err)
	}
	if opts.Background, err = parseColor(background); err != nil {
		return fmt.Errorf("parsing background color: %w", err)
	}
	return nil
}

func parseColor(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(s) != 6 {
		return 0, fmt.Errorf("color '%s' is not in RRGGBB format", s)
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color '%s' is not in RRGGBB format: %w", s, err)
	}
	return uint32(value), nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, foreground, background *string) {
	flags.StringVar(&opts.Input, "i", "", "name of the program file to run")
	flags.StringVar(&opts.Renderer, "renderer", opts.Renderer, "output renderer (auto/window/terminal)")
	flags.StringVar(&opts.Keymap, "keys", opts.Keymap, "host key layout, cosmac places the keypad on 1234/QWER/ASDF/ZXCV, hex maps 0-9/A-F directly")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window pixel scale factor")
	flags.IntVar(&opts.CyclesPerSecond, "cps", opts.CyclesPerSecond, "machine cycles and timer ticks per second")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 picks a random seed")
	flags.IntVar(&opts.KeyHold, "key-hold", opts.KeyHold, "number of cycles a terminal key press stays held")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, enables debug logging")
	flags.BoolVar(&opts.WaitTimers, "wait-timers", opts.WaitTimers, "keep counting timers down while waiting for a key press, timers are frozen by default")
	flags.BoolVar(&opts.List, "list", false, "print a disassembly listing of the program instead of running it")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.StringVar(foreground, "fg", fmt.Sprintf("%06X", opts.Foreground), "color of set pixels as RRGGBB")
	flags.StringVar(background, "bg", fmt.Sprintf("%06X", opts.Background), "color of cleared pixels as RRGGBB")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in listing comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output addresses in listing comments")
	flags.BoolVar(&opts.ZeroBytes, "z", false, "output the trailing zero bytes of the program in the listing")
}
