// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/render"
)

// Renderer names.
const (
	RendererAuto     = "auto"
	RendererWindow   = "window"
	RendererTerminal = "terminal"
)

// Renderers lists all valid renderer names.
var Renderers = []string{RendererAuto, RendererWindow, RendererTerminal}

// Keymap names.
const (
	KeymapCosmac = "cosmac"
	KeymapHex    = "hex"
)

// Keymaps lists all valid keymap names.
var Keymaps = []string{KeymapCosmac, KeymapHex}

// Option defaults and limits.
const (
	DefaultScale           = 16
	MinScale               = 1
	MaxScale               = 64
	DefaultCyclesPerSecond = 60
	MinCyclesPerSecond     = 1
	MaxCyclesPerSecond     = 10000
	DefaultKeyHold         = 6
)

// Parameters contains file path options.
type Parameters struct {
	Input string // program image to run
}

// Flags contains behavior options.
type Flags struct {
	Renderer        string // window, terminal or auto
	Keymap          string // cosmac or hex host key layout
	Scale           int    // window pixel scale factor
	CyclesPerSecond int    // machine cycles and timer ticks per second
	Seed            uint64 // random source seed, 0 picks a random seed
	KeyHold         int    // frames a terminal key press stays held
	Trace           bool   // log every executed instruction
	WaitTimers      bool   // timers count down while awaiting a key
	List            bool   // print a disassembly listing instead of running
	Debug           bool
	Quiet           bool
}

// OutputFlags contains color and listing options.
type OutputFlags struct {
	Foreground    uint32 // 0xRRGGBB color of set pixels
	Background    uint32 // 0xRRGGBB color of cleared pixels
	NoHexComments bool
	NoOffsets     bool
	ZeroBytes     bool
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// New returns the program options with default values.
func New() Program {
	return Program{
		Flags: Flags{
			Renderer:        RendererAuto,
			Keymap:          KeymapCosmac,
			Scale:           DefaultScale,
			CyclesPerSecond: DefaultCyclesPerSecond,
			KeyHold:         DefaultKeyHold,
		},
		OutputFlags: OutputFlags{
			Foreground: 0xFFFFFF,
			Background: 0x000000,
		},
	}
}

// Palette returns the display colors.
func (p Program) Palette() render.Palette {
	return render.Palette{
		On:  render.ColorFromUint32(p.Foreground),
		Off: render.ColorFromUint32(p.Background),
	}
}

// Listing returns the disassembly listing options.
func (p Program) Listing() disasm.Options {
	return disasm.Options{
		HexComments:    !p.NoHexComments,
		OffsetComments: !p.NoOffsets,
		ZeroBytes:      p.ZeroBytes,
	}
}
