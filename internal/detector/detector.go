// Package detector handles renderer detection.
package detector

import (
	"os"
	"runtime"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Detector picks the renderer for the auto option from the host environment.
type Detector struct {
	logger *log.Logger

	goos       string
	getenv     func(key string) string
	isTerminal func() bool
}

// New creates a new renderer detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// Detect determines the renderer from options or host auto-detection.
// An explicitly chosen renderer is returned unchanged, otherwise the window
// renderer is used when a display is available and the terminal renderer
// when running inside a terminal without display.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Renderer != "" && opts.Renderer != options.RendererAuto {
		return opts.Renderer
	}

	renderer := d.detectFromEnvironment()
	d.logger.Debug("Auto-detected renderer",
		log.String("renderer", renderer),
		log.String("os", d.goos))
	return renderer
}

func (d *Detector) detectFromEnvironment() string {
	switch d.goos {
	case "windows", "darwin":
		return options.RendererWindow
	}

	if d.getenv("DISPLAY") != "" || d.getenv("WAYLAND_DISPLAY") != "" {
		return options.RendererWindow
	}
	if d.isTerminal() {
		return options.RendererTerminal
	}
	// without display or terminal the window renderer reports a useful error
	return options.RendererWindow
}
