package host

import (
	"fmt"
	"runtime"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowTitle is the title of the SDL window.
const WindowTitle = "retrochip8"

// SDL calls must be made from the main thread.
func init() {
	runtime.LockOSThread()
}

// scancodeRune returns the lower case rune of a letter or digit key at its
// US keyboard position, independent of the active host keyboard layout.
func scancodeRune(code sdl.Scancode) (rune, bool) {
	switch {
	case code >= sdl.SCANCODE_A && code <= sdl.SCANCODE_Z:
		return 'a' + rune(code-sdl.SCANCODE_A), true
	case code >= sdl.SCANCODE_1 && code <= sdl.SCANCODE_9:
		return '1' + rune(code-sdl.SCANCODE_1), true
	case code == sdl.SCANCODE_0:
		return '0', true
	default:
		return 0, false
	}
}

// Window is a frontend that shows the display in an SDL window and reads
// the keypad from the host keyboard.
type Window struct {
	logger  *log.Logger
	palette render.Palette
	keymap  Keymap
	scale   int

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewWindow opens a window of the display size multiplied by scale. Keys are
// mapped by their position on a US keyboard.
func NewWindow(logger *log.Logger, palette render.Palette, keymap Keymap, scale int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	w := &Window{
		logger:  logger,
		palette: palette,
		keymap:  keymap,
		scale:   scale,
	}

	width := int32(render.Width * scale)
	height := int32(render.Height * scale)

	var err error
	w.window, err = sdl.CreateWindow(WindowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		width, height,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	w.texture, err = w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		width, height)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	logger.Debug("Window opened",
		log.Int("width", int(width)),
		log.Int("height", int(height)))
	return w, nil
}

// Poll handles all pending window events.
func (w *Window) Poll(keypad *chip8.Keypad) (bool, error) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return true, nil

		case *sdl.KeyboardEvent:
			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return true, nil
			}
			r, ok := scancodeRune(ev.Keysym.Scancode)
			if !ok {
				continue
			}
			key, ok := w.keymap.Key(r)
			if !ok {
				continue
			}
			keypad.Set(key, ev.Type == sdl.KEYDOWN)
		}
	}
	return false, nil
}

// Render copies the upscaled display into the window.
func (w *Window) Render(display *chip8.Display) error {
	// the RGBA byte order of image.RGBA matches ABGR8888 on little endian hosts
	img := render.Scale(render.Frame(display, w.palette), w.scale)

	if err := w.texture.Update(nil, img.Pix, img.Stride); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

// Beep is not supported by the window, sound output is limited to the log.
func (w *Window) Beep() {
	w.logger.Debug("Beep")
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() error {
	var err error
	if w.texture != nil {
		err = w.texture.Destroy()
		w.texture = nil
	}
	if w.renderer != nil {
		if rerr := w.renderer.Destroy(); err == nil {
			err = rerr
		}
		w.renderer = nil
	}
	if w.window != nil {
		if werr := w.window.Destroy(); err == nil {
			err = werr
		}
		w.window = nil
	}
	sdl.Quit()

	if err != nil {
		return fmt.Errorf("closing window: %w", err)
	}
	return nil
}
