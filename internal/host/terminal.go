package host

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Control bytes read from the terminal.
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
	bell      = "\a"
)

// DefaultKeyHold is the number of frames a key stays held after a key press.
// Terminals only report key presses and repeats, never releases.
const DefaultKeyHold = 6

// Terminal is a frontend that renders the display as text and reads the
// keypad from stdin.
type Terminal struct {
	logger   *log.Logger
	renderer *render.Terminal
	out      io.Writer
	input    chan byte
	done     chan struct{}
	stop     sync.Once
	raw      *rawMode

	keymap  Keymap
	keyHold int
	held    [chip8.KeyCount]int
}

// NewTerminal returns a terminal frontend reading key presses from stdin and
// writing frames to stdout. If stdin is a terminal it is switched to raw mode
// until Close is called.
func NewTerminal(logger *log.Logger, palette render.Palette, keymap Keymap, keyHold int) (*Terminal, error) {
	fd := os.Stdin.Fd()

	var raw *rawMode
	if term.IsTerminal(int(fd)) {
		var err error
		raw, err = enableRawMode(fd)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("Input is not a terminal, raw mode disabled")
	}

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if width < render.Width || height < render.Height/2 {
			logger.Warn("Terminal is smaller than the display",
				log.Int("width", width),
				log.Int("height", height))
		}
	}

	t := newTerminal(logger, os.Stdin, os.Stdout, palette, keymap, keyHold)
	t.raw = raw
	if err := t.renderer.Init(); err != nil {
		_ = t.Close()
		return nil, err
	}
	return t, nil
}

func newTerminal(logger *log.Logger, in io.Reader, out io.Writer, palette render.Palette, keymap Keymap, keyHold int) *Terminal {
	if keyHold <= 0 {
		keyHold = DefaultKeyHold
	}
	if keymap == nil {
		keymap = CosmacKeymap()
	}
	t := &Terminal{
		logger:   logger,
		renderer: render.NewTerminal(out, palette),
		out:      out,
		input:    make(chan byte, 64),
		done:     make(chan struct{}),
		keymap:   keymap,
		keyHold:  keyHold,
	}
	go t.readInput(in)
	return t
}

// readInput forwards all input bytes to the input channel until the reader
// fails or the terminal is closed. The channel is closed afterwards.
func (t *Terminal) readInput(in io.Reader) {
	defer close(t.input)

	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		for _, b := range buf[:n] {
			select {
			case t.input <- b:
			case <-t.done:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.logger.Error("Reading input failed", log.Err(err))
			}
			return
		}

		select {
		case <-t.done:
			return
		default:
		}
	}
}

// Poll consumes all pending input bytes and updates the keypad. Every key
// press holds the key for the configured number of polls.
func (t *Terminal) Poll(keypad *chip8.Keypad) (bool, error) {
	for pending := true; pending; {
		select {
		case b, ok := <-t.input:
			if !ok {
				pending = false
				break
			}
			if t.handleInput(b) {
				return true, nil
			}
		default:
			pending = false
		}
	}

	t.decay(keypad)
	return false, nil
}

// handleInput processes an input byte and returns whether it requests to quit.
func (t *Terminal) handleInput(b byte) bool {
	switch b {
	case keyCtrlC, keyEscape:
		return true
	}

	if key, ok := t.keymap.Key(rune(b)); ok {
		t.held[key] = t.keyHold
	}
	return false
}

// decay applies the held keys to the keypad and counts down their hold time.
func (t *Terminal) decay(keypad *chip8.Keypad) {
	for key, frames := range t.held {
		keypad.Set(uint8(key), frames > 0)
		if frames > 0 {
			t.held[key]--
		}
	}
}

// Render draws the display.
func (t *Terminal) Render(display *chip8.Display) error {
	if err := t.renderer.Render(display); err != nil {
		return fmt.Errorf("rendering terminal frame: %w", err)
	}
	return nil
}

// Beep rings the terminal bell.
func (t *Terminal) Beep() {
	if _, err := io.WriteString(t.out, bell); err != nil {
		t.logger.Debug("Writing bell failed", log.Err(err))
	}
}

// Close stops forwarding input and restores the cursor and the terminal mode.
// A pending read of stdin can not be interrupted, it is abandoned.
func (t *Terminal) Close() error {
	t.stop.Do(func() { close(t.done) })

	err := t.renderer.Close()
	if t.raw != nil {
		if rerr := t.raw.restore(); err == nil {
			err = rerr
		}
		t.raw = nil
	}
	return err
}
