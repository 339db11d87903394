package host

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestKeymap(t *testing.T) {
	tests := []struct {
		name   string
		keymap Keymap
		r      rune
		key    uint8
		valid  bool
	}{
		{"cosmac 1", CosmacKeymap(), '1', 0x1, true},
		{"cosmac 4", CosmacKeymap(), '4', 0xC, true},
		{"cosmac q", CosmacKeymap(), 'q', 0x4, true},
		{"cosmac upper R", CosmacKeymap(), 'R', 0xD, true},
		{"cosmac a", CosmacKeymap(), 'a', 0x7, true},
		{"cosmac f", CosmacKeymap(), 'f', 0xE, true},
		{"cosmac z", CosmacKeymap(), 'z', 0xA, true},
		{"cosmac x", CosmacKeymap(), 'x', 0x0, true},
		{"cosmac upper V", CosmacKeymap(), 'V', 0xF, true},
		{"cosmac unmapped 5", CosmacKeymap(), '5', 0, false},
		{"cosmac unmapped space", CosmacKeymap(), ' ', 0, false},
		{"hex 0", HexKeymap(), '0', 0x0, true},
		{"hex 4", HexKeymap(), '4', 0x4, true},
		{"hex 9", HexKeymap(), '9', 0x9, true},
		{"hex a", HexKeymap(), 'a', 0xA, true},
		{"hex upper C", HexKeymap(), 'C', 0xC, true},
		{"hex f", HexKeymap(), 'f', 0xF, true},
		{"hex unmapped g", HexKeymap(), 'g', 0, false},
		{"hex unmapped q", HexKeymap(), 'q', 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := tt.keymap.Key(tt.r)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestHexKeymap_CoversKeypad(t *testing.T) {
	keymap := HexKeymap()
	assert.Equal(t, chip8.KeyCount, len(keymap))

	var seen [chip8.KeyCount]bool
	for _, key := range keymap {
		seen[key] = true
	}
	for _, ok := range seen {
		assert.True(t, ok)
	}
}

func TestTerminal_HandleInput(t *testing.T) {
	term := newTerminal(log.NewTestLogger(t), strings.NewReader(""), io.Discard, render.DefaultPalette, nil, 2)

	assert.False(t, term.handleInput('w'))
	assert.True(t, term.handleInput(keyEscape))
	assert.True(t, term.handleInput(keyCtrlC))

	var keypad chip8.Keypad
	term.decay(&keypad)
	assert.True(t, keypad.IsPressed(0x5))
	term.decay(&keypad)
	assert.True(t, keypad.IsPressed(0x5))
	term.decay(&keypad)
	assert.False(t, keypad.IsPressed(0x5))
}

func TestTerminal_Poll(t *testing.T) {
	reader, writer := io.Pipe()
	defer func() { _ = writer.Close() }()

	term := newTerminal(log.NewTestLogger(t), reader, io.Discard, render.DefaultPalette, nil, 0)
	assert.Equal(t, DefaultKeyHold, term.keyHold)

	_, err := writer.Write([]byte("s"))
	assert.NoError(t, err)

	var keypad chip8.Keypad
	deadline := time.Now().Add(time.Second)
	for !keypad.IsPressed(0x8) && time.Now().Before(deadline) {
		quit, err := term.Poll(&keypad)
		assert.NoError(t, err)
		assert.False(t, quit)
		time.Sleep(time.Millisecond)
	}
	assert.True(t, keypad.IsPressed(0x8))

	_, err = writer.Write([]byte{keyEscape})
	assert.NoError(t, err)

	quit := false
	for !quit && time.Now().Before(deadline) {
		quit, err = term.Poll(&keypad)
		assert.NoError(t, err)
		time.Sleep(time.Millisecond)
	}
	assert.True(t, quit)
}

func TestTerminal_HexKeymap(t *testing.T) {
	term := newTerminal(log.NewTestLogger(t), strings.NewReader(""), io.Discard, render.DefaultPalette, HexKeymap(), 1)

	assert.False(t, term.handleInput('b'))
	assert.False(t, term.handleInput('s'))

	var keypad chip8.Keypad
	term.decay(&keypad)
	assert.True(t, keypad.IsPressed(0xB))
	assert.False(t, keypad.IsPressed(0x8))
}

func TestTerminal_CloseStopsBlockedInput(t *testing.T) {
	reader, writer := io.Pipe()
	defer func() { _ = writer.Close() }()

	term := newTerminal(log.NewTestLogger(t), reader, io.Discard, render.DefaultPalette, nil, 1)

	// more input than the channel buffers, nothing polls it
	go func() {
		_, _ = writer.Write(make([]byte, cap(term.input)+16))
	}()

	deadline := time.Now().Add(time.Second)
	for len(term.input) < cap(term.input) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.Equal(t, cap(term.input), len(term.input))

	assert.NoError(t, term.Close())
	assert.NoError(t, term.Close())

	closed := false
	for !closed && time.Now().Before(deadline) {
		select {
		case _, ok := <-term.input:
			closed = !ok
		case <-time.After(10 * time.Millisecond):
		}
	}
	assert.True(t, closed)
}

func TestTerminal_RenderAndBeep(t *testing.T) {
	var buf bytes.Buffer
	term := newTerminal(log.NewTestLogger(t), strings.NewReader(""), &buf, render.DefaultPalette, nil, 1)

	var display chip8.Display
	assert.NoError(t, term.Render(&display))
	assert.True(t, strings.HasPrefix(buf.String(), render.CursorTopLeft))

	buf.Reset()
	term.Beep()
	assert.Equal(t, bell, buf.String())

	buf.Reset()
	assert.NoError(t, term.Close())
	assert.True(t, strings.Contains(buf.String(), render.ShowCursor))
}
