package host

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

// fakeFrontend quits after a fixed number of polls and records all output.
type fakeFrontend struct {
	quitAfter int
	keys      []uint8 // keys held on every poll

	polls   int
	renders int
	beeps   int
	closed  bool
}

func (f *fakeFrontend) Poll(keypad *chip8.Keypad) (bool, error) {
	f.polls++
	for _, key := range f.keys {
		keypad.Press(key)
	}
	return f.quitAfter > 0 && f.polls >= f.quitAfter, nil
}

func (f *fakeFrontend) Render(*chip8.Display) error {
	f.renders++
	return nil
}

func (f *fakeFrontend) Beep() {
	f.beeps++
}

func (f *fakeFrontend) Close() error {
	f.closed = true
	return nil
}

// newTestMachine returns a machine with the given instruction words loaded.
func newTestMachine(t *testing.T, words ...uint16) *chip8.Machine {
	t.Helper()

	program := make([]byte, 0, len(words)*2)
	for _, word := range words {
		program = append(program, byte(word>>8), byte(word))
	}

	m := chip8.New(chip8.WithRandom(chip8.NewRandom(1)))
	assert.NoError(t, m.Load(program))
	return m
}
