package app

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNewMachine(t *testing.T) {
	opts := options.New()
	opts.Seed = 42

	// RND V0, $FF
	program := []byte{0xC0, 0xFF}

	first, err := NewMachine(opts, program)
	assert.NoError(t, err)
	second, err := NewMachine(opts, program)
	assert.NoError(t, err)

	_, err = first.Step()
	assert.NoError(t, err)
	_, err = second.Step()
	assert.NoError(t, err)
	assert.Equal(t, first.V(0), second.V(0))
	assert.Equal(t, uint16(0x202), first.PC())
}

func TestNewMachine_TooLarge(t *testing.T) {
	_, err := NewMachine(options.New(), make([]byte, chip8.MaxProgramSize+1))
	assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
}

func TestNewMachine_WaitTimers(t *testing.T) {
	tests := []struct {
		name       string
		waitTimers bool
		wantDelay  uint8
	}{
		// decremented once by the cycle that set it, frozen afterwards
		{"default freezes timers", false, 4},
		{"timers keep running", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.New()
			opts.WaitTimers = tt.waitTimers

			// V0 = 5, DT = V0, LD V1, K
			machine, err := NewMachine(opts, []byte{0x60, 0x05, 0xF0, 0x15, 0xF1, 0x0A})
			assert.NoError(t, err)

			for range 5 {
				_, err := machine.Step()
				assert.NoError(t, err)
			}
			assert.Equal(t, chip8.AwaitingKey, machine.State())
			assert.Equal(t, tt.wantDelay, machine.DelayTimer())
		})
	}
}

func TestKeymap(t *testing.T) {
	tests := []struct {
		name   string
		keymap string
		r      rune
		want   uint8
	}{
		{"cosmac", options.KeymapCosmac, 'x', 0x0},
		{"hex", options.KeymapHex, 'x', 0},
		{"hex digit", options.KeymapHex, '7', 0x7},
		{"cosmac digit", options.KeymapCosmac, '4', 0xC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.New()
			opts.Keymap = tt.keymap
			key, _ := Keymap(opts).Key(tt.r)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestNewFrontend_Unsupported(t *testing.T) {
	_, err := NewFrontend(log.NewTestLogger(t), options.New(), "opengl")
	assert.ErrorContains(t, err, "unsupported renderer")
}

func TestPrintInfo(t *testing.T) {
	opts := options.New()
	opts.Input = "test.ch8"
	PrintInfo(log.NewTestLogger(t), opts, []byte{0x12, 0x00, 0x00})
	PrintInfo(log.NewTestLogger(t), opts, nil)
}
