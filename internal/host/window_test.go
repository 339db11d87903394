package host

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestScancodeRune(t *testing.T) {
	tests := []struct {
		name  string
		code  sdl.Scancode
		r     rune
		valid bool
	}{
		{"letter a", sdl.SCANCODE_A, 'a', true},
		{"letter v", sdl.SCANCODE_V, 'v', true},
		{"letter z", sdl.SCANCODE_Z, 'z', true},
		{"digit 1", sdl.SCANCODE_1, '1', true},
		{"digit 9", sdl.SCANCODE_9, '9', true},
		{"digit 0", sdl.SCANCODE_0, '0', true},
		{"escape", sdl.SCANCODE_ESCAPE, 0, false},
		{"space", sdl.SCANCODE_SPACE, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := scancodeRune(tt.code)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.r, r)
		})
	}
}
