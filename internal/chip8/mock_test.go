package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// fixedRandom returns the configured bytes in order, repeating the last one.
type fixedRandom struct {
	values []byte
	calls  int
}

func (r *fixedRandom) Byte() byte {
	if len(r.values) == 0 {
		return 0
	}
	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i]
}

// newTestMachine returns a machine with the given instruction words loaded.
func newTestMachine(t *testing.T, words ...uint16) *Machine {
	t.Helper()

	program := make([]byte, 0, len(words)*2)
	for _, w := range words {
		program = append(program, byte(w>>8), byte(w))
	}

	m := New(WithRandom(&fixedRandom{values: []byte{0xFF}}))
	assert.NoError(t, m.Load(program))
	return m
}

// step runs count cycles and fails the test on any error.
func step(t *testing.T, m *Machine, count int) Cycle {
	t.Helper()

	var cycle Cycle
	for range count {
		var err error
		cycle, err = m.Step()
		assert.NoError(t, err)
	}
	return cycle
}
