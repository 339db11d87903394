package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load program file", func(t *testing.T) {
		data := []byte{0x12, 0x00}
		tmpFile := createTempFile(t, data)

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.True(t, bytes.Equal(data, program))
	})

	t.Run("load program of maximum size", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize))

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, program, chip8.MaxProgramSize)
	})

	t.Run("program too large", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
	})

	t.Run("empty program", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(program))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().Load(filepath.Join(t.TempDir(), "missing.ch8"))
		assert.ErrorContains(t, err, "opening file")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestLoadFrom(t *testing.T) {
	program, err := New().LoadFrom(bytes.NewReader([]byte{0x00, 0xE0}))
	assert.NoError(t, err)
	assert.Len(t, program, 2)
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	err := os.WriteFile(tmpFile, data, 0o600)
	assert.NoError(t, err)
	return tmpFile
}
