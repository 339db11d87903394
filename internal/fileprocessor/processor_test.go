package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	cpuchip8 "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile_Listing(t *testing.T) {
	// CLS, LD V1, $05, JP $202
	tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x61, 0x05, 0x12, 0x02, 0x00, 0x00})

	opts := options.New()
	opts.Input = tmpFile
	opts.List = true
	opts.NoHexComments = true
	opts.NoOffsets = true

	var buf bytes.Buffer
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, &buf)
	assert.NoError(t, err)

	output := buf.String()
	assert.True(t, strings.Contains(output, ".org $200"))
	assert.True(t, strings.Contains(output, "    "+cpuchip8.Cls.Name+"\n"))
	assert.True(t, strings.Contains(output, "    "+cpuchip8.Ld.Name+" V1, $05\n"))
	assert.True(t, strings.Contains(output, "    "+cpuchip8.Jp.Name+" $202\n"))
	assert.False(t, strings.Contains(output, ".byte"))
}

func TestProcessFile_LoadErrors(t *testing.T) {
	opts := options.New()
	opts.List = true

	opts.Input = filepath.Join(t.TempDir(), "missing.ch8")
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, &bytes.Buffer{})
	assert.ErrorContains(t, err, "loading program")

	tooLarge := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))
	opts.Input = tooLarge
	err = ProcessFile(context.Background(), log.NewTestLogger(t), opts, &bytes.Buffer{})
	assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
}

func TestProcessFile_EmptyProgram(t *testing.T) {
	opts := options.New()
	opts.Input = createTempFile(t, nil)
	opts.List = true

	var buf bytes.Buffer
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, &buf)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), ".org $200"))
}

func TestPrintBanner(t *testing.T) {
	opts := options.New()
	PrintBanner(log.NewTestLogger(t), opts, "1.0.0", "abcdef0123", "2024-01-01")
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(tmpFile, data, 0o600))
	return tmpFile
}
