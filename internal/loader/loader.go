// Package loader handles program image loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Loader handles loading program images from disk.
type Loader struct {
	maxSize int
}

// New creates a new program loader.
func New() *Loader {
	return &Loader{
		maxSize: chip8.MaxProgramSize,
	}
}

// Load reads a raw program image without any header from the given file.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	program, err := l.LoadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return program, nil
}

// LoadFrom reads a raw program image from the reader. At most one byte more
// than the size limit is read to detect oversized images, which are rejected
// with chip8.ErrProgramTooLarge. An empty image is valid.
func (l *Loader) LoadFrom(reader io.Reader) ([]byte, error) {
	program, err := io.ReadAll(io.LimitReader(reader, int64(l.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	if len(program) > l.maxSize {
		return nil, fmt.Errorf("%w: maximum size is %d bytes", chip8.ErrProgramTooLarge, l.maxSize)
	}
	return program, nil
}
