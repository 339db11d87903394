package render

import (
	"bytes"
	"fmt"
	"io"
)

// Terminal control sequences.
const (
	ShowCursor      = "\x1b[?25h"
	HideCursor      = "\x1b[?25l"
	ClearScreen     = "\x1b[2J"
	ResetFormatting = "\x1b[0m"
	CursorTopLeft   = "\x1b[;H"
)

// upperHalfBlock is drawn with the top pixel as foreground and the bottom
// pixel as background color.
const upperHalfBlock = "▀"

// Terminal renders a screen to a true color terminal, packing two pixel rows
// into one line of half block characters.
type Terminal struct {
	writer  io.Writer
	palette Palette
	buf     bytes.Buffer
}

// NewTerminal returns a terminal renderer writing to the given writer.
func NewTerminal(writer io.Writer, palette Palette) *Terminal {
	return &Terminal{
		writer:  writer,
		palette: palette,
	}
}

// Init clears the terminal and hides the cursor.
func (t *Terminal) Init() error {
	if _, err := io.WriteString(t.writer, ClearScreen+HideCursor); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	return nil
}

// Close resets the formatting and shows the cursor again.
func (t *Terminal) Close() error {
	if _, err := io.WriteString(t.writer, ResetFormatting+ShowCursor+"\r\n"); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// Render repaints the full screen starting at the top left terminal cell.
func (t *Terminal) Render(screen Screen) error {
	t.buf.Reset()
	t.buf.WriteString(CursorTopLeft)

	for y := 0; y < Height; y += 2 {
		for x := range Width {
			top := t.palette.Color(screen.Pixel(x, y))
			bottom := t.palette.Color(screen.Pixel(x, y+1))
			writeCell(&t.buf, top, bottom)
		}
		// raw mode terminals do not translate a line feed into a carriage return
		t.buf.WriteString("\r\n")
	}

	if _, err := t.writer.Write(t.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func writeCell(buf *bytes.Buffer, foreground, background Color) {
	fmt.Fprintf(buf, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s%s",
		foreground.R, foreground.G, foreground.B,
		background.R, background.G, background.B,
		upperHalfBlock, ResetFormatting)
}
