package disasm

import (
	"fmt"
	"io"
)

// Options controls the listing output.
type Options struct {
	HexComments    bool // output the instruction bytes as hex values in comments
	OffsetComments bool // output the instruction address in comments
	ZeroBytes      bool // output the trailing zero bytes of the program
}

// WriteListing writes a linear assembly listing of a program image that is
// loaded at the given base address. Words that do not decode are written as
// data directives.
func WriteListing(w io.Writer, program []byte, base uint16, opts Options) error {
	if _, err := fmt.Fprintf(w, "; CHIP-8 program listing\n\n.org $%03X\n\n", base); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	end := len(program)
	if !opts.ZeroBytes {
		end = endIndex(program)
	}

	for i := 0; i < end; i += 2 {
		address := base + uint16(i)

		if i+1 >= end {
			line := fmt.Sprintf("    .byte $%02X", program[i])
			if err := writeLine(w, line, address, program[i:i+1], opts); err != nil {
				return err
			}
			break
		}

		word := uint16(program[i])<<8 | uint16(program[i+1])
		if err := writeLine(w, "    "+String(word), address, program[i:i+2], opts); err != nil {
			return err
		}
	}
	return nil
}

// writeLine writes a listing line with its optional comment.
func writeLine(w io.Writer, line string, address uint16, data []byte, opts Options) error {
	comment := ""
	if opts.OffsetComments {
		comment = fmt.Sprintf("$%03X", address)
	}
	if opts.HexComments {
		if comment != "" {
			comment += ": "
		}
		for i, b := range data {
			if i > 0 {
				comment += " "
			}
			comment += fmt.Sprintf("%02X", b)
		}
	}

	var err error
	if comment == "" {
		_, err = fmt.Fprintf(w, "%s\n", line)
	} else {
		_, err = fmt.Fprintf(w, "%-32s ; %s\n", line, comment)
	}
	if err != nil {
		return fmt.Errorf("writing line at $%03X: %w", address, err)
	}
	return nil
}

// endIndex returns the length of the program without trailing zero bytes,
// rounded up to a full instruction word.
func endIndex(program []byte) int {
	for i := len(program) - 1; i >= 0; i-- {
		if program[i] == 0 {
			continue
		}
		end := i + 1
		if end%2 == 1 && end < len(program) {
			end++
		}
		return end
	}
	return 0
}
