// Package disasm formats CHIP-8 instruction words as assembly text.
// It is used for instruction tracing, unknown opcode diagnostics and
// program listings.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the opcode definition that matches the instruction word.
func Lookup(word uint16) (chip8.Opcode, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value && op.Instruction != nil {
			return op, true
		}
	}
	return chip8.Opcode{}, false
}

// Instruction returns the assembly text of the instruction word.
// It returns false if the word is not a known CHIP-8 instruction.
func Instruction(word uint16) (string, bool) {
	op, ok := Lookup(word)
	if !ok {
		return "", false
	}

	name := op.Instruction.Name
	params := formatParams(word)
	if params == "" {
		return name, true
	}
	return fmt.Sprintf("%s %s", name, params), true
}

// String returns the assembly text of the instruction word, or a data
// directive if the word is not a known instruction.
func String(word uint16) string {
	if s, ok := Instruction(word); ok {
		return s
	}
	return fmt.Sprintf(".byte $%02X, $%02X", word>>8, word&0xFF)
}

// formatParams formats the operands of the instruction word.
func formatParams(word uint16) string {
	x := extractRegisterX(word)
	y := extractRegisterY(word)

	switch word & 0xF000 {
	case 0x0000:
		return "" // CLS and RET have no operands
	case 0x1000, 0x2000:
		return fmt.Sprintf("$%03X", word&0x0FFF)
	case 0x3000, 0x4000, 0x6000, 0x7000, 0xC000:
		return fmt.Sprintf("V%X, $%02X", x, word&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0x8000:
		return formatALUParams(word, x, y)
	case 0xA000:
		return fmt.Sprintf("I, $%03X", word&0x0FFF)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", word&0x0FFF)
	case 0xD000:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, word&0x000F)
	case 0xE000:
		return fmt.Sprintf("V%X", x)
	case 0xF000:
		return formatMiscParams(word, x)
	}
	return ""
}

// formatALUParams formats register operations, the shifts only name Vx.
func formatALUParams(word, x, y uint16) string {
	switch word & 0x000F {
	case 0x6, 0xE:
		return fmt.Sprintf("V%X", x)
	default:
		return fmt.Sprintf("V%X, V%X", x, y)
	}
}

// formatMiscParams formats the timer, key and index register operations.
func formatMiscParams(word, x uint16) string {
	switch word & 0x00FF {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// extractRegisterX extracts the X register nibble from an instruction word.
func extractRegisterX(word uint16) uint16 {
	return (word & 0x0F00) >> 8
}

// extractRegisterY extracts the Y register nibble from an instruction word.
func extractRegisterY(word uint16) uint16 {
	return (word & 0x00F0) >> 4
}
