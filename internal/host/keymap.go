package host

import "unicode"

// Keymap maps host keys, given as lower case runes, to keypad key codes.
type Keymap map[rune]uint8

// Layout is the 4x4 block of host keys 1234/QWER/ASDF/ZXCV that the COSMAC
// keymap places on the COSMAC VIP hex keypad:
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
var Layout = [4][4]rune{
	{'1', '2', '3', '4'},
	{'q', 'w', 'e', 'r'},
	{'a', 's', 'd', 'f'},
	{'z', 'x', 'c', 'v'},
}

var keypadLayout = [4][4]uint8{
	{0x1, 0x2, 0x3, 0xC},
	{0x4, 0x5, 0x6, 0xD},
	{0x7, 0x8, 0x9, 0xE},
	{0xA, 0x0, 0xB, 0xF},
}

// CosmacKeymap returns the keymap that keeps the shape of the COSMAC VIP
// keypad on the left hand side of the host keyboard.
func CosmacKeymap() Keymap {
	keys := make(Keymap, 16)
	for row := range Layout {
		for col, r := range Layout[row] {
			keys[r] = keypadLayout[row][col]
		}
	}
	return keys
}

// HexKeymap returns the keymap that maps the host keys 0-9 and A-F to the
// keypad key of the same hex digit.
func HexKeymap() Keymap {
	keys := make(Keymap, 16)
	for i := range uint8(10) {
		keys['0'+rune(i)] = i
	}
	for i := range uint8(6) {
		keys['a'+rune(i)] = 0xA + i
	}
	return keys
}

// Key returns the keypad key code for a host key, ignoring case.
func (k Keymap) Key(r rune) (uint8, bool) {
	key, ok := k[unicode.ToLower(r)]
	return key, ok
}
