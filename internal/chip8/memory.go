package chip8

import "fmt"

// fontSpriteSize is the number of bytes of a single hex digit sprite.
const fontSpriteSize = 5

// font contains the sprites of the hexadecimal digits 0-F, 5 bytes each.
var font = [16 * fontSpriteSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// FontAddress returns the address of the sprite for the given hex digit.
func FontAddress(digit uint8) uint16 {
	return uint16(digit&0xF) * fontSpriteSize
}

// Memory is the 4KB byte addressable memory of the machine.
// All accesses are bounds checked and report ErrAddressOutOfBounds
// instead of reaching past the end of the buffer.
type Memory struct {
	data [MemorySize]byte
}

func (m *Memory) loadFont() {
	copy(m.data[:], font[:])
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if err := checkRange(address, 1); err != nil {
		return 0, err
	}
	return m.data[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if err := checkRange(address, 1); err != nil {
		return err
	}
	m.data[address] = value
	return nil
}

// ReadWord returns the big-endian 16-bit word at the given address.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	if err := checkRange(address, instructionSize); err != nil {
		return 0, err
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}

// ReadBytes returns count bytes starting at the given address.
// The returned slice is a copy.
func (m *Memory) ReadBytes(address uint16, count int) ([]byte, error) {
	if err := checkRange(address, count); err != nil {
		return nil, err
	}
	b := make([]byte, count)
	copy(b, m.data[address:])
	return b, nil
}

// WriteBytes copies data into memory starting at the given address.
func (m *Memory) WriteBytes(address uint16, data []byte) error {
	if err := checkRange(address, len(data)); err != nil {
		return err
	}
	copy(m.data[address:], data)
	return nil
}

func checkRange(address uint16, count int) error {
	if int(address)+count > MemorySize {
		if count <= 1 {
			return fmt.Errorf("%w: $%04X", ErrAddressOutOfBounds, address)
		}
		return fmt.Errorf("%w: $%04X-$%04X", ErrAddressOutOfBounds, address, int(address)+count-1)
	}
	return nil
}
