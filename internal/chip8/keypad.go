package chip8

// KeyCount is the number of keys of the hex keypad.
const KeyCount = 16

// Keypad holds the pressed state of the 16 keys 0x0-0xF.
// Key codes are reduced to their low nibble.
type Keypad struct {
	keys [KeyCount]bool
}

// Press marks the key as held.
func (k *Keypad) Press(key uint8) {
	k.keys[key&0xF] = true
}

// Release marks the key as not held.
func (k *Keypad) Release(key uint8) {
	k.keys[key&0xF] = false
}

// Set sets the held state of the key.
func (k *Keypad) Set(key uint8, held bool) {
	k.keys[key&0xF] = held
}

// IsPressed reports whether the key is currently held.
func (k *Keypad) IsPressed(key uint8) bool {
	return k.keys[key&0xF]
}

// FirstPressed returns the lowest held key code.
func (k *Keypad) FirstPressed() (uint8, bool) {
	for key, held := range k.keys {
		if held {
			return uint8(key), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.keys = [KeyCount]bool{}
}
