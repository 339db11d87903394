package chip8

const (
	// DisplayWidth is the number of pixel columns.
	DisplayWidth = 64
	// DisplayHeight is the number of pixel rows.
	DisplayHeight = 32
)

// Display is the monochrome 64x32 pixel buffer, stored as one byte per pixel
// with the values 0 and 1, row by row.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]byte
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]byte{}
}

// Pixel reports whether the pixel at the given coordinates is set.
// Coordinates wrap around the display edges.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[index(x, y)] != 0
}

// Pixels returns the raw pixel buffer, one byte per pixel, row by row.
// The slice aliases the display and must not be modified.
func (d *Display) Pixels() []byte {
	return d.pixels[:]
}

// DrawSprite XORs the sprite rows onto the display with the top left corner
// at x, y. Every plotted pixel wraps independently around the display edges.
// It returns whether any set sprite bit hit a pixel that was already set.
func (d *Display) DrawSprite(x, y uint8, sprite []byte) bool {
	collision := false
	for row, bits := range sprite {
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			i := index(int(x)+col, int(y)+row)
			if d.pixels[i] == 1 {
				collision = true
			}
			d.pixels[i] ^= 1
		}
	}
	return collision
}

func index(x, y int) int {
	return (y%DisplayHeight)*DisplayWidth + x%DisplayWidth
}
