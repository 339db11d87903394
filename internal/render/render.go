// Package render converts the CHIP-8 display buffer into host output:
// RGBA images for windowed frontends and true color half block text for
// terminals.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Screen is a monochrome pixel grid.
type Screen interface {
	Pixel(x, y int) bool
}

// Screen dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// ColorFromUint32 returns the color of a 0xRRGGBB value.
func ColorFromUint32(value uint32) Color {
	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}
}

// RGBA returns the opaque image color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Palette maps the pixel states to colors.
type Palette struct {
	On  Color
	Off Color
}

// DefaultPalette draws white pixels on black.
var DefaultPalette = Palette{
	On:  ColorFromUint32(0xFFFFFF),
	Off: ColorFromUint32(0x000000),
}

// Color returns the color for a pixel state.
func (p Palette) Color(set bool) Color {
	if set {
		return p.On
	}
	return p.Off
}

// Frame returns the screen as a 64x32 RGBA image with one color per pixel.
func Frame(screen Screen, palette Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := range Height {
		for x := range Width {
			img.SetRGBA(x, y, palette.Color(screen.Pixel(x, y)).RGBA())
		}
	}
	return img
}

// Scale returns the image upscaled by an integer factor using nearest
// neighbor sampling, keeping the pixels sharp.
func Scale(src *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return src
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
