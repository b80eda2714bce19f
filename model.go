package rgb565

import "image/color"

// Models for converting arbitrary colors to Color, for use as the
// ColorModel of RGB565 framebuffer images.
var (
	// Model treats incoming 8-bit channels as linear.
	Model color.Model = color.ModelFunc(linearModel)

	// SRGBModel treats incoming 8-bit channels as sRGB-encoded.
	SRGBModel color.Model = color.ModelFunc(srgbModel)
)

func linearModel(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b := rgb8(c)
	return FromRGB888(r, g, b)
}

func srgbModel(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b := rgb8(c)
	return FromSRGB888(r, g, b)
}

// rgb8 returns the top byte of each alpha-premultiplied channel, which
// composites a translucent color over black.
func rgb8(c color.Color) (r, g, b uint8) {
	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}
