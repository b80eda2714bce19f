package rgb565

import (
	"fmt"

	"github.com/gogpu/rgb565/internal/transform"
)

// Color is a pixel in canonical RGB565 layout: rrrrrggggggbbbbb.
//
// Its methods convert through Default(). Color implements color.Color,
// reporting the linear 8-bit expansion as an opaque color.
type Color uint16

// Common colors
const (
	Black Color = 0x0000
	White Color = 0xFFFF
	Red   Color = 0xF800
	Green Color = 0x07E0
	Blue  Color = 0x001F
)

// FromRGB565 wraps a value packed as rrrrrggggggbbbbb.
func FromRGB565(v uint16) Color { return Color(v) }

// FromBGR565 reads a value packed as bbbbbggggggrrrrr.
func FromBGR565(v uint16) Color { return Color(Default().swap(v)) }

// RGB565 returns the value packed as rrrrrggggggbbbbb.
func (c Color) RGB565() uint16 { return uint16(c) }

// BGR565 returns the value packed as bbbbbggggggrrrrr.
func (c Color) BGR565() uint16 { return Default().swap(uint16(c)) }

// FromRGB565LE reads bytes stored as [gggbbbbb, rrrrrggg].
func FromRGB565LE(b [2]byte) Color { return Default().Load(b, FormatRGB565LE) }

// FromRGB565BE reads bytes stored as [rrrrrggg, gggbbbbb].
func FromRGB565BE(b [2]byte) Color { return Default().Load(b, FormatRGB565BE) }

// FromBGR565LE reads bytes stored as [gggrrrrr, bbbbbggg].
func FromBGR565LE(b [2]byte) Color { return Default().Load(b, FormatBGR565LE) }

// FromBGR565BE reads bytes stored as [bbbbbggg, gggrrrrr].
func FromBGR565BE(b [2]byte) Color { return Default().Load(b, FormatBGR565BE) }

// RGB565LE returns bytes stored as [gggbbbbb, rrrrrggg].
func (c Color) RGB565LE() [2]byte { return Default().Store(c, FormatRGB565LE) }

// RGB565BE returns bytes stored as [rrrrrggg, gggbbbbb].
func (c Color) RGB565BE() [2]byte { return Default().Store(c, FormatRGB565BE) }

// BGR565LE returns bytes stored as [gggrrrrr, bbbbbggg].
func (c Color) BGR565LE() [2]byte { return Default().Store(c, FormatBGR565LE) }

// BGR565BE returns bytes stored as [bbbbbggg, gggrrrrr].
func (c Color) BGR565BE() [2]byte { return Default().Store(c, FormatBGR565BE) }

// FromComponents packs 5-bit red, 6-bit green and 5-bit blue fields.
// Bits above each field are ignored.
func FromComponents(r5, g6, b5 uint8) Color {
	return Color(transform.Pack(r5, g6, b5))
}

// Components returns the 5-bit red, 6-bit green and 5-bit blue fields.
func (c Color) Components() (r5, g6, b5 uint8) {
	return transform.Unpack(uint16(c))
}

// FromRGB888 packs linear 8-bit channels.
func FromRGB888(r, g, b uint8) Color { return Default().FromRGB888(r, g, b) }

// FromSRGB888 packs sRGB 8-bit channels, linearizing them first.
func FromSRGB888(r, g, b uint8) Color { return Default().FromSRGB888(r, g, b) }

// RGB888 returns the linear 8-bit channels.
func (c Color) RGB888() (r, g, b uint8) { return Default().RGB888(c) }

// SRGB888 returns the sRGB 8-bit channels.
func (c Color) SRGB888() (r, g, b uint8) { return Default().SRGB888(c) }

// RGBA implements color.Color. RGB565 has no alpha, so the color is opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB888()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xFFFF
}

// String returns the value as "rgb565(0xf800)".
func (c Color) String() string {
	return fmt.Sprintf("rgb565(%#04x)", uint16(c))
}
