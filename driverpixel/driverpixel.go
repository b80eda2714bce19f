// Package driverpixel hands rgb565 colors to TinyGo display drivers.
//
// Drivers in tinygo.org/x/drivers take pixel.RGB565BE, an RGB565 value whose
// in-memory bytes are already in the big-endian order SPI controllers
// expect. On the little-endian targets TinyGo supports, that is the
// canonical value with its bytes swapped.
package driverpixel

import (
	"encoding/binary"

	"github.com/gogpu/rgb565"
	"tinygo.org/x/drivers/pixel"
)

// ToRGB565BE converts c to the driver pixel type.
func ToRGB565BE(c rgb565.Color) pixel.RGB565BE {
	be := c.RGB565BE()
	return pixel.RGB565BE(binary.LittleEndian.Uint16(be[:]))
}

// FromRGB565BE converts a driver pixel back to a Color.
func FromRGB565BE(p pixel.RGB565BE) rgb565.Color {
	var be [2]byte
	binary.LittleEndian.PutUint16(be[:], uint16(p))
	return rgb565.FromRGB565BE(be)
}

// FromRGB888 packs linear 8-bit channels with conv and returns the driver
// pixel. Unlike pixel.NewRGB565BE, which truncates, this rounds to nearest.
// A nil conv means rgb565.Default().
func FromRGB888(conv *rgb565.Converter, r, g, b uint8) pixel.RGB565BE {
	if conv == nil {
		conv = rgb565.Default()
	}
	return ToRGB565BE(conv.FromRGB888(r, g, b))
}

// FromSRGB888 packs sRGB 8-bit channels with conv and returns the driver
// pixel. A nil conv means rgb565.Default().
func FromSRGB888(conv *rgb565.Converter, r, g, b uint8) pixel.RGB565BE {
	if conv == nil {
		conv = rgb565.Default()
	}
	return ToRGB565BE(conv.FromSRGB888(r, g, b))
}
