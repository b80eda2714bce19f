// Package rgb565 converts pixels between the 16-bit RGB565 format and 8-bit
// per channel RGB or sRGB.
//
// # Overview
//
// RGB565 packs a pixel into 16 bits: 5 bits of red, 6 of green and 5 of
// blue. It is the native framebuffer format of many small LCD and e-ink
// controllers. This package converts single pixels in both directions, for
// both component orders (RGB565 and BGR565) and both byte orders.
//
// # Quick Start
//
//	import "github.com/gogpu/rgb565"
//
//	// Decode little-endian framebuffer bytes
//	c := rgb565.FromRGB565LE([2]byte{0x00, 0xF8})
//	r, g, b := c.RGB888() // 255, 0, 0
//
//	// Encode an sRGB color for a big-endian SPI display
//	px := rgb565.FromSRGB888(0x80, 0x80, 0x80).RGB565BE()
//
// # Linear and sRGB
//
// The 5- and 6-bit channels are linear. RGB888 methods widen and narrow
// them proportionally; SRGB888 methods apply the sRGB transfer function on
// the way, which is what a modern monitor expects. Widening rounds to
// nearest, and narrowing undoes widening exactly, so a pixel survives any
// number of round trips through either path.
//
// # Look-up tables
//
// Every conversion can be served by arithmetic or by a precomputed table
// from package lut. A [Converter] picks one per function family when it is
// created; both give bit-identical output. [Default] uses [lut.Default],
// which holds every table except the two 32 MiB full-color ones. Use [New]
// with options such as [WithTable] or [WithArithmetic] to choose otherwise.
//
// # Concurrency
//
// All conversions are pure. Tables are generated once and read-only after
// that, and a Converter never changes after New, so everything here is safe
// for concurrent use.
package rgb565
