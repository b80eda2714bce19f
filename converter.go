package rgb565

import (
	"sync"

	"github.com/gogpu/rgb565/internal/transform"
	"github.com/gogpu/rgb565/lut"
)

// Converter performs RGB565 conversions through a fixed choice of look-up
// tables. For each function family it binds either a table lookup or the
// equivalent arithmetic when it is created; the choice never changes a
// result.
//
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	tables lut.Set

	swap func(uint16) uint16

	l5ToL8 func(uint8) uint8
	l6ToL8 func(uint8) uint8
	l5ToS8 func(uint8) uint8
	l6ToS8 func(uint8) uint8

	l8ToL5 func(uint8) uint8
	l8ToL6 func(uint8) uint8
	s8ToL5 func(uint8) uint8
	s8ToL6 func(uint8) uint8

	l565ToL888 func(uint16) [3]uint8
	l565ToS888 func(uint16) [3]uint8

	l888ToL565 func(r, g, b uint8) uint16
	s888ToL565 func(r, g, b uint8) uint16
}

var defaultConverter = sync.OnceValue(func() *Converter { return New() })

// Default returns the process-wide converter built from lut.Default.
// The package-level functions and Color methods use it.
func Default() *Converter {
	return defaultConverter()
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Converter{tables: o.tables & lut.All}
	c.bind()

	if o.eager {
		lut.Generate(c.tables)
	}
	Logger().Debug("rgb565: converter created",
		"tables", c.tables.String(),
		"bytes", c.tables.Size(),
		"eager", o.eager)
	return c
}

// pick returns table when t is in s and arith otherwise.
func pick[F any](s lut.Set, t lut.Table, table, arith F) F {
	if s.Has(t) {
		return table
	}
	return arith
}

func (c *Converter) bind() {
	s := c.tables

	c.swap = pick(s, lut.SwapComponents,
		func(v uint16) uint16 { return lut.SwapComponentsTable()[v] },
		transform.SwapComponents)

	c.l5ToL8 = pick(s, lut.L5ToL8,
		func(v uint8) uint8 { return lut.L5ToL8Table()[v&transform.Max5] },
		transform.L5ToL8)
	c.l6ToL8 = pick(s, lut.L6ToL8,
		func(v uint8) uint8 { return lut.L6ToL8Table()[v&transform.Max6] },
		transform.L6ToL8)
	c.l5ToS8 = pick(s, lut.L5ToS8,
		func(v uint8) uint8 { return lut.L5ToS8Table()[v&transform.Max5] },
		transform.L5ToS8)
	c.l6ToS8 = pick(s, lut.L6ToS8,
		func(v uint8) uint8 { return lut.L6ToS8Table()[v&transform.Max6] },
		transform.L6ToS8)

	c.l8ToL5 = pick(s, lut.L8ToL5,
		func(v uint8) uint8 { return lut.L8ToL5Table()[v] },
		transform.L8ToL5)
	c.l8ToL6 = pick(s, lut.L8ToL6,
		func(v uint8) uint8 { return lut.L8ToL6Table()[v] },
		transform.L8ToL6)
	c.s8ToL5 = pick(s, lut.S8ToL5,
		func(v uint8) uint8 { return lut.S8ToL5Table()[v] },
		transform.S8ToL5)
	c.s8ToL6 = pick(s, lut.S8ToL6,
		func(v uint8) uint8 { return lut.S8ToL6Table()[v] },
		transform.S8ToL6)

	// Without a whole-pixel table, whole-pixel conversions go through the
	// channel functions bound above, which may themselves be tables.
	c.l565ToL888 = pick(s, lut.L565ToL888,
		func(v uint16) [3]uint8 { return lut.L565ToL888Table()[v] },
		func(v uint16) [3]uint8 {
			r, g, b := transform.Unpack(v)
			return [3]uint8{c.l5ToL8(r), c.l6ToL8(g), c.l5ToL8(b)}
		})
	c.l565ToS888 = pick(s, lut.L565ToS888,
		func(v uint16) [3]uint8 { return lut.L565ToS888Table()[v] },
		func(v uint16) [3]uint8 {
			r, g, b := transform.Unpack(v)
			return [3]uint8{c.l5ToS8(r), c.l6ToS8(g), c.l5ToS8(b)}
		})

	c.l888ToL565 = pick(s, lut.L888ToL565,
		func(r, g, b uint8) uint16 { return lut.L888ToL565Table()[lut.Index888(r, g, b)] },
		func(r, g, b uint8) uint16 { return transform.Pack(c.l8ToL5(r), c.l8ToL6(g), c.l8ToL5(b)) })
	c.s888ToL565 = pick(s, lut.S888ToL565,
		func(r, g, b uint8) uint16 { return lut.S888ToL565Table()[lut.Index888(r, g, b)] },
		func(r, g, b uint8) uint16 { return transform.Pack(c.s8ToL5(r), c.s8ToL6(g), c.s8ToL5(b)) })
}

// Tables returns the set of tables c consults.
func (c *Converter) Tables() lut.Set {
	return c.tables
}

// Expand5 widens a 5-bit linear channel to 8 bits. 0 maps to 0, 31 to 255.
// Bits above the field are ignored.
func (c *Converter) Expand5(v uint8) uint8 { return c.l5ToL8(v) }

// Expand6 widens a 6-bit linear channel to 8 bits. 0 maps to 0, 63 to 255.
func (c *Converter) Expand6(v uint8) uint8 { return c.l6ToL8(v) }

// Expand5SRGB widens a 5-bit linear channel to 8-bit sRGB.
func (c *Converter) Expand5SRGB(v uint8) uint8 { return c.l5ToS8(v) }

// Expand6SRGB widens a 6-bit linear channel to 8-bit sRGB.
func (c *Converter) Expand6SRGB(v uint8) uint8 { return c.l6ToS8(v) }

// Contract5 narrows an 8-bit linear channel to 5 bits.
// Contract5(Expand5(v)) == v for every 5-bit v.
func (c *Converter) Contract5(v uint8) uint8 { return c.l8ToL5(v) }

// Contract6 narrows an 8-bit linear channel to 6 bits.
func (c *Converter) Contract6(v uint8) uint8 { return c.l8ToL6(v) }

// Contract5SRGB narrows an 8-bit sRGB channel to 5 linear bits.
func (c *Converter) Contract5SRGB(v uint8) uint8 { return c.s8ToL5(v) }

// Contract6SRGB narrows an 8-bit sRGB channel to 6 linear bits.
func (c *Converter) Contract6SRGB(v uint8) uint8 { return c.s8ToL6(v) }

// SwapComponents exchanges the red and blue fields of a packed value.
func (c *Converter) SwapComponents(v uint16) uint16 { return c.swap(v) }

// Load reads a pixel stored in format f.
func (c *Converter) Load(b [2]byte, f Format) Color {
	v := f.readUint16(b)
	if f.Order() == OrderBGR {
		v = c.swap(v)
	}
	return Color(v)
}

// Store writes a pixel in format f.
func (c *Converter) Store(col Color, f Format) [2]byte {
	v := uint16(col)
	if f.Order() == OrderBGR {
		v = c.swap(v)
	}
	return f.writeUint16(v)
}

// Decode reads a pixel stored in format f and returns its 5-bit red,
// 6-bit green and 5-bit blue fields, whatever their order in storage.
func (c *Converter) Decode(b [2]byte, f Format) (r5, g6, b5 uint8) {
	return transform.Unpack(uint16(c.Load(b, f)))
}

// Encode packs 5-bit red, 6-bit green and 5-bit blue fields into format f.
// Bits above each field are ignored.
func (c *Converter) Encode(r5, g6, b5 uint8, f Format) [2]byte {
	return c.Store(Color(transform.Pack(r5, g6, b5)), f)
}

// Convert re-encodes a stored pixel from one format to another without
// expanding its channels.
func (c *Converter) Convert(b [2]byte, from, to Format) [2]byte {
	v := from.readUint16(b)
	if from.Order() != to.Order() {
		v = c.swap(v)
	}
	return to.writeUint16(v)
}

// RGB888 expands col to linear 8-bit channels.
func (c *Converter) RGB888(col Color) (r, g, b uint8) {
	v := c.l565ToL888(uint16(col))
	return v[0], v[1], v[2]
}

// SRGB888 expands col to sRGB 8-bit channels.
func (c *Converter) SRGB888(col Color) (r, g, b uint8) {
	v := c.l565ToS888(uint16(col))
	return v[0], v[1], v[2]
}

// FromRGB888 packs linear 8-bit channels.
func (c *Converter) FromRGB888(r, g, b uint8) Color {
	return Color(c.l888ToL565(r, g, b))
}

// FromSRGB888 packs sRGB 8-bit channels.
func (c *Converter) FromSRGB888(r, g, b uint8) Color {
	return Color(c.s888ToL565(r, g, b))
}

// DecodeRGB888 reads a pixel stored in format f as linear 8-bit channels.
func (c *Converter) DecodeRGB888(px [2]byte, f Format) (r, g, b uint8) {
	return c.RGB888(c.Load(px, f))
}

// DecodeSRGB888 reads a pixel stored in format f as sRGB 8-bit channels.
func (c *Converter) DecodeSRGB888(px [2]byte, f Format) (r, g, b uint8) {
	return c.SRGB888(c.Load(px, f))
}

// EncodeRGB888 stores linear 8-bit channels in format f.
func (c *Converter) EncodeRGB888(r, g, b uint8, f Format) [2]byte {
	return c.Store(c.FromRGB888(r, g, b), f)
}

// EncodeSRGB888 stores sRGB 8-bit channels in format f.
func (c *Converter) EncodeSRGB888(r, g, b uint8, f Format) [2]byte {
	return c.Store(c.FromSRGB888(r, g, b), f)
}
