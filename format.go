package rgb565

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for names it does not know.
var ErrUnknownFormat = errors.New("rgb565: unknown format")

// Order is the placement of the red and blue fields in a packed value.
type Order uint8

const (
	// OrderRGB packs red in the top five bits: rrrrrggggggbbbbb.
	OrderRGB Order = iota

	// OrderBGR packs blue in the top five bits: bbbbbggggggrrrrr.
	OrderBGR
)

// String returns "RGB" or "BGR".
func (o Order) String() string {
	if o == OrderBGR {
		return "BGR"
	}
	return "RGB"
}

// Endian is the byte order of a packed value in memory.
type Endian uint8

const (
	// LittleEndian stores the low byte first, the native layout of most
	// microcontroller framebuffers.
	LittleEndian Endian = iota

	// BigEndian stores the high byte first, as most SPI display
	// controllers expect on the wire.
	BigEndian
)

// String returns "LE" or "BE".
func (e Endian) String() string {
	if e == BigEndian {
		return "BE"
	}
	return "LE"
}

// ByteOrder returns the encoding/binary byte order for e.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Format is a two-byte pixel layout: a component order plus a byte order.
type Format uint8

const (
	// FormatRGB565LE stores [gggbbbbb, rrrrrggg].
	FormatRGB565LE Format = iota

	// FormatRGB565BE stores [rrrrrggg, gggbbbbb].
	FormatRGB565BE

	// FormatBGR565LE stores [gggrrrrr, bbbbbggg].
	FormatBGR565LE

	// FormatBGR565BE stores [bbbbbggg, gggrrrrr].
	FormatBGR565BE

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo describes a format.
type FormatInfo struct {
	Name   string
	Order  Order
	Endian Endian
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatRGB565LE: {Name: "rgb565le", Order: OrderRGB, Endian: LittleEndian},
	FormatRGB565BE: {Name: "rgb565be", Order: OrderRGB, Endian: BigEndian},
	FormatBGR565LE: {Name: "bgr565le", Order: OrderBGR, Endian: LittleEndian},
	FormatBGR565BE: {Name: "bgr565be", Order: OrderBGR, Endian: BigEndian},
}

// NewFormat returns the format with the given component and byte order.
func NewFormat(o Order, e Endian) Format {
	f := FormatRGB565LE
	if o == OrderBGR {
		f = FormatBGR565LE
	}
	if e == BigEndian {
		f++
	}
	return f
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Order returns the component order of f.
func (f Format) Order() Order {
	return f.Info().Order
}

// Endian returns the byte order of f.
func (f Format) Endian() Endian {
	return f.Info().Endian
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns the lower-case format name, e.g. "bgr565be".
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return formatInfoTable[f].Name
}

// Formats returns every known format.
func Formats() []Format {
	return []Format{FormatRGB565LE, FormatRGB565BE, FormatBGR565LE, FormatBGR565BE}
}

// ParseFormat returns the format with the given name. Matching ignores case,
// and a bare "rgb565" or "bgr565" means the little-endian variant.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "rgb565":
		return FormatRGB565LE, nil
	case "bgr565":
		return FormatBGR565LE, nil
	}
	for i, info := range formatInfoTable {
		if n == info.Name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// readUint16 reads a packed value in f's byte order, ignoring component
// order.
func (f Format) readUint16(b [2]byte) uint16 {
	return f.Endian().ByteOrder().Uint16(b[:])
}

// writeUint16 writes a packed value in f's byte order.
func (f Format) writeUint16(v uint16) [2]byte {
	var b [2]byte
	f.Endian().ByteOrder().PutUint16(b[:], v)
	return b
}
