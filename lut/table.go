package lut

import (
	"errors"
	"fmt"
)

// ErrUnknownTable is returned when a table name or identifier is not one of
// the tables this package knows how to build.
var ErrUnknownTable = errors.New("lut: unknown table")

// Table identifies one look-up table.
type Table uint8

const (
	// SwapComponents maps RGB565 to BGR565 (and back) for every 16-bit value.
	SwapComponents Table = iota

	// L5ToL8 widens 5-bit linear channels to 8-bit linear.
	L5ToL8

	// L6ToL8 widens 6-bit linear channels to 8-bit linear.
	L6ToL8

	// L5ToS8 widens 5-bit linear channels to 8-bit sRGB.
	L5ToS8

	// L6ToS8 widens 6-bit linear channels to 8-bit sRGB.
	L6ToS8

	// L565ToL888 expands every packed value to linear RGB888.
	L565ToL888

	// L565ToS888 expands every packed value to sRGB888.
	L565ToS888

	// L8ToL5 narrows 8-bit linear channels to 5 bits.
	L8ToL5

	// L8ToL6 narrows 8-bit linear channels to 6 bits.
	L8ToL6

	// S8ToL5 narrows 8-bit sRGB channels to 5 linear bits.
	S8ToL5

	// S8ToL6 narrows 8-bit sRGB channels to 6 linear bits.
	S8ToL6

	// L888ToL565 packs every linear RGB888 triple. 32 MiB.
	L888ToL565

	// S888ToL565 packs every sRGB888 triple. 32 MiB.
	S888ToL565

	// tableCount is the number of tables (for internal use).
	tableCount
)

// tableInfo describes the shape of a table.
type tableInfo struct {
	name      string
	entries   int
	entrySize int
}

var tableInfoTable = [tableCount]tableInfo{
	SwapComponents: {"swap_components_lut", 1 << 16, 2},
	L5ToL8:         {"l5_to_l8_lut", 32, 1},
	L6ToL8:         {"l6_to_l8_lut", 64, 1},
	L5ToS8:         {"l5_to_s8_lut", 32, 1},
	L6ToS8:         {"l6_to_s8_lut", 64, 1},
	L565ToL888:     {"l565_to_l888_lut", 1 << 16, 3},
	L565ToS888:     {"l565_to_s888_lut", 1 << 16, 3},
	L8ToL5:         {"l8_to_l5_lut", 256, 1},
	L8ToL6:         {"l8_to_l6_lut", 256, 1},
	S8ToL5:         {"s8_to_l5_lut", 256, 1},
	S8ToL6:         {"s8_to_l6_lut", 256, 1},
	L888ToL565:     {"l888_to_l565_lut", 1 << 24, 2},
	S888ToL565:     {"s888_to_l565_lut", 1 << 24, 2},
}

// Tables returns every table in identifier order.
func Tables() []Table {
	out := make([]Table, tableCount)
	for i := range out {
		out[i] = Table(i)
	}
	return out
}

// IsValid returns true if t is a known table.
func (t Table) IsValid() bool {
	return t < tableCount
}

// String returns the table's name, e.g. "l5_to_l8_lut".
func (t Table) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Table(%d)", uint8(t))
	}
	return tableInfoTable[t].name
}

// Len returns the number of entries, which is the size of the input domain.
func (t Table) Len() int {
	if !t.IsValid() {
		return 0
	}
	return tableInfoTable[t].entries
}

// EntrySize returns the number of bytes one entry occupies.
func (t Table) EntrySize() int {
	if !t.IsValid() {
		return 0
	}
	return tableInfoTable[t].entrySize
}

// Size returns the memory the table occupies in bytes.
func (t Table) Size() int {
	return t.Len() * t.EntrySize()
}

// FullColor reports whether t covers the whole 24-bit color space.
// These are the two 32 MiB tables left out of the default set.
func (t Table) FullColor() bool {
	return t == L888ToL565 || t == S888ToL565
}

// ParseTable returns the table with the given name. The "_lut" suffix is
// optional.
func ParseTable(name string) (Table, error) {
	for i, info := range tableInfoTable {
		if name == info.name || name+"_lut" == info.name {
			return Table(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTable, name)
}
