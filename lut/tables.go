package lut

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/rgb565/internal/parallel"
	"github.com/gogpu/rgb565/internal/transform"
)

// Every table is built by the arithmetic in internal/transform on first
// use and never written again, so concurrent readers need no locking.
var (
	swapComponentsLUT = lazy(SwapComponents, func() *[1 << 16]uint16 {
		var tab [1 << 16]uint16
		for i := range tab {
			tab[i] = transform.SwapComponents(uint16(i))
		}
		return &tab
	})

	l5ToL8LUT = lazy(L5ToL8, func() *[32]uint8 {
		var tab [32]uint8
		fillChannel(tab[:], transform.L5ToL8)
		return &tab
	})
	l6ToL8LUT = lazy(L6ToL8, func() *[64]uint8 {
		var tab [64]uint8
		fillChannel(tab[:], transform.L6ToL8)
		return &tab
	})
	l5ToS8LUT = lazy(L5ToS8, func() *[32]uint8 {
		var tab [32]uint8
		fillChannel(tab[:], transform.L5ToS8)
		return &tab
	})
	l6ToS8LUT = lazy(L6ToS8, func() *[64]uint8 {
		var tab [64]uint8
		fillChannel(tab[:], transform.L6ToS8)
		return &tab
	})

	l565ToL888LUT = lazy(L565ToL888, func() *[1 << 16][3]uint8 { return pixelTable(transform.L565ToL888) })
	l565ToS888LUT = lazy(L565ToS888, func() *[1 << 16][3]uint8 { return pixelTable(transform.L565ToS888) })

	l8ToL5LUT = lazy(L8ToL5, func() *[256]uint8 {
		var tab [256]uint8
		fillChannel(tab[:], transform.L8ToL5)
		return &tab
	})
	l8ToL6LUT = lazy(L8ToL6, func() *[256]uint8 {
		var tab [256]uint8
		fillChannel(tab[:], transform.L8ToL6)
		return &tab
	})
	s8ToL5LUT = lazy(S8ToL5, func() *[256]uint8 {
		var tab [256]uint8
		fillChannel(tab[:], transform.S8ToL5)
		return &tab
	})
	s8ToL6LUT = lazy(S8ToL6, func() *[256]uint8 {
		var tab [256]uint8
		fillChannel(tab[:], transform.S8ToL6)
		return &tab
	})

	l888ToL565LUT = lazy(L888ToL565, func() *[1 << 24]uint16 { return fullColorTable(transform.L888ToL565) })
	s888ToL565LUT = lazy(S888ToL565, func() *[1 << 24]uint16 { return fullColorTable(transform.S888ToL565) })
)

// lazy wraps a generator so it runs once, on first use, and logs how long
// it took.
func lazy[T any](t Table, gen func() T) func() T {
	return sync.OnceValue(func() T {
		level := slog.LevelDebug
		if t.FullColor() {
			level = slog.LevelInfo
		}
		start := time.Now()
		tab := gen()
		slogger().Log(context.Background(), level, "lut: generated table",
			"table", t.String(),
			"bytes", t.Size(),
			"elapsed", time.Since(start))
		return tab
	})
}

// fillChannel tabulates a channel function; len(tab) is its domain size.
func fillChannel(tab []uint8, fn func(uint8) uint8) {
	for i := range tab {
		tab[i] = fn(uint8(i))
	}
}

func pixelTable(fn func(uint16) [3]uint8) *[1 << 16][3]uint8 {
	var tab [1 << 16][3]uint8
	for i := range tab {
		tab[i] = fn(uint16(i))
	}
	return &tab
}

// fullColorTable tabulates fn over every RGB888 triple, indexed by
// r<<16 | g<<8 | b. The 16.7M entries are split by red channel across a
// worker pool.
func fullColorTable(fn func(r, g, b uint8) uint16) *[1 << 24]uint16 {
	tab := new([1 << 24]uint16)

	pool := parallel.NewWorkerPool(0)
	defer pool.Close()

	pool.Range(1<<24, 1<<16, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			tab[i] = fn(uint8(i>>16), uint8(i>>8), uint8(i))
		}
	})
	return tab
}

// SwapComponentsTable returns the RGB565↔BGR565 table, generating it on
// first call.
func SwapComponentsTable() *[1 << 16]uint16 { return swapComponentsLUT() }

// L5ToL8Table returns the 5-bit to 8-bit linear widening table.
func L5ToL8Table() *[32]uint8 { return l5ToL8LUT() }

// L6ToL8Table returns the 6-bit to 8-bit linear widening table.
func L6ToL8Table() *[64]uint8 { return l6ToL8LUT() }

// L5ToS8Table returns the 5-bit linear to 8-bit sRGB widening table.
func L5ToS8Table() *[32]uint8 { return l5ToS8LUT() }

// L6ToS8Table returns the 6-bit linear to 8-bit sRGB widening table.
func L6ToS8Table() *[64]uint8 { return l6ToS8LUT() }

// L565ToL888Table returns the packed to linear RGB888 table.
func L565ToL888Table() *[1 << 16][3]uint8 { return l565ToL888LUT() }

// L565ToS888Table returns the packed to sRGB888 table.
func L565ToS888Table() *[1 << 16][3]uint8 { return l565ToS888LUT() }

// L8ToL5Table returns the 8-bit to 5-bit linear narrowing table.
func L8ToL5Table() *[256]uint8 { return l8ToL5LUT() }

// L8ToL6Table returns the 8-bit to 6-bit linear narrowing table.
func L8ToL6Table() *[256]uint8 { return l8ToL6LUT() }

// S8ToL5Table returns the 8-bit sRGB to 5-bit linear narrowing table.
func S8ToL5Table() *[256]uint8 { return s8ToL5LUT() }

// S8ToL6Table returns the 8-bit sRGB to 6-bit linear narrowing table.
func S8ToL6Table() *[256]uint8 { return s8ToL6LUT() }

// L888ToL565Table returns the 32 MiB linear RGB888 to packed table.
// Index it with Index888.
func L888ToL565Table() *[1 << 24]uint16 { return l888ToL565LUT() }

// S888ToL565Table returns the 32 MiB sRGB888 to packed table.
// Index it with Index888.
func S888ToL565Table() *[1 << 24]uint16 { return s888ToL565LUT() }

// Index888 returns the full-color table index of an 8-bit triple.
func Index888(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Generate builds every table in s now instead of on first use. Programs
// that cannot afford a pause on their first conversion call it at startup.
func Generate(s Set) {
	for _, t := range s.Tables() {
		switch t {
		case SwapComponents:
			swapComponentsLUT()
		case L5ToL8:
			l5ToL8LUT()
		case L6ToL8:
			l6ToL8LUT()
		case L5ToS8:
			l5ToS8LUT()
		case L6ToS8:
			l6ToS8LUT()
		case L565ToL888:
			l565ToL888LUT()
		case L565ToS888:
			l565ToS888LUT()
		case L8ToL5:
			l8ToL5LUT()
		case L8ToL6:
			l8ToL6LUT()
		case S8ToL5:
			s8ToL5LUT()
		case S8ToL6:
			s8ToL6LUT()
		case L888ToL565:
			l888ToL565LUT()
		case S888ToL565:
			s888ToL565LUT()
		}
	}
}
