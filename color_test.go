package rgb565

import (
	"image/color"
	"testing"
)

// TestBasicStuff walks the primaries through every byte layout.
func TestBasicStuff(t *testing.T) {
	red := [2]byte{0b00000000, 0b11111000}
	green := [2]byte{0b11100000, 0b00000111}
	blue := [2]byte{0b00011111, 0b00000000}

	check := func(name string, got Color, want [3]uint8) {
		t.Helper()
		r, g, b := got.RGB888()
		if [3]uint8{r, g, b} != want {
			t.Errorf("%s = %d,%d,%d, want %v", name, r, g, b, want)
		}
	}

	check("FromRGB565LE(red)", FromRGB565LE(red), [3]uint8{255, 0, 0})
	check("FromRGB565LE(green)", FromRGB565LE(green), [3]uint8{0, 255, 0})
	check("FromRGB565LE(blue)", FromRGB565LE(blue), [3]uint8{0, 0, 255})

	if got := FromRGB888(255, 0, 0).RGB565LE(); got != red {
		t.Errorf("red RGB565LE = %x, want %x", got, red)
	}
	if got := FromRGB888(0, 255, 0).RGB565LE(); got != green {
		t.Errorf("green RGB565LE = %x, want %x", got, green)
	}
	if got := FromRGB888(0, 0, 255).RGB565LE(); got != blue {
		t.Errorf("blue RGB565LE = %x, want %x", got, blue)
	}

	check("FromBGR565LE(blue bytes)", FromBGR565LE(blue), [3]uint8{255, 0, 0})
	check("FromBGR565LE(green bytes)", FromBGR565LE(green), [3]uint8{0, 255, 0})
	check("FromBGR565LE(red bytes)", FromBGR565LE(red), [3]uint8{0, 0, 255})

	if got := FromRGB888(255, 0, 0).BGR565LE(); got != blue {
		t.Errorf("red BGR565LE = %x, want %x", got, blue)
	}
	if got := FromRGB888(0, 0, 255).BGR565LE(); got != red {
		t.Errorf("blue BGR565LE = %x, want %x", got, red)
	}

	red = [2]byte{red[1], red[0]}
	green = [2]byte{green[1], green[0]}
	blue = [2]byte{blue[1], blue[0]}

	check("FromRGB565BE(red)", FromRGB565BE(red), [3]uint8{255, 0, 0})
	check("FromRGB565BE(green)", FromRGB565BE(green), [3]uint8{0, 255, 0})
	check("FromRGB565BE(blue)", FromRGB565BE(blue), [3]uint8{0, 0, 255})

	if got := FromRGB888(255, 0, 0).RGB565BE(); got != red {
		t.Errorf("red RGB565BE = %x, want %x", got, red)
	}
	if got := FromRGB888(0, 255, 0).RGB565BE(); got != green {
		t.Errorf("green RGB565BE = %x, want %x", got, green)
	}

	check("FromBGR565BE(blue bytes)", FromBGR565BE(blue), [3]uint8{255, 0, 0})
	check("FromBGR565BE(red bytes)", FromBGR565BE(red), [3]uint8{0, 0, 255})

	if got := FromRGB888(255, 0, 0).BGR565BE(); got != blue {
		t.Errorf("red BGR565BE = %x, want %x", got, blue)
	}
	if got := FromRGB888(0, 255, 0).BGR565BE(); got != green {
		t.Errorf("green BGR565BE = %x, want %x", got, green)
	}
}

func TestRGB565AndBGR565(t *testing.T) {
	if got := Red.BGR565(); got != 0x001F {
		t.Errorf("Red.BGR565() = %#04x, want 0x001f", got)
	}
	if got := FromBGR565(0x001F); got != Red {
		t.Errorf("FromBGR565(0x001f) = %v, want Red", got)
	}
	for v := 0; v <= 0xFFFF; v++ {
		c := FromRGB565(uint16(v))
		if c.RGB565() != uint16(v) {
			t.Fatalf("FromRGB565(%#04x).RGB565() = %#04x", v, c.RGB565())
		}
		if FromBGR565(c.BGR565()) != c {
			t.Fatalf("BGR565 round trip failed at %#04x", v)
		}
	}
}

func TestComponents(t *testing.T) {
	c := FromComponents(31, 0, 0)
	if c != Red {
		t.Errorf("FromComponents(31,0,0) = %v, want Red", c)
	}
	r, g, b := FromComponents(1, 2, 3).Components()
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("Components() = %d,%d,%d, want 1,2,3", r, g, b)
	}
}

func TestSRGBPrimaries(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want [3]uint8
	}{
		{"black", Black, [3]uint8{0, 0, 0}},
		{"white", White, [3]uint8{255, 255, 255}},
		{"red", Red, [3]uint8{255, 0, 0}},
		{"green", Green, [3]uint8{0, 255, 0}},
		{"blue", Blue, [3]uint8{0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.SRGB888()
			if [3]uint8{r, g, b} != tt.want {
				t.Errorf("SRGB888() = %d,%d,%d, want %v", r, g, b, tt.want)
			}
			if got := FromSRGB888(tt.want[0], tt.want[1], tt.want[2]); got != tt.c {
				t.Errorf("FromSRGB888(%v) = %v, want %v", tt.want, got, tt.c)
			}
		})
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = Red
	r, g, b, a := c.RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Red.RGBA() = %#x,%#x,%#x,%#x", r, g, b, a)
	}
}

func TestColorString(t *testing.T) {
	if got := Red.String(); got != "rgb565(0xf800)" {
		t.Errorf("Red.String() = %q", got)
	}
	if got := Blue.String(); got != "rgb565(0x001f)" {
		t.Errorf("Blue.String() = %q", got)
	}
}
