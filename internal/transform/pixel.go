// Package transform implements the arithmetic behind every RGB565
// conversion: channel widening and narrowing, the sRGB transfer function,
// and packing of the three channels into 16 bits.
//
// Every function is pure and total. The lut package tabulates these
// functions and must agree with them value for value.
package transform

// Unpack splits a packed rrrrrggggggbbbbb value into its fields.
// For BGR565 input the first and last results are swapped.
func Unpack(packed uint16) (r5, g6, b5 uint8) {
	return uint8(packed >> 11 & Max5), uint8(packed >> 5 & Max6), uint8(packed & Max5)
}

// Pack joins three fields into a rrrrrggggggbbbbb value.
// Out-of-range bits are masked off.
func Pack(r5, g6, b5 uint8) uint16 {
	return uint16(r5&Max5)<<11 | uint16(g6&Max6)<<5 | uint16(b5&Max5)
}

// SwapComponents exchanges the red and blue fields, turning RGB565 into
// BGR565 and back.
func SwapComponents(packed uint16) uint16 {
	return packed&0x07E0 | packed>>11 | packed<<11
}

// L565ToL888 expands a packed value to linear 8-bit channels.
func L565ToL888(packed uint16) [3]uint8 {
	r, g, b := Unpack(packed)
	return [3]uint8{L5ToL8(r), L6ToL8(g), L5ToL8(b)}
}

// L565ToS888 expands a packed value to sRGB 8-bit channels.
func L565ToS888(packed uint16) [3]uint8 {
	r, g, b := Unpack(packed)
	return [3]uint8{L5ToS8(r), L6ToS8(g), L5ToS8(b)}
}

// L888ToL565 packs linear 8-bit channels.
func L888ToL565(r, g, b uint8) uint16 {
	return Pack(L8ToL5(r), L8ToL6(g), L8ToL5(b))
}

// S888ToL565 packs sRGB 8-bit channels.
func S888ToL565(r, g, b uint8) uint16 {
	return Pack(S8ToL5(r), S8ToL6(g), S8ToL5(b))
}
