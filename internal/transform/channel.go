package transform

// Channel widths of the 5-6-5 layout.
const (
	Max5 = 0x1F
	Max6 = 0x3F
)

// L5ToL8 widens a 5-bit linear channel to 8 bits.
// 0 maps to 0 and 31 maps to 255.
func L5ToL8(l5 uint8) uint8 {
	return uint8((uint16(l5&Max5)*255 + Max5/2) / Max5)
}

// L6ToL8 widens a 6-bit linear channel to 8 bits.
func L6ToL8(l6 uint8) uint8 {
	return uint8((uint16(l6&Max6)*255 + Max6/2) / Max6)
}

// L5ToS8 widens a 5-bit linear channel to an 8-bit sRGB channel.
func L5ToS8(l5 uint8) uint8 {
	return quantize(SRGBEncode(float64(l5&Max5)/Max5), 255)
}

// L6ToS8 widens a 6-bit linear channel to an 8-bit sRGB channel.
func L6ToS8(l6 uint8) uint8 {
	return quantize(SRGBEncode(float64(l6&Max6)/Max6), 255)
}

// L8ToL5 narrows an 8-bit linear channel to 5 bits.
// L8ToL5(L5ToL8(c)) == c for every 5-bit c.
func L8ToL5(l8 uint8) uint8 {
	return uint8((uint16(l8)*Max5 + 127) / 255)
}

// L8ToL6 narrows an 8-bit linear channel to 6 bits.
func L8ToL6(l8 uint8) uint8 {
	return uint8((uint16(l8)*Max6 + 127) / 255)
}

// S8ToL5 decodes an 8-bit sRGB channel and requantizes it to 5 linear bits.
func S8ToL5(s8 uint8) uint8 {
	return quantize(SRGBDecode(float64(s8)/255), Max5)
}

// S8ToL6 decodes an 8-bit sRGB channel and requantizes it to 6 linear bits.
func S8ToL6(s8 uint8) uint8 {
	return quantize(SRGBDecode(float64(s8)/255), Max6)
}
