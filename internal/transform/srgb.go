package transform

import "math"

// SRGBEncode applies the sRGB opto-electronic transfer function.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func SRGBEncode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBDecode applies the inverse transfer function (sRGB EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBDecode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// quantize maps a normalized value onto [0, maxValue] using the package-wide
// rounding rule: round half up, then clamp.
func quantize(v float64, maxValue uint8) uint8 {
	q := math.Floor(v*float64(maxValue) + 0.5)
	if q <= 0 {
		return 0
	}
	if q >= float64(maxValue) {
		return maxValue
	}
	return uint8(q)
}
