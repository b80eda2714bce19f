// Package lut provides the precomputed look-up tables behind rgb565's
// accelerated conversions.
//
// Each table caches one function from internal/transform over its entire
// input domain, so a lookup returns exactly what the arithmetic would. A
// table is generated the first time it is used (or eagerly through
// [Generate]) and is read-only afterwards; any number of goroutines may read
// it concurrently.
//
// # Tables
//
//	swap_components_lut   128 KiB   RGB565 ↔ BGR565
//	l5_to_l8_lut           32 B     red/blue  → 8-bit linear
//	l6_to_l8_lut           64 B     green     → 8-bit linear
//	l5_to_s8_lut           32 B     red/blue  → 8-bit sRGB
//	l6_to_s8_lut           64 B     green     → 8-bit sRGB
//	l565_to_l888_lut      192 KiB   pixel     → linear RGB888
//	l565_to_s888_lut      192 KiB   pixel     → sRGB888
//	l8_to_l5_lut          256 B     8-bit linear → red/blue
//	l8_to_l6_lut          256 B     8-bit linear → green
//	s8_to_l5_lut          256 B     8-bit sRGB   → red/blue
//	s8_to_l6_lut          256 B     8-bit sRGB   → green
//	l888_to_l565_lut       32 MiB   linear RGB888 → pixel
//	s888_to_l565_lut       32 MiB   sRGB888       → pixel
//
// # Build tags
//
// [Default] holds every table except the two 32 MiB full-color tables.
// Build with -tags rgb565_fulllut to add them, or -tags rgb565_nolut for an
// empty default. Converters can always pick their own [Set].
package lut
