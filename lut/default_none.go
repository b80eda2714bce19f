//go:build rgb565_nolut

package lut

// Default is empty: every conversion uses arithmetic.
const Default Set = None
