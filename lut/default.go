//go:build !rgb565_nolut && !rgb565_fulllut

package lut

// Default is every table except the two full-color tables.
//
// Build with -tags rgb565_fulllut to include them, or -tags rgb565_nolut to
// start from no tables at all.
const Default Set = All &^ (1<<L888ToL565 | 1<<S888ToL565)
