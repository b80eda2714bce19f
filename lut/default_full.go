//go:build rgb565_fulllut && !rgb565_nolut

package lut

// Default is every table, including 64 MiB of full-color tables.
const Default Set = All
