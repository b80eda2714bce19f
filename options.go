package rgb565

import "github.com/gogpu/rgb565/lut"

// Option configures a Converter during creation.
// Use functional options to pick which look-up tables back it.
//
// Example:
//
//	// Tables from the build's default set (all but the 32 MiB ones)
//	c := rgb565.New()
//
//	// Arithmetic only, no table memory at all
//	c := rgb565.New(rgb565.WithArithmetic())
//
//	// Defaults plus the full-color linear table, built up front
//	c := rgb565.New(rgb565.WithTable(lut.L888ToL565), rgb565.WithEagerTables())
type Option func(*options)

// options holds optional configuration for Converter creation.
type options struct {
	tables lut.Set
	eager  bool
}

// defaultOptions returns the default converter options.
func defaultOptions() options {
	return options{
		tables: lut.Default,
		eager:  false, // tables build on first use
	}
}

// WithTables replaces the table set.
func WithTables(s lut.Set) Option {
	return func(o *options) {
		o.tables = s
	}
}

// WithTable adds tables to the set.
func WithTable(tables ...lut.Table) Option {
	return func(o *options) {
		o.tables = o.tables.With(tables...)
	}
}

// WithoutTable removes tables from the set.
func WithoutTable(tables ...lut.Table) Option {
	return func(o *options) {
		o.tables = o.tables.Without(tables...)
	}
}

// WithArithmetic disables every table. Results are unchanged; only speed
// and memory differ.
func WithArithmetic() Option {
	return WithTables(lut.None)
}

// WithEagerTables generates the selected tables inside New rather than on
// the first conversion that needs them.
func WithEagerTables() Option {
	return func(o *options) {
		o.eager = true
	}
}
