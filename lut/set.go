package lut

import (
	"fmt"
	"strings"
)

// Set selects which tables a converter consults. A table outside the set
// is replaced by the arithmetic it caches; results are identical either way.
type Set uint16

const (
	// None disables every table.
	None Set = 0

	// All enables every table, including the two 32 MiB full-color tables.
	All Set = 1<<tableCount - 1
)

// Of returns the set containing the given tables. Unknown tables are ignored.
func Of(tables ...Table) Set {
	var s Set
	for _, t := range tables {
		if t.IsValid() {
			s |= 1 << t
		}
	}
	return s
}

// Has reports whether t is in the set.
func (s Set) Has(t Table) bool {
	return t.IsValid() && s&(1<<t) != 0
}

// With returns s plus the given tables.
func (s Set) With(tables ...Table) Set {
	return s | Of(tables...)
}

// Without returns s minus the given tables.
func (s Set) Without(tables ...Table) Set {
	return s &^ Of(tables...)
}

// Tables returns the members of s in identifier order.
func (s Set) Tables() []Table {
	var out []Table
	for t := range tableCount {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// Size returns the memory in bytes the tables in s occupy once generated.
func (s Set) Size() int {
	n := 0
	for _, t := range s.Tables() {
		n += t.Size()
	}
	return n
}

// String returns a comma-separated list of table names.
func (s Set) String() string {
	switch s & All {
	case None:
		return "none"
	case All:
		return "all"
	}
	names := make([]string, 0, tableCount)
	for _, t := range s.Tables() {
		names = append(names, t.String())
	}
	return strings.Join(names, ",")
}

// ParseSet parses a comma-separated list of table names. The words "none",
// "all" and "default" stand for the predefined sets and may be mixed with
// table names; a leading '-' removes a table, so "default,-swap_components"
// is the default set without the swap table.
func ParseSet(list string) (Set, error) {
	var s Set
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		remove := strings.HasPrefix(field, "-")
		field = strings.TrimPrefix(field, "-")

		var part Set
		switch field {
		case "none":
			part = None
		case "all":
			part = All
		case "default":
			part = Default
		default:
			t, err := ParseTable(field)
			if err != nil {
				return None, fmt.Errorf("lut: parse set %q: %w", list, err)
			}
			part = Of(t)
		}
		if remove {
			s &^= part
		} else {
			s |= part
		}
	}
	return s, nil
}
