package gen

import "strconv"

type nameKey struct {
	tag  string
	base string
}

// NameScope allocates names that are unique within one rendered output
// file. Counters are keyed by (tag, base): the first allocation for a pair
// yields counter 0 and every later allocation for the same pair increments
// it, so a fixed call sequence always yields the same names. A scope is
// created fresh when rendering of a node begins and discarded when it
// completes; two output files never observe each other's counters.
type NameScope struct {
	counters map[nameKey]int
}

// NewNameScope returns an empty scope.
func NewNameScope() *NameScope {
	return &NameScope{counters: make(map[nameKey]int)}
}

// Generate returns prefix + base + counter + suffix for the (tag, base)
// pair. The result is not guaranteed to be a valid identifier in any target
// language; strop the base token first when it may contain arbitrary
// characters.
func (s *NameScope) Generate(tag, base, prefix, suffix string) string {
	k := nameKey{tag: tag, base: base}
	n := s.counters[k]
	s.counters[k] = n + 1
	return prefix + base + strconv.Itoa(n) + suffix
}
