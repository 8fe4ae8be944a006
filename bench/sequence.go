package bench

import (
	"iter"
	"strings"
)

// Wrap yields prefix^k suffix^k for k = initial, initial+step, ... until
// count strings have been produced. Wrap("a", "b", 20, 20, 3) yields
// a^20 b^20, a^40 b^40 and a^60 b^60.
func Wrap(prefix, suffix string, initial, step, count int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, k := 0, initial; i < count; i, k = i+1, k+step {
			if !yield(strings.Repeat(prefix, k) + strings.Repeat(suffix, k)) {
				return
			}
		}
	}
}

// Repeat yields unit^k for k = initial, initial+step, ... until count
// strings have been produced.
func Repeat(unit string, initial, step, count int) iter.Seq[string] {
	return Wrap(unit, "", initial, step, count)
}

// List yields the given strings in order.
func List(inputs ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range inputs {
			if !yield(s) {
				return
			}
		}
	}
}
