package tcheck

import (
	"iter"
	"maps"
	"sort"

	"github.com/google/uuid"
)

// Suite is a type suite: a mapping from identifier to the type node it
// names. Name nodes compiled alongside a Suite resolve against it.
type Suite map[string]Node

// Merge returns a new Suite containing every entry of s and every entry
// of others, later suites' entries winning over earlier ones (and over
// s) on name collision. s itself is not mutated.
func (s Suite) Merge(others ...Suite) Suite {
	out := make(Suite, len(s))
	maps.Copy(out, s)
	for _, o := range others {
		maps.Copy(out, o)
	}
	return out
}

// Names returns every identifier the suite declares, sorted for
// deterministic iteration.
func (s Suite) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All iterates the suite's entries in deterministic (sorted-by-name)
// order.
func (s Suite) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, name := range s.Names() {
			if !yield(name, s[name]) {
				return
			}
		}
	}
}

// Stamp returns a fresh identity for this Suite value, suitable for
// keying a process-wide compiled-checker memo by (stamp, type name) so a
// rebuilt suite (a new Go value, even one with identical entries) never
// collides with a stale cache entry from an earlier one. Suite itself has
// no notion of "the same suite, mutated" — maps compare by reference,
// not value — so Stamp exists purely as a caller convenience;
// CreateCheckers calls it once per invocation.
func (s Suite) Stamp() uuid.UUID {
	return uuid.New()
}

// Builtin returns the suite of built-in primitive names every compiled
// suite may reference without declaring them itself: "string", "number",
// "boolean", "object", "array", "function", "symbol", "Date", "RegExp",
// "buffer", "typed-array", "any", "unknown", "never", "void",
// "undefined", "null".
func Builtin() Suite {
	return Suite{
		"string":      String,
		"number":      Number,
		"boolean":     Boolean,
		"object":      Object,
		"array":       AnyArray,
		"function":    AnyFunc,
		"symbol":      Symbol,
		"Date":        Date,
		"RegExp":      Regexp,
		"buffer":      Buffer,
		"typed-array": TypedArray,
		"any":         Any,
		"unknown":     Unknown,
		"never":       Never,
		"void":        Void,
		"undefined":   Undefined,
		"null":        Null,
	}
}
