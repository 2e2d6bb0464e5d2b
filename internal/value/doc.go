// Package value classifies dynamic values into the semantic kinds the
// checker's Basic nodes test against.
//
// This package is internal to the typeguard module and is not importable by
// external consumers per Go's internal/ package semantics. It exists so that
// tcheck's Basic node predicates (number, string, object, Date, RegExp,
// buffer, typed-array view, ...) share one reflect-based classification
// routine rather than re-deriving it per predicate.
//
// Native-type recognizers (Date, RegExp, buffer, typed-array) use structural
// tag tests — duck-typed interface assertions or reflect.Kind checks — rather
// than identity comparisons against a concrete type, so that values built by
// a different decoder or a different package still classify correctly.
package value
