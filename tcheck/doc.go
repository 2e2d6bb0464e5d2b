// Package tcheck compiles a type-node graph (built with the constructors in
// this package: Name, Lit, Array, Tuple, Rest, Union, Intersection,
// Partial, EnumType, EnumLit, Iface, Opt, Func, Params) into reusable
// checker closures and exposes them through a per-type [Checker] facade.
//
// # Building a suite
//
// A [Suite] maps a type name to the node it denotes; [Builtin] supplies the
// primitive names (string, number, object, array, ...) every suite may
// reference without declaring them. [CreateCheckers] merges [Builtin] with
// any suites passed to it (later suites win on name collision) and compiles
// every named entry into a [Checker]:
//
//	suite := tcheck.Suite{
//	    "Person": tcheck.Iface("Person", nil, []tcheck.Prop{
//	        tcheck.Field("name", tcheck.String, false),
//	        tcheck.Field("age", tcheck.Number, false),
//	    }, nil),
//	}
//	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{suite})
//
// # Checking values
//
// Each [Checker] exposes Test (boolean, allocation-light), Validate (a list
// of path+message details, nil if valid), and Check (an error naming the
// offending sub-path), plus StrictTest/StrictValidate/StrictCheck which
// additionally reject object properties and tuple elements not named by
// the type.
//
// # Recursive types and cycles
//
// A Name node referencing a type whose definition (directly or through an
// Array/Union/Iface property) refers back to the same name compiles
// without infinite recursion: the compiler installs a trampoline cell for
// the name currently being compiled and reuses it if re-entered. Checking
// a cyclic *value* is a documented non-goal; only cyclic type *definitions*
// are supported.
package tcheck
