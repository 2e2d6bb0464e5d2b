// Package typeguard is a structural type validator: given a language-neutral
// description of a type (interfaces, unions, intersections, tuples,
// literals, enums, arrays, primitives, function signatures) and an
// arbitrary dynamic value, it decides whether the value conforms to the
// type and, on failure, produces a precise diagnostic naming the offending
// sub-path (person.addresses[2].zip is not a string).
//
// # Architecture
//
//	Foundation tier (no internal dependencies):
//	  - internal/value: structural classification of dynamic values
//	  - path: canonical root.a.b[3] path rendering
//
//	Core tier:
//	  - diag: diagnostic contexts (Noop/Detail) and union-branch resolution
//	  - tcheck: the type-node algebra, checker compiler, and public facade
//
// # Entry point
//
// Build a [tcheck.Suite] from the type-node constructors, compile it, and
// use the returned facades:
//
//	suite := tcheck.Suite{
//	    "Person": tcheck.Iface("Person", nil, []tcheck.Prop{
//	        tcheck.Field("name", tcheck.String, false),
//	        tcheck.Field("age", tcheck.Number, false),
//	    }, nil),
//	}
//	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{suite})
//	if err != nil {
//	    // compile-time problem: unresolved name, misplaced rest, ...
//	}
//	if err := checkers["Person"].Check(v); err != nil {
//	    // v does not conform; err names the offending sub-path
//	}
//
// See [tcheck] for the full facade surface (Test, Validate, strict
// variants, and the GetProp/MethodArgs/GetArgs navigation operations).
package typeguard
