package diag

// Code is a stable, programmatic identifier for the reason a check failed.
// Message text may be reworded freely; Code is what callers should match on.
//
// The zero value is the unset code; Code values are only ever produced by
// the constants below, so the set of valid codes is closed.
type Code struct {
	value string
}

// String returns the code's wire-stable name, e.g. "WRONG_TYPE".
func (c Code) String() string {
	if c.value == "" {
		return "UNSPECIFIED"
	}
	return c.value
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

func code(value string) Code { return Code{value: value} }

var (
	// WrongType: the value's runtime kind does not match a Basic/Literal
	// predicate.
	WrongType = code("WRONG_TYPE")

	// MissingProperty: a required interface property is absent.
	MissingProperty = code("MISSING_PROPERTY")

	// ExtraneousProperty: strict mode rejected a property not named by any
	// base or sibling conjunct.
	ExtraneousProperty = code("EXTRANEOUS_PROPERTY")

	// NotObject: an Iface/Partial checker was run against a non-object
	// value.
	NotObject = code("NOT_OBJECT")

	// NotSequence: an Array/Tuple checker was run against a non-array
	// value.
	NotSequence = code("NOT_SEQUENCE")

	// TupleLength: a Tuple received fewer elements than its fixed prefix,
	// or, in strict mode, a Tuple without a trailing Rest or a parameter
	// list received too many.
	TupleLength = code("TUPLE_LENGTH")

	// UnionNoMatch: every alternative of a Union failed.
	UnionNoMatch = code("UNION_NO_MATCH")

	// NotEnumMember: a value does not equal any literal of an EnumType, or
	// an EnumLiteral's value does not match the enum member it names.
	NotEnumMember = code("NOT_ENUM_MEMBER")

	// NotCallable: a Func checker was run against a non-function value.
	NotCallable = code("NOT_CALLABLE")
)
