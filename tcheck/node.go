package tcheck

// Node is a type-node in the graph a Suite compiles: every shape (Name,
// Literal, Array, Tuple, Rest, Union, Intersection, Partial, EnumType,
// EnumLiteral, Iface, Optional, Func, ParamList, Basic) implements it. The
// constructors in this package copy their slice arguments, and nothing in
// the package modifies a node after construction; the node structs' fields
// are exported, so a caller holding a node can still change them.
type Node interface {
	isNode()
}

// NameNode refers to a type by identifier, resolved against whichever
// Suite(s) it is compiled alongside. Cyclic definitions (A refers to B
// refers to A) are legal and terminate via the compiler's per-name
// trampoline; cyclic *values* are not handled and are a documented
// Non-goal.
type NameNode struct {
	Name string
}

func (*NameNode) isNode() {}

// LiteralNode matches a value by deep equality against Value.
type LiteralNode struct {
	Value any
}

func (*LiteralNode) isNode() {}

// ArrayNode matches a sequence whose every element satisfies Elem.
type ArrayNode struct {
	Elem Node
}

func (*ArrayNode) isNode() {}

// TupleNode matches a fixed-arity sequence, positionally checking Elems
// against the input. If the last entry of Elems is a *RestNode, trailing
// elements beyond the fixed prefix are checked against the Rest's element
// type instead of causing a length mismatch.
type TupleNode struct {
	Elems []Node
}

func (*TupleNode) isNode() {}

// RestNode wraps the element type of a tuple's trailing variadic slot. It
// is only valid as the final entry of a TupleNode's Elems; constructing a
// Tuple with a Rest anywhere else is a compile-time error
// (ErrMisplacedRest).
type RestNode struct {
	Elem Node
}

func (*RestNode) isNode() {}

// UnionNode matches a value that satisfies at least one of Alternatives.
// On failure, diagnostics report the alternative whose checker reached
// the greatest depth before failing (see package diag's Resolver).
type UnionNode struct {
	Alternatives []Node
}

func (*UnionNode) isNode() {}

// IntersectionNode matches a value that satisfies every one of Conjuncts.
// Every conjunct is always evaluated, even after one has already failed,
// so diagnostics from every conjunct remain available.
type IntersectionNode struct {
	Conjuncts []Node
}

func (*IntersectionNode) isNode() {}

// PartialNode wraps an Iface-resolving type and treats every one of its
// properties as optional, own and inherited alike.
type PartialNode struct {
	Of Node
}

func (*PartialNode) isNode() {}

// EnumTypeNode declares a closed set of named literal members. A bare
// EnumType checker accepts any value equal to one of Members' values;
// EnumLiteralNode additionally pins the check to one specific member by
// name.
type EnumTypeNode struct {
	Name    string
	Members []EnumMember
}

func (*EnumTypeNode) isNode() {}

// EnumMember is one named value of an EnumTypeNode.
type EnumMember struct {
	Name  string
	Value any
}

// EnumLiteralNode matches a value equal to the named member of the enum
// type TypeName resolves to. Constructing one whose Member does not name
// an existing member of that enum is a compile-time error
// (ErrMalformedEnumLiteral).
type EnumLiteralNode struct {
	TypeName string
	Member   string
}

func (*EnumLiteralNode) isNode() {}

// IfaceNode matches a keyed object. Bases are evaluated as implicit
// conjuncts (the value must satisfy every base as well as Props); Props
// are the interface's own properties. IndexSig, if non-nil, names the
// type every extra (non-listed) property's value must satisfy — its
// presence also exempts those properties from strict mode's extraneous-
// property rejection.
type IfaceNode struct {
	Name     string
	Bases    []Node
	Props    []Prop
	IndexSig Node
}

func (*IfaceNode) isNode() {}

// Prop is one named, typed property of an IfaceNode.
type Prop struct {
	Name     string
	Type     Node
	Optional bool
}

// OptionalNode wraps a type to additionally accept Go's untyped nil (the
// absent value) in that position. A property whose type is an OptionalNode
// and a Prop with Optional set to true may both be omitted: a property is
// required iff it is not marked optional and its type itself rejects nil.
// They differ for a property present with a nil value: an OptionalNode
// accepts it, while the Optional flag leaves it to the property's type.
type OptionalNode struct {
	Of Node
}

func (*OptionalNode) isNode() {}

// FuncNode matches a callable value structurally (see internal/value's
// Func kind); it does not check argument or result types against a call,
// since this validates static shape, not behavior. Params/Result are
// exposed for introspection (MethodArgs/MethodResult/GetArgs/GetResult
// on the facade).
type FuncNode struct {
	Params *ParamListNode
	Result Node
}

func (*FuncNode) isNode() {}

// ParamListNode is the ordered parameter list of a FuncNode.
type ParamListNode struct {
	Params []Param
}

func (*ParamListNode) isNode() {}

// Param is one named, typed parameter of a ParamListNode.
type Param struct {
	Name string
	Type Node
}

// BasicKind enumerates the built-in primitive shapes a BasicNode tests
// for.
type BasicKind int

const (
	BasicString BasicKind = iota
	BasicNumber
	BasicBoolean
	BasicObject
	BasicArray
	BasicFunc
	BasicSymbol
	BasicDate
	BasicRegexp
	BasicBuffer
	BasicTypedArray
	BasicAny       // accepts anything, including nil
	BasicUnknown   // accepts anything, including nil (alias of BasicAny)
	BasicNever     // accepts nothing
	BasicVoid      // accepts only nil
	BasicUndefined // accepts only nil
	BasicNull      // accepts only nil
	BasicUUIDStr   // accepts a well-formed UUID string (any RFC 4122 variant)
)

// BasicNode matches a value's runtime shape against one of the built-in
// primitive kinds.
type BasicNode struct {
	Kind BasicKind
}

func (*BasicNode) isNode() {}
