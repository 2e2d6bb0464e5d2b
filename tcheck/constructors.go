package tcheck

import "fmt"

// Name returns a node that resolves to whichever type the given
// identifier names in the suite(s) it is compiled alongside.
func Name(name string) Node {
	return &NameNode{Name: name}
}

// Lit returns a node matching values deeply equal to v.
func Lit(v any) Node {
	return &LiteralNode{Value: v}
}

// Array returns a node matching a sequence whose every element satisfies
// elem.
func Array(elem Node) Node {
	return &ArrayNode{Elem: elem}
}

// Tuple returns a node matching a fixed-arity sequence checked
// positionally against elems. At most the last entry of elems may be a
// Rest node; a Rest anywhere else is reported immediately as a
// *CompileError wrapping ErrMisplacedRest.
func Tuple(elems ...Node) (Node, error) {
	for i, e := range elems {
		if _, ok := e.(*RestNode); ok && i != len(elems)-1 {
			return nil, compileErrorf("", fmt.Errorf("%w: at position %d of %d", ErrMisplacedRest, i, len(elems)))
		}
	}
	cp := make([]Node, len(elems))
	copy(cp, elems)
	return &TupleNode{Elems: cp}, nil
}

// Rest returns a node wrapping the element type of a tuple's trailing
// variadic slot. Only valid as the last argument to Tuple.
func Rest(elem Node) Node {
	return &RestNode{Elem: elem}
}

// Union returns a node matching any value that satisfies at least one of
// alternatives.
func Union(alternatives ...Node) Node {
	cp := make([]Node, len(alternatives))
	copy(cp, alternatives)
	return &UnionNode{Alternatives: cp}
}

// Intersection returns a node matching any value that satisfies every
// one of conjuncts.
func Intersection(conjuncts ...Node) Node {
	cp := make([]Node, len(conjuncts))
	copy(cp, conjuncts)
	return &IntersectionNode{Conjuncts: cp}
}

// Partial returns a node wrapping of (expected to resolve to an
// interface, directly or through Name/Intersection) and treating every
// one of its properties, own and inherited, as optional.
func Partial(of Node) Node {
	return &PartialNode{Of: of}
}

// EnumType returns a node declaring a closed set of named literal
// members, registered under name so EnumLit can refer back to it.
func EnumType(name string, members ...EnumMember) Node {
	cp := make([]EnumMember, len(members))
	copy(cp, members)
	return &EnumTypeNode{Name: name, Members: cp}
}

// Member returns one named value of an EnumType.
func Member(name string, value any) EnumMember {
	return EnumMember{Name: name, Value: value}
}

// EnumLit returns a node matching a value equal to the named member of
// the enum type typeName resolves to. If member does not name one of
// that enum's members, compilation fails with ErrMalformedEnumLiteral.
func EnumLit(typeName, member string) Node {
	return &EnumLiteralNode{TypeName: typeName, Member: member}
}

// Iface returns a node matching a keyed object: it must satisfy every
// one of bases (evaluated as implicit conjuncts) and declare every one
// of props not marked optional. indexSig, if non-nil, is the type any
// extra, unlisted property's value must satisfy, and also exempts those
// properties from strict mode's extraneous-property rejection; pass nil
// for an interface with no index signature.
func Iface(name string, bases []Node, props []Prop, indexSig Node) Node {
	cpBases := make([]Node, len(bases))
	copy(cpBases, bases)
	cpProps := make([]Prop, len(props))
	copy(cpProps, props)
	return &IfaceNode{Name: name, Bases: cpBases, Props: cpProps, IndexSig: indexSig}
}

// Field returns one named, typed property for use in Iface's props.
func Field(name string, typ Node, optional bool) Prop {
	return Prop{Name: name, Type: typ, Optional: optional}
}

// Opt returns a node additionally accepting nil in the wrapped type's
// position. Like marking the owning Prop optional, it makes the property
// omissible; unlike the flag, it also accepts a property present with a
// nil value.
func Opt(of Node) Node {
	return &OptionalNode{Of: of}
}

// Func returns a node matching a callable value structurally; params and
// result describe its shape for introspection only; pass an empty
// ParamList (Params()) if a function takes no arguments.
func Func(params Node, result Node) Node {
	pl, _ := params.(*ParamListNode)
	return &FuncNode{Params: pl, Result: result}
}

// Params returns a node listing a function's ordered parameters, for use
// as Func's first argument.
func Params(params ...Param) Node {
	cp := make([]Param, len(params))
	copy(cp, params)
	return &ParamListNode{Params: cp}
}

// ParamOf returns one named, typed parameter for use in Params.
func ParamOf(name string, typ Node) Param {
	return Param{Name: name, Type: typ}
}

// BasicUUID returns a node matching a string that parses as a well-formed
// UUID (any RFC 4122 variant), layered over Basic the same way the other
// named primitives are: a value-level affordance beyond the core set of
// primitive shapes.
func BasicUUID() Node {
	return &BasicNode{Kind: BasicUUIDStr}
}

var (
	String     Node = &BasicNode{Kind: BasicString}
	Number     Node = &BasicNode{Kind: BasicNumber}
	Boolean    Node = &BasicNode{Kind: BasicBoolean}
	Object     Node = &BasicNode{Kind: BasicObject}
	AnyArray   Node = &BasicNode{Kind: BasicArray}
	AnyFunc    Node = &BasicNode{Kind: BasicFunc}
	Symbol     Node = &BasicNode{Kind: BasicSymbol}
	Date       Node = &BasicNode{Kind: BasicDate}
	Regexp     Node = &BasicNode{Kind: BasicRegexp}
	Buffer     Node = &BasicNode{Kind: BasicBuffer}
	TypedArray Node = &BasicNode{Kind: BasicTypedArray}
	Any        Node = &BasicNode{Kind: BasicAny}
	Unknown    Node = &BasicNode{Kind: BasicUnknown}
	Never      Node = &BasicNode{Kind: BasicNever}
	Void       Node = &BasicNode{Kind: BasicVoid}
	Undefined  Node = &BasicNode{Kind: BasicUndefined}
	Null       Node = &BasicNode{Kind: BasicNull}
)
