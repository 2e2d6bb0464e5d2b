package tcheck

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/width"

	"github.com/arborist-go/typeguard/diag"
	"github.com/arborist-go/typeguard/internal/value"
	"github.com/arborist-go/typeguard/path"
)

// checkerFunc is a compiled checker: it tests v, recording diagnostics
// into ctx, and honors strict when it reaches an object or tuple
// boundary. The returned bool is always authoritative, for every ctx
// implementation.
type checkerFunc func(v any, ctx diag.Context, strict bool) bool

// objForm is the unwrapped, composable form of an object-shaped node: its
// presence/type checking logic (inner) plus the set of property names it
// and everything it structurally includes (bases, conjuncts) allow, and
// the index-signature checker (if any) that exempts unlisted properties
// from strict mode's extraneous check. Non-object-shaped nodes (Basic,
// Array, Tuple, Union, Literal, EnumType/EnumLiteral) produce an objForm
// whose allowed set is nil and whose inner is simply their own compiled
// checker — this lets Intersection treat every conjunct uniformly.
type objForm struct {
	inner        checkerFunc
	allowed      map[string]bool
	indexChecker checkerFunc
	isObject     bool // true for Iface/Intersection/Partial-shaped nodes
}

type objKey struct {
	name    string
	partial bool
}

// objCell is the forward-reference cell installed while a Name's target is
// still being compiled, so a cyclic reference reached through it (the Tree
// shape: an interface whose own property type refers back to itself,
// typically through an Array or Union) resolves to a trampoline that calls
// through once compilation finishes, instead of recompiling the same type
// and recursing forever.
type objCell struct {
	inner    checkerFunc
	allowed  map[string]bool
	isObject bool
}

type compiler struct {
	suite   Suite
	logger  *slog.Logger
	objMemo map[objKey]*objForm
	objPend map[objKey]*objCell
	err     error
}

func newCompiler(suite Suite, logger *slog.Logger) *compiler {
	return &compiler{
		suite:   suite,
		logger:  logger,
		objMemo: make(map[objKey]*objForm),
		objPend: make(map[objKey]*objCell),
	}
}

func (c *compiler) fail(typeName string, err error) {
	if c.err == nil {
		c.err = compileErrorf(typeName, err)
	}
}

// compile returns the fully self-contained checker for n: presence/type
// checking plus, if n resolves to an object shape, the strict-mode
// extraneous-property pass.
func (c *compiler) compile(n Node) checkerFunc {
	form := c.compileObjForm(n, false)
	return c.wrapExtraneous(form)
}

func (c *compiler) wrapExtraneous(form objForm) checkerFunc {
	if !form.isObject {
		return form.inner
	}
	inner, allowed, indexChecker := form.inner, form.allowed, form.indexChecker
	return func(v any, ctx diag.Context, strict bool) bool {
		ok := inner(v, ctx, strict)
		if !value.IsObject(v) {
			return ok
		}
		// An index signature validates unlisted keys in both modes; without
		// one, unlisted keys only matter to strict mode's extraneous check.
		if indexChecker == nil && !strict {
			return ok
		}
		keys := value.Keys(v)
		sort.Strings(keys)
		for _, k := range keys {
			if allowed[k] {
				continue
			}
			val, _ := value.Get(v, k)
			fork := ctx.Fork()
			if indexChecker != nil {
				if !indexChecker(val, fork, strict) {
					fork.Fail(path.FormatKey(k), "", 1, Code{})
					ok = false
				}
			} else {
				fork.Fail(path.FormatKey(k), "is extraneous", 2, diag.ExtraneousProperty)
				ok = false
			}
			ctx.CompleteFork(fork)
		}
		return ok
	}
}

// Code is re-exported for callers that only import tcheck, matching the
// rest of the public surface's naming.
type Code = diag.Code

func (c *compiler) compileObjForm(n Node, partial bool) objForm {
	switch t := n.(type) {
	case *NameNode:
		return c.compileNameObjForm(t, partial)
	case *IfaceNode:
		return c.compileIfaceObjForm(t, partial)
	case *IntersectionNode:
		return c.compileIntersectionObjForm(t, partial)
	case *PartialNode:
		form := c.compileObjForm(t.Of, true)
		inner := form.inner
		// A Partial also accepts the absent value as a whole.
		form.inner = func(v any, ctx diag.Context, strict bool) bool {
			if v == nil {
				return true
			}
			return inner(v, ctx, strict)
		}
		return form
	default:
		return objForm{inner: c.compileNode(n)}
	}
}

func (c *compiler) compileNameObjForm(n *NameNode, partial bool) objForm {
	key := objKey{name: n.Name, partial: partial}
	if f, ok := c.objMemo[key]; ok {
		return *f
	}
	if cell, pending := c.objPend[key]; pending {
		// Re-entered while n.Name's own definition is still compiling (a
		// cyclic type, reached through an Array/Union/property indirection).
		// Defer through the cell rather than recompiling: cell.inner is
		// filled in once the outer compileObjForm call below returns, which
		// always happens before any value is actually checked.
		c.logger.Debug("recursive type reference deferred through trampoline", "name", n.Name)
		return objForm{
			inner: func(v any, ctx diag.Context, strict bool) bool {
				return cell.inner(v, ctx, strict)
			},
			allowed:  cell.allowed,
			isObject: cell.isObject,
		}
	}
	target, ok := c.suite[n.Name]
	if !ok {
		c.fail(n.Name, ErrUnresolvedName)
		return objForm{inner: func(any, diag.Context, bool) bool { return true }}
	}

	cell := &objCell{allowed: map[string]bool{}, isObject: isObjectShaped(c.suite, target)}
	c.objPend[key] = cell
	form := c.compileObjForm(target, partial)
	if namedLayer(target) {
		inner := form.inner
		msg := "is not a " + n.Name
		form.inner = func(v any, ctx diag.Context, strict bool) bool {
			if inner(v, ctx, strict) {
				return true
			}
			return ctx.Fail("", msg, 0, diag.WrongType)
		}
	}
	delete(c.objPend, key)
	cell.inner = form.inner
	for k := range form.allowed {
		cell.allowed[k] = true
	}
	c.objMemo[key] = &form
	return form
}

// namedLayer reports whether a Name's compiled checker gets an
// "is not a <Name>" fallback message layered on failure. Basic targets
// already record an equivalent message of their own, and a chained Name
// would stack one layer per link.
func namedLayer(target Node) bool {
	switch target.(type) {
	case *BasicNode, *NameNode:
		return false
	}
	return true
}

// isObjectShaped reports whether n resolves (directly, or through one level
// of Name indirection) to an object-shaped node, so a cyclic reference
// through compileNameObjForm's trampoline cell can report the right
// isObject without waiting for the cycle to finish compiling.
func isObjectShaped(suite Suite, n Node) bool {
	switch t := n.(type) {
	case *IfaceNode, *IntersectionNode, *PartialNode:
		return true
	case *NameNode:
		target, ok := suite[t.Name]
		if !ok {
			return false
		}
		if _, chained := target.(*NameNode); chained {
			return false
		}
		return isObjectShaped(suite, target)
	default:
		return false
	}
}

func (c *compiler) compileIfaceObjForm(n *IfaceNode, partial bool) objForm {
	if a, b, collides := findFoldCollision(n.Props); collides {
		c.fail(n.Name, fmt.Errorf("%w: %q and %q", ErrCollidingPropertyNames, a, b))
	}

	baseForms := make([]objForm, len(n.Bases))
	for i, b := range n.Bases {
		baseForms[i] = c.compileObjForm(b, partial)
	}

	type compiledProp struct {
		name     string
		checker  checkerFunc
		required func() bool
	}
	props := make([]compiledProp, len(n.Props))
	for i, p := range n.Props {
		checker := c.compile(p.Type)
		optional := p.Optional || partial
		props[i] = compiledProp{
			name:    p.Name,
			checker: checker,
			// A property is required iff it is not marked optional and its
			// own type rejects the absent value. Probed lazily on first
			// check, not at compile time: a cyclic property type's
			// trampoline cell is only filled once the whole graph finishes
			// compiling.
			required: sync.OnceValue(func() bool {
				return !optional && !checker(nil, diag.Noop, false)
			}),
		}
	}

	var indexChecker checkerFunc
	if n.IndexSig != nil {
		indexChecker = c.compile(n.IndexSig)
	} else {
		for _, bf := range baseForms {
			if bf.indexChecker != nil {
				indexChecker = bf.indexChecker
				break
			}
		}
	}

	allowed := make(map[string]bool, len(n.Props))
	for _, p := range n.Props {
		allowed[p.Name] = true
	}
	for _, bf := range baseForms {
		for k := range bf.allowed {
			allowed[k] = true
		}
	}

	inner := func(v any, ctx diag.Context, strict bool) bool {
		if !value.IsObject(v) {
			return ctx.Fail("", "is not an object", 0, diag.NotObject)
		}
		ok := true
		for _, bf := range baseForms {
			fork := ctx.Fork()
			if !bf.inner(v, fork, strict) {
				ok = false
			}
			ctx.CompleteFork(fork)
		}
		for _, p := range props {
			fork := ctx.Fork()
			val, present := value.Get(v, p.name)
			switch {
			case !present:
				if p.required() {
					fork.Fail("", "is missing", 0, diag.MissingProperty)
					ok = false
				}
			default:
				if !p.checker(val, fork, strict) {
					ok = false
				}
			}
			if fork.Failed() {
				fork.Fail(path.FormatKey(p.name), "", 1, Code{})
			}
			ctx.CompleteFork(fork)
		}
		return ok
	}

	return objForm{inner: inner, allowed: allowed, indexChecker: indexChecker, isObject: true}
}

func (c *compiler) compileIntersectionObjForm(n *IntersectionNode, partial bool) objForm {
	subForms := make([]objForm, len(n.Conjuncts))
	for i, conj := range n.Conjuncts {
		subForms[i] = c.compileObjForm(conj, partial)
	}

	allowed := make(map[string]bool)
	var indexChecker checkerFunc
	anyObject := false
	for _, sf := range subForms {
		if sf.isObject {
			anyObject = true
		}
		for k := range sf.allowed {
			allowed[k] = true
		}
		if indexChecker == nil {
			indexChecker = sf.indexChecker
		}
	}

	inner := func(v any, ctx diag.Context, strict bool) bool {
		ok := true
		for _, sf := range subForms {
			fork := ctx.Fork()
			if !sf.inner(v, fork, strict) {
				ok = false
			}
			ctx.CompleteFork(fork)
		}
		return ok
	}

	return objForm{inner: inner, allowed: allowed, indexChecker: indexChecker, isObject: anyObject}
}

// compileNode compiles every node kind that is never itself object-shaped
// in the sense objForm cares about (Name/Iface/Intersection/Partial are
// handled by compileObjForm and never reach here directly).
func (c *compiler) compileNode(n Node) checkerFunc {
	switch t := n.(type) {
	case *BasicNode:
		return c.compileBasic(t)
	case *LiteralNode:
		return c.compileLiteral(t)
	case *ArrayNode:
		return c.compileArray(t)
	case *TupleNode:
		return c.compileTuple(t)
	case *RestNode:
		c.fail("", fmt.Errorf("%w: used outside a tuple", ErrMisplacedRest))
		return func(any, diag.Context, bool) bool { return true }
	case *UnionNode:
		return c.compileUnion(t)
	case *EnumTypeNode:
		return c.compileEnumType(t)
	case *EnumLiteralNode:
		return c.compileEnumLiteral(t)
	case *OptionalNode:
		return c.compileOptional(t)
	case *FuncNode:
		return c.compileFunc(t)
	case *ParamListNode:
		return c.compileParamList(t)
	default:
		c.fail("", fmt.Errorf("%w: unrecognized node type %T", ErrInternal, n))
		return func(any, diag.Context, bool) bool { return true }
	}
}

func (c *compiler) compileBasic(n *BasicNode) checkerFunc {
	switch n.Kind {
	case BasicAny, BasicUnknown:
		return func(any, diag.Context, bool) bool { return true }
	case BasicNever:
		return func(v any, ctx diag.Context, _ bool) bool {
			return ctx.Fail("", "is never a valid value", 0, diag.WrongType)
		}
	case BasicVoid, BasicUndefined, BasicNull:
		return func(v any, ctx diag.Context, _ bool) bool {
			if v == nil {
				return true
			}
			return ctx.Fail("", "is not "+n.label(), 0, diag.WrongType)
		}
	case BasicString:
		return basicPredicate(value.String, n.label())
	case BasicNumber:
		return basicPredicate(value.Number, n.label())
	case BasicBoolean:
		return basicPredicate(value.Bool, n.label())
	case BasicObject:
		return func(v any, ctx diag.Context, _ bool) bool {
			if value.IsObject(v) {
				return true
			}
			return ctx.Fail("", "is not an object", 0, diag.NotObject)
		}
	case BasicArray:
		return func(v any, ctx diag.Context, _ bool) bool {
			if value.IsSequence(v) {
				return true
			}
			return ctx.Fail("", "is not an array", 0, diag.NotSequence)
		}
	case BasicFunc:
		return func(v any, ctx diag.Context, _ bool) bool {
			if value.IsCallable(v) {
				return true
			}
			return ctx.Fail("", "is not a function", 0, diag.NotCallable)
		}
	case BasicUUIDStr:
		return func(v any, ctx diag.Context, _ bool) bool {
			s, ok := v.(string)
			if ok {
				if _, err := uuid.Parse(s); err == nil {
					return true
				}
			}
			return ctx.Fail("", "is not a well-formed UUID", 0, diag.WrongType)
		}
	case BasicSymbol:
		return basicPredicate(value.SymbolKind, n.label())
	case BasicDate:
		return basicPredicate(value.Date, n.label())
	case BasicRegexp:
		return basicPredicate(value.Regexp, n.label())
	case BasicBuffer:
		return basicPredicate(value.Buffer, n.label())
	case BasicTypedArray:
		return basicPredicate(value.TypedArray, n.label())
	default:
		c.fail("", fmt.Errorf("%w: unrecognized basic kind %d", ErrInternal, n.Kind))
		return func(any, diag.Context, bool) bool { return true }
	}
}

func basicPredicate(want value.Kind, label string) checkerFunc {
	return func(v any, ctx diag.Context, _ bool) bool {
		if value.Classify(v) == want {
			return true
		}
		return ctx.Fail("", "is not "+label, 0, diag.WrongType)
	}
}

func (n *BasicNode) label() string {
	switch n.Kind {
	case BasicString:
		return "a string"
	case BasicNumber:
		return "a number"
	case BasicBoolean:
		return "a boolean"
	case BasicSymbol:
		return "a symbol"
	case BasicDate:
		return "a Date"
	case BasicRegexp:
		return "a RegExp"
	case BasicBuffer:
		return "a buffer"
	case BasicTypedArray:
		return "a typed array"
	case BasicVoid:
		return "void"
	case BasicUndefined:
		return "undefined"
	case BasicNull:
		return "null"
	case BasicUUIDStr:
		return "a well-formed UUID"
	default:
		return "valid"
	}
}

// suiteName is the identifier [Builtin] registers the kind under ("UUID"
// for the UUID kind, which Builtin does not register), used when naming a
// union's alternatives.
func (n *BasicNode) suiteName() string {
	switch n.Kind {
	case BasicString:
		return "string"
	case BasicNumber:
		return "number"
	case BasicBoolean:
		return "boolean"
	case BasicObject:
		return "object"
	case BasicArray:
		return "array"
	case BasicFunc:
		return "function"
	case BasicSymbol:
		return "symbol"
	case BasicDate:
		return "Date"
	case BasicRegexp:
		return "RegExp"
	case BasicBuffer:
		return "buffer"
	case BasicTypedArray:
		return "typed-array"
	case BasicAny:
		return "any"
	case BasicUnknown:
		return "unknown"
	case BasicNever:
		return "never"
	case BasicVoid:
		return "void"
	case BasicUndefined:
		return "undefined"
	case BasicNull:
		return "null"
	case BasicUUIDStr:
		return "UUID"
	default:
		return ""
	}
}

func (c *compiler) compileLiteral(n *LiteralNode) checkerFunc {
	want := n.Value
	return func(v any, ctx diag.Context, _ bool) bool {
		if reflect.DeepEqual(v, want) {
			return true
		}
		// score -1: a literal mismatch (typically a discriminant property
		// in a tagged union) is a weaker diagnostic signal than a
		// structural mismatch found elsewhere in the same branch, so it
		// loses union tie-breaking to a sibling branch that failed on
		// real content.
		return ctx.Fail("", fmt.Sprintf("is not %v", want), -1, diag.WrongType)
	}
}

func (c *compiler) compileArray(n *ArrayNode) checkerFunc {
	elem := c.compile(n.Elem)
	return func(v any, ctx diag.Context, strict bool) bool {
		if !value.IsSequence(v) {
			return ctx.Fail("", "is not an array", 0, diag.NotSequence)
		}
		ok := true
		for i := 0; i < value.Len(v); i++ {
			fork := ctx.Fork()
			if !elem(value.Index(v, i), fork, strict) {
				fork.Fail(path.FormatIndex(i), "", 1, Code{})
				ok = false
			}
			ctx.CompleteFork(fork)
		}
		return ok
	}
}

func (c *compiler) compileTuple(n *TupleNode) checkerFunc {
	elems := n.Elems
	var restElem Node
	if len(elems) > 0 {
		if r, ok := elems[len(elems)-1].(*RestNode); ok {
			restElem = r.Elem
			elems = elems[:len(elems)-1]
		}
	}
	fixed := make([]checkerFunc, len(elems))
	for i, e := range elems {
		fixed[i] = c.compile(e)
	}
	var restChecker checkerFunc
	if restElem != nil {
		restChecker = c.compile(restElem)
	}

	return func(v any, ctx diag.Context, strict bool) bool {
		if !value.IsSequence(v) {
			return ctx.Fail("", "is not an array", 0, diag.NotSequence)
		}
		ln := value.Len(v)
		if ln < len(fixed) {
			return ctx.Fail("", fmt.Sprintf("does not have the required %d elements", len(fixed)), 0, diag.TupleLength)
		}
		ok := true
		for i, fc := range fixed {
			fork := ctx.Fork()
			if !fc(value.Index(v, i), fork, strict) {
				fork.Fail(path.FormatIndex(i), "", 1, Code{})
				ok = false
			}
			ctx.CompleteFork(fork)
		}
		if restChecker != nil {
			for i := len(fixed); i < ln; i++ {
				fork := ctx.Fork()
				if !restChecker(value.Index(v, i), fork, strict) {
					fork.Fail(path.FormatIndex(i), "", 1, Code{})
					ok = false
				}
				ctx.CompleteFork(fork)
			}
		} else if ok && strict && ln > len(fixed) {
			return ctx.Fail(path.FormatIndex(len(fixed)), "is extraneous", 2, diag.TupleLength)
		}
		return ok
	}
}

func (c *compiler) compileUnion(n *UnionNode) checkerFunc {
	alts := make([]checkerFunc, len(n.Alternatives))
	for i, a := range n.Alternatives {
		alts[i] = c.compile(a)
	}
	summary := unionSummary(n.Alternatives)
	return func(v any, ctx diag.Context, strict bool) bool {
		resolver := diag.NewResolver(ctx)
		for _, alt := range alts {
			child := resolver.Child()
			if alt(v, child, strict) {
				return true
			}
		}
		return resolver.Finish(summary, 0, diag.UnionNoMatch)
	}
}

// unionSummary names a union's alternatives for the fallback message
// recorded when no failing branch carries a more specific diagnostic:
// "is none of A, B, C" when the alternatives have names, "is none of
// N types" when none do.
func unionSummary(alts []Node) string {
	names := make([]string, 0, len(alts))
	unnamed := 0
	for _, a := range alts {
		if nm := altName(a); nm != "" {
			names = append(names, nm)
		} else {
			unnamed++
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("is none of %d types", len(alts))
	}
	if unnamed > 0 {
		names = append(names, fmt.Sprintf("%d more", unnamed))
	}
	return "is none of " + strings.Join(names, ", ")
}

func altName(n Node) string {
	switch t := n.(type) {
	case *NameNode:
		return t.Name
	case *IfaceNode:
		return t.Name
	case *EnumTypeNode:
		return t.Name
	case *BasicNode:
		return t.suiteName()
	}
	return ""
}

func (c *compiler) compileEnumType(n *EnumTypeNode) checkerFunc {
	members := n.Members
	return func(v any, ctx diag.Context, _ bool) bool {
		for _, m := range members {
			if reflect.DeepEqual(v, m.Value) {
				return true
			}
		}
		return ctx.Fail("", fmt.Sprintf("is not a member of enum %s", n.Name), -1, diag.NotEnumMember)
	}
}

func (c *compiler) compileEnumLiteral(n *EnumLiteralNode) checkerFunc {
	target, ok := c.suite[n.TypeName]
	if !ok {
		c.fail(n.TypeName, ErrUnresolvedName)
		return func(any, diag.Context, bool) bool { return true }
	}
	for hops := 0; ; hops++ {
		nm, isName := target.(*NameNode)
		if !isName {
			break
		}
		if hops > len(c.suite) {
			c.fail(n.TypeName, fmt.Errorf("%w: cyclic name alias", ErrMalformedEnumLiteral))
			return func(any, diag.Context, bool) bool { return true }
		}
		if target, ok = c.suite[nm.Name]; !ok {
			c.fail(nm.Name, ErrUnresolvedName)
			return func(any, diag.Context, bool) bool { return true }
		}
	}
	enumType, ok := target.(*EnumTypeNode)
	if !ok {
		c.fail(n.TypeName, fmt.Errorf("%w: not an enum type", ErrMalformedEnumLiteral))
		return func(any, diag.Context, bool) bool { return true }
	}
	var want any
	found := false
	for _, m := range enumType.Members {
		if m.Name == n.Member {
			want = m.Value
			found = true
			break
		}
	}
	if !found {
		c.fail(n.TypeName, fmt.Errorf("%w: %q has no member %q", ErrMalformedEnumLiteral, n.TypeName, n.Member))
		return func(any, diag.Context, bool) bool { return true }
	}
	return func(v any, ctx diag.Context, _ bool) bool {
		if reflect.DeepEqual(v, want) {
			return true
		}
		return ctx.Fail("", fmt.Sprintf("is not %s.%s", n.TypeName, n.Member), -1, diag.NotEnumMember)
	}
}

func (c *compiler) compileOptional(n *OptionalNode) checkerFunc {
	inner := c.compile(n.Of)
	return func(v any, ctx diag.Context, strict bool) bool {
		if v == nil {
			return true
		}
		return inner(v, ctx, strict)
	}
}

// findFoldCollision reports the first pair of an interface's own
// properties whose names are distinct but fold to the same identifier
// (full-width/half-width and case differences collapsed), catching
// "userId" and "userid" declared side by side on the same type — almost
// certainly a typo rather than two distinct properties.
func findFoldCollision(props []Prop) (a, b string, collides bool) {
	seen := make(map[string]string, len(props))
	for _, p := range props {
		key := foldPropName(p.Name)
		if other, ok := seen[key]; ok && other != p.Name {
			return other, p.Name, true
		}
		seen[key] = p.Name
	}
	return "", "", false
}

// foldPropName normalizes a property name for collision comparison: full-
// width Unicode letters/digits fold to their narrow form (mirroring path's
// isIdentifierSafe), then the result is Unicode case-folded. A fresh Caser
// is built per call since cases.Caser is not documented safe for
// concurrent reuse and CreateCheckers may run from more than one
// goroutine.
func foldPropName(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if n := width.LookupRune(r).Narrow(); n != 0 {
			r = n
		}
		sb.WriteRune(r)
	}
	return cases.Fold().String(sb.String())
}

func (c *compiler) compileFunc(n *FuncNode) checkerFunc {
	return func(v any, ctx diag.Context, _ bool) bool {
		if value.IsCallable(v) {
			return true
		}
		return ctx.Fail("", "is not a function", 0, diag.NotCallable)
	}
}

// compileParamList compiles a ParamListNode the way a Tuple compiles,
// except positions report their declared parameter name on failure rather
// than a bare index, and a missing required parameter is distinguished from
// a wrong-typed one. A parameter is required iff its type rejects the
// absent argument in that position (wrap it in Opt to make it omissible).
func (c *compiler) compileParamList(n *ParamListNode) checkerFunc {
	type compiledParam struct {
		name     string
		checker  checkerFunc
		required func() bool
	}
	params := make([]compiledParam, len(n.Params))
	for i, p := range n.Params {
		checker := c.compile(p.Type)
		_, opt := p.Type.(*OptionalNode)
		params[i] = compiledParam{
			name:    p.Name,
			checker: checker,
			required: sync.OnceValue(func() bool {
				return !opt && !checker(nil, diag.Noop, false)
			}),
		}
	}

	return func(v any, ctx diag.Context, strict bool) bool {
		if !value.IsSequence(v) {
			return ctx.Fail("", "is not an argument list", 0, diag.NotSequence)
		}
		ln := value.Len(v)
		ok := true
		for i, p := range params {
			fork := ctx.Fork()
			switch {
			case i >= ln:
				if p.required() {
					fork.Fail("", "is missing", 0, diag.MissingProperty)
					fork.Fail(path.FormatKey(p.name), "", 1, Code{})
					ok = false
				}
			case !p.checker(value.Index(v, i), fork, strict):
				fork.Fail(path.FormatKey(p.name), "", 1, Code{})
				ok = false
			}
			ctx.CompleteFork(fork)
		}
		if ok && strict && ln > len(params) {
			return ctx.Fail(path.FormatIndex(len(params)), "is extraneous", 2, diag.TupleLength)
		}
		return ok
	}
}
