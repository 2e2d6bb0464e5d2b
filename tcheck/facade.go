package tcheck

import (
	"fmt"

	"github.com/arborist-go/typeguard/path"
)

// GetProp returns a new Checker bound to the type of the named property of
// the bound type, which must resolve (directly, or through Name/
// Intersection/Partial indirection) to an Iface. The returned Checker
// reports paths rooted at this Checker's current reported path with
// ".name" (or "[\"name\"]") appended.
func (c *Checker) GetProp(name string) (*Checker, error) {
	propType, optional, ok := findProp(c.suite, c.node, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no property %q", ErrUnknownProperty, c.name, name)
	}
	if optional {
		propType = Opt(propType)
	}
	return c.childFor(propType, path.NewRoot(c.reportedPath).Key(name).String())
}

// MethodArgs returns a Checker validating an argument list (an ordered
// sequence) against the named property's parameter list. The named
// property must resolve to a Func.
func (c *Checker) MethodArgs(name string) (*Checker, error) {
	propType, _, ok := findProp(c.suite, c.node, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no property %q", ErrUnknownProperty, c.name, name)
	}
	fn, err := resolveFunc(c.suite, propType)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", name, err)
	}
	params := fn.Params
	if params == nil {
		params = &ParamListNode{}
	}
	return c.childFor(params, path.NewRoot(c.reportedPath).Key(name).String()+"()")
}

// MethodResult returns a Checker bound to the result type of the named
// property, which must resolve to a Func.
func (c *Checker) MethodResult(name string) (*Checker, error) {
	propType, _, ok := findProp(c.suite, c.node, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no property %q", ErrUnknownProperty, c.name, name)
	}
	fn, err := resolveFunc(c.suite, propType)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", name, err)
	}
	return c.childFor(fn.Result, path.NewRoot(c.reportedPath).Key(name).String()+"()")
}

// GetArgs returns a Checker validating an argument list against the bound
// type's parameter list. The bound type must itself resolve to a Func.
func (c *Checker) GetArgs() (*Checker, error) {
	fn, err := resolveFunc(c.suite, c.node)
	if err != nil {
		return nil, fmt.Errorf("getArgs() on %q: %w", c.name, err)
	}
	params := fn.Params
	if params == nil {
		params = &ParamListNode{}
	}
	return c.childFor(params, c.reportedPath+"()")
}

// GetResult returns a Checker bound to the bound type's result type. The
// bound type must itself resolve to a Func.
func (c *Checker) GetResult() (*Checker, error) {
	fn, err := resolveFunc(c.suite, c.node)
	if err != nil {
		return nil, fmt.Errorf("getResult() on %q: %w", c.name, err)
	}
	return c.childFor(fn.Result, c.reportedPath+"()")
}

func (c *Checker) childFor(n Node, reportedPath string) (*Checker, error) {
	run, err := compileStandalone(c.suite, c.logger, n)
	if err != nil {
		return nil, err
	}
	return &Checker{
		name:         reportedPath,
		node:         n,
		suite:        c.suite,
		suiteStamp:   c.suiteStamp,
		run:          run,
		logger:       c.logger,
		issueLimit:   c.issueLimit,
		reportedPath: reportedPath,
	}, nil
}

// findProp searches n (following Name/Intersection/Partial indirection) for
// a property named name, depth-first through own properties before bases,
// the way an Iface's allowedProps accumulates during compilation. optional
// reports whether the property (or the Partial wrapping it) makes it
// omissible.
func findProp(suite Suite, n Node, name string) (typ Node, optional bool, found bool) {
	switch t := n.(type) {
	case *NameNode:
		target, ok := suite[t.Name]
		if !ok {
			return nil, false, false
		}
		return findProp(suite, target, name)
	case *IfaceNode:
		for _, p := range t.Props {
			if p.Name == name {
				return p.Type, p.Optional, true
			}
		}
		for _, b := range t.Bases {
			if typ, optional, found = findProp(suite, b, name); found {
				return
			}
		}
		return nil, false, false
	case *IntersectionNode:
		for _, conj := range t.Conjuncts {
			if typ, optional, found = findProp(suite, conj, name); found {
				return
			}
		}
		return nil, false, false
	case *PartialNode:
		typ, _, found = findProp(suite, t.Of, name)
		return typ, true, found
	default:
		return nil, false, false
	}
}

// resolveFunc follows Name indirection to find the *FuncNode n resolves to,
// failing with ErrNotAFunction if the chain terminates in anything else.
func resolveFunc(suite Suite, n Node) (*FuncNode, error) {
	switch t := n.(type) {
	case *NameNode:
		target, ok := suite[t.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedName, t.Name)
		}
		return resolveFunc(suite, target)
	case *OptionalNode:
		return resolveFunc(suite, t.Of)
	case *FuncNode:
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotAFunction, n)
	}
}
