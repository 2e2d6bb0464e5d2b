package tcheck

import (
	"errors"
	"fmt"

	"github.com/arborist-go/typeguard/diag"
)

// ErrorDetail is one entry of a failed validation: the path at which it
// occurred and the message describing why. Aliased from package diag so
// callers never need to import it directly.
type ErrorDetail = diag.ErrorDetail

// Sentinel errors for compile-time graph problems, wrapped into a
// CompileError so callers can both pattern-match with errors.Is and read
// which type the problem was found in.
var (
	// ErrUnresolvedName indicates a Name node references an identifier
	// no suite being compiled together defines.
	ErrUnresolvedName = errors.New("unresolved type name")

	// ErrMalformedEnumLiteral indicates an EnumLiteral node names a
	// member an EnumType it resolves to does not declare.
	ErrMalformedEnumLiteral = errors.New("malformed enum literal")

	// ErrMisplacedRest indicates a Rest node appears anywhere but the
	// final slot of a Tuple.
	ErrMisplacedRest = errors.New("rest element must be the last tuple element")

	// ErrUnknownProperty indicates GetProp/MethodArgs/MethodResult was
	// asked for a property name the interface does not declare, directly
	// or via a base.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrNotAFunction indicates MethodArgs/MethodResult/GetArgs/GetResult
	// was called against a type whose resolved node is not a Func.
	ErrNotAFunction = errors.New("not a function type")

	// ErrCollidingPropertyNames indicates an Iface declares two own
	// properties whose names differ only by case or full-width/half-width
	// form, almost always a typo rather than two intended properties.
	ErrCollidingPropertyNames = errors.New("colliding property names")

	// ErrInternal marks a defect in the compiler itself — an invariant
	// that should be impossible to violate through the public
	// constructors. Use errors.Is(err, ErrInternal) to detect it.
	ErrInternal = errors.New("internal checker error")
)

// CompileError reports a problem found while compiling a type graph into a
// checker, before any value has been tested against it.
type CompileError struct {
	// TypeName is the suite-level name being compiled when the problem
	// was found, or "" if the problem was found in an anonymous node.
	TypeName string
	Cause    error
}

func (e *CompileError) Error() string {
	if e.TypeName == "" {
		return fmt.Sprintf("compiling type: %v", e.Cause)
	}
	return fmt.Sprintf("compiling %q: %v", e.TypeName, e.Cause)
}

func (e *CompileError) Unwrap() error { return e.Cause }

func compileErrorf(typeName string, cause error) *CompileError {
	return &CompileError{TypeName: typeName, Cause: cause}
}

// ValidationError is returned by Check/StrictCheck when a value fails
// validation: the semantic failure that Test reports as false and Validate
// as a non-nil detail list is represented as ValidationError; any other
// error returned from this
// package is a system/programmer error (a CompileError, or an
// *InternalError from a recovered panic).
type ValidationError struct {
	Path    string
	Message string
	Details []ErrorDetail
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return e.Path + " failed validation"
	}
	return e.Path + " " + e.Message
}

// InternalErrorKind classifies a recovered panic for programmatic
// handling.
type InternalErrorKind int

const (
	// KindCheckerPanic indicates a panic escaped from a compiled checker
	// closure while testing a value, a defect in the checker itself rather
	// than a property of the value under test.
	KindCheckerPanic InternalErrorKind = iota
)

func (k InternalErrorKind) String() string {
	switch k {
	case KindCheckerPanic:
		return "checker panic"
	default:
		return "unknown"
	}
}

// InternalError wraps a recovered panic with enough context to debug it.
type InternalError struct {
	Kind  InternalErrorKind
	Cause error
}

func (e *InternalError) Error() string {
	return e.Kind.String() + ": " + e.Cause.Error()
}

func (e *InternalError) Unwrap() error { return e.Cause }

func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}

func wrapPanicValue(r any, kind InternalErrorKind) *InternalError {
	if r == nil {
		return nil
	}
	var cause error
	switch v := r.(type) {
	case error:
		cause = v
	case string:
		cause = errors.New(v)
	default:
		cause = fmt.Errorf("panic: %v", v)
	}
	return &InternalError{Kind: kind, Cause: cause}
}
