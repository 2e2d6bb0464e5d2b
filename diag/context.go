package diag

// Context is what a compiled checker records failures into. Every checker
// has the shape func(v any, ctx Context, strict bool) bool; ctx.Fail always
// returns false, so a checker can write "return ctx.Fail(...)" as its
// failing exit.
type Context interface {
	// Fail records a failure at the current position and returns false.
	// key is an already-rendered path segment (".name" or "[3]") or "" when
	// the failure concerns the current position itself, not a child of it.
	// message is the human-readable reason, or "" when this call is only
	// annotating an already-recorded deeper failure with its enclosing key.
	Fail(key, message string, score int, code Code) bool

	// Fork returns a fresh, isolated context of the same kind (Noop forks
	// to Noop, Detail forks to a new empty Detail) for evaluating one
	// sub-check whose failure should not contaminate sibling sub-checks.
	Fork() Context

	// CompleteFork merges a context obtained from Fork back into the
	// receiver. The first fork to carry a message wins it; later forks
	// still mark the receiver failed so Intersection/Iface can still
	// report overall failure even when their message came from elsewhere.
	// The return value reports whether the caller should keep evaluating
	// remaining sub-checks (always true for both context kinds here: a
	// structural "not an object"/"not an array" mismatch is reported
	// directly via Fail before any fork is created, so CompleteFork never
	// needs to short-circuit the caller).
	CompleteFork(fork Context) bool

	// Failed reports whether this context (or a fork merged into it) has
	// recorded a failure.
	Failed() bool
}

// noopContext is the zero-allocation context used by Test: the bool chain
// through checker return values is the entire signal, nothing is recorded.
type noopContext struct{}

// Noop is the shared Context used when only a boolean answer is needed.
var Noop Context = noopContext{}

func (noopContext) Fail(string, string, int, Code) bool { return false }
func (noopContext) Fork() Context                       { return Noop }
func (noopContext) CompleteFork(Context) bool           { return true }
func (noopContext) Failed() bool                        { return false }
