// Package diag provides the diagnostic contexts a compiled checker runs
// against.
//
// Every checker closure has the shape func(v any, ctx Context, strict bool)
// bool. The returned bool is always the authoritative pass/fail answer, for
// every Context implementation — a context only accumulates detail on the
// side, so callers that want a plain yes/no (Test) can pass [Noop] and pay no
// allocation cost, while callers that want a diagnostic (Validate, Check)
// pass a [Detail] context and read it back afterward with [Detail.Error]
// or [Detail.Details].
//
// # Forking
//
// Structural nodes that evaluate more than one sub-check against the same
// context — an interface's base types and own properties, an
// intersection's conjuncts — isolate each sub-check in a forked context via
// [Context.Fork], then merge the fork back with [Context.CompleteFork]. The
// first fork to record a failure wins the primary message; later failing
// forks are kept as parallel detail entries, so Validate lists every
// sibling failure rather than just the first, up to the Detail's limit.
//
// A union node's checker additionally uses [NewResolver] to run each
// alternative in its own fork and, once every alternative has failed, grafts
// the alternative whose failure reached the greatest depth (ties broken by
// cumulative score, then by evaluation order) into the parent context; when
// no branch got past a flat wrong-kind mismatch, the union's own summary
// message is recorded instead.
package diag
