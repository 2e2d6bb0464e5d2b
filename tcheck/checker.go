package tcheck

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/arborist-go/typeguard/diag"
)

// Checker is the public facade bound to one named type: Check/Test/Validate
// plus their strict counterparts, and the navigation operations (GetProp,
// MethodArgs, MethodResult, GetArgs, GetResult, GetType).
//
// A Checker's compiled checker function is immutable and safe to call
// concurrently from multiple goroutines provided each call supplies its own
// diagnostic context, which Test/Validate/Check always do internally.
// SetReportedPath mutates the Checker's own root-path field and is not
// itself concurrency-safe; call it once at setup time, before sharing the
// Checker across goroutines.
type Checker struct {
	name         string
	node         Node
	suite        Suite
	suiteStamp   uuid.UUID
	run          checkerFunc
	logger       *slog.Logger
	issueLimit   int
	reportedPath string
}

// CreateCheckers compiles every type named across suites (layered over
// [Builtin], later suites overriding earlier ones and Builtin on name
// collision) and returns one [Checker] per name. Compilation fails fast on
// the first unresolved Name, malformed EnumLiteral, or misplaced Rest found
// anywhere in the merged graph; the returned error is a *[CompileError].
func CreateCheckers(suites []Suite, opts ...Option) (map[string]*Checker, error) {
	cfg := applyOptions(opts)

	merged := Builtin()
	for _, s := range suites {
		for name := range s {
			if _, exists := merged[name]; exists {
				cfg.logger.Warn("suite entry shadows an earlier definition", "name", name)
			}
		}
		merged = merged.Merge(s)
	}
	stamp := merged.Stamp()
	cfg.logger.Debug("compiling suite", "stamp", stamp, "names", len(merged))

	c := newCompiler(merged, cfg.logger)
	runs := make(map[string]checkerFunc, len(merged))
	for name, node := range merged.All() {
		runs[name] = c.compile(node)
		if c.err != nil {
			return nil, c.err
		}
	}

	out := make(map[string]*Checker, len(runs))
	for name, run := range runs {
		out[name] = &Checker{
			name:         name,
			node:         merged[name],
			suite:        merged,
			suiteStamp:   stamp,
			run:          run,
			logger:       cfg.logger,
			issueLimit:   cfg.issueLimit,
			reportedPath: cfg.reportedPath,
		}
	}
	return out, nil
}

// compileStandalone compiles a single anonymous node against suite, for use
// by navigation operations (GetProp, MethodArgs, ...) that construct a
// Checker for a type not itself named at the top level of the suite.
func compileStandalone(suite Suite, logger *slog.Logger, n Node) (checkerFunc, error) {
	c := newCompiler(suite, logger)
	run := c.compile(n)
	if c.err != nil {
		return nil, c.err
	}
	return run, nil
}

func (c *Checker) detailCtx() *diag.Detail {
	return diag.NewDetail(c.reportedPath, c.issueLimit)
}

// Test reports whether v conforms to the bound type in plain mode (unknown
// object properties and excess tuple elements are tolerated). It never
// allocates a diagnostic context and never returns an error. A panic escaping
// the compiled checker (see [InternalError]) is treated as a failed test,
// since Test's contract never surfaces an error value.
func (c *Checker) Test(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return c.run(v, diag.Noop, false)
}

// StrictTest is Test, but unknown object properties and excess tuple
// elements not covered by an index signature are rejected.
func (c *Checker) StrictTest(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return c.run(v, diag.Noop, true)
}

// Validate reports every detail of why v fails to conform in plain mode, or
// nil if it conforms. Per union branch ties, more than one detail may be
// returned for a single top-level failure.
func (c *Checker) Validate(v any) []ErrorDetail {
	details, _ := c.safeValidate(v, false)
	return details
}

// StrictValidate is Validate in strict mode.
func (c *Checker) StrictValidate(v any) []ErrorDetail {
	details, _ := c.safeValidate(v, true)
	return details
}

// safeValidate runs the compiled checker in a Detail context, recovering a
// panic escaping the closure (a defect in the checker, per
// [KindCheckerPanic]) into panicErr rather than letting it propagate past the
// public API. Check/StrictCheck surface panicErr distinctly from an ordinary
// *ValidationError; Validate/StrictValidate, which never return an error,
// report it as an ordinary failed-validation detail.
func (c *Checker) safeValidate(v any, strict bool) (details []ErrorDetail, panicErr error) {
	defer func() {
		if r := recover(); r != nil {
			panicErr = wrapPanicValue(r, KindCheckerPanic)
			details = []ErrorDetail{{Path: c.reportedPath, Message: panicErr.Error()}}
		}
	}()
	ctx := c.detailCtx()
	if c.run(v, ctx, strict) {
		return nil, nil
	}
	return ctx.Details(), nil
}

// Check returns nil if v conforms in plain mode, a *[InternalError] if a
// panic escaped the compiled checker, or a *[ValidationError] naming the
// offending sub-path and carrying the full detail list otherwise.
func (c *Checker) Check(v any) error {
	details, panicErr := c.safeValidate(v, false)
	if panicErr != nil {
		return panicErr
	}
	return detailsToErr(details)
}

// StrictCheck is Check in strict mode.
func (c *Checker) StrictCheck(v any) error {
	details, panicErr := c.safeValidate(v, true)
	if panicErr != nil {
		return panicErr
	}
	return detailsToErr(details)
}

func detailsToErr(details []ErrorDetail) error {
	if len(details) == 0 {
		return nil
	}
	return &ValidationError{Path: details[0].Path, Message: details[0].Message, Details: details}
}

// SetReportedPath overrides the root path segment this Checker's
// Validate/Check render paths under (default "value"). Returns the
// receiver so calls can be chained after CreateCheckers.
func (c *Checker) SetReportedPath(root string) *Checker {
	if root != "" {
		c.reportedPath = root
	}
	return c
}

// GetType returns the type node this Checker is bound to.
func (c *Checker) GetType() Node {
	return c.node
}

// SuiteStamp returns the identity of the merged suite this Checker was
// compiled from. Two Checkers share a SuiteStamp only if they came out of
// the same CreateCheckers call, which lets a caller correlate log lines
// or a process-wide cache entry back to one compilation.
func (c *Checker) SuiteStamp() uuid.UUID {
	return c.suiteStamp
}
