package diag

// Resolver drives a Union node's checker: each alternative is evaluated in
// its own fork via Child, and once every alternative has failed, Finish
// grafts the most informative one into the parent context.
type Resolver struct {
	parent   Context
	children []Context
}

// NewResolver returns a Resolver that forks children from parent.
func NewResolver(parent Context) *Resolver {
	return &Resolver{parent: parent}
}

// Child returns a fresh isolated context for one union alternative.
func (r *Resolver) Child() Context {
	c := r.parent.Fork()
	r.children = append(r.children, c)
	return c
}

// Finish is called once every alternative has returned false. It grafts the
// alternative whose failure reached the greatest depth into the parent
// context — ties broken by cumulative score, then by evaluation order — and
// records any other exact ties as competing branches. summary/summaryScore
// take over when no branch carries a positive cumulative score (a flat
// wrong-kind mismatch, or a discriminant-literal miss, where every branch
// is equally uninformative), and when no *Detail children exist to compare
// (an empty union, or a Noop parent). Finish always returns false.
func (r *Resolver) Finish(summary string, summaryScore int, code Code) bool {
	best := -1
	bestDepth, bestScore := 0, 0
	for i, c := range r.children {
		dc, ok := c.(*Detail)
		if !ok || !dc.failed {
			continue
		}
		depth := dc.depth()
		if best == -1 || depth > bestDepth || (depth == bestDepth && dc.cumScore > bestScore) {
			best = i
			bestDepth = depth
			bestScore = dc.cumScore
		}
	}

	if best == -1 || bestScore <= 0 {
		return r.parent.Fail("", summary, summaryScore, code)
	}

	winner := r.children[best].(*Detail)
	var ties []extra
	for i, c := range r.children {
		if i == best {
			continue
		}
		dc, ok := c.(*Detail)
		if !ok || !dc.failed {
			continue
		}
		if dc.depth() == bestDepth && dc.cumScore == bestScore {
			ties = append(ties, extra{keys: dc.keys, message: dc.message})
		}
	}

	r.parent.CompleteFork(winner)
	if dp, ok := r.parent.(*Detail); ok {
		dp.absorbExtras(ties)
	}
	return false
}
