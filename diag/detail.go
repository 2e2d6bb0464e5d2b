package diag

import (
	"github.com/arborist-go/typeguard/path"
)

// ErrorDetail is one entry of a validation failure: the rendered path to
// the offending value and why it was rejected.
type ErrorDetail struct {
	Path    string
	Message string
}

// extra is a failure kept alongside the primary one: a sibling property/
// conjunct that also failed, or a union alternative that tied with the
// winning branch for deepest/highest-scoring failure.
type extra struct {
	keys    []string
	message string
}

// Detail is the Context used by Validate/Check: it records the deepest
// reachable failure as a path (built leaf-first, then reversed at render
// time) plus a message, and keeps parallel failures (failing siblings,
// unresolved union ties) as additional entries, up to its limit.
type Detail struct {
	root     string
	limit    int
	keys     []string
	message  string
	score    int
	cumScore int
	code     Code
	failed   bool
	extras   []extra
}

// NewDetail returns a fresh Detail context reporting paths rooted at root.
// limit caps how many parallel entries (failing siblings and tied union
// branches) are retained beside the primary failure (0 means unlimited);
// it protects wide unions and objects from unbounded memory growth.
func NewDetail(root string, limit int) *Detail {
	return &Detail{root: root, limit: limit}
}

func (d *Detail) Fail(key, message string, score int, c Code) bool {
	d.failed = true
	d.cumScore += score
	if key != "" {
		d.keys = append([]string{key}, d.keys...)
		for i := range d.extras {
			d.extras[i].keys = append([]string{key}, d.extras[i].keys...)
		}
	}
	if message != "" && d.message == "" {
		d.message = message
		d.score = score
		d.code = c
	}
	return false
}

func (d *Detail) Fork() Context {
	return &Detail{root: d.root, limit: d.limit}
}

func (d *Detail) CompleteFork(fork Context) bool {
	child, ok := fork.(*Detail)
	if !ok || !child.failed {
		return true
	}
	d.failed = true
	if d.message == "" {
		// Only the fork that supplies the primary failure adds its score,
		// so cumScore follows one failure chain instead of growing with
		// every failing sibling.
		d.cumScore += child.cumScore
		d.message = child.message
		d.score = child.score
		d.code = child.code
		d.keys = append(d.keys, child.keys...)
	} else if child.message != "" {
		// The primary slot is taken by an earlier sibling: keep this
		// fork's failure as a parallel entry instead of dropping it.
		d.absorbExtras([]extra{{keys: child.keys, message: child.message}})
	}
	d.absorbExtras(child.extras)
	return true
}

func (d *Detail) Failed() bool { return d.failed }

// depth is the number of structural descent steps recorded: how many
// property/index segments separate this failure from the point it was
// forked at.
func (d *Detail) depth() int { return len(d.keys) }

func (d *Detail) absorbExtras(more []extra) {
	if len(more) == 0 {
		return
	}
	d.extras = append(d.extras, more...)
	if d.limit > 0 && len(d.extras) > d.limit {
		d.extras = d.extras[:d.limit]
	}
}

// Path renders the full path of the primary recorded failure.
func (d *Detail) Path() string {
	return renderPath(d.root, d.keys)
}

// Message returns the primary recorded failure message, or "" if none was
// recorded.
func (d *Detail) Message() string {
	return d.message
}

// Code returns the stable code of the primary recorded failure.
func (d *Detail) Code() Code {
	return d.code
}

// Error returns a single combined "path message" string, the shape Check
// wraps into a Go error. Returns "" if nothing failed.
func (d *Detail) Error() string {
	if !d.failed {
		return ""
	}
	if d.message == "" {
		return d.Path() + " failed validation"
	}
	return d.Path() + " " + d.message
}

// Details returns one ErrorDetail per recorded failure: the primary one
// first, then every parallel entry — failing sibling properties/conjuncts,
// and union alternatives that tied with the winning branch.
func (d *Detail) Details() []ErrorDetail {
	if !d.failed {
		return nil
	}
	out := make([]ErrorDetail, 0, 1+len(d.extras))
	out = append(out, ErrorDetail{Path: d.Path(), Message: d.message})
	for _, e := range d.extras {
		out = append(out, ErrorDetail{
			Path:    renderPath(d.root, e.keys),
			Message: e.message,
		})
	}
	return out
}

func renderPath(root string, keys []string) string {
	b := path.NewRoot(root)
	for _, k := range keys {
		b = b.Raw(k)
	}
	return b.String()
}
