package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/typeguard/diag"
	"github.com/arborist-go/typeguard/path"
)

func TestResolver_PicksDeepestAlternative(t *testing.T) {
	d := diag.NewDetail("value", 0)
	r := diag.NewResolver(d)

	shallow := r.Child()
	shallow.Fail("", "is not a string", 0, diag.WrongType)

	deep := r.Child()
	deep.Fail("", "is not a number", 0, diag.WrongType)
	deep.Fail(path.FormatKey("id"), "", 1, diag.Code{})

	ok := r.Finish("did not match any alternative", 0, diag.UnionNoMatch)
	require.False(t, ok)
	require.True(t, d.Failed())
	require.Equal(t, "value.id is not a number", d.Error())
}

func TestResolver_TieBreaksByScoreThenExtras(t *testing.T) {
	d := diag.NewDetail("value", 0)
	r := diag.NewResolver(d)

	a := r.Child()
	a.Fail("", "is not a string", 5, diag.WrongType)

	b := r.Child()
	b.Fail("", "is not a number", 5, diag.WrongType)

	r.Finish("no match", 0, diag.UnionNoMatch)

	require.True(t, d.Failed())
	require.Equal(t, "is not a string", d.Message())
	details := d.Details()
	require.Len(t, details, 2)
	require.Equal(t, "is not a number", details[1].Message)
}

func TestResolver_NoAlternativesFallsBackToSummary(t *testing.T) {
	d := diag.NewDetail("value", 0)
	r := diag.NewResolver(d)
	r.Finish("matched no alternative", 0, diag.UnionNoMatch)
	require.True(t, d.Failed())
	require.Equal(t, "matched no alternative", d.Message())
}

func TestResolver_NoopParentStaysNoop(t *testing.T) {
	r := diag.NewResolver(diag.Noop)
	child := r.Child()
	child.Fail("", "is not a string", 0, diag.WrongType)
	ok := r.Finish("no match", 0, diag.UnionNoMatch)
	require.False(t, ok)
}
