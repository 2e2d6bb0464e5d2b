package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/typeguard/diag"
	"github.com/arborist-go/typeguard/path"
)

func TestDetail_LeafFailureRendersPath(t *testing.T) {
	d := diag.NewDetail("value", 0)

	leaf := d.Fork()
	leaf.Fail("", "is not a string", 0, diag.WrongType)
	leaf.Fail(path.FormatKey("zip"), "", 1, diag.Code{})
	leaf.Fail(path.FormatKey("addresses"), "", 1, diag.Code{}) // simulate one more wrap level
	d.CompleteFork(leaf)

	require.True(t, d.Failed())
	require.Equal(t, "value.addresses.zip is not a string", d.Error())
}

func TestDetail_FirstForkWinsMessage(t *testing.T) {
	d := diag.NewDetail("value", 0)

	first := d.Fork()
	first.Fail("", "is missing", 0, diag.MissingProperty)
	d.CompleteFork(first)

	second := d.Fork()
	second.Fail("", "is not a number", 0, diag.WrongType)
	d.CompleteFork(second)

	require.True(t, d.Failed())
	require.Equal(t, "is missing", d.Message())
}

func TestDetail_SucceedingForkDoesNotMarkFailed(t *testing.T) {
	d := diag.NewDetail("value", 0)
	fork := d.Fork()
	// fork never has Fail called on it: the sub-check passed.
	d.CompleteFork(fork)
	require.False(t, d.Failed())
}

func TestDetail_SiblingFailuresBecomeParallelDetails(t *testing.T) {
	d := diag.NewDetail("value", 0)

	first := d.Fork()
	first.Fail("", "is missing", 0, diag.MissingProperty)
	first.Fail(path.FormatKey("name"), "", 1, diag.Code{})
	d.CompleteFork(first)

	second := d.Fork()
	second.Fail("", "is missing", 0, diag.MissingProperty)
	second.Fail(path.FormatKey("age"), "", 1, diag.Code{})
	d.CompleteFork(second)

	details := d.Details()
	require.Len(t, details, 2)
	require.Equal(t, "value.name", details[0].Path)
	require.Equal(t, "value.age", details[1].Path)
}
