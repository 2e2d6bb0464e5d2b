package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/typeguard/diag"
)

func TestNoop_NeverRecords(t *testing.T) {
	ok := diag.Noop.Fail(".x", "is not a string", 0, diag.WrongType)
	require.False(t, ok)
	require.False(t, diag.Noop.Failed())

	fork := diag.Noop.Fork()
	require.Equal(t, diag.Noop, fork)
	require.True(t, diag.Noop.CompleteFork(fork))
}
