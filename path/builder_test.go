package path_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/typeguard/path"
)

func TestBuilder_RootOnly(t *testing.T) {
	require.Equal(t, "value", path.NewRoot("value").String())
	require.Equal(t, "root", path.NewRoot("root").String())
}

func TestBuilder_KeyDotNotation(t *testing.T) {
	p := path.NewRoot("value").Key("addresses").Index(2).Key("zip")
	require.Equal(t, "value.addresses[2].zip", p.String())
}

func TestBuilder_KeyBracketNotation(t *testing.T) {
	p := path.NewRoot("value").Key("with spaces")
	require.Equal(t, `value["with spaces"]`, p.String())
}

func TestBuilder_FullWidthIdentifier(t *testing.T) {
	// Full-width Latin letters (U+FF21-FF5A) fold to their ASCII narrow
	// form before the identifier-safety test runs.
	p := path.NewRoot("value").Key("ｕｓｅｒ")
	require.Equal(t, "value.ｕｓｅｒ", p.String())
}

func TestBuilder_Immutable(t *testing.T) {
	root := path.NewRoot("value")
	a := root.Key("a")
	b := root.Key("b")
	require.Equal(t, "value.a", a.String())
	require.Equal(t, "value.b", b.String())
	require.Equal(t, "value", root.String())
}

func TestBuilder_Len(t *testing.T) {
	require.Equal(t, 0, path.NewRoot("value").Len())
	require.Equal(t, 2, path.NewRoot("value").Key("a").Index(0).Len())
}

func TestFormatKeyAndIndex(t *testing.T) {
	require.Equal(t, ".name", path.FormatKey("name"))
	require.Equal(t, `["2bad"]`, path.FormatKey("2bad"))
	require.Equal(t, "[5]", path.FormatIndex(5))
}
