package value_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/typeguard/internal/value"
)

type fakeRegexp struct{ pattern string }

func (f fakeRegexp) MatchString(s string) bool { return s == f.pattern }
func (f fakeRegexp) String() string            { return f.pattern }

func TestClassify_BaseKinds(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  value.Kind
	}{
		{"nil", nil, value.Nil},
		{"bool true", true, value.Bool},
		{"bool false", false, value.Bool},
		{"string", "hello", value.String},
		{"int", 42, value.Number},
		{"int64", int64(42), value.Number},
		{"uint", uint(42), value.Number},
		{"float64", 3.14, value.Number},
		{"map object", map[string]any{"a": 1}, value.Object},
		{"non-string-keyed map", map[int]string{1: "a"}, value.Unknown},
		{"struct", struct{ X int }{1}, value.Unknown},
		{"slice array", []any{1, 2, 3}, value.Array},
		{"string slice", []string{"a", "b"}, value.Array},
		{"byte buffer", []byte("hi"), value.Buffer},
		{"typed array ints", []int{1, 2, 3}, value.TypedArray},
		{"typed array floats", []float64{1.5, 2.5}, value.TypedArray},
		{"func", func() {}, value.Func},
		{"symbol", value.NewSymbol(), value.SymbolKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, value.Classify(tt.input))
		})
	}
}

func TestClassify_NativeTags_AreStructural(t *testing.T) {
	require.Equal(t, value.Date, value.Classify(time.Now()))
	require.Equal(t, value.Date, value.Classify(&timeLike{}), "duck-typed Date should classify via structural tag")

	require.Equal(t, value.Regexp, value.Classify(fakeRegexp{pattern: "a.*b"}),
		"a value exposing MatchString/String should classify as RegExp without importing regexp")
}

type timeLike struct{}

func (timeLike) Unix() int64 { return 0 }

func TestClassify_PointerDereference(t *testing.T) {
	n := 5
	require.Equal(t, value.Number, value.Classify(&n))

	var nilPtr *int
	require.Equal(t, value.Nil, value.Classify(nilPtr))
}

func TestSymbol_IdentityNotContent(t *testing.T) {
	a := value.NewSymbol()
	b := value.NewSymbol()
	require.NotEqual(t, a, b)
	require.Equal(t, a, a)
}

func TestIsSequence_And_IsObject(t *testing.T) {
	require.True(t, value.IsSequence([]any{1, 2}))
	require.False(t, value.IsSequence(map[string]any{}))
	require.False(t, value.IsSequence(nil))

	require.True(t, value.IsObject(map[string]any{"a": 1}))
	require.False(t, value.IsObject([]any{1}))
}

func TestKeysAndGet(t *testing.T) {
	obj := map[string]any{"a": 1, "b": "two"}
	keys := value.Keys(obj)
	require.ElementsMatch(t, []string{"a", "b"}, keys)

	v, ok := value.Get(obj, "b")
	require.True(t, ok)
	require.Equal(t, "two", v)

	_, ok = value.Get(obj, "missing")
	require.False(t, ok)
}
