package tcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/typeguard/tcheck"
)

func greeterSuite() tcheck.Suite {
	greet := tcheck.Func(
		tcheck.Params(
			tcheck.ParamOf("name", tcheck.String),
			tcheck.ParamOf("loud", tcheck.Opt(tcheck.Boolean)),
		),
		tcheck.String,
	)
	return tcheck.Suite{
		"Greeter": tcheck.Iface("Greeter", nil, []tcheck.Prop{
			tcheck.Field("greet", greet, false),
		}, nil),
	}
}

func TestChecker_GetProp(t *testing.T) {
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{personSuite()})
	require.NoError(t, err)

	age, err := checkers["Person"].GetProp("age")
	require.NoError(t, err)
	require.True(t, age.Test(3.0))
	require.False(t, age.Test("3"))

	_, err = checkers["Person"].GetProp("missing")
	require.ErrorIs(t, err, tcheck.ErrUnknownProperty)
}

func TestChecker_GetProp_ReportsNestedPath(t *testing.T) {
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{personSuite()})
	require.NoError(t, err)

	age, err := checkers["Person"].GetProp("age")
	require.NoError(t, err)

	details := age.Validate("3")
	require.Equal(t, "value.age", details[0].Path)
}

func TestChecker_MethodArgsAndResult(t *testing.T) {
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{greeterSuite()})
	require.NoError(t, err)
	greeter := checkers["Greeter"]

	args, err := greeter.MethodArgs("greet")
	require.NoError(t, err)
	require.True(t, args.Test([]any{"Ada"}))
	require.True(t, args.Test([]any{"Ada", true}))
	require.False(t, args.Test([]any{}))
	require.False(t, args.Test([]any{42.0}))

	result, err := greeter.MethodResult("greet")
	require.NoError(t, err)
	require.True(t, result.Test("hi"))
	require.False(t, result.Test(42.0))

	_, err = greeter.MethodArgs("missing")
	require.ErrorIs(t, err, tcheck.ErrUnknownProperty)
}

func TestChecker_GetArgsAndGetResult(t *testing.T) {
	greet := tcheck.Func(
		tcheck.Params(tcheck.ParamOf("name", tcheck.String)),
		tcheck.Boolean,
	)
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{{"Greet": greet}})
	require.NoError(t, err)
	greetChecker := checkers["Greet"]

	args, err := greetChecker.GetArgs()
	require.NoError(t, err)
	require.True(t, args.Test([]any{"Ada"}))

	result, err := greetChecker.GetResult()
	require.NoError(t, err)
	require.True(t, result.Test(true))

	_, err = checkers["Greet"].MethodArgs("x")
	require.Error(t, err)
}

func TestChecker_GetArgs_NotAFunction(t *testing.T) {
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{personSuite()})
	require.NoError(t, err)
	_, err = checkers["Person"].GetArgs()
	require.ErrorIs(t, err, tcheck.ErrNotAFunction)
}

func TestChecker_GetType(t *testing.T) {
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{personSuite()})
	require.NoError(t, err)
	iface, ok := checkers["Person"].GetType().(*tcheck.IfaceNode)
	require.True(t, ok)
	require.Len(t, iface.Props, 2)
}
