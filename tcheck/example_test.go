package tcheck_test

import (
	"fmt"

	"github.com/arborist-go/typeguard/tcheck"
)

func ExampleCreateCheckers() {
	suite := tcheck.Suite{
		"Person": tcheck.Iface("Person", nil, []tcheck.Prop{
			tcheck.Field("name", tcheck.String, false),
			tcheck.Field("age", tcheck.Number, false),
		}, nil),
	}
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{suite})
	if err != nil {
		panic(err)
	}
	person := checkers["Person"]

	fmt.Println(person.Test(map[string]any{"name": "Ada", "age": 36.0}))
	fmt.Println(person.Check(map[string]any{"name": "Ada"}))
	// Output:
	// true
	// value.age is missing
}

func ExampleChecker_StrictValidate() {
	suite := tcheck.Suite{
		"Point": tcheck.Iface("Point", nil, []tcheck.Prop{
			tcheck.Field("x", tcheck.Number, false),
			tcheck.Field("y", tcheck.Number, false),
		}, nil),
	}
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{suite})
	if err != nil {
		panic(err)
	}
	point := checkers["Point"]

	for _, d := range point.StrictValidate(map[string]any{"x": 1.0, "y": 2.0, "z": 3.0}) {
		fmt.Println(d.Path, d.Message)
	}
	// Output:
	// value.z is extraneous
}

func ExampleChecker_GetProp() {
	suite := tcheck.Suite{
		"Person": tcheck.Iface("Person", nil, []tcheck.Prop{
			tcheck.Field("name", tcheck.String, false),
		}, nil),
	}
	checkers, err := tcheck.CreateCheckers([]tcheck.Suite{suite})
	if err != nil {
		panic(err)
	}
	name, err := checkers["Person"].GetProp("name")
	if err != nil {
		panic(err)
	}

	fmt.Println(name.Test("Ada"))
	fmt.Println(name.Check(42.0))
	// Output:
	// true
	// value.name is not a string
}
