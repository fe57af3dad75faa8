// File: rational/example_test.go
package rational_test

import (
	"fmt"

	"github.com/katalvlaran/rref/rational"
)

// ExampleParse demonstrates the lenient cell grammar: integers, decimals,
// fractions, empty cells and garbage all produce a value, never an error.
func ExampleParse() {
	for _, cell := range []string{"7", "-0.5", "2/6", "", "oops"} {
		fmt.Println(rational.Parse(cell))
	}

	// Output:
	// 7
	// -1/2
	// 1/3
	// 0
	// 0
}

// ExampleRational_Add shows that arithmetic stays exact where floats drift.
func ExampleRational_Add() {
	third := rational.Parse("1/3")

	sum := third.Add(third).Add(third)
	fmt.Println(sum, sum.IsOne())

	// Output:
	// 1 true
}

// ExampleRational_String shows the canonical display forms.
func ExampleRational_String() {
	a, _ := rational.New(-4, 6)
	b, _ := rational.New(8, 4)

	fmt.Println(a, b, rational.Zero())

	// Output:
	// -2/3 2 0
}
