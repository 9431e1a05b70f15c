// File: generator/example_test.go
package generator_test

import (
	"fmt"

	"github.com/katalvlaran/lab/generator"
)

// ExampleGenerate carves a 40×30 maze and checks the spanning-tree property.
// The exact layout depends on the seed; the passage count never does.
func ExampleGenerate() {
	m, err := generator.Generate(40, 30, generator.WithSeed(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", m.Width()*m.Height())
	fmt.Println("passages:", m.PassageCount())
	fmt.Println("perfect:", m.Verify() == nil)

	// Output:
	// cells: 1200
	// passages: 1199
	// perfect: true
}

// ExampleGenerate_invalid shows dimension validation.
func ExampleGenerate_invalid() {
	_, err := generator.Generate(0, 10)
	fmt.Println(err)

	// Output:
	// generator: grid: width and height must be at least 1: got 0x10
}
