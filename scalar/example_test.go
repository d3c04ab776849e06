package scalar_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// ExampleRadians converts a camera field of view from degrees.
func ExampleRadians() {
	fmt.Printf("%.4f\n", scalar.Radians(90.0))
	fmt.Printf("%.4f\n", scalar.Radians(float32(45)))
	// Output:
	// 1.5708
	// 0.7854
}

func ExampleLinearFunc() {
	// Point on the line through (0, 1) and (2, 2) at x = 4.
	fmt.Println(scalar.LinearFunc(0.0, 1.0, 2.0, 2.0, 4.0))
	// Output: 3
}
