package mat_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/vec"
)

func ExampleMat4_Det() {
	m := mat.FromRows4(
		vec.New4(3.0, 1.0, 4.0, 1.0),
		vec.New4(5.0, 9.0, 2.0, 6.0),
		vec.New4(5.0, 3.0, 5.0, 8.0),
		vec.New4(9.0, 7.0, 9.0, 3.0),
	)
	fmt.Println(m.Det())
	// Output: 98
}

func ExampleMat3_TryInvert() {
	m := mat.FromRows3(
		vec.New3(1.0, 2.0, 3.0),
		vec.New3(2.0, 4.0, 6.0),
		vec.New3(0.0, 1.0, 1.0),
	)
	_, err := m.TryInvert()
	fmt.Println(errors.Is(err, mat.ErrSingular))
	// Output: true
}

func ExampleYaw() {
	p := mat.Yaw(math.Pi / 2).MulVec(vec.New3(1.0, 0.0, 0.0))
	fmt.Printf("%.2f %.2f %.2f\n", math.Abs(p.X), p.Y, p.Z)
	// Output: 0.00 1.00 0.00
}

func ExampleMat3_EulerAngles() {
	y, p, r := mat.YawPitchRoll(0.25, -0.5, 1.0).EulerAngles()
	fmt.Printf("%.2f %.2f %.2f\n", y, p, r)
	// Output: 0.25 -0.50 1.00
}
