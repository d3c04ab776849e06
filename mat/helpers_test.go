package mat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/vec"
)

const tol = 1e-10

func assertMat2Near(t *testing.T, want, got mat.Mat2[float64], delta float64) {
	t.Helper()
	assert.Less(t, want.Sub(got).Norm(), delta, "want %v\n got %v", want, got)
}

func assertMat3Near(t *testing.T, want, got mat.Mat3[float64], delta float64) {
	t.Helper()
	assert.Less(t, want.Sub(got).Norm(), delta, "want %v\n got %v", want, got)
}

func assertMat4Near(t *testing.T, want, got mat.Mat4[float64], delta float64) {
	t.Helper()
	assert.Less(t, want.Sub(got).Norm(), delta, "want %v\n got %v", want, got)
}

func assertVec3Near(t *testing.T, want, got vec.Vec3[float64], delta float64) {
	t.Helper()
	assert.Less(t, want.Sub(got).Len(), delta, "want %v, got %v", want, got)
}
