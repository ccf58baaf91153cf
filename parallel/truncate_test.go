//go:build !parvecdebug
// +build !parvecdebug

package parallel_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/exascience/parvec/parallel"
	"github.com/exascience/parvec/sequential"
)

func TestApplyMismatchedLengths(t *testing.T) {
	u := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	v := filled(7, 10)
	expected := []float64{11, 12, 13, 14, 15, 16, 17}
	require.Equal(t, expected, parallel.Apply(u, v, 2, add))
	require.Equal(t, expected, parallel.Apply(v, u, 3, add))
	require.Equal(t, expected, sequential.Apply(u, v, add))
}

func TestApplyVecDoesNotModifyInputs(t *testing.T) {
	u := mat.NewVecDense(5, []float64{1, 2, 3, 4, 5})
	v := mat.NewVecDense(3, []float64{10, 20, 30})
	w := parallel.ApplyVec(u, v, 0, func(x, y float64) float64 { return x * y })
	require.Equal(t, 3, w.Len())
	require.Equal(t, []float64{10, 40, 90}, w.RawVector().Data)
	require.Equal(t, []float64{1, 2, 3, 4, 5}, u.RawVector().Data)
	require.Equal(t, []float64{10, 20, 30}, v.RawVector().Data)
}
