// Package sequential provides the sequential kernel used by the
// parallel package for the leaves of its partitioning, and sequential
// reference implementations of the functions provided by the parallel
// package. The latter are useful for testing and debugging.
package sequential

import (
	"github.com/exascience/parvec"
	"github.com/exascience/parvec/internal"
)

// Kernel sets dst[i] = f(u[i], v[i]) for each index i of dst, in
// increasing index order, on the current goroutine.
//
// u and v must be at least as long as dst. Kernel never reads from
// dst, so dst may contain arbitrary values on entry.
//
// If f panics, the panic propagates to the caller of Kernel, leaving
// the remaining elements of dst unchanged.
func Kernel(u, v, dst []float64, f parvec.BinaryOp) {
	u, v = u[:len(dst)], v[:len(dst)]
	for i := range dst {
		dst[i] = f(u[i], v[i])
	}
}

// ErrKernel is like Kernel, except that it stops at the first index
// for which f returns an error value different from nil, and returns
// that error value. Elements of dst at and after that index are left
// unchanged.
func ErrKernel(u, v, dst []float64, f parvec.ErrBinaryOp) error {
	u, v = u[:len(dst)], v[:len(dst)]
	for i := range dst {
		x, err := f(u[i], v[i])
		if err != nil {
			return err
		}
		dst[i] = x
	}
	return nil
}

// Apply receives two vectors and a binary function, and returns a new
// vector with f(u[i], v[i]) at each index i that is valid for both u
// and v.
//
// Apply is the reference implementation of parallel.Apply.
func Apply(u, v []float64, f parvec.BinaryOp) []float64 {
	n := internal.EffectiveLen(len(u), len(v))
	dst := make([]float64, n)
	if n > 0 {
		Kernel(u, v, dst, f)
	}
	return dst
}

// ErrApply is like Apply, except that it uses a binary function that
// can fail. ErrApply returns the first error value different from nil
// and a nil vector if f fails for any index.
func ErrApply(u, v []float64, f parvec.ErrBinaryOp) ([]float64, error) {
	n := internal.EffectiveLen(len(u), len(v))
	dst := make([]float64, n)
	if n > 0 {
		if err := ErrKernel(u, v, dst, f); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
