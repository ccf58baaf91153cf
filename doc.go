/*
Package parvec provides parallel elementwise operations on float64
vectors. Given two vectors u and v and a binary function f, the
operations compute a vector w with w[i] = f(u[i], v[i]) for every index
covered by both inputs.

Parvec provides the following subpackages:

parvec/parallel divides the input range recursively at its midpoint
until the partitions are small enough, and processes the two halves of
each split in parallel. The partitioning only depends on the input
length and the chunk size, so the results are identical to those of a
sequential pass, independent of runtime.GOMAXPROCS(0).

parvec/sequential provides the sequential kernel that processes the
leaves of the partitioning, as well as sequential reference
implementations of the functions in parvec/parallel, for testing and
debugging purposes.

Inputs of different lengths are truncated to the shorter length. When
compiled with the parvecdebug build tag, mismatched lengths cause a
panic instead, which is useful to find bugs in callers.

See http://supertech.csail.mit.edu/papers/steal.pdf for some
theoretical background on fork-join parallelism.
*/
package parvec

type (
	// A BinaryOp is a function that combines two vector elements into
	// one.
	//
	// A BinaryOp passed to parvec/parallel is invoked concurrently from
	// multiple goroutines, so it must not modify any state it shares
	// with other invocations. Pure functions such as
	// func(x, y float64) float64 { return x + y } are always safe.
	BinaryOp func(x, y float64) float64

	// An ErrBinaryOp is a BinaryOp that can fail, returning an error
	// value or nil. The same concurrency requirements as for BinaryOp
	// apply.
	ErrBinaryOp func(x, y float64) (float64, error)
)
