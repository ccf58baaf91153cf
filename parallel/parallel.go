// Package parallel provides functions for applying binary operations
// to float64 vectors in parallel.
//
// The input range is divided recursively at its midpoint until the
// partitions are at most chunk size elements long. The two halves of
// each split are processed in parallel, and a split only returns when
// both halves have terminated. The leaves are processed by
// sequential.Kernel.
package parallel

import (
	"runtime"
	"sync"

	"github.com/exascience/parvec"
	"github.com/exascience/parvec/internal"
	"github.com/exascience/parvec/sequential"
)

// leafKernel processes the leaves of Split.
var leafKernel = sequential.Kernel

// MinParallelChunk is the chunk size at or below which ApplyAuto
// processes its input sequentially.
const MinParallelChunk = 10000

// ChunkSize determines a chunk size for Apply and related functions.
//
// The effective length of the input is the shorter of len(u) and
// len(v). If the effective length is at most runtime.GOMAXPROCS(0),
// ChunkSize returns the effective length, so that no split occurs.
// Otherwise ChunkSize returns the effective length divided by
// runtime.GOMAXPROCS(0), rounded down, which results in roughly one
// leaf per logical CPU.
func ChunkSize(u, v []float64) int {
	return internal.ComputeChunkSize(
		internal.EffectiveLen(len(u), len(v)),
		runtime.GOMAXPROCS(0),
	)
}

// forkJoin divides the range from low to high at its midpoint until
// the subranges are at most chunkSize long, and invokes leaf for each
// subrange. The right half of a split runs in its own goroutine.
//
// Panics in leaf invocations are recovered in the goroutine where they
// occur, and forkJoin panics with the left-most recovered panic value
// after both halves have terminated. A half that does not run to
// completion is re-raised even if its recovered value is nil, as with
// panic(nil) under GODEBUG=panicnil=1.
func forkJoin(low, high, chunkSize int, leaf func(low, high int)) {
	if high-low <= chunkSize {
		leaf(low, high)
		return
	}
	mid := low + (high-low)/2
	var p0, p1 interface{}
	var ok0, ok1 bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			if !ok1 {
				p1 = recover()
			}
			wg.Done()
		}()
		forkJoin(mid, high, chunkSize, leaf)
		ok1 = true
	}()
	func() {
		defer func() {
			if !ok0 {
				p0 = recover()
			}
		}()
		forkJoin(low, mid, chunkSize, leaf)
		ok0 = true
	}()
	wg.Wait()
	if !ok0 {
		panic(p0)
	}
	if !ok1 {
		panic(p1)
	}
}

// errForkJoin is like forkJoin, except that leaf returns an error
// value, and errForkJoin returns the left-most error value that is
// different from nil.
func errForkJoin(low, high, chunkSize int, leaf func(low, high int) error) (err error) {
	if high-low <= chunkSize {
		return leaf(low, high)
	}
	mid := low + (high-low)/2
	var err0, err1 error
	var p0, p1 interface{}
	var ok0, ok1 bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			if !ok1 {
				p1 = recover()
			}
			wg.Done()
		}()
		err1 = errForkJoin(mid, high, chunkSize, leaf)
		ok1 = true
	}()
	func() {
		defer func() {
			if !ok0 {
				p0 = recover()
			}
		}()
		err0 = errForkJoin(low, mid, chunkSize, leaf)
		ok0 = true
	}()
	wg.Wait()
	if !ok0 {
		panic(p0)
	}
	if !ok1 {
		panic(p1)
	}
	if err0 != nil {
		err = err0
	} else {
		err = err1
	}
	return
}

// Split sets dst[i] = f(u[i], v[i]) for each index i of dst.
//
// u, v, and dst must have the same length. This is only checked when
// compiled with the parvecdebug build tag.
//
// If len(dst) <= chunkSize, Split invokes sequential.Kernel on the
// current goroutine. Otherwise Split divides u, v, and dst at
// len(dst)/2, and recursively processes the two halves in parallel.
// Each half only writes to its own part of dst. A chunkSize of 0 is
// treated as 1.
//
// Split returns only when all leaves have terminated. If f panics, the
// corresponding goroutines recover the panics, and Split eventually
// panics with the left-most recovered panic value. The contents of dst
// are undefined in that case.
//
// Split panics if chunkSize < 0.
func Split(u, v, dst []float64, chunkSize int, f parvec.BinaryOp) {
	internal.CheckSplitLengths(len(u), len(v), len(dst))
	forkJoin(0, len(dst), internal.EffectiveChunkSize(chunkSize), func(low, high int) {
		leafKernel(u[low:high], v[low:high], dst[low:high], f)
	})
}

// ErrSplit is like Split, except that it uses a binary function that
// can fail. ErrSplit returns only when all leaves have terminated,
// returning the left-most error value that is different from nil. A
// leaf stops at the first failing index, but other leaves run to
// completion.
func ErrSplit(u, v, dst []float64, chunkSize int, f parvec.ErrBinaryOp) error {
	internal.CheckSplitLengths(len(u), len(v), len(dst))
	return errForkJoin(0, len(dst), internal.EffectiveChunkSize(chunkSize), func(low, high int) error {
		return sequential.ErrKernel(u[low:high], v[low:high], dst[low:high], f)
	})
}

// Apply receives two vectors, a chunk size, and a binary function, and
// returns a new vector with f(u[i], v[i]) at each index i that is
// valid for both u and v. The result is computed by Split.
//
// The result is identical to that of sequential.Apply for every chunk
// size. Use ChunkSize to determine a reasonable chunk size.
//
// Apply panics if chunkSize < 0, and with the left-most panic value of
// f if f panics.
func Apply(u, v []float64, chunkSize int, f parvec.BinaryOp) []float64 {
	n := internal.EffectiveLen(len(u), len(v))
	dst := make([]float64, n)
	if n > 0 {
		Split(u[:n], v[:n], dst, chunkSize, f)
	}
	return dst
}

// ErrApply is like Apply, except that it uses a binary function that
// can fail. If f fails for any index, ErrApply returns the left-most
// error value that is different from nil, and a nil vector.
func ErrApply(u, v []float64, chunkSize int, f parvec.ErrBinaryOp) ([]float64, error) {
	n := internal.EffectiveLen(len(u), len(v))
	dst := make([]float64, n)
	if n > 0 {
		if err := ErrSplit(u[:n], v[:n], dst, chunkSize, f); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// ApplyAuto is like Apply, except that it determines the chunk size
// with ChunkSize. If that chunk size is at most MinParallelChunk, the
// input is too small to benefit from parallelism, and ApplyAuto
// invokes sequential.Apply instead.
func ApplyAuto(u, v []float64, f parvec.BinaryOp) []float64 {
	chunkSize := ChunkSize(u, v)
	if chunkSize <= MinParallelChunk {
		return sequential.Apply(u, v, f)
	}
	return Apply(u, v, chunkSize, f)
}
