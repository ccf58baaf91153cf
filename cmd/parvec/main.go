// Command parvec times sequential and parallel elementwise operations
// on vectors of ones, and verifies that both produce the same result.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/exascience/parvec"
	"github.com/exascience/parvec/parallel"
	"github.com/exascience/parvec/sequential"
)

var (
	size   = flag.Int("n", 8, "Vector size")
	opName = flag.String("op", "demo", "Binary operation: add, mul, demo, hypot")
	auto   = flag.Bool("auto", false, "Process small chunk sizes sequentially (see parallel.ApplyAuto)")
)

var ops = map[string]parvec.BinaryOp{
	"add":   func(x, y float64) float64 { return x + y },
	"mul":   func(x, y float64) float64 { return x * y },
	"demo":  func(x, y float64) float64 { return math.Mod(x, y) * x * y / x },
	"hypot": math.Hypot,
}

func ones(n int) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = 1
	}
	return result
}

func main() {
	flag.Parse()

	f, ok := ops[*opName]
	if !ok {
		fmt.Printf("Unknown operation: %s\n", *opName)
		os.Exit(1)
	}
	if *size < 0 {
		fmt.Printf("Invalid vector size: %d\n", *size)
		os.Exit(1)
	}

	u, v := ones(*size), ones(*size)
	chunkSize := parallel.ChunkSize(u, v)
	fmt.Printf("CPUs: %d, chunk size: %d\n", runtime.GOMAXPROCS(0), chunkSize)

	start := time.Now()
	var par []float64
	if *auto {
		par = parallel.ApplyAuto(u, v, f)
	} else {
		par = parallel.Apply(u, v, chunkSize, f)
	}
	parTime := time.Since(start)
	fmt.Printf("parallel: array size %d: done in %v\n", *size, parTime)

	start = time.Now()
	seq := sequential.Apply(u, v, f)
	seqTime := time.Since(start)
	fmt.Printf("sequential: array size %d: done in %v\n", *size, seqTime)

	if !floats.Same(seq, par) {
		fmt.Printf("parallel and sequential results differ\n")
		os.Exit(1)
	}
	if parTime > 0 {
		fmt.Printf("speedup: %.2fx\n", float64(seqTime)/float64(parTime))
	}
}
