package internal

import "fmt"

// EffectiveLen returns the number of elements an elementwise operation
// over inputs of length lu and lv covers, which is the shorter of the
// two. Builds with the parvecdebug tag panic if lu != lv.
func EffectiveLen(lu, lv int) int {
	if debugChecks && lu != lv {
		panic(fmt.Sprintf("mismatched input lengths: %v != %v", lu, lv))
	}
	if lu < lv {
		return lu
	}
	return lv
}

// CheckSplitLengths verifies the precondition of the fork-join splitter
// in builds with the parvecdebug tag. It does nothing otherwise.
func CheckSplitLengths(lu, lv, ldst int) {
	if debugChecks && (lu != lv || lu != ldst) {
		panic(fmt.Sprintf("mismatched split lengths: u=%v v=%v dst=%v", lu, lv, ldst))
	}
}

// ComputeChunkSize returns the partition length below which splitting
// stops, for a range of size elements and the given number of execution
// units. If size <= units, the whole range is a single chunk.
func ComputeChunkSize(size, units int) int {
	switch {
	case size < 0:
		panic(fmt.Sprintf("invalid range size: %v", size))
	case units <= 0:
		panic(fmt.Sprintf("invalid number of execution units: %v", units))
	case size <= units:
		return size
	default:
		return size / units
	}
}

// EffectiveChunkSize validates a caller-supplied chunk size. A chunk
// size of 0 is treated as 1, since a range of length 1 cannot be split.
func EffectiveChunkSize(chunkSize int) int {
	switch {
	case chunkSize < 0:
		panic(fmt.Sprintf("invalid chunk size: %v", chunkSize))
	case chunkSize == 0:
		return 1
	default:
		return chunkSize
	}
}
