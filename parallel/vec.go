package parallel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/exascience/parvec"
)

// rawData returns the elements of x as a contiguous slice. The backing
// array of x is used directly if x stores its elements contiguously;
// otherwise the elements are copied.
func rawData(x mat.Vector) []float64 {
	if x.Len() == 0 {
		return nil
	}
	if r, ok := x.(mat.RawVectorer); ok {
		if raw := r.RawVector(); raw.Inc == 1 {
			return raw.Data[:raw.N]
		}
	}
	return mat.Col(nil, 0, x)
}

// ApplyVec is like Apply, except that it operates on gonum vectors. The
// result is a new vector of length min(u.Len(), v.Len()), or nil if
// that length is 0, since gonum does not support empty vectors.
func ApplyVec(u, v mat.Vector, chunkSize int, f parvec.BinaryOp) *mat.VecDense {
	w := Apply(rawData(u), rawData(v), chunkSize, f)
	if len(w) == 0 {
		return nil
	}
	return mat.NewVecDense(len(w), w)
}
