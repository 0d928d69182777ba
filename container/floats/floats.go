package floats

import (
	"errors"
	"fmt"
	"math"

	"github.com/Fishytek/Vector/container/vector"
	"github.com/cwbudde/algo-vecmath"
)

const defaultEpsilon = 1e-12

// ErrLengthMismatch is returned when operands differ in length.
var ErrLengthMismatch = errors.New("floats: vector length mismatch")

// Mul returns a new vector holding a[i]*b[i].
func Mul(a, b *vector.Vector[float64]) (*vector.Vector[float64], error) {
	if err := checkLen(a, b); err != nil {
		return nil, err
	}

	out := vector.WithSize[float64](a.Len())
	if out.IsEmpty() {
		return out, nil
	}

	vecmath.MulBlock(out.Slice(), a.Slice(), b.Slice())

	return out, nil
}

// MulInPlace multiplies dst element-wise by src.
func MulInPlace(dst, src *vector.Vector[float64]) error {
	if err := checkLen(dst, src); err != nil {
		return err
	}

	if dst.IsEmpty() {
		return nil
	}

	vecmath.MulBlockInPlace(dst.Slice(), src.Slice())

	return nil
}

// NearlyEqual reports whether a and b have the same length and every
// element pair is equal within eps, absolute or relative to the larger
// magnitude. A non-positive eps selects a default of 1e-12.
func NearlyEqual(a, b *vector.Vector[float64], eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	return vector.EqualFunc(a, b, func(x, y float64) bool {
		diff := math.Abs(x - y)
		if diff <= eps {
			return true
		}

		largest := math.Max(math.Abs(x), math.Abs(y))

		return largest != 0 && diff/largest <= eps
	})
}

func checkLen(a, b *vector.Vector[float64]) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, a.Len(), b.Len())
	}

	return nil
}
