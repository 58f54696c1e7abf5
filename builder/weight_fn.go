package builder

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// WeightFn computes the traversal cost of the edge between two world-space
// positions. Implementations must be deterministic and return a
// non-negative, non-NaN value; the builder rejects anything else with
// ErrBadWeight.
type WeightFn func(a, b vec3.T) float64

// EuclideanWeightFn returns the straight-line distance between a and b.
// This is the default weight.
func EuclideanWeightFn(a, b vec3.T) float64 {
	return vec3.Distance(&a, &b)
}

// ScaledWeightFn returns a WeightFn yielding factor times the Euclidean
// distance. Panics if factor is negative or NaN.
func ScaledWeightFn(factor float64) WeightFn {
	if factor < 0 || math.IsNaN(factor) {
		panic(fmt.Sprintf("builder: ScaledWeightFn factor must be ≥ 0, got %g", factor))
	}

	return func(a, b vec3.T) float64 {
		return factor * vec3.Distance(&a, &b)
	}
}

// ClimbWeightFn returns a WeightFn that adds penalty times the absolute
// height difference (Y axis) to the Euclidean distance, so routes prefer
// flatter ground. Panics if penalty is negative or NaN.
func ClimbWeightFn(penalty float64) WeightFn {
	if penalty < 0 || math.IsNaN(penalty) {
		panic(fmt.Sprintf("builder: ClimbWeightFn penalty must be ≥ 0, got %g", penalty))
	}

	return func(a, b vec3.T) float64 {
		return vec3.Distance(&a, &b) + penalty*math.Abs(b[1]-a[1])
	}
}
