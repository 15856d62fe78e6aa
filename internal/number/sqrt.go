package number

import "math"

// Sqrt computes sqrt(a).
//
// Backward pass:
//   - d(sqrt(a))/da = 1/(2*sqrt(a)) = 0.5 / result
func Sqrt(a Number) Number {
	e := math.Sqrt(a.value)
	return record(e, []Number{a}, []float64{0.5 / e})
}
