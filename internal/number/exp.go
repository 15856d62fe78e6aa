package number

import "math"

// Exp computes exp(a).
//
// Backward pass:
//   - d(exp(a))/da = exp(a) = result
func Exp(a Number) Number {
	e := math.Exp(a.value)
	return record(e, []Number{a}, []float64{e})
}
