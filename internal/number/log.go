package number

import "math"

// Log computes ln(a).
//
// Backward pass:
//   - d(ln(a))/da = 1/a
func Log(a Number) Number {
	return record(math.Log(a.value), []Number{a}, []float64{1.0 / a.value})
}
