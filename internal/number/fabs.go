package number

import "math"

// Fabs computes |a|.
//
// Backward pass:
//   - d(|a|)/da = 1 if a > 0, else -1 (the subgradient at a == 0 is
//     taken to be -1, matching the strict ">" test this is grounded on)
func Fabs(a Number) Number {
	d := -1.0
	if a.value > 0 {
		d = 1.0
	}
	return record(math.Abs(a.value), []Number{a}, []float64{d})
}
