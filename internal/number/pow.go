package number

import "math"

// Pow computes base^exp.
//
// Backward pass:
//   - d(base^exp)/d(base) = exp * base^(exp-1) = exp * result / base
//   - d(base^exp)/d(exp)  = ln(base) * result
func Pow(base, exp Number) Number {
	e := math.Pow(base.value, exp.value)
	return record(e, []Number{base, exp}, []float64{
		exp.value * e / base.value,
		math.Log(base.value) * e,
	})
}

// PowConst computes base^c for a plain constant exponent c.
//
// Backward pass:
//   - d(base^c)/d(base) = c * result / base
func PowConst(base Number, c float64) Number {
	e := math.Pow(base.value, c)
	return record(e, []Number{base}, []float64{c * e / base.value})
}

// ConstPow computes c^exp for a plain constant base c.
//
// Backward pass:
//   - d(c^exp)/d(exp) = ln(c) * result
func ConstPow(c float64, exp Number) Number {
	e := math.Pow(c, exp.value)
	return record(e, []Number{exp}, []float64{math.Log(c) * e})
}
