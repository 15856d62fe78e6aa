package number

// Mul computes a * b.
//
// Backward pass:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
func Mul(a, b Number) Number {
	return record(a.value*b.value, []Number{a, b}, []float64{b.value, a.value})
}

// MulConst computes a * c for a plain constant c.
//
// Backward pass:
//   - d(a*c)/da = c
func MulConst(a Number, c float64) Number {
	return record(a.value*c, []Number{a}, []float64{c})
}
