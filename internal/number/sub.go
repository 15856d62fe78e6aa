package number

// Sub computes a - b.
//
// Backward pass:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
func Sub(a, b Number) Number {
	return record(a.value-b.value, []Number{a, b}, []float64{1, -1})
}

// SubConst computes a - c for a plain constant c.
func SubConst(a Number, c float64) Number {
	return record(a.value-c, []Number{a}, []float64{1})
}

// ConstSub computes c - a for a plain constant c.
func ConstSub(c float64, a Number) Number {
	return record(c-a.value, []Number{a}, []float64{-1})
}

// Neg computes -a.
//
// Backward pass:
//   - d(-a)/da = -1
func Neg(a Number) Number {
	return record(-a.value, []Number{a}, []float64{-1})
}
