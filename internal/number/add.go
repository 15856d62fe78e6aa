package number

// Add computes a + b.
//
// Backward pass:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
func Add(a, b Number) Number {
	return record(a.value+b.value, []Number{a, b}, []float64{1, 1})
}

// AddConst computes a + c for a plain constant c.
func AddConst(a Number, c float64) Number {
	return record(a.value+c, []Number{a}, []float64{1})
}
