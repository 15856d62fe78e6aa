package number

// Max computes max(a, b).
//
// Backward pass: the derivative flows entirely to whichever operand
// produced the result; the other contributes 0.
func Max(a, b Number) Number {
	if a.value > b.value {
		return record(a.value, []Number{a, b}, []float64{1, 0})
	}
	return record(b.value, []Number{a, b}, []float64{0, 1})
}

// MaxConst computes max(a, c) for a plain constant c.
func MaxConst(a Number, c float64) Number {
	if a.value > c {
		return record(a.value, []Number{a}, []float64{1})
	}
	return record(c, []Number{a}, []float64{0})
}

// Min computes min(a, b).
//
// Backward pass: the derivative flows entirely to whichever operand
// produced the result; the other contributes 0.
func Min(a, b Number) Number {
	if a.value < b.value {
		return record(a.value, []Number{a, b}, []float64{1, 0})
	}
	return record(b.value, []Number{a, b}, []float64{0, 1})
}

// MinConst computes min(a, c) for a plain constant c.
func MinConst(a Number, c float64) Number {
	if a.value < c {
		return record(a.value, []Number{a}, []float64{1})
	}
	return record(c, []Number{a}, []float64{0})
}
