package number

// Pos computes +a, the identity unary plus. It is pure identity: no
// node is recorded, matching the original engine's unary operator+,
// which returns *this unchanged.
func Pos(a Number) Number {
	return a
}
