package number

// Comparisons only ever compare forward values; none of them records
// anything onto a tape, since a boolean has no derivative to carry.

// Equal reports whether a and b evaluate to the same value.
func Equal(a, b Number) bool { return a.value == b.value }

// NotEqual reports whether a and b evaluate to different values.
func NotEqual(a, b Number) bool { return a.value != b.value }

// Less reports whether a evaluates to less than b.
func Less(a, b Number) bool { return a.value < b.value }

// Greater reports whether a evaluates to greater than b.
func Greater(a, b Number) bool { return a.value > b.value }

// LessOrEqual reports whether a evaluates to at most b.
func LessOrEqual(a, b Number) bool { return a.value <= b.value }

// GreaterOrEqual reports whether a evaluates to at least b.
func GreaterOrEqual(a, b Number) bool { return a.value >= b.value }
