//go:build !aaddebug

package number

// assertOnTape is a no-op in release builds; see assert_debug.go.
func assertOnTape(Number) {}
