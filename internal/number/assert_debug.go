//go:build aaddebug

package number

// assertOnTape is the debug-build analogue of the original engine's
// #ifdef _DEBUG check inside Number::node(): it confirms n's node is
// still actually present on n's tape (hasn't been rewound out from
// under it) before a reverse sweep tries to walk from it. It is a
// linear scan, so it only runs when the aaddebug build tag is set.
func assertOnTape(n Number) {
	if n.tp.Find(n.node) == n.tp.End() {
		panic("number: Number's node is no longer present on its tape (rewound past?)")
	}
}
