package number

import "github.com/jvikstrom/aad/internal/tape"

// PropagateAdjoints seeds this Number's adjoint to 1.0, locates its
// node on its tape, and walks the reverse sweep backward to (and
// including) to. If reset is true, every adjoint currently on the tape
// is cleared first, the same explicit flag the original engine's
// member propagateAdjoints(to, reset) carries; most callers already
// reset between sweeps themselves and pass false here.
func (n Number) PropagateAdjoints(to tape.Iterator[tape.Node], reset bool) {
	if reset {
		n.tp.ResetAdjoints()
	}
	n.SetAdjoint(1.0)
	assertOnTape(n)
	from := n.tp.Find(n.node)
	n.tp.PropagateAdjoints(from, to)
}

// PropagateToStart seeds and propagates this Number's adjoint down to
// the first node recorded on its tape.
func (n Number) PropagateToStart() {
	n.PropagateAdjoints(n.tp.Begin(), false)
}

// PropagateToMark seeds and propagates this Number's adjoint down to
// the tape's saved mark.
func (n Number) PropagateToMark() {
	n.PropagateAdjoints(n.tp.MarkIterator(), false)
}

// PropagateMarkToStart continues a two-phase sweep. It assumes one or
// more outputs were already seeded and propagated down to tp's mark
// (each via PropagateToMark), and walks the remaining pre-mark portion
// of the tape down to the first node, without seeding or resetting
// anything — so multiple outputs accumulate into the same leaf
// adjoints before this final pass runs once.
func PropagateMarkToStart(tp *tape.Tape) {
	tp.PropagateAdjoints(tp.MarkIterator().Prev(), tp.Begin())
}
