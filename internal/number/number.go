// Package number implements Number, the differentiable scalar that
// drives this engine's operator-overloading style of reverse-mode AAD:
// every arithmetic operation on a Number eagerly records a Node on a
// Tape, computing and storing its local partial derivatives at the
// moment the operation runs rather than deferring that work to the
// reverse sweep.
package number

import "github.com/jvikstrom/aad/internal/tape"

// Number is a differentiable scalar: a plain float64 value plus a
// non-owning reference to the Node recorded for it, and to the Tape
// that node lives on. Number carries its tape explicitly rather than
// reaching for a goroutine-local "current tape": Go has nothing
// resembling a thread-local by default, and threading the dependency
// through explicitly is the idiomatic alternative to faking one.
//
// The zero Number is not on any tape; it behaves as an unrecorded 0
// until PutOnTape is called. A Number's node lives in arena memory
// owned by its Tape: once that Tape is rewound past the position that
// produced the node, the Number must not be used again, exactly as the
// original engine never gave a Number a destructor that could retract
// its node from the tape.
type Number struct {
	value float64
	node  *tape.Node
	tp    *tape.Tape
}

// From records a leaf node (arity 0) on tp for the independent variable
// val and returns the resulting Number.
func From(tp *tape.Tape, val float64) Number {
	return Number{value: val, node: tp.RecordNode(0), tp: tp}
}

// Const wraps val without recording it on any tape, for use as a
// compile-time or run-time constant inside an expression: operators
// still derive a correct derivative with respect to it (zero, since it
// has no node to push an adjoint into).
func Const(val float64) Number {
	return Number{value: val}
}

// PutOnTape records a leaf node for a Number that doesn't have one yet,
// such as one built via Const or the zero value.
func (n *Number) PutOnTape(tp *tape.Tape) {
	n.node = tp.RecordNode(0)
	n.tp = tp
}

// Value returns the forward-evaluated value.
func (n Number) Value() float64 { return n.value }

// OnTape reports whether this Number has a recorded node.
func (n Number) OnTape() bool { return n.node != nil }

// Tape returns the Tape this Number was recorded on, or nil if it
// isn't on one.
func (n Number) Tape() *tape.Tape { return n.tp }

// Node exposes the underlying tape node, for instance to locate this
// Number on its tape via Tape.Find before a manual reverse sweep.
func (n Number) Node() *tape.Node { return n.node }

// Adjoint returns the single-output adjoint accumulated at this
// Number's node by the most recent reverse sweep.
func (n Number) Adjoint() float64 {
	if n.node == nil {
		return 0
	}
	return n.node.Adjoint()
}

// AdjointAt returns the j-th multi-output adjoint accumulated at this
// Number's node.
func (n Number) AdjointAt(j int) float64 {
	if n.node == nil {
		return 0
	}
	return n.node.AdjointAt(j)
}

// SetAdjoint seeds the single-output adjoint at this Number's node,
// typically to 1.0 before a reverse sweep. It panics if the Number
// isn't on a tape: there is no adjoint slot to seed.
func (n Number) SetAdjoint(v float64) { n.node.SetAdjoint(v) }

// SetAdjointAt seeds the j-th multi-output adjoint at this Number's
// node.
func (n Number) SetAdjointAt(j int, v float64) { n.node.SetAdjointAt(j, v) }

// pickTape returns the first non-nil tape carried by args. Every
// operator has at least one genuinely recorded operand in ordinary use;
// calling an operator on nothing but Const values has no tape to record
// onto and panics deeper in record, the same "should never happen"
// programmer error as any other tape misuse.
func pickTape(args []Number) *tape.Tape {
	for _, a := range args {
		if a.tp != nil {
			return a.tp
		}
	}
	return nil
}

// record is the shared machinery behind every operator: it allocates a
// node of the given arity on the tape picked up from args, fills in
// each argument's local derivative and adjoint back-pointer, and
// returns the Number wrapping the forward value. An argument built via
// Const (no node yet) is given a throwaway leaf node first, recorded
// ahead of the result node so tape order still runs arguments-before-
// users; nothing ever reads that leaf's adjoint back, since the caller
// has no handle on it.
func record(value float64, args []Number, derivatives []float64) Number {
	tp := pickTape(args)

	argNodes := make([]*tape.Node, len(args))
	for i, a := range args {
		if a.node != nil {
			argNodes[i] = a.node
			continue
		}
		argNodes[i] = tp.RecordNode(0)
	}

	n := tp.RecordNode(len(args))
	for i, argNode := range argNodes {
		n.SetDerivative(i, derivatives[i], argNode.AdjointPtr(tp.Multi()))
	}
	return Number{value: value, node: n, tp: tp}
}
