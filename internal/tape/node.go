package tape

import "unsafe"

// Node is one recorded operation: its arity, the local partial
// derivatives with respect to each argument evaluated at recording
// time, and a raw back-pointer into each argument's own adjoint
// storage. A leaf (arity 0) carries neither.
type Node struct {
	arity int

	adjoint  float64   // single-output mode
	adjoints []float64 // multi-output mode, numOutputs wide, contiguous

	derivatives []float64  // length arity: d(self)/d(arg_i) at recording time
	argAdjoints []*float64 // length arity: arg_i's adjoint storage
}

// Arity returns the number of recorded arguments; 0 for a leaf.
func (n *Node) Arity() int { return n.arity }

// Adjoint returns the node's single-output adjoint.
func (n *Node) Adjoint() float64 { return n.adjoint }

// SetAdjoint overwrites the node's single-output adjoint, typically to
// seed a reverse sweep with 1.0.
func (n *Node) SetAdjoint(v float64) { n.adjoint = v }

// AddAdjoint accumulates onto the node's single-output adjoint.
func (n *Node) AddAdjoint(v float64) { n.adjoint += v }

// AdjointAt returns the j-th slot of the node's multi-output adjoint.
func (n *Node) AdjointAt(j int) float64 { return n.adjoints[j] }

// SetAdjointAt overwrites the j-th slot of the node's multi-output
// adjoint.
func (n *Node) SetAdjointAt(j int, v float64) { n.adjoints[j] = v }

// AdjointPtr returns the address to wire into a dependent node's
// argAdjoints: the scalar adjoint in single mode, or the first element
// of the multi-output adjoint vector, whose remaining elements a
// dependent node reaches via unsafe.Slice against the tape's
// numOutputs.
func (n *Node) AdjointPtr(multi bool) *float64 {
	if multi {
		return &n.adjoints[0]
	}
	return &n.adjoint
}

// SetDerivative records the local partial derivative of this node with
// respect to its i-th argument, and argPtr as that argument's adjoint
// back-pointer. Called once per argument, right after RecordNode, by
// every operator implementation while the forward value is still being
// computed.
func (n *Node) SetDerivative(i int, derivative float64, argPtr *float64) {
	n.derivatives[i] = derivative
	n.argAdjoints[i] = argPtr
}

// propagateOne is the single-output reverse-sweep step: push this
// node's adjoint back onto each argument's adjoint, scaled by the
// locally recorded derivative. A zero adjoint or a leaf contributes
// nothing and is skipped.
func (n *Node) propagateOne() {
	if n.arity == 0 || n.adjoint == 0 {
		return
	}
	for i := 0; i < n.arity; i++ {
		*n.argAdjoints[i] += n.derivatives[i] * n.adjoint
	}
}

// propagateAll is the multi-output reverse-sweep step: identical to
// propagateOne but pushes all numOutputs adjoints for this node in one
// pass. argAdjoints[i] holds the address of the first element of
// argument i's numOutputs-wide adjoint vector; EmplaceBackMulti
// guarantees that vector is contiguous within its block, so
// unsafe.Slice safely reconstructs it here without the Node needing to
// carry a length alongside every pointer.
func (n *Node) propagateAll(numOutputs int) {
	if n.arity == 0 {
		return
	}
	allZero := true
	for _, a := range n.adjoints {
		if a != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return
	}
	for i := 0; i < n.arity; i++ {
		argAdj := unsafe.Slice(n.argAdjoints[i], numOutputs)
		d := n.derivatives[i]
		for j := 0; j < numOutputs; j++ {
			argAdj[j] += d * n.adjoints[j]
		}
	}
}
