package tape

const (
	nodeBlockSize       = 16384 // Nodes per block
	multiAdjointBlock   = 32768 // float64s per block in the multi-output adjoint arena
	derivativeBlockSize = 65536 // float64s (or *float64s) per block in the derivative/argument arenas
)

// globalMulti and globalNumOutputs hold the process-wide AAD mode every
// new Tape picks up at construction: whether it records one adjoint per
// node or numOutputs of them, and if so how many. Mutating this state
// while any tape is mid-recording is undefined, exactly like flipping
// the mode flag underneath a live computation graph; callers set it
// once, before spawning the goroutines that will each build a Tape.
var (
	globalMulti      bool
	globalNumOutputs int
)

// SetGlobalConfig sets the process-wide multi-output mode and returns
// the previous setting so a caller can restore it later.
func SetGlobalConfig(multi bool, numOutputs int) (prevMulti bool, prevNumOutputs int) {
	prevMulti, prevNumOutputs = globalMulti, globalNumOutputs
	globalMulti, globalNumOutputs = multi, numOutputs
	return prevMulti, prevNumOutputs
}

// Tape owns the four arenas backing one goroutine's recorded
// computation graph: nodes, multi-output adjoint storage, per-argument
// derivatives, and per-argument back-pointers. A Tape is never shared
// between goroutines — each worker owns exactly one — so none of its
// methods take a lock.
type Tape struct {
	nodes         *BlockList[Node]
	multiAdjoints *BlockList[float64]
	derivs        *BlockList[float64]
	argPtrs       *BlockList[*float64]

	multi      bool
	numOutputs int

	// Padding so that an array of per-worker Tapes doesn't let two
	// tapes' hot cursor fields share a cache line.
	_ [64]byte
}

// New creates an empty Tape using the current process-wide multi-output
// configuration set by SetGlobalConfig.
func New() *Tape {
	return &Tape{
		nodes:         NewBlockList[Node](nodeBlockSize),
		multiAdjoints: NewBlockList[float64](multiAdjointBlock),
		derivs:        NewBlockList[float64](derivativeBlockSize),
		argPtrs:       NewBlockList[*float64](derivativeBlockSize),
		multi:         globalMulti,
		numOutputs:    globalNumOutputs,
	}
}

// Multi reports whether this tape records multi-output adjoints.
func (t *Tape) Multi() bool { return t.multi }

// NumOutputs reports the numOutputs setting this tape picked up at
// creation, the width of its multi-output adjoints. Single-output mode
// does not use it, and it is whatever value was configured alongside
// multi == false.
func (t *Tape) NumOutputs() int { return t.numOutputs }

// RecordNode allocates a Node of the given arity on the tape, wiring up
// its derivative and argument-adjoint storage (and, in multi mode, its
// zeroed own-adjoint vector). The caller must still fill in each
// argument's derivative and back-pointer via Node.SetDerivative before
// the node is used in a reverse sweep.
func (t *Tape) RecordNode(arity int) *Node {
	n := Node{arity: arity}
	if t.multi {
		n.adjoints = t.multiAdjoints.EmplaceBackMulti(t.numOutputs)
		for i := range n.adjoints {
			n.adjoints[i] = 0
		}
	}
	if arity > 0 {
		n.derivatives = t.derivs.EmplaceBackMulti(arity)
		n.argAdjoints = t.argPtrs.EmplaceBackMulti(arity)
	}
	return t.nodes.EmplaceBack(n)
}

// ResetAdjoints zeroes every adjoint currently on the tape without
// discarding the recorded graph, so a fresh reverse sweep can run
// against the same forward pass.
func (t *Tape) ResetAdjoints() {
	if t.multi {
		t.multiAdjoints.Memset(0)
		return
	}
	for it := t.nodes.Begin(); it != t.nodes.End(); it = it.Next() {
		it.Value().adjoint = 0
	}
}

// Clear empties the tape and releases all four arenas' blocks.
func (t *Tape) Clear() {
	t.multiAdjoints.Clear()
	t.derivs.Clear()
	t.argPtrs.Clear()
	t.nodes.Clear()
}

// Rewind logically empties the tape while retaining its arenas' blocks
// for reuse by the next forward pass.
func (t *Tape) Rewind() {
	t.multiAdjoints.Rewind()
	t.derivs.Rewind()
	t.argPtrs.Rewind()
	t.nodes.Rewind()
}

// Mark saves the tape's current position across all four arenas.
func (t *Tape) Mark() {
	t.multiAdjoints.Mark()
	t.derivs.Mark()
	t.argPtrs.Mark()
	t.nodes.Mark()
}

// RewindToMark restores the position saved by Mark. It must apply to
// all four arenas atomically: restoring the node arena alone while
// leaving derivatives or argument pointers ahead would leave live nodes
// pointing at storage about to be overwritten.
func (t *Tape) RewindToMark() {
	t.multiAdjoints.RewindToMark()
	t.derivs.RewindToMark()
	t.argPtrs.RewindToMark()
	t.nodes.RewindToMark()
}

// Begin returns an iterator at the tape's first recorded node.
func (t *Tape) Begin() Iterator[Node] { return t.nodes.Begin() }

// End returns the tape's one-past-the-last-node sentinel iterator.
func (t *Tape) End() Iterator[Node] { return t.nodes.End() }

// MarkIterator returns an iterator at the position saved by Mark.
func (t *Tape) MarkIterator() Iterator[Node] { return t.nodes.MarkIterator() }

// Find returns an iterator to n, or End() if n isn't a live node of
// this tape.
func (t *Tape) Find(n *Node) Iterator[Node] { return t.nodes.Find(n) }

// PropagateOne runs the single-output reverse-sweep step on one node.
func (t *Tape) PropagateOne(n *Node) { n.propagateOne() }

// PropagateAll runs the multi-output reverse-sweep step on one node.
func (t *Tape) PropagateAll(n *Node) { n.propagateAll(t.numOutputs) }

// PropagateAdjoints runs the reverse sweep over [to, from] inclusive, in
// decreasing tape order, using whichever of PropagateOne/PropagateAll
// matches this tape's mode. from and to are typically iterators
// obtained by the caller via Find, Begin, or MarkIterator.
func (t *Tape) PropagateAdjoints(from, to Iterator[Node]) {
	propagate := t.PropagateOne
	if t.multi {
		propagate = t.PropagateAll
	}
	it := from
	for it != to {
		propagate(it.Value())
		it = it.Prev()
	}
	propagate(it.Value())
}
