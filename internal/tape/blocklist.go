// Package tape implements the arena allocator, recorded-operation node,
// and per-goroutine tape that back the reverse-mode scalar AAD engine.
package tape

import "fmt"

// block is one fixed-capacity chunk of a BlockList's arena. Its slots
// slice is allocated once at the block's creation and never regrows, so
// every element's address is stable for the block's lifetime: that
// stability is what lets Node hold raw *float64 back-pointers into
// another BlockList instead of an owning reference.
type block[T any] struct {
	slots []T
	limit int // elements actually emplaced before this block was abandoned; meaningless while this block is still current
}

func newBlock[T any](size int) *block[T] {
	return &block[T]{slots: make([]T, size)}
}

// BlockList is a growable, rewindable arena that serves T values out of
// a chain of fixed-size blocks. EmplaceBack and EmplaceBackMulti hand
// out addresses that stay valid until the BlockList is cleared or
// rewound past the position that produced them.
//
// Blocks are tracked in an append-only slice rather than a classic
// singly-linked chain: that keeps the bidirectional Iterator simple
// (index arithmetic instead of a reverse-traversal stack) without
// sacrificing address stability, since growing the slice only moves
// *block[T] pointers around, never the block's own slots array.
type BlockList[T any] struct {
	blockSize int
	blocks    []*block[T]
	curIdx    int
	pos       int

	marked  bool
	markIdx int
	markPos int
}

// NewBlockList creates an empty arena whose blocks hold blockSize
// elements each.
func NewBlockList[T any](blockSize int) *BlockList[T] {
	if blockSize <= 0 {
		panic("tape: blocklist block size must be positive")
	}
	return &BlockList[T]{blockSize: blockSize}
}

// ensureRoom advances to a fresh (or already-allocated-but-unused) block
// if the current one cannot serve k more contiguous slots. Any slots
// remaining in an abandoned block are permanently skipped.
func (l *BlockList[T]) ensureRoom(k int) {
	if len(l.blocks) == 0 {
		l.blocks = append(l.blocks, newBlock[T](l.blockSize))
		l.curIdx, l.pos = 0, 0
		return
	}
	if l.pos+k <= l.blockSize {
		return
	}
	l.blocks[l.curIdx].limit = l.pos
	l.curIdx++
	if l.curIdx == len(l.blocks) {
		l.blocks = append(l.blocks, newBlock[T](l.blockSize))
	}
	l.pos = 0
}

// EmplaceBack stores v in the next free slot, growing the arena if
// needed, and returns a stable pointer to it.
func (l *BlockList[T]) EmplaceBack(v T) *T {
	l.ensureRoom(1)
	b := l.blocks[l.curIdx]
	b.slots[l.pos] = v
	p := &b.slots[l.pos]
	l.pos++
	return p
}

// EmplaceBackMulti reserves k contiguous slots inside a single block and
// returns them as a slice. k must fit inside one block; this is a
// configuration error and panics rather than silently failing.
func (l *BlockList[T]) EmplaceBackMulti(k int) []T {
	if k > l.blockSize {
		panic(fmt.Sprintf("tape: emplace_back_multi(%d) exceeds block size %d", k, l.blockSize))
	}
	if k <= 0 {
		return nil
	}
	l.ensureRoom(k)
	b := l.blocks[l.curIdx]
	s := b.slots[l.pos : l.pos+k : l.pos+k]
	l.pos += k
	return s
}

// Memset overwrites every currently live element with T's zero value.
// It exists only to zero the float64 multi-output adjoint arena in one
// pass instead of walking nodes one at a time; every other BlockList in
// this engine never calls it.
func (l *BlockList[T]) Memset(v byte) {
	if v != 0 {
		panic("tape: blocklist Memset only supports the zero byte pattern")
	}
	var zero T
	for i := 0; i <= l.curIdx && i < len(l.blocks); i++ {
		b := l.blocks[i]
		n := l.pos
		if i != l.curIdx {
			n = b.limit
		}
		for j := 0; j < n; j++ {
			b.slots[j] = zero
		}
	}
}

// Clear destroys the arena's contents and releases every block.
func (l *BlockList[T]) Clear() {
	l.blocks = nil
	l.curIdx, l.pos = 0, 0
	l.marked = false
}

// Rewind logically empties the arena while keeping its blocks allocated
// for reuse by the next forward pass.
func (l *BlockList[T]) Rewind() {
	l.curIdx, l.pos = 0, 0
}

// Mark saves the current cursor for a later RewindToMark.
func (l *BlockList[T]) Mark() {
	l.markIdx, l.markPos, l.marked = l.curIdx, l.pos, true
}

// RewindToMark restores the cursor saved by the most recent Mark.
func (l *BlockList[T]) RewindToMark() {
	if !l.marked {
		panic("tape: rewind_to_mark called without a mark set")
	}
	l.curIdx, l.pos = l.markIdx, l.markPos
}

// iterAt normalizes a (blockIdx, idx) position to End() whenever it
// names the current block at or past the live cursor, so that Begin(),
// MarkIterator(), and Find() never hand back a position that looks live
// but isn't.
func (l *BlockList[T]) iterAt(blockIdx, idx int) Iterator[T] {
	if blockIdx < l.curIdx && idx >= l.blocks[blockIdx].limit {
		// Past the end of an abandoned block: the next live element is
		// the first slot of the following block.
		blockIdx, idx = blockIdx+1, 0
	}
	if blockIdx == l.curIdx && idx >= l.pos {
		return l.End()
	}
	return Iterator[T]{list: l, blockIdx: blockIdx, idx: idx}
}

// Begin returns an iterator at the first live element, or End() if the
// arena is logically empty.
func (l *BlockList[T]) Begin() Iterator[T] { return l.iterAt(0, 0) }

// End returns the sentinel one-past-the-last-element iterator.
func (l *BlockList[T]) End() Iterator[T] { return Iterator[T]{list: l, blockIdx: -1} }

// MarkIterator returns an iterator at the position saved by Mark.
func (l *BlockList[T]) MarkIterator() Iterator[T] {
	if !l.marked {
		panic("tape: mark_it called without a mark set")
	}
	return l.iterAt(l.markIdx, l.markPos)
}

// blockLimitAt returns how many elements of block i are live: l.pos for
// the current block, the frozen abandonment limit otherwise.
func (l *BlockList[T]) blockLimitAt(i int) int {
	if i == l.curIdx {
		return l.pos
	}
	return l.blocks[i].limit
}

// Find linearly scans the arena for the element at address p, returning
// an iterator to it or End() if p isn't a live element of this arena.
func (l *BlockList[T]) Find(p *T) Iterator[T] {
	for it := l.Begin(); it != l.End(); it = it.Next() {
		if it.Value() == p {
			return it
		}
	}
	return l.End()
}

// Iterator is a bidirectional cursor over a BlockList's elements in
// insertion order. The zero Iterator is not valid; always obtain one
// from Begin, End, MarkIterator, or Find.
type Iterator[T any] struct {
	list     *BlockList[T]
	blockIdx int // -1 means End()
	idx      int
}

// Value returns a pointer to the element this iterator refers to. It
// panics on End(), mirroring the source's "decrementing end() is
// defined only if the list is non-empty" contract: dereferencing it
// never is.
func (it Iterator[T]) Value() *T {
	if it.blockIdx < 0 {
		panic("tape: dereferencing end iterator")
	}
	return &it.list.blocks[it.blockIdx].slots[it.idx]
}

// Next returns the iterator one position forward, or End() if it is
// already the last live element.
func (it Iterator[T]) Next() Iterator[T] {
	if it.blockIdx < 0 {
		return it
	}
	lim := it.list.blockLimitAt(it.blockIdx)
	if it.idx+1 < lim {
		return Iterator[T]{list: it.list, blockIdx: it.blockIdx, idx: it.idx + 1}
	}
	if it.blockIdx == it.list.curIdx {
		return it.list.End()
	}
	return Iterator[T]{list: it.list, blockIdx: it.blockIdx + 1, idx: 0}
}

// Prev returns the iterator one position backward. Decrementing End()
// is defined only when the list is non-empty; decrementing Begin() is
// never defined, matching the source blocklist's contract.
func (it Iterator[T]) Prev() Iterator[T] {
	l := it.list
	if it.blockIdx < 0 {
		if l.curIdx == 0 && l.pos == 0 {
			panic("tape: decrementing the end iterator of an empty blocklist")
		}
		return Iterator[T]{list: l, blockIdx: l.curIdx, idx: l.pos - 1}
	}
	if it.idx > 0 {
		return Iterator[T]{list: l, blockIdx: it.blockIdx, idx: it.idx - 1}
	}
	if it.blockIdx == 0 {
		panic("tape: decrementing the begin iterator")
	}
	prevIdx := it.blockIdx - 1
	return Iterator[T]{list: l, blockIdx: prevIdx, idx: l.blockLimitAt(prevIdx) - 1}
}
