package number

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jvikstrom/aad/internal/tape"
)

func newTestTape(t *testing.T) *tape.Tape {
	t.Helper()
	prevMulti, prevK := tape.SetGlobalConfig(false, 0)
	t.Cleanup(func() { tape.SetGlobalConfig(prevMulti, prevK) })
	return tape.New()
}

func TestFromRecordsALeaf(t *testing.T) {
	tp := newTestTape(t)
	x := From(tp, 3.0)

	require.Equal(t, 3.0, x.Value())
	require.True(t, x.OnTape())
	require.Equal(t, 0, x.Node().Arity())
}

func TestConstIsNotOnTapeUntilPut(t *testing.T) {
	tp := newTestTape(t)
	c := Const(5.0)
	require.False(t, c.OnTape())

	c.PutOnTape(tp)
	require.True(t, c.OnTape())
	require.Equal(t, 5.0, c.Value())
}

func TestZeroAdjointBeforeAnySweep(t *testing.T) {
	tp := newTestTape(t)
	x := From(tp, 1.0)
	require.Zero(t, x.Adjoint())
}

func TestSimpleExpressionPropagatesToLeaf(t *testing.T) {
	tp := newTestTape(t)
	x := From(tp, 3.0)

	// y = x*x + 2*x + 1
	y := Add(Add(Mul(x, x), MulConst(x, 2)), Const(1))

	y.PropagateToStart()

	require.Equal(t, 16.0, y.Value())
	require.Equal(t, 8.0, x.Adjoint()) // dy/dx = 2x + 2 = 8
}

func TestMultiOutputSharedLeaf(t *testing.T) {
	prevMulti, prevK := tape.SetGlobalConfig(true, 2)
	t.Cleanup(func() { tape.SetGlobalConfig(prevMulti, prevK) })
	tp := tape.New()

	x := From(tp, 5.0)
	out0 := Mul(x, x)  // x^2
	out1 := Add(x, x)  // 2x

	out0.SetAdjointAt(0, 1)
	out1.SetAdjointAt(1, 1)

	from := tp.Find(out1.Node()) // out1 recorded after out0
	to := tp.Begin()
	tp.PropagateAdjoints(from, to)

	require.Equal(t, 10.0, x.AdjointAt(0)) // d(x^2)/dx = 2x = 10
	require.Equal(t, 2.0, x.AdjointAt(1))  // d(2x)/dx = 2
}
