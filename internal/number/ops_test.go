package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// opCase exercises a single-variable-result operator: build(tp) returns
// the Number under test built from a fresh leaf per case, wantValue is
// the expected forward value, and wantAdjoint is the expected adjoint
// at the leaf after a one-shot propagateToStart.
type opCase struct {
	name        string
	leaf        float64
	build       func(x Number) Number
	wantValue   float64
	wantAdjoint float64
}

func runOpCases(t *testing.T, cases []opCase) {
	t.Helper()
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			tp := newTestTape(t)
			x := From(tp, c.leaf)
			y := c.build(x)
			y.PropagateToStart()

			assert.InDelta(t, c.wantValue, y.Value(), 1e-9, "value")
			assert.InDelta(t, c.wantAdjoint, x.Adjoint(), 1e-9, "adjoint")
		})
	}
}

func TestUnaryOps(t *testing.T) {
	runOpCases(t, []opCase{
		{"Exp", 2, func(x Number) Number { return Exp(x) }, math.Exp(2), math.Exp(2)},
		{"Log", 2, func(x Number) Number { return Log(x) }, math.Log(2), 0.5},
		{"Sqrt", 4, func(x Number) Number { return Sqrt(x) }, 2, 0.25},
		{"FabsPositive", 3, func(x Number) Number { return Fabs(x) }, 3, 1},
		{"FabsNegative", -3, func(x Number) Number { return Fabs(x) }, 3, -1},
		{"Neg", 5, func(x Number) Number { return Neg(x) }, -5, -1},
		{"Pos", 5, func(x Number) Number { return Pos(x) }, 5, 1},
		{"MulConst", 4, func(x Number) Number { return MulConst(x, 3) }, 12, 3},
		{"AddConst", 4, func(x Number) Number { return AddConst(x, 3) }, 7, 1},
		{"SubConst", 4, func(x Number) Number { return SubConst(x, 3) }, 1, 1},
		{"ConstSub", 4, func(x Number) Number { return ConstSub(10, x) }, 6, -1},
		{"DivConst", 8, func(x Number) Number { return DivConst(x, 4) }, 2, 0.25},
		{"ConstDiv", 8, func(x Number) Number { return ConstDiv(16, x) }, 2, -16.0 / 64.0},
		{"PowConst", 3, func(x Number) Number { return PowConst(x, 2) }, 9, 6},
		{"ConstPow", 2, func(x Number) Number { return ConstPow(3, x) }, 9, math.Log(3) * 9},
		{"MaxConstGreater", 5, func(x Number) Number { return MaxConst(x, 2) }, 5, 1},
		{"MaxConstLess", 1, func(x Number) Number { return MaxConst(x, 2) }, 2, 0},
		{"MinConstLess", 1, func(x Number) Number { return MinConst(x, 2) }, 1, 1},
		{"MinConstGreater", 5, func(x Number) Number { return MinConst(x, 2) }, 2, 0},
		{"NormalDens", 0, func(x Number) Number { return NormalDens(x) }, invSqrt2Pi, 0},
	})
}

func TestNormalCdf(t *testing.T) {
	tp := newTestTape(t)
	x := From(tp, -0.5)
	y := NormalCdf(x)
	y.PropagateToStart()

	assert.InDelta(t, 0.3085375, y.Value(), 1e-6)
	assert.InDelta(t, 0.3520653, x.Adjoint(), 1e-6)
}

func TestPowOfTwoNumbers(t *testing.T) {
	tp := newTestTape(t)
	x := From(tp, 2.0)
	y := From(tp, 3.0)
	z := Pow(x, y)
	z.PropagateToStart()

	assert.InDelta(t, 8.0, z.Value(), 1e-9)
	assert.InDelta(t, 12.0, x.Adjoint(), 1e-9)
	assert.InDelta(t, math.Log(2)*8, y.Adjoint(), 1e-9)
}

func TestDivOfTwoNumbers(t *testing.T) {
	tp := newTestTape(t)
	x := From(tp, 6.0)
	y := From(tp, 3.0)
	z := Div(x, y)
	z.PropagateToStart()

	assert.InDelta(t, 2.0, z.Value(), 1e-9)
	assert.InDelta(t, 1.0/3.0, x.Adjoint(), 1e-9)
	assert.InDelta(t, -6.0/9.0, y.Adjoint(), 1e-9)
}

func TestMaxMinOfTwoNumbers(t *testing.T) {
	tp := newTestTape(t)
	a := From(tp, 5.0)
	b := From(tp, 2.0)

	mx := Max(a, b)
	mx.PropagateToStart()
	assert.Equal(t, 5.0, mx.Value())
	assert.Equal(t, 1.0, a.Adjoint())
	assert.Equal(t, 0.0, b.Adjoint())

	tp2 := newTestTape(t)
	c := From(tp2, 5.0)
	d := From(tp2, 2.0)
	mn := Min(c, d)
	mn.PropagateToStart()
	assert.Equal(t, 2.0, mn.Value())
	assert.Equal(t, 0.0, c.Adjoint())
	assert.Equal(t, 1.0, d.Adjoint())
}

func TestComparisonsAreValueOnlyAndUnrecorded(t *testing.T) {
	tp := newTestTape(t)
	a := From(tp, 3.0)
	b := From(tp, 4.0)

	require.True(t, Less(a, b))
	require.True(t, GreaterOrEqual(b, a))
	require.False(t, Equal(a, b))
	require.True(t, NotEqual(a, b))

	// Comparisons must not have appended anything to the tape.
	it := tp.Begin()
	count := 0
	for it != tp.End() {
		count++
		it = it.Next()
	}
	require.Equal(t, 2, count, "only the two leaves should be on tape")
}

func TestRecordOnConstOnlyArgsPanics(t *testing.T) {
	require.Panics(t, func() {
		Add(Const(1), Const(2))
	})
}
