// Copyright 2025 The AAD Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package aad

import (
	"github.com/jvikstrom/aad/internal/number"
	"github.com/jvikstrom/aad/internal/tape"
)

// Tape owns one goroutine's recorded computation graph. Never share a
// Tape across goroutines; create one per worker with NewTape.
type Tape = tape.Tape

// NewTape creates an empty Tape using the current SetNumResultsForAAD
// configuration.
func NewTape() *Tape { return tape.New() }

// Number is a differentiable scalar: overloaded arithmetic on it
// records a Node onto a Tape and computes that node's local derivatives
// eagerly, at the point the operation runs.
type Number = number.Number

// From records tp's next leaf node for the independent variable val.
func From(tp *Tape, val float64) Number { return number.From(tp, val) }

// Const wraps val as a plain, untracked constant for use inside an
// expression; it contributes no adjoint of its own. Call PutOnTape on
// the result before propagating if it later needs one (for instance,
// to read a derivative with respect to it), though for a genuine
// constant that's rarely useful.
func Const(val float64) Number { return number.Const(val) }

// Arithmetic and math operators. Each records its own Node and its
// local derivatives eagerly.
var (
	Add  = number.Add
	Sub  = number.Sub
	Mul  = number.Mul
	Div  = number.Div
	Neg  = number.Neg
	Pos  = number.Pos
	Pow  = number.Pow
	Max  = number.Max
	Min  = number.Min
	Exp  = number.Exp
	Log  = number.Log
	Sqrt = number.Sqrt
	Fabs = number.Fabs

	NormalDens = number.NormalDens
	NormalCdf  = number.NormalCdf

	AddConst = number.AddConst
	SubConst = number.SubConst
	ConstSub = number.ConstSub
	MulConst = number.MulConst
	DivConst = number.DivConst
	ConstDiv = number.ConstDiv
	PowConst = number.PowConst
	ConstPow = number.ConstPow
	MaxConst = number.MaxConst
	MinConst = number.MinConst
)

// Value-only comparisons; none of these record anything onto a tape.
var (
	Equal          = number.Equal
	NotEqual       = number.NotEqual
	Less           = number.Less
	Greater        = number.Greater
	LessOrEqual    = number.LessOrEqual
	GreaterOrEqual = number.GreaterOrEqual
)

// PropagateMarkToStart continues a two-phase reverse sweep: it assumes
// one or more outputs were already seeded and propagated down to tp's
// mark, and walks the remaining pre-mark portion of tp down to its
// first node.
func PropagateMarkToStart(tp *Tape) { number.PropagateMarkToStart(tp) }
