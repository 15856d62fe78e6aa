// Copyright 2025 The AAD Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package aad implements reverse-mode algorithmic differentiation of
// scalar arithmetic via operator overloading and an arena-backed tape.
//
// # Overview
//
// Every arithmetic operation on a Number eagerly records a Node onto a
// Tape, computing and storing its local partial derivatives at the
// moment the operation runs. Propagating an output's adjoint backward
// through the tape then accumulates, via the chain rule, the derivative
// of that output with respect to every leaf it depends on — one
// forward pass' worth of nodes, walked once in reverse, regardless of
// how many inputs there were.
//
// A Tape belongs to exactly one goroutine for its entire lifetime; AAD
// work on separate goroutines needs one Tape each. internal/parallel's
// RunPerTape gives each worker its own.
//
// # Basic Usage
//
//	import "github.com/jvikstrom/aad"
//
//	func main() {
//	    tp := aad.NewTape()
//
//	    x := aad.From(tp, 3.0)
//	    y := aad.Add(aad.Mul(x, x), aad.MulConst(x, 2)) // y = x*x + 2*x
//
//	    y.PropagateToStart()
//
//	    fmt.Println(y.Value())   // 15
//	    fmt.Println(x.Adjoint()) // dy/dx = 2x + 2 = 8
//	}
//
// # Multi-output mode
//
// By default each node carries a single adjoint. SetNumResultsForAAD
// switches every Tape created afterward to carry numOutputs adjoints
// per node instead, so several outputs sharing a subgraph can be
// propagated in one pass over the tape:
//
//	defer aad.SetNumResultsForAAD(true, 2).Close()
//	tp := aad.NewTape()
//	x := aad.From(tp, 5.0)
//	out0 := aad.Mul(x, x) // x^2
//	out1 := aad.Add(x, x) // 2x
//	out0.SetAdjointAt(0, 1)
//	out1.SetAdjointAt(1, 1)
//	tp.PropagateAdjoints(tp.Find(out1.Node()), tp.Begin())
//	// x.AdjointAt(0) == 10, x.AdjointAt(1) == 2
//
// # Two-phase (mark-based) sweeps
//
// Tape.Mark and PropagateMarkToStart let a caller build a shared
// "pre" expression, fork several "post" expressions from it, propagate
// each post expression's output down to the mark, and finally continue
// the sweep once through the shared pre-mark portion of the tape —
// accumulating contributions from every post expression without
// re-walking the shared prefix once per output.
package aad
