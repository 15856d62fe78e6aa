// Copyright 2025 The AAD Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package aad

import "github.com/jvikstrom/aad/internal/tape"

// Resetter restores the process-wide multi-output configuration a
// SetNumResultsForAAD call changed, once Close is called. It is the
// idiomatic Go stand-in for the RAII destructor the engine this
// implements relies on to guarantee restoration on every exit path —
// call it via defer, the same way this module's own internal packages
// use defer to guarantee cleanup runs regardless of how a function
// returns.
type Resetter struct {
	multi      bool
	numOutputs int
	closed     bool
}

// Close restores the configuration active before the SetNumResultsForAAD
// call that produced this Resetter. Calling it more than once is a no-op.
func (r *Resetter) Close() {
	if r.closed {
		return
	}
	r.closed = true
	tape.SetGlobalConfig(r.multi, r.numOutputs)
}

// SetNumResultsForAAD sets the process-wide AAD mode every Tape created
// afterward picks up: single-output (multi == false, numOutputs
// ignored) or multi-output with numOutputs simultaneous adjoints per
// node. It returns a Resetter that restores the previous setting;
// callers typically defer its Close.
//
// Mutating this while any goroutine is mid-recording on an existing
// Tape is undefined — set it once, before spawning the workers that
// will each build their own Tape.
func SetNumResultsForAAD(multi bool, numOutputs int) *Resetter {
	prevMulti, prevNumOutputs := tape.SetGlobalConfig(multi, numOutputs)
	return &Resetter{multi: prevMulti, numOutputs: prevNumOutputs}
}
