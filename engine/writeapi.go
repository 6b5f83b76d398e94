// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// SetValue collapses cell (i,j) to value v. It requires v to currently
// be a candidate of (i,j); callers (including constraints calling this
// speculatively) must be prepared for a false return rather than a
// crash.
//
// Setting a cell to the value it is already decided to is a no-op that
// returns true. Setting it to a different value than it is already
// decided to is a contradiction and returns false.
//
// On success this triggers, in order:
//
//  1. elimination of v from every cell in the aggregated SeenCells of
//     (i,j);
//  2. elimination of every value other than v from the weak-link
//     neighbors of candidate (i,j,v);
//  3. dispatch of EnforceConstraint(i,j,v) to every constraint with
//     NeedsEnforceConstraint set.
//
// Any further SetValue calls triggered by these cascades (e.g. a
// seen-cell elimination collapsing a neighbor to a single candidate)
// are processed recursively before SetValue returns, so that by the
// time a caller observes `true` the whole cascade has already reached
// completion.
func (e *Engine) SetValue(i, j, v int) bool {
	cur := e.Board.At(i, j)
	if IsValueSet(cur) {
		return GetValue(cur) == v
	}
	if !HasValue(cur, v) {
		return false
	}

	e.Board.set(i, j, SetBit|ValueMask(v))

	// (1) eliminate v from seen cells; the masked aggregation lets
	// value-dependent contributors (Self-Taxicab) join in now that the
	// cell's value is known
	for _, sc := range e.SeenCellsByValueMask(Cell{Row: i, Col: j}, ValueMask(v)) {
		if e.ClearValue(sc.Row, sc.Col, v) == ResultInvalid {
			return false
		}
	}

	// (2) eliminate other candidates of the weak-link neighbors
	idx := e.Board.CandidateIndex(i, j, v)
	if e.Links.Compacted() {
		for _, n := range e.Links.Neighbors(idx) {
			nc := e.Board.CandidateOf(n)
			if e.ClearValue(nc.Row, nc.Col, nc.Value) == ResultInvalid {
				return false
			}
		}
	}

	// (3) dispatch EnforceConstraint
	for k, c := range e.constraints {
		if !e.states[k].needsEnforce {
			continue
		}
		if !c.EnforceConstraint(e, i, j, v) {
			return false
		}
	}

	return true
}

// KeepMask intersects the candidates of (i,j) with m. A decided cell is
// treated as already having its candidates reduced to a single bit: m
// must still contain that bit, or the cell is invalid.
func (e *Engine) KeepMask(i, j int, m Mask) LogicResult {
	cur := e.Board.At(i, j)
	if IsValueSet(cur) {
		v := GetValue(cur)
		if m&ValueMask(v) == 0 {
			return ResultInvalid
		}
		return ResultNone
	}

	before := candidateBits(cur)
	after := before & m
	if after == 0 {
		return ResultInvalid
	}
	if after == before {
		return ResultNone
	}
	if ValueCount(after) == 1 {
		if !e.SetValue(i, j, MinValue(after)) {
			return ResultInvalid
		}
		return ResultChanged
	}
	e.Board.set(i, j, after)
	return ResultChanged
}

// ClearMask removes every value in m from the candidates of (i,j).
func (e *Engine) ClearMask(i, j int, m Mask) LogicResult {
	keep := AllValuesMask(e.Board.MaxValue) &^ m
	return e.KeepMask(i, j, keep)
}

// ClearValue removes the single value v from the candidates of (i,j).
func (e *Engine) ClearValue(i, j, v int) LogicResult {
	return e.ClearMask(i, j, ValueMask(v))
}

// ClearCandidates is the batch form of ClearValue over a list of
// (i,j,v) triples, short-circuiting on the first Invalid result.
func (e *Engine) ClearCandidates(cands []Candidate) LogicResult {
	result := ResultNone
	for _, c := range cands {
		r := e.ClearValue(c.Row, c.Col, c.Value)
		result = result.Combine(r)
		if result == ResultInvalid {
			return ResultInvalid
		}
	}
	return result
}
