// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// Palindrome forces a sequence of cells to read the same forwards and
// backwards: the k-th and (n-1-k)-th cells are mirror pairs that must
// hold equal values.
type Palindrome struct {
	Base
	cells []engine.Cell
}

func (p *Palindrome) mirrorPairs() [][2]engine.Cell {
	n := len(p.cells)
	pairs := make([][2]engine.Cell, 0, n/2)
	for k := 0; k < n/2; k++ {
		pairs = append(pairs, [2]engine.Cell{p.cells[k], p.cells[n-1-k]})
	}
	return pairs
}

// InitCandidates intersects every mirror pair's candidate masks: a
// mirror pair's cells can only ever land on values both sides admit.
func (p *Palindrome) InitCandidates(e *engine.Engine) engine.LogicResult {
	result := engine.ResultNone
	for _, pair := range p.mirrorPairs() {
		a, z := pair[0], pair[1]
		ma := engine.CandidateBits(e.Board.AtCell(a))
		mz := engine.CandidateBits(e.Board.AtCell(z))
		inter := ma & mz
		if inter != ma {
			result = result.Combine(e.KeepMask(a.Row, a.Col, inter))
		}
		if inter != mz {
			result = result.Combine(e.KeepMask(z.Row, z.Col, inter))
		}
		if result == engine.ResultInvalid {
			return engine.ResultInvalid
		}
	}
	return result
}

// InitLinks emits a weak link between every pair of different values
// across each mirror pair, so that once one side takes a value the
// engine's generic weak-link closure (triggered from SetValue) clears
// every other value from the other side.
func (p *Palindrome) InitLinks(e *engine.Engine) engine.LogicResult {
	maxValue := e.Board.MaxValue
	for _, pair := range p.mirrorPairs() {
		a, z := pair[0], pair[1]
		for v0 := 1; v0 <= maxValue; v0++ {
			for v1 := 1; v1 <= maxValue; v1++ {
				if v0 == v1 {
					continue
				}
				e.AddWeakLink(e.Board.CandidateIndex(a.Row, a.Col, v0), e.Board.CandidateIndex(z.Row, z.Col, v1))
			}
		}
	}
	return engine.ResultNone
}

// EnforceConstraint reinforces the weak-link closure: once either side
// of a mirror pair is set, eliminate every other value from the other
// side directly.
func (p *Palindrome) EnforceConstraint(e *engine.Engine, i, j, v int) bool {
	for _, pair := range p.mirrorPairs() {
		a, z := pair[0], pair[1]
		var mirror engine.Cell
		switch {
		case a.Row == i && a.Col == j:
			mirror = z
		case z.Row == i && z.Col == j:
			mirror = a
		default:
			continue
		}
		if !e.SetValue(mirror.Row, mirror.Col, v) {
			return false
		}
	}
	return true
}

// NeedsEnforceConstraint implements engine.Constraint.
func (p *Palindrome) NeedsEnforceConstraint() bool { return true }

// Group implements engine.Constraint: a palindrome's cells are not an
// all-distinct group (mirror cells are forced equal, not distinct), so
// Palindrome contributes no Group.

func init() {
	Register("palindrome", "Palindrome", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		cells, err := ParseCellSequence(options)
		if err != nil {
			return nil, err
		}
		return &Palindrome{cells: cells}, nil
	})
}
