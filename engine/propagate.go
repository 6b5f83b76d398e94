// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"

	"github.com/cpmech/gosl/chk"
)

// FinalizeConstraints runs the one-time setup pass:
//
//  1. each constraint's SplitToPrimitives is consulted and, if it
//     returns a non-nil slice, the original constraint is replaced by
//     its primitives;
//  2. every constraint's Group is collected, and the standard
//     row/column/region groups are derived from the board dimensions;
//  3. InitLinks is called on every (possibly replaced) constraint, and
//     the weak-link graph is compacted;
//  4. InitCandidates is called in a loop across every constraint until
//     a full pass reports no Changed result.
//
// Any Invalid result at any stage aborts with StatusInvalid.
func (e *Engine) FinalizeConstraints() PropagateStatus {
	if e.finalized {
		chk.Panic("FinalizeConstraints called more than once")
	}

	// (1) split to primitives
	var expanded []Constraint
	for _, c := range e.constraints {
		if primitives := c.SplitToPrimitives(e); primitives != nil {
			expanded = append(expanded, primitives...)
		} else {
			expanded = append(expanded, c)
		}
	}
	e.constraints = expanded
	e.states = make([]constraintState, len(expanded))
	for k, c := range e.constraints {
		e.states[k].needsEnforce = c.NeedsEnforceConstraint()
	}

	// (2) collect groups
	e.Groups.BuildStandardGroups(e.Board)
	for k, c := range e.constraints {
		if cells, ok := c.Group(); ok {
			e.states[k].group = cells
			e.states[k].hasGroup = true
			e.Groups.AddGroup(e.Board, Group{Kind: GroupExtra, Cells: cells})
		}
	}

	// (3) seed weak links
	for _, c := range e.constraints {
		if c.InitLinks(e) == ResultInvalid {
			return StatusInvalid
		}
	}
	e.Links.Compact()

	// (4) initial candidate restriction, to a fixed point
	for {
		anyChanged := false
		for _, c := range e.constraints {
			switch c.InitCandidates(e) {
			case ResultInvalid:
				return StatusInvalid
			case ResultChanged:
				anyChanged = true
			}
		}
		if !anyChanged {
			break
		}
	}

	e.finalized = true
	Logf("finalized: %d constraints, %d groups\n", len(e.constraints), len(e.Groups.Groups()))
	return StatusFixedPoint
}

// Propagate runs propagation rounds until a fixed point, a solved
// board, a contradiction, or cancellation. Each round invokes the
// constraints' StepLogic in registration order; a Changed result ends
// the round at once and the next round restarts the pass from the
// first constraint, since eliminations made
// by a later constraint can unlock further deductions in an earlier
// one. ctx is polled between rounds and between individual constraint
// invocations within a round; a cancelled context yields
// StatusCancelled with the board left in whatever partial state it was
// in.
func (e *Engine) Propagate(ctx context.Context) PropagateStatus {
	if !e.finalized {
		chk.Panic("Propagate called before FinalizeConstraints")
	}
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return StatusCancelled
		}
		Tracef("propagation round %d\n", round)

		changed := false
	pass:
		for _, c := range e.constraints {
			if err := ctx.Err(); err != nil {
				return StatusCancelled
			}
			switch c.StepLogic(e, nil, false) {
			case ResultInvalid:
				return StatusInvalid
			case ResultChanged:
				changed = true
				break pass
			}
		}

		if !changed {
			if e.isSolved() {
				return StatusSolved
			}
			return StatusFixedPoint
		}
	}
}

// isSolved reports whether every board cell is decided.
func (e *Engine) isSolved() bool {
	for i := 0; i < e.Board.Height; i++ {
		for j := 0; j < e.Board.Width; j++ {
			if !IsValueSet(e.Board.At(i, j)) {
				return false
			}
		}
	}
	return true
}
