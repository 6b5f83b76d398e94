// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/cpmech/gosl/chk"

// constraintState holds the mutable, per-branch state the engine keeps
// on behalf of a constraint so the constraint value itself can stay
// immutable and shareable across backtracking branches.
type constraintState struct {
	needsEnforce bool
	group        []Cell
	hasGroup     bool
}

// Engine is the propagation driver: it owns the board, the weak-link
// graph, the group registry, the registered constraints and their
// per-branch mutable state, and the memoization store.
//
// An Engine is built once per solve attempt via NewEngine, populated
// with AddConstraint/AddWeakLink calls, then finalized with
// FinalizeConstraints before the first call to Propagate.
type Engine struct {
	Board  *Board
	Links  *WeakLinkGraph
	Groups *GroupRegistry
	Memo   *MemoStore

	constraints []Constraint
	states      []constraintState
	finalized   bool
}

// NewEngine allocates an engine over a freshly constructed board.
func NewEngine(height, width, maxValue, boxHeight, boxWidth int) *Engine {
	board := NewBoard(height, width, maxValue, boxHeight, boxWidth)
	return &Engine{
		Board:  board,
		Links:  NewWeakLinkGraph(board.NumCandidates()),
		Groups: NewGroupRegistry(board),
		Memo:   NewMemoStore(),
	}
}

// AddConstraint registers a constraint. Must be called before
// FinalizeConstraints.
func (e *Engine) AddConstraint(c Constraint) {
	if e.finalized {
		chk.Panic("AddConstraint called after FinalizeConstraints")
	}
	e.constraints = append(e.constraints, c)
	e.states = append(e.states, constraintState{needsEnforce: c.NeedsEnforceConstraint()})
}

// AddWeakLink records a weak link directly on the engine's graph. A
// thin convenience so external callers do not need to reach into
// Engine.Links themselves.
func (e *Engine) AddWeakLink(a, b int) {
	e.Links.AddWeakLink(a, b)
}

// Constraints returns every registered constraint assignable to T,
// preserving registration order. This is how a constraint discovers
// its siblings by registry lookup rather than a back-pointer (e.g.
// Difference looking up sibling Ratio constraints).
func Constraints[T any](e *Engine) []T {
	var out []T
	for _, c := range e.constraints {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// AllConstraints returns every registered constraint, in registration
// order.
func (e *Engine) AllConstraints() []Constraint {
	return e.constraints
}
