// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Snapshot is an opaque checkpoint of everything that changes across a
// branch of propagation: the board's candidate masks and each
// constraint's per-branch mutable state. The weak-link graph and group
// registry never change once FinalizeConstraints has run, so they are
// not part of a snapshot; the memoization store is intentionally
// shared (never snapshotted) since its entries are keyed by every
// input that affects them and are safe to reuse across branches.
type Snapshot struct {
	board  *Board
	states []constraintState
}

// Clone captures the engine's current branch-local state for later
// Restore. The external backtracking driver is expected to call Clone
// before making a guess and Restore after the guess's propagation
// dead-ends.
func (e *Engine) Clone() *Snapshot {
	states := make([]constraintState, len(e.states))
	for i, s := range e.states {
		cp := s
		if s.group != nil {
			cp.group = append([]Cell(nil), s.group...)
		}
		states[i] = cp
	}
	return &Snapshot{
		board:  e.Board.clone(),
		states: states,
	}
}

// Restore rewinds the engine to a previously captured Snapshot.
func (e *Engine) Restore(snap *Snapshot) {
	e.Board.restore(snap.board)
	states := make([]constraintState, len(snap.states))
	for i, s := range snap.states {
		cp := s
		if s.group != nil {
			cp.group = append([]Cell(nil), s.group...)
		}
		states[i] = cp
	}
	e.states = states
}
