// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/cpmech/gosl/chk"

// CanPlaceDigits reports whether the given (cell, value) assignment is
// consistent with the current board, the group registry and the
// weak-link graph, without mutating anything. It underlies Skyscraper's
// (and similarly shaped constraints') permutation filtering: a
// candidate permutation over a line's cells is only worth keeping if
// every one of its (cell, value) pairs is still a live candidate, no
// two equal values share a group, and no two of them are weak-linked.
//
// This is a sound but conservative check: it does not simulate the
// cascading eliminations a real SetValue sequence would produce, only
// the invariants the engine already maintains pointwise. Because every
// already-decided cell elsewhere on the board has already pruned
// conflicting values out of these masks (candidate sets only ever
// shrink), pointwise mask membership is sufficient to catch conflicts
// with cells outside the assignment; group and weak-link membership
// catch conflicts between cells inside it.
func (e *Engine) CanPlaceDigits(cells []Cell, values []int) bool {
	chk.IntAssert(len(cells), len(values))
	for k, c := range cells {
		if !HasValue(candidateBits(e.Board.AtCell(c)), values[k]) {
			return false
		}
	}
	for k := 0; k < len(cells); k++ {
		for l := k + 1; l < len(cells); l++ {
			if values[k] == values[l] && e.Groups.ShareGroup(e.Board, cells[k], cells[l]) {
				return false
			}
			a := e.Board.CandidateIndex(cells[k].Row, cells[k].Col, values[k])
			b := e.Board.CandidateIndex(cells[l].Row, cells[l].Col, values[l])
			if e.Links.HasLink(a, b) {
				return false
			}
		}
	}
	return true
}
